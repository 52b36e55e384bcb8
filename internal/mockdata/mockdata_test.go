package mockdata_test

import (
	"testing"
	"time"

	"shopfront/internal/identity"
	"shopfront/internal/mockdata"
	"shopfront/internal/models"

	"github.com/stretchr/testify/assert"
)

const testUserID = "user_1kg8p3z"

func TestOrdersAreStable(t *testing.T) {
	first := mockdata.Orders(testUserID)
	second := mockdata.Orders(testUserID)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].OrderNumber, second[i].OrderNumber)
		assert.Equal(t, first[i].Status, second[i].Status)
		assert.Equal(t, first[i].Total, second[i].Total)
		assert.Equal(t, first[i].Items, second[i].Items)
		assert.Equal(t, first[i].ShippingAddress, second[i].ShippingAddress)
		// Dates are relative to "now", so compare at day precision.
		assert.Equal(t,
			first[i].Date.Truncate(24*time.Hour),
			second[i].Date.Truncate(24*time.Hour))
	}
}

func TestOrdersShape(t *testing.T) {
	orders := mockdata.Orders(testUserID)

	assert.GreaterOrEqual(t, len(orders), 10)
	assert.LessOrEqual(t, len(orders), 25)

	for _, order := range orders {
		assert.NotEmpty(t, order.ID)
		assert.Regexp(t, `^NX\d{8,}$`, order.OrderNumber)
		assert.GreaterOrEqual(t, len(order.Items), 1)
		assert.LessOrEqual(t, len(order.Items), 3)
		assert.NotEmpty(t, order.ShippingAddress)
		assert.Contains(t, []models.OrderStatus{
			models.OrderStatusProcessing,
			models.OrderStatusShipped,
			models.OrderStatusDelivered,
			models.OrderStatusCancelled,
		}, order.Status)

		var total float64
		for _, item := range order.Items {
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.Greater(t, item.Price, 0.0)
			assert.NotEmpty(t, item.Name)
			assert.NotEmpty(t, item.Image)
			total += item.Price * float64(item.Quantity)
		}
		assert.InDelta(t, total, order.Total, 0.01, "order total must match its items")
	}
}

func TestOrdersSortedNewestFirst(t *testing.T) {
	orders := mockdata.Orders(testUserID)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].Date.After(orders[i-1].Date),
			"orders must be sorted descending by date")
	}
}

func TestOrdersDifferAcrossUsers(t *testing.T) {
	a := mockdata.Orders(identity.UserID("alice@example.com"))
	b := mockdata.Orders(identity.UserID("bob@example.com"))
	assert.NotEqual(t, a[0].OrderNumber, b[0].OrderNumber)
}

func TestAddressesShape(t *testing.T) {
	addresses := mockdata.Addresses(testUserID, "Jane Doe")

	assert.GreaterOrEqual(t, len(addresses), 1)
	assert.LessOrEqual(t, len(addresses), 3)
	assert.True(t, addresses[0].IsDefault, "first generated address is the default")

	defaults := 0
	labels := []string{"Home", "Work", "Office", "Vacation Home"}
	for i, addr := range addresses {
		if addr.IsDefault {
			defaults++
		}
		assert.Equal(t, labels[i%len(labels)], addr.Label)
		assert.Equal(t, "Jane Doe", addr.FullName)
		assert.NotEmpty(t, addr.Street)
		assert.NotEmpty(t, addr.ZipCode)
	}
	assert.Equal(t, 1, defaults, "exactly one generated address may be default")

	assert.Equal(t, addresses, mockdata.Addresses(testUserID, "Jane Doe"))
}

func TestPaymentMethodsShape(t *testing.T) {
	methods := mockdata.PaymentMethods(testUserID, "Jane Doe")

	assert.GreaterOrEqual(t, len(methods), 1)
	assert.LessOrEqual(t, len(methods), 2)

	card := methods[0]
	assert.Equal(t, models.PaymentTypeCard, card.Type)
	assert.True(t, card.IsDefault)
	assert.Regexp(t, `^\*\*\*\* \*\*\*\* \*\*\*\* \d{4}$`, card.CardNumber)
	assert.Regexp(t, `^(0[1-9]|1[0-2])/2[5-9]$`, card.ExpiryDate)
	assert.Equal(t, "Jane Doe", card.CardHolder)

	if len(methods) == 2 {
		assert.Equal(t, models.PaymentTypeUPI, methods[1].Type)
		assert.False(t, methods[1].IsDefault)
		assert.Contains(t, methods[1].UPIID, "@")
	}

	assert.Equal(t, methods, mockdata.PaymentMethods(testUserID, "Jane Doe"))
}

func TestPaymentMethodsSecondMethodIsSeedDependent(t *testing.T) {
	// Across a spread of users, some get one method and some get two.
	counts := map[int]int{}
	for _, email := range []string{
		"a@example.com", "b@example.com", "c@example.com", "d@example.com",
		"e@example.com", "f@example.com", "g@example.com", "h@example.com",
		"i@example.com", "j@example.com", "k@example.com", "l@example.com",
	} {
		counts[len(mockdata.PaymentMethods(identity.UserID(email), "Test User"))]++
	}
	assert.Greater(t, counts[1], 0, "some users should have only the card")
	assert.Greater(t, counts[2], 0, "some users should have a second method")
}

func TestSpendingAnalyticsWindow(t *testing.T) {
	points := mockdata.SpendingAnalytics(testUserID)

	assert.Len(t, points, 12)
	assert.Equal(t, time.Now().Format("Jan"), points[11].Month,
		"window must end at the current month")

	for _, p := range points {
		assert.Greater(t, p.Amount, 0.0)
	}

	assert.Equal(t, points, mockdata.SpendingAnalytics(testUserID))
}

func TestSpendingAnalyticsSeasonalBoost(t *testing.T) {
	// The boosts push the two most recent months above the un-boosted
	// base range ceiling often enough to observe across users; at
	// minimum the boosted amounts must exceed their own base.
	points := mockdata.SpendingAnalytics(testUserID)
	assert.GreaterOrEqual(t, points[11].Amount, 120*1.8)
	assert.GreaterOrEqual(t, points[10].Amount, 120*1.5)
}

func TestNotificationsShape(t *testing.T) {
	notifications := mockdata.Notifications(testUserID)

	assert.GreaterOrEqual(t, len(notifications), 3)
	assert.LessOrEqual(t, len(notifications), 10)

	for _, n := range notifications {
		assert.Contains(t, []models.NotificationType{
			models.NotificationTypeOrder,
			models.NotificationTypePromo,
			models.NotificationTypeSystem,
		}, n.Type)
		assert.NotEmpty(t, n.Title)
		assert.NotEmpty(t, n.Message)
		assert.False(t, n.Date.After(time.Now()))
	}

	for i := 1; i < len(notifications); i++ {
		assert.False(t, notifications[i].Date.After(notifications[i-1].Date),
			"notifications must be sorted most recent first")
	}
}

func TestNotificationsReadBias(t *testing.T) {
	// Aggregated across many users, roughly 70% of notifications are
	// read; assert a loose band rather than the exact ratio.
	read, total := 0, 0
	for i := 0; i < 40; i++ {
		userID := identity.UserID("reader" + string(rune('a'+i%26)) + "@example.com")
		for _, n := range mockdata.Notifications(userID) {
			total++
			if n.Read {
				read++
			}
		}
	}
	ratio := float64(read) / float64(total)
	assert.Greater(t, ratio, 0.5)
	assert.Less(t, ratio, 0.9)
}
