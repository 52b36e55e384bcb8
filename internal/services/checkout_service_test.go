package services_test

import (
	"testing"

	"shopfront/internal/models"
	"shopfront/internal/services"
	"shopfront/internal/storage"
	"shopfront/internal/stores"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of services.OrderEventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderPlaced(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func validForm() services.CheckoutForm {
	return services.CheckoutForm{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Street:     "123 Maple Street",
		City:       "Springfield",
		State:      "IL",
		ZipCode:    "62704",
		CardNumber: "4242424242424242",
		ExpiryDate: "08/28",
		CVV:        "123",
	}
}

type checkoutFixture struct {
	cart          *stores.CartStore
	orders        *stores.OrderStore
	notifications *stores.NotificationStore
	store         *storage.MemoryStore

	// First-time initialization synthesizes demo history, so tests
	// compare against these baselines rather than assuming empty.
	baseOrders int
	baseUnread int
}

func newCheckoutFixture(userID string) checkoutFixture {
	store := storage.NewMemoryStore()
	f := checkoutFixture{
		cart:          stores.NewCartStore(store),
		orders:        stores.NewOrderStore(store),
		notifications: stores.NewNotificationStore(store),
		store:         store,
	}
	f.cart.InitializeUserData(userID)
	f.orders.InitializeUserData(userID, "Jane Doe")
	f.notifications.InitializeUserData(userID)
	f.baseOrders = len(f.orders.Orders())
	f.baseUnread = f.notifications.UnreadCount()
	return f
}

func TestPlaceOrderHappyPath(t *testing.T) {
	f := newCheckoutFixture("user_abc")
	f.cart.AddItem(models.CartItem{ID: "prod-1", Name: "Wireless Headphones", Price: 149.99, Quantity: 2})

	mockPub := new(MockPublisher)
	mockPub.On("PublishOrderPlaced", mock.Anything).Return(nil).Once()

	checkout := services.NewCheckoutService(f.cart, f.orders, f.notifications, mockPub, 0)
	order, err := checkout.PlaceOrder("user_abc", validForm())

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.InDelta(t, 299.98, order.Total, 0.001)
	assert.Len(t, order.Items, 1)
	assert.Contains(t, order.ShippingAddress, "Springfield")
	assert.Regexp(t, `^ORD-[0-9A-F-]{8}$`, order.OrderNumber)

	// The order landed at the top of history, the cart was cleared,
	// and a confirmation notification was added.
	assert.Equal(t, order.ID, f.orders.Orders()[0].ID)
	assert.Len(t, f.orders.Orders(), f.baseOrders+1)
	assert.Empty(t, f.cart.Items())
	assert.Equal(t, f.baseUnread+1, f.notifications.UnreadCount())

	mockPub.AssertExpectations(t)
}

func TestPlaceOrderValidationBlocksBeforePayment(t *testing.T) {
	f := newCheckoutFixture("user_abc")
	f.cart.AddItem(models.CartItem{ID: "prod-1", Name: "Wireless Headphones", Price: 149.99, Quantity: 1})

	checkout := services.NewCheckoutService(f.cart, f.orders, f.notifications, nil, 0)

	form := validForm()
	form.ZipCode = "abcde"
	_, err := checkout.PlaceOrder("user_abc", form)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)

	// No partial order is ever created for a validation failure.
	assert.Len(t, f.orders.Orders(), f.baseOrders)
	assert.Len(t, f.cart.Items(), 1, "cart untouched after validation failure")
}

func TestPlaceOrderRequiredFields(t *testing.T) {
	f := newCheckoutFixture("user_abc")
	f.cart.AddItem(models.CartItem{ID: "prod-1", Name: "Wireless Headphones", Price: 149.99, Quantity: 1})
	checkout := services.NewCheckoutService(f.cart, f.orders, f.notifications, nil, 0)

	form := validForm()
	form.FullName = ""
	_, err := checkout.PlaceOrder("user_abc", form)
	assert.Error(t, err)

	form = validForm()
	form.Email = "not-an-email"
	_, err = checkout.PlaceOrder("user_abc", form)
	assert.Error(t, err)

	form = validForm()
	form.CVV = "12"
	_, err = checkout.PlaceOrder("user_abc", form)
	assert.Error(t, err)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newCheckoutFixture("user_abc")
	checkout := services.NewCheckoutService(f.cart, f.orders, f.notifications, nil, 0)

	_, err := checkout.PlaceOrder("user_abc", validForm())
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestPlaceOrderNilPublisher(t *testing.T) {
	f := newCheckoutFixture("user_abc")
	f.cart.AddItem(models.CartItem{ID: "prod-1", Name: "Wireless Headphones", Price: 149.99, Quantity: 1})

	// Events disabled: checkout must still work end to end.
	checkout := services.NewCheckoutService(f.cart, f.orders, f.notifications, nil, 0)
	order, err := checkout.PlaceOrder("user_abc", validForm())

	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestPlaceOrderPublishFailureIsNonFatal(t *testing.T) {
	f := newCheckoutFixture("user_abc")
	f.cart.AddItem(models.CartItem{ID: "prod-1", Name: "Wireless Headphones", Price: 149.99, Quantity: 1})

	mockPub := new(MockPublisher)
	mockPub.On("PublishOrderPlaced", mock.Anything).Return(assert.AnError).Once()

	checkout := services.NewCheckoutService(f.cart, f.orders, f.notifications, mockPub, 0)
	order, err := checkout.PlaceOrder("user_abc", validForm())

	assert.NoError(t, err, "a broker failure must not fail the checkout")
	assert.NotNil(t, order)
	mockPub.AssertExpectations(t)
}
