package stores_test

import (
	"testing"
	"time"

	"shopfront/internal/models"
	"shopfront/internal/storage"
	"shopfront/internal/stores"

	"github.com/stretchr/testify/assert"
)

func processingOrder(id string) models.Order {
	return models.Order{
		ID:          id,
		OrderNumber: "ORD-TEST",
		Date:        time.Now(),
		Total:       49.99,
		Status:      models.OrderStatusProcessing,
		Items: []models.OrderItem{
			{ID: "prod-1", Name: "Mouse", Price: 49.99, Quantity: 1},
		},
		ShippingAddress: "123 Maple Street, Springfield, IL 62704",
	}
}

func TestOrderStoreGeneratesHistoryForNewUsers(t *testing.T) {
	store := storage.NewMemoryStore()
	orders := stores.NewOrderStore(store)

	orders.InitializeUserData("user_abc", "Jane Doe")

	history := orders.Orders()
	assert.GreaterOrEqual(t, len(history), 10)
	assert.LessOrEqual(t, len(history), 25)

	// The generated history is persisted immediately, so the next
	// initialization loads rather than regenerates.
	var persisted []models.Order
	store.Load(storage.KindOrders, "user_abc", &persisted)
	assert.Equal(t, len(history), len(persisted))
}

func TestOrderStoreLoadsPersistedOverGenerated(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Save(storage.KindOrders, "user_abc", []models.Order{processingOrder("order-1")})

	orders := stores.NewOrderStore(store)
	orders.InitializeUserData("user_abc", "Jane Doe")

	history := orders.Orders()
	assert.Len(t, history, 1, "persisted history wins over the generator")
	assert.Equal(t, "order-1", history[0].ID)
}

func TestAddOrderPrepends(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Save(storage.KindOrders, "user_abc", []models.Order{processingOrder("order-old")})

	orders := stores.NewOrderStore(store)
	orders.InitializeUserData("user_abc", "Jane Doe")
	orders.AddOrder(processingOrder("order-new"))

	assert.Equal(t, "order-new", orders.Orders()[0].ID)
	assert.Len(t, orders.Orders(), 2)
}

func TestCancelOrder(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Save(storage.KindOrders, "user_abc", []models.Order{processingOrder("order-1")})

	orders := stores.NewOrderStore(store)
	orders.InitializeUserData("user_abc", "Jane Doe")

	assert.NoError(t, orders.CancelOrder("order-1"))

	order, err := orders.OrderByID("order-1")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
}

func TestCancelledIsTerminal(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Save(storage.KindOrders, "user_abc", []models.Order{processingOrder("order-1")})

	orders := stores.NewOrderStore(store)
	orders.InitializeUserData("user_abc", "Jane Doe")
	assert.NoError(t, orders.CancelOrder("order-1"))

	// No operation may move a cancelled order to another status.
	assert.ErrorIs(t, orders.UpdateStatus("order-1", models.OrderStatusShipped), stores.ErrOrderCancelled)
	assert.ErrorIs(t, orders.UpdateStatus("order-1", models.OrderStatusDelivered), stores.ErrOrderCancelled)
	assert.ErrorIs(t, orders.CancelOrder("order-1"), stores.ErrOrderCancelled)

	order, _ := orders.OrderByID("order-1")
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
}

func TestOnlyProcessingOrdersCancellable(t *testing.T) {
	shipped := processingOrder("order-2")
	shipped.Status = models.OrderStatusShipped

	store := storage.NewMemoryStore()
	store.Save(storage.KindOrders, "user_abc", []models.Order{shipped})

	orders := stores.NewOrderStore(store)
	orders.InitializeUserData("user_abc", "Jane Doe")

	assert.ErrorIs(t, orders.CancelOrder("order-2"), stores.ErrNotCancellable)
	assert.ErrorIs(t, orders.CancelOrder("order-missing"), stores.ErrOrderNotFound)
}

func TestOrderStoreIdempotentReinitialization(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Save(storage.KindOrders, "user_abc", []models.Order{processingOrder("order-1")})

	orders := stores.NewOrderStore(store)
	orders.InitializeUserData("user_abc", "Jane Doe")
	orders.AddOrder(processingOrder("order-2"))
	orders.InitializeUserData("user_abc", "Jane Doe")

	assert.Len(t, orders.Orders(), 2, "re-init for the same id must not reload")
}

func TestOrderStoreUserSwitchRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Save(storage.KindOrders, "user_a", []models.Order{processingOrder("order-a")})
	store.Save(storage.KindOrders, "user_b", []models.Order{processingOrder("order-b")})

	orders := stores.NewOrderStore(store)
	orders.InitializeUserData("user_a", "A")
	assert.NoError(t, orders.CancelOrder("order-a"))

	orders.InitializeUserData("user_b", "B")
	assert.Equal(t, "order-b", orders.Orders()[0].ID)

	orders.InitializeUserData("user_a", "A")
	order, err := orders.OrderByID("order-a")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status,
		"user_a's cancellation must survive the round trip through user_b")
}
