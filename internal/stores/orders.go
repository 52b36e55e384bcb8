package stores

import (
	"fmt"
	"sync"

	"shopfront/internal/mockdata"
	"shopfront/internal/models"
	"shopfront/internal/storage"
)

// Order mutation outcomes. These are domain results the caller is
// expected to branch on, not exceptional conditions.
var (
	ErrOrderNotFound  = fmt.Errorf("order not found")
	ErrOrderCancelled = fmt.Errorf("order is cancelled and cannot change status")
	ErrNotCancellable = fmt.Errorf("only processing orders can be cancelled")
)

// OrderStore holds the active user's order history. On first
// initialization for a user with no persisted history it falls back to
// the deterministic generator, so every user arrives with a believable
// past; the generated set is persisted immediately and loads normally
// from then on.
type OrderStore struct {
	store         storage.RecordStore
	currentUserID string
	orders        []models.Order
	mu            sync.RWMutex
}

// NewOrderStore creates a new instance of OrderStore.
func NewOrderStore(store storage.RecordStore) *OrderStore {
	return &OrderStore{
		store: store,
	}
}

// InitializeUserData makes the store serve the given user. Same-id
// calls are no-ops. A switch loads the new user's persisted orders, or
// synthesizes history when none exist.
func (s *OrderStore) InitializeUserData(userID, userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID == userID {
		return
	}

	var orders []models.Order
	s.store.Load(storage.KindOrders, userID, &orders)
	if len(orders) == 0 {
		orders = mockdata.Orders(userID)
		s.store.Save(storage.KindOrders, userID, orders)
	}
	s.orders = orders
	s.currentUserID = userID
}

// AddOrder prepends a newly placed order to the history.
func (s *OrderStore) AddOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]models.Order{order}, s.orders...)
	s.persist()
}

// CancelOrder cancels a processing order. Cancelled is terminal;
// orders that have already shipped or been delivered cannot be
// cancelled, and an already-cancelled order stays cancelled.
func (s *OrderStore) CancelOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		switch s.orders[i].Status {
		case models.OrderStatusCancelled:
			return ErrOrderCancelled
		case models.OrderStatusProcessing:
			s.orders[i].Status = models.OrderStatusCancelled
			s.persist()
			return nil
		default:
			return ErrNotCancellable
		}
	}
	return ErrOrderNotFound
}

// UpdateStatus advances an order's status. Transitions out of
// Cancelled are refused.
func (s *OrderStore) UpdateStatus(id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if s.orders[i].Status == models.OrderStatusCancelled {
			return ErrOrderCancelled
		}
		s.orders[i].Status = status
		s.persist()
		return nil
	}
	return ErrOrderNotFound
}

// OrderByID returns a copy of the order with the given id.
func (s *OrderStore) OrderByID(id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Orders returns a copy of the current order history.
func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// persist must be called with the write lock held.
func (s *OrderStore) persist() {
	if s.currentUserID == "" {
		return
	}
	s.store.Save(storage.KindOrders, s.currentUserID, s.orders)
}
