// Package stores holds the user-scoped in-memory state containers.
// Each store owns one slice of domain data for exactly one active user
// id at a time, follows the Uninitialized -> InitializedFor(userID)
// lifecycle, and persists the full collection through the storage port
// after every mutation. Guest sessions use the literal id "guest" and
// follow the identical contract under their own namespace.
package stores

import (
	"sync"

	"shopfront/internal/models"
	"shopfront/internal/storage"
)

// CartStore holds the active user's shopping cart.
type CartStore struct {
	store         storage.RecordStore
	currentUserID string
	items         []models.CartItem
	mu            sync.RWMutex
}

// NewCartStore creates a new instance of CartStore.
func NewCartStore(store storage.RecordStore) *CartStore {
	return &CartStore{
		store: store,
	}
}

// InitializeUserData makes the store serve the given user. Re-entrant
// calls for the already-active id are no-ops, so in-memory mutations
// made since the last load are never clobbered by redundant lifecycle
// calls. Switching ids replaces in-memory state wholesale with the new
// user's persisted cart; the outgoing user needs no flush because every
// mutation already persisted.
func (s *CartStore) InitializeUserData(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID == userID {
		return
	}

	var items []models.CartItem
	s.store.Load(storage.KindCart, userID, &items)
	s.items = items
	s.currentUserID = userID
}

// AddItem adds a product to the cart. Adding an id already present
// merges into the existing line by summing quantities.
func (s *CartStore) AddItem(item models.CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}
	s.persist()
}

// RemoveItem removes a line item by product id. Unknown ids are no-ops.
func (s *CartStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity sets the quantity of a line item. A quantity of zero
// or less removes the line.
func (s *CartStore) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = quantity
			}
			s.persist()
			return
		}
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a copy of the current cart contents.
func (s *CartStore) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems returns the summed quantity across all lines.
func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the summed price*quantity across all lines.
func (s *CartStore) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// persist must be called with the write lock held.
func (s *CartStore) persist() {
	if s.currentUserID == "" {
		return
	}
	items := s.items
	if items == nil {
		items = []models.CartItem{}
	}
	s.store.Save(storage.KindCart, s.currentUserID, items)
}
