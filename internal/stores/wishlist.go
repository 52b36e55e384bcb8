package stores

import (
	"sync"

	"shopfront/internal/models"
	"shopfront/internal/storage"
)

// WishlistStore holds the active user's wishlist. The wishlist is a
// set: adding an item already present is a no-op.
type WishlistStore struct {
	store         storage.RecordStore
	currentUserID string
	items         []models.WishlistItem
	mu            sync.RWMutex
}

// NewWishlistStore creates a new instance of WishlistStore.
func NewWishlistStore(store storage.RecordStore) *WishlistStore {
	return &WishlistStore{
		store: store,
	}
}

// InitializeUserData makes the store serve the given user. Same
// lifecycle contract as CartStore: same-id calls are no-ops, switches
// load the new user's persisted wishlist wholesale.
func (s *WishlistStore) InitializeUserData(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID == userID {
		return
	}

	var items []models.WishlistItem
	s.store.Load(storage.KindWishlist, userID, &items)
	s.items = items
	s.currentUserID = userID
}

// AddItem adds an item to the wishlist if not already present.
func (s *WishlistStore) AddItem(item models.WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return
		}
	}
	s.items = append(s.items, item)
	s.persist()
}

// RemoveItem removes an item by id. Unknown ids are no-ops.
func (s *WishlistStore) RemoveItem(id string) {
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

// Contains reports whether the wishlist holds the given id.
func (s *WishlistStore) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the current wishlist contents.
func (s *WishlistStore) Items() []models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.WishlistItem, len(s.items))
	copy(items, s.items)
	return items
}

// Count returns the number of wishlist entries.
func (s *WishlistStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// persist must be called with the write lock held.
func (s *WishlistStore) persist() {
	if s.currentUserID == "" {
		return
	}
	items := s.items
	if items == nil {
		items = []models.WishlistItem{}
	}
	s.store.Save(storage.KindWishlist, s.currentUserID, items)
}
