package stores

import (
	"fmt"
	"sync"

	"shopfront/internal/mockdata"
	"shopfront/internal/models"
	"shopfront/internal/storage"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned for operations on unknown address ids.
var ErrAddressNotFound = fmt.Errorf("address not found")

// AddressStore holds the active user's saved addresses. The invariant
// is at most one default: setting a default clears the flag everywhere
// else. Removing the default deliberately promotes nothing; the
// collection simply has no default until one is set again.
type AddressStore struct {
	store         storage.RecordStore
	currentUserID string
	addresses     []models.SavedAddress
	mu            sync.RWMutex
}

// NewAddressStore creates a new instance of AddressStore.
func NewAddressStore(store storage.RecordStore) *AddressStore {
	return &AddressStore{
		store: store,
	}
}

// InitializeUserData makes the store serve the given user, generating
// starter addresses for first-time users.
func (s *AddressStore) InitializeUserData(userID, userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID == userID {
		return
	}

	var addresses []models.SavedAddress
	s.store.Load(storage.KindAddresses, userID, &addresses)
	if len(addresses) == 0 {
		addresses = mockdata.Addresses(userID, userName)
		s.store.Save(storage.KindAddresses, userID, addresses)
	}
	s.addresses = addresses
	s.currentUserID = userID
}

// AddAddress saves a new address, assigning an id when absent. An
// address added as default clears the flag on all others.
func (s *AddressStore) AddAddress(address models.SavedAddress) models.SavedAddress {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if address.IsDefault {
		for i := range s.addresses {
			s.addresses[i].IsDefault = false
		}
	}
	s.addresses = append(s.addresses, address)
	s.persist()
	return address
}

// UpdateAddress replaces the stored address with the same id.
func (s *AddressStore) UpdateAddress(address models.SavedAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.addresses {
		if s.addresses[i].ID != address.ID {
			continue
		}
		if address.IsDefault {
			for j := range s.addresses {
				s.addresses[j].IsDefault = false
			}
		}
		s.addresses[i] = address
		s.persist()
		return nil
	}
	return ErrAddressNotFound
}

// RemoveAddress removes an address by id. Removing the default leaves
// the collection with no default; no auto-promotion happens.
func (s *AddressStore) RemoveAddress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.addresses {
		if s.addresses[i].ID == id {
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrAddressNotFound
}

// SetDefault makes exactly the given address the default.
func (s *AddressStore) SetDefault(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.addresses {
		if s.addresses[i].ID == id {
			found = true
		}
	}
	if !found {
		return ErrAddressNotFound
	}

	for i := range s.addresses {
		s.addresses[i].IsDefault = s.addresses[i].ID == id
	}
	s.persist()
	return nil
}

// DefaultAddress returns the current default address, if any.
func (s *AddressStore) DefaultAddress() (*models.SavedAddress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.addresses {
		if s.addresses[i].IsDefault {
			address := s.addresses[i]
			return &address, true
		}
	}
	return nil, false
}

// Addresses returns a copy of the current address collection.
func (s *AddressStore) Addresses() []models.SavedAddress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addresses := make([]models.SavedAddress, len(s.addresses))
	copy(addresses, s.addresses)
	return addresses
}

// persist must be called with the write lock held.
func (s *AddressStore) persist() {
	if s.currentUserID == "" {
		return
	}
	s.store.Save(storage.KindAddresses, s.currentUserID, s.addresses)
}
