package stores

import (
	"fmt"
	"sync"

	"shopfront/internal/mockdata"
	"shopfront/internal/models"
	"shopfront/internal/storage"

	"github.com/google/uuid"
)

// ErrPaymentMethodNotFound is returned for operations on unknown
// payment method ids.
var ErrPaymentMethodNotFound = fmt.Errorf("payment method not found")

// PaymentStore holds the active user's saved payment methods. Same
// single-default invariant and no-auto-promotion behavior as
// AddressStore.
type PaymentStore struct {
	store         storage.RecordStore
	currentUserID string
	methods       []models.PaymentMethod
	mu            sync.RWMutex
}

// NewPaymentStore creates a new instance of PaymentStore.
func NewPaymentStore(store storage.RecordStore) *PaymentStore {
	return &PaymentStore{
		store: store,
	}
}

// InitializeUserData makes the store serve the given user, generating
// starter payment methods for first-time users.
func (s *PaymentStore) InitializeUserData(userID, userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID == userID {
		return
	}

	var methods []models.PaymentMethod
	s.store.Load(storage.KindPayments, userID, &methods)
	if len(methods) == 0 {
		methods = mockdata.PaymentMethods(userID, userName)
		s.store.Save(storage.KindPayments, userID, methods)
	}
	s.methods = methods
	s.currentUserID = userID
}

// AddMethod saves a new payment method, assigning an id when absent.
// A method added as default clears the flag on all others.
func (s *PaymentStore) AddMethod(method models.PaymentMethod) models.PaymentMethod {
	if method.ID == "" {
		method.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if method.IsDefault {
		for i := range s.methods {
			s.methods[i].IsDefault = false
		}
	}
	s.methods = append(s.methods, method)
	s.persist()
	return method
}

// RemoveMethod removes a payment method by id. Removing the default
// leaves no default; no auto-promotion happens.
func (s *PaymentStore) RemoveMethod(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.methods {
		if s.methods[i].ID == id {
			s.methods = append(s.methods[:i], s.methods[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrPaymentMethodNotFound
}

// SetDefault makes exactly the given payment method the default.
func (s *PaymentStore) SetDefault(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.methods {
		if s.methods[i].ID == id {
			found = true
		}
	}
	if !found {
		return ErrPaymentMethodNotFound
	}

	for i := range s.methods {
		s.methods[i].IsDefault = s.methods[i].ID == id
	}
	s.persist()
	return nil
}

// DefaultMethod returns the current default payment method, if any.
func (s *PaymentStore) DefaultMethod() (*models.PaymentMethod, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.methods {
		if s.methods[i].IsDefault {
			method := s.methods[i]
			return &method, true
		}
	}
	return nil, false
}

// Methods returns a copy of the current payment method collection.
func (s *PaymentStore) Methods() []models.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()

	methods := make([]models.PaymentMethod, len(s.methods))
	copy(methods, s.methods)
	return methods
}

// persist must be called with the write lock held.
func (s *PaymentStore) persist() {
	if s.currentUserID == "" {
		return
	}
	s.store.Save(storage.KindPayments, s.currentUserID, s.methods)
}
