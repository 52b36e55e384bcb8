package repositories

import "shopfront/internal/models"

// AccountRepository defines the interface for demo account data access.
// Lookups are keyed by email through an index, not a scan over a flat
// account list.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByEmail(email string) (*models.Account, error)
	GetByID(id string) (*models.Account, error)
}
