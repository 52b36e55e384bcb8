package models

// SavedAddress is a shipping address saved to a user's profile.
// At most one address in a user's collection may be the default.
type SavedAddress struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	FullName  string `json:"full_name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	IsDefault bool   `json:"is_default"`
}

// PaymentMethodType distinguishes saved payment method kinds.
type PaymentMethodType string

const (
	PaymentTypeCard PaymentMethodType = "card"
	PaymentTypeUPI  PaymentMethodType = "upi"
)

// PaymentMethod is a saved payment method. Card numbers are stored
// masked; only the last four digits are ever present.
type PaymentMethod struct {
	ID         string            `json:"id"`
	Type       PaymentMethodType `json:"type"`
	CardNumber string            `json:"card_number,omitempty"`
	CardHolder string            `json:"card_holder,omitempty"`
	ExpiryDate string            `json:"expiry_date,omitempty"`
	UPIID      string            `json:"upi_id,omitempty"`
	IsDefault  bool              `json:"is_default"`
}
