package mockdata

import (
	"fmt"
	"strings"

	"shopfront/internal/identity"
	"shopfront/internal/models"
	"shopfront/internal/seeded"
)

const (
	addressStride = 31
	paymentOffset = 9000
)

// Addresses deterministically synthesizes 1-3 saved addresses for a
// user. Labels cycle through the fixed label pool and the first address
// is the default.
func Addresses(userID, userName string) []models.SavedAddress {
	seed := identity.SeedFor(userID) + 500
	count := seeded.IntBetween(seed, 1, 3)

	addresses := make([]models.SavedAddress, 0, count)
	for i := 0; i < count; i++ {
		as := seed + int64(i)*addressStride
		addr := addressPool[seeded.Index(as+1, len(addressPool))]

		addresses = append(addresses, models.SavedAddress{
			ID:        fmt.Sprintf("addr-%d-%d", seed, i),
			Label:     addressLabels[i%len(addressLabels)],
			FullName:  userName,
			Street:    addr.Street,
			City:      addr.City,
			State:     addr.State,
			ZipCode:   addr.ZipCode,
			IsDefault: i == 0,
		})
	}
	return addresses
}

// PaymentMethods deterministically synthesizes a user's saved payment
// methods: always one masked default card, plus a second UPI method
// with roughly even odds.
func PaymentMethods(userID, userName string) []models.PaymentMethod {
	seed := identity.SeedFor(userID) + paymentOffset

	lastFour := seeded.IntBetween(seed+1, 1000, 9999)
	month := seeded.IntBetween(seed+2, 1, 12)
	year := seeded.IntBetween(seed+3, 25, 29)

	methods := []models.PaymentMethod{
		{
			ID:         fmt.Sprintf("pay-%d-1", seed),
			Type:       models.PaymentTypeCard,
			CardNumber: fmt.Sprintf("**** **** **** %04d", lastFour),
			CardHolder: userName,
			ExpiryDate: fmt.Sprintf("%02d/%02d", month, year),
			IsDefault:  true,
		},
	}

	if seeded.Chance(seed+4, 0.5) {
		methods = append(methods, models.PaymentMethod{
			ID:        fmt.Sprintf("pay-%d-2", seed),
			Type:      models.PaymentTypeUPI,
			UPIID:     upiHandle(userName) + "@okbank",
			IsDefault: false,
		})
	}
	return methods
}

// upiHandle lowercases the first name token; empty names still get a
// usable handle.
func upiHandle(userName string) string {
	fields := strings.Fields(strings.ToLower(userName))
	if len(fields) == 0 {
		return "shopper"
	}
	return fields[0]
}
