package stores_test

import (
	"testing"

	"shopfront/internal/models"
	"shopfront/internal/storage"
	"shopfront/internal/stores"

	"github.com/stretchr/testify/assert"
)

func countDefaults(addresses []models.SavedAddress) int {
	n := 0
	for _, a := range addresses {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestAddressStoreGeneratesForNewUsers(t *testing.T) {
	addresses := stores.NewAddressStore(storage.NewMemoryStore())
	addresses.InitializeUserData("user_abc", "Jane Doe")

	list := addresses.Addresses()
	assert.GreaterOrEqual(t, len(list), 1)
	assert.LessOrEqual(t, len(list), 3)
	assert.Equal(t, 1, countDefaults(list))
}

func TestSingleDefaultInvariant(t *testing.T) {
	addresses := stores.NewAddressStore(storage.NewMemoryStore())
	addresses.InitializeUserData("user_abc", "Jane Doe")

	a := addresses.AddAddress(models.SavedAddress{Label: "Home", FullName: "Jane Doe", Street: "1 First St", City: "Austin", State: "TX", ZipCode: "73301", IsDefault: true})
	b := addresses.AddAddress(models.SavedAddress{Label: "Work", FullName: "Jane Doe", Street: "2 Second St", City: "Austin", State: "TX", ZipCode: "73301", IsDefault: true})

	// After any sequence of adds, at most one default remains.
	assert.Equal(t, 1, countDefaults(addresses.Addresses()))

	def, ok := addresses.DefaultAddress()
	assert.True(t, ok)
	assert.Equal(t, b.ID, def.ID)

	// SetDefault makes exactly the chosen address default.
	assert.NoError(t, addresses.SetDefault(a.ID))
	assert.Equal(t, 1, countDefaults(addresses.Addresses()))
	def, ok = addresses.DefaultAddress()
	assert.True(t, ok)
	assert.Equal(t, a.ID, def.ID)

	assert.ErrorIs(t, addresses.SetDefault("missing"), stores.ErrAddressNotFound)
}

func TestRemovingDefaultPromotesNothing(t *testing.T) {
	addresses := stores.NewAddressStore(storage.NewMemoryStore())
	addresses.InitializeUserData("user_abc", "Jane Doe")

	def, ok := addresses.DefaultAddress()
	assert.True(t, ok)

	assert.NoError(t, addresses.RemoveAddress(def.ID))

	// Deliberate: the collection now has no default until one is set.
	_, ok = addresses.DefaultAddress()
	assert.False(t, ok, "removing the default must not auto-promote another address")
}

func TestUpdateAddress(t *testing.T) {
	addresses := stores.NewAddressStore(storage.NewMemoryStore())
	addresses.InitializeUserData("user_abc", "Jane Doe")

	list := addresses.Addresses()
	updated := list[0]
	updated.City = "Boulder"
	assert.NoError(t, addresses.UpdateAddress(updated))

	assert.Equal(t, "Boulder", addresses.Addresses()[0].City)
	assert.ErrorIs(t, addresses.UpdateAddress(models.SavedAddress{ID: "missing"}), stores.ErrAddressNotFound)
}

func TestAddressStoreIdempotentReinitialization(t *testing.T) {
	addresses := stores.NewAddressStore(storage.NewMemoryStore())
	addresses.InitializeUserData("user_abc", "Jane Doe")

	added := addresses.AddAddress(models.SavedAddress{Label: "Cabin", FullName: "Jane Doe", Street: "9 Lake Rd", City: "Duluth", State: "MN", ZipCode: "55801"})
	addresses.InitializeUserData("user_abc", "Jane Doe")

	found := false
	for _, a := range addresses.Addresses() {
		if a.ID == added.ID {
			found = true
		}
	}
	assert.True(t, found, "re-init for the same id must not discard the added address")
}

func TestPaymentStoreGeneratesForNewUsers(t *testing.T) {
	payments := stores.NewPaymentStore(storage.NewMemoryStore())
	payments.InitializeUserData("user_abc", "Jane Doe")

	methods := payments.Methods()
	assert.GreaterOrEqual(t, len(methods), 1)
	assert.Equal(t, models.PaymentTypeCard, methods[0].Type)

	def, ok := payments.DefaultMethod()
	assert.True(t, ok)
	assert.Equal(t, methods[0].ID, def.ID)
}

func TestPaymentSingleDefaultInvariant(t *testing.T) {
	payments := stores.NewPaymentStore(storage.NewMemoryStore())
	payments.InitializeUserData("user_abc", "Jane Doe")

	added := payments.AddMethod(models.PaymentMethod{
		Type:       models.PaymentTypeCard,
		CardNumber: "**** **** **** 4242",
		CardHolder: "Jane Doe",
		ExpiryDate: "08/28",
		IsDefault:  true,
	})

	defaults := 0
	for _, m := range payments.Methods() {
		if m.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	def, ok := payments.DefaultMethod()
	assert.True(t, ok)
	assert.Equal(t, added.ID, def.ID)
}

func TestPaymentRemoveDefaultPromotesNothing(t *testing.T) {
	payments := stores.NewPaymentStore(storage.NewMemoryStore())
	payments.InitializeUserData("user_abc", "Jane Doe")

	def, ok := payments.DefaultMethod()
	assert.True(t, ok)
	assert.NoError(t, payments.RemoveMethod(def.ID))

	_, ok = payments.DefaultMethod()
	assert.False(t, ok)

	assert.ErrorIs(t, payments.RemoveMethod("missing"), stores.ErrPaymentMethodNotFound)
}
