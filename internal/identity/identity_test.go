package identity_test

import (
	"strings"
	"testing"

	"shopfront/internal/identity"

	"github.com/stretchr/testify/assert"
)

func TestHashIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, identity.Hash("alice@example.com"), identity.Hash("alice@example.com"))
	}
}

func TestHashIsOrderSensitive(t *testing.T) {
	// Same characters, different order, must not collide.
	assert.NotEqual(t, identity.Hash("ab@example.com"), identity.Hash("ba@example.com"))
}

func TestHashIsNonNegative(t *testing.T) {
	inputs := []string{"", "a", "alice@example.com", "zzzzzzzzzzzzzzzzzzzz@example.com", "日本語@example.com"}
	for _, in := range inputs {
		assert.GreaterOrEqual(t, identity.Hash(in), int64(0), "input %q", in)
	}
}

func TestUserIDFormat(t *testing.T) {
	id := identity.UserID("alice@example.com")
	assert.True(t, strings.HasPrefix(id, identity.Prefix))

	frag := strings.TrimPrefix(id, identity.Prefix)
	assert.NotEmpty(t, frag)
	for _, r := range frag {
		isAlnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z')
		assert.True(t, isAlnum, "fragment %q contains non-alphanumeric %q", frag, r)
	}
}

func TestSeedForRoundTrips(t *testing.T) {
	email := "bob@example.com"
	assert.Equal(t, identity.Hash(email), identity.SeedFor(identity.UserID(email)))
}

func TestSeedForGuestIsStable(t *testing.T) {
	// The guest sentinel is not a derived id, but it still needs a
	// stable seed of its own.
	assert.Equal(t, identity.SeedFor(identity.Guest), identity.SeedFor(identity.Guest))

	// Empty email still yields a usable id and seed.
	assert.GreaterOrEqual(t, identity.SeedFor(identity.UserID("")), int64(0))
}
