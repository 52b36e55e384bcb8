// Package identity derives stable storefront user identifiers from
// email addresses. The derived id doubles as the seed source for every
// per-user mock data generator, so the hash must be deterministic and
// order-sensitive over the input characters. It is NOT a security
// primitive; collisions merely mean two demo users share history.
package identity

import (
	"strconv"
	"strings"
)

// Prefix is prepended to the hash fragment to form a user id.
const Prefix = "user_"

// Guest is the sentinel id used when no authenticated session exists.
const Guest = "guest"

// Hash computes a deterministic non-negative integer from an email
// address using a 31-polynomial rolling hash with 32-bit wraparound.
func Hash(email string) int64 {
	var h int32
	for _, r := range email {
		h = h*31 + r
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// UserID derives the storefront user id for an email address. The hash
// is rendered in base 36 so the id is safe as a storage key fragment.
func UserID(email string) string {
	return Prefix + strconv.FormatInt(Hash(email), 36)
}

// SeedFor recovers the integer seed from a user id. For ids produced by
// UserID this parses the base36 fragment back out, so the seed is fully
// recoverable from the stored id alone. Ids that do not carry a parsable
// base36 fragment fall back to hashing the id string itself, which keeps
// SeedFor total over arbitrary input (the guest sentinel happens to
// parse as base36, giving guests a stable seed of their own).
func SeedFor(userID string) int64 {
	frag := strings.TrimPrefix(userID, Prefix)
	seed, err := strconv.ParseInt(frag, 36, 64)
	if err != nil || seed < 0 {
		return Hash(userID)
	}
	return seed
}
