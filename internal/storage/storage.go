// Package storage is the per-user persistence layer: namespaced
// key-value storage for JSON-serialized per-user collections. It is a
// best-effort cache, not a durable source of truth: read failures and
// corrupt payloads degrade to an empty collection, and write failures
// are swallowed. Errors never cross this boundary.
package storage

// Kind identifies an entity collection and doubles as the key prefix,
// so collections never collide across users or entity kinds.
type Kind string

const (
	KindCart          Kind = "cart"
	KindWishlist      Kind = "wishlist"
	KindOrders        Kind = "orders"
	KindAddresses     Kind = "addresses"
	KindPayments      Kind = "payments"
	KindNotifications Kind = "notifications"
)

// Key builds the namespaced storage key for a collection.
func Key(kind Kind, userID string) string {
	return string(kind) + "_" + userID
}

// RecordStore is the pluggable persistence port the user-scoped stores
// write through. Load unmarshals the previously saved collection into
// out (a pointer to a slice) and leaves it untouched on any failure, so
// a corrupt record degrades to "no data". Save serializes the full
// collection under the namespaced key, overwriting any prior value.
type RecordStore interface {
	Load(kind Kind, userID string, out interface{})
	Save(kind Kind, userID string, collection interface{})
}
