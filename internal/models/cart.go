package models

// CartItem is a line item in a user's cart. Adding the same product id
// again merges into the existing line by summing quantities.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// WishlistItem is an entry in a user's wishlist. The wishlist is a set:
// no duplicates and no quantity.
type WishlistItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
