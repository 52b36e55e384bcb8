package models

import "time"

// OrderStatus is the persisted lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// OrderItem represents a single item within an order.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // Price at the time of order
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Order represents a customer order, either placed at checkout or
// synthesized as demo history on first login.
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	Date            time.Time   `json:"date"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
}
