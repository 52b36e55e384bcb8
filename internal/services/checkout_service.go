package services

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"shopfront/internal/models"
	"shopfront/internal/stores"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in
// the cart.
var ErrEmptyCart = fmt.Errorf("cart is empty")

// OrderEventPublisher publishes order lifecycle events. A nil publisher
// disables events; *events.Client satisfies this.
type OrderEventPublisher interface {
	PublishOrderPlaced(event map[string]interface{}) error
}

// CheckoutForm is the payment/shipping form submitted at checkout.
// Validation failures block checkout before the simulated payment timer
// starts; no partial order is ever created.
type CheckoutForm struct {
	FullName   string `json:"full_name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Street     string `json:"street" validate:"required,min=3,max=120"`
	City       string `json:"city" validate:"required,min=2,max=60"`
	State      string `json:"state" validate:"required,min=2,max=40"`
	ZipCode    string `json:"zip_code" validate:"required,len=5,numeric"`
	CardNumber string `json:"card_number" validate:"required,min=12,max=19,numeric"`
	ExpiryDate string `json:"expiry_date" validate:"required,len=5"`
	CVV        string `json:"cvv" validate:"required,min=3,max=4,numeric"`
}

// CheckoutService places orders: it validates the form, simulates the
// payment delay, turns the cart into an order, and notifies. There is
// no real payment protocol behind it.
type CheckoutService struct {
	cart          *stores.CartStore
	orders        *stores.OrderStore
	notifications *stores.NotificationStore
	publisher     OrderEventPublisher
	validate      *validator.Validate
	paymentDelay  time.Duration
}

// NewCheckoutService creates a new CheckoutService. publisher may be
// nil when event publishing is disabled.
func NewCheckoutService(cart *stores.CartStore, orders *stores.OrderStore, notifications *stores.NotificationStore, publisher OrderEventPublisher, paymentDelay time.Duration) *CheckoutService {
	return &CheckoutService{
		cart:          cart,
		orders:        orders,
		notifications: notifications,
		publisher:     publisher,
		validate:      validator.New(),
		paymentDelay:  paymentDelay,
	}
}

// PlaceOrder runs the simulated checkout for the active user. The
// returned error is validator.ValidationErrors for form problems,
// ErrEmptyCart for an empty cart, nil on success.
func (s *CheckoutService) PlaceOrder(userID string, form CheckoutForm) (*models.Order, error) {
	// Validation happens synchronously, before the payment timer.
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}

	cartItems := s.cart.Items()
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	// Fixed-delay payment simulation, purely for pacing.
	time.Sleep(s.paymentDelay)

	items := make([]models.OrderItem, 0, len(cartItems))
	var total float64
	for _, item := range cartItems {
		items = append(items, models.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Image:    item.Image,
		})
		total += item.Price * float64(item.Quantity)
	}

	id := uuid.New().String()
	order := models.Order{
		ID:          id,
		OrderNumber: "ORD-" + strings.ToUpper(id[:8]),
		Date:        time.Now(),
		Total:       math.Round(total*100) / 100,
		Status:      models.OrderStatusProcessing,
		Items:       items,
		ShippingAddress: fmt.Sprintf("%s, %s, %s %s",
			form.Street, form.City, form.State, form.ZipCode),
	}

	s.orders.AddOrder(order)
	s.cart.Clear()

	s.notifications.Add(models.Notification{
		ID:      "notif-" + id,
		Type:    models.NotificationTypeOrder,
		Title:   "Order confirmed",
		Message: fmt.Sprintf("Your order %s has been confirmed and is being prepared.", order.OrderNumber),
		Date:    order.Date,
		Read:    false,
	})

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID":     order.ID,
			"orderNumber": order.OrderNumber,
			"userID":      userID,
			"status":      order.Status,
			"total":       order.Total,
		}
		if err := s.publisher.PublishOrderPlaced(event); err != nil {
			log.Printf("Warning: Failed to publish order placed event for order %s: %v", order.ID, err)
		}
	}

	return &order, nil
}
