package handlers

import (
	"log"

	"shopfront/internal/middleware"
	"shopfront/internal/services"
	"shopfront/internal/stores"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order history and checkout.
type OrderHandler struct {
	orders        *stores.OrderStore
	cart          *stores.CartStore
	notifications *stores.NotificationStore
	checkout      *services.CheckoutService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *stores.OrderStore, cart *stores.CartStore, notifications *stores.NotificationStore, checkout *services.CheckoutService) *OrderHandler {
	return &OrderHandler{
		orders:        orders,
		cart:          cart,
		notifications: notifications,
		checkout:      checkout,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/:id/cancel", h.HandleCancelOrder)
	router.Post("/checkout", h.HandleCheckout)
}

func (h *OrderHandler) initialize(c *fiber.Ctx) (string, string) {
	userID, name := middleware.CurrentUser(c)
	h.orders.InitializeUserData(userID, name)
	return userID, name
}

// HandleGetOrders retrieves the active user's order history, newest
// first. First-time users receive their synthesized demo history.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	h.initialize(c)
	return c.JSON(h.orders.Orders())
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	h.initialize(c)

	order, err := h.orders.OrderByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	}
	return c.JSON(order)
}

// HandleCancelOrder cancels a processing order. Cancelled is terminal.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	h.initialize(c)

	orderID := c.Params("id")
	err := h.orders.CancelOrder(orderID)
	switch err {
	case nil:
		return c.JSON(fiber.Map{
			"message": "Order cancelled",
		})
	case stores.ErrOrderNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	default:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Order cannot be cancelled",
			"error":   err.Error(),
		})
	}
}

// HandleCheckout validates the checkout form and places an order from
// the current cart. Validation failures block before the simulated
// payment delay and never create a partial order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	userID, _ := h.initialize(c)
	h.cart.InitializeUserData(userID)
	h.notifications.InitializeUserData(userID)

	var form services.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing checkout form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.checkout.PlaceOrder(userID, form)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  validationErrorMap(err),
			})
		}
		if err == services.ErrEmptyCart {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cart is empty",
			})
		}
		log.Printf("Error placing order for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}
