package handlers

import (
	"log"

	"shopfront/internal/middleware"
	"shopfront/internal/models"
	"shopfront/internal/stores"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the active user's cart.
type CartHandler struct {
	cart *stores.CartStore
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *stores.CartStore) *CartHandler {
	return &CartHandler{
		cart: cart,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClear)
}

// initialize resolves the active user and points the store at them.
// Re-entrant calls per request are the lifecycle contract working as
// intended: same-id initialization is a no-op.
func (h *CartHandler) initialize(c *fiber.Ctx) {
	userID, _ := middleware.CurrentUser(c)
	h.cart.InitializeUserData(userID)
}

// HandleGetCart returns the cart contents plus derived totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	h.initialize(c)
	return c.JSON(fiber.Map{
		"items":       h.cart.Items(),
		"total_items": h.cart.TotalItems(),
		"total_price": h.cart.TotalPrice(),
	})
}

// HandleAddItem adds a product to the cart, merging quantities on
// duplicate ids.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	h.initialize(c)

	var item models.CartItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing cart item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if item.ID == "" || item.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Item id and name are required.",
		})
	}

	h.cart.AddItem(item)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"items":       h.cart.Items(),
		"total_items": h.cart.TotalItems(),
	})
}

// HandleUpdateQuantity sets a line item's quantity; zero removes it.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	h.initialize(c)

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	h.cart.UpdateQuantity(c.Params("id"), body.Quantity)
	return c.JSON(fiber.Map{
		"items":       h.cart.Items(),
		"total_items": h.cart.TotalItems(),
	})
}

// HandleRemoveItem removes a line item.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	h.initialize(c)
	h.cart.RemoveItem(c.Params("id"))
	return c.JSON(fiber.Map{
		"items": h.cart.Items(),
	})
}

// HandleClear empties the cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	h.initialize(c)
	h.cart.Clear()
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
