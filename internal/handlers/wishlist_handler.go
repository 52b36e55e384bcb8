package handlers

import (
	"log"

	"shopfront/internal/middleware"
	"shopfront/internal/models"
	"shopfront/internal/stores"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for the active user's wishlist.
type WishlistHandler struct {
	wishlist *stores.WishlistStore
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlist *stores.WishlistStore) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/items", h.HandleAddItem)
	wishlistRoutes.Delete("/items/:id", h.HandleRemoveItem)
}

func (h *WishlistHandler) initialize(c *fiber.Ctx) {
	userID, _ := middleware.CurrentUser(c)
	h.wishlist.InitializeUserData(userID)
}

// HandleGetWishlist returns the wishlist contents.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	h.initialize(c)
	return c.JSON(fiber.Map{
		"items": h.wishlist.Items(),
		"count": h.wishlist.Count(),
	})
}

// HandleAddItem adds an item to the wishlist; duplicates are no-ops.
func (h *WishlistHandler) HandleAddItem(c *fiber.Ctx) error {
	h.initialize(c)

	var item models.WishlistItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing wishlist item body: %v", err)
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

	h.wishlist.AddItem(item)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"items": h.wishlist.Items(),
	})
}

// HandleRemoveItem removes an item from the wishlist.
func (h *WishlistHandler) HandleRemoveItem(c *fiber.Ctx) error {
	h.initialize(c)
	h.wishlist.RemoveItem(c.Params("id"))
	return c.JSON(fiber.Map{
		"items": h.wishlist.Items(),
	})
}
