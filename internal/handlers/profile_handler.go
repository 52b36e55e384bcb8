package handlers

import (
	"log"

	"shopfront/internal/middleware"
	"shopfront/internal/models"
	"shopfront/internal/stores"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles HTTP requests for saved addresses and payment
// methods. These routes sit behind the auth middleware; guests have no
// profile book.
type ProfileHandler struct {
	addresses *stores.AddressStore
	payments  *stores.PaymentStore
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(addresses *stores.AddressStore, payments *stores.PaymentStore) *ProfileHandler {
	return &ProfileHandler{
		addresses: addresses,
		payments:  payments,
	}
}

// RegisterRoutes registers the profile routes with the Fiber app.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	addressRoutes := router.Group("/profile/addresses")
	addressRoutes.Get("/", h.HandleGetAddresses)
	addressRoutes.Post("/", h.HandleAddAddress)
	addressRoutes.Put("/:id", h.HandleUpdateAddress)
	addressRoutes.Delete("/:id", h.HandleRemoveAddress)
	addressRoutes.Post("/:id/default", h.HandleSetDefaultAddress)

	paymentRoutes := router.Group("/profile/payment-methods")
	paymentRoutes.Get("/", h.HandleGetPaymentMethods)
	paymentRoutes.Post("/", h.HandleAddPaymentMethod)
	paymentRoutes.Delete("/:id", h.HandleRemovePaymentMethod)
	paymentRoutes.Post("/:id/default", h.HandleSetDefaultPaymentMethod)
}

func (h *ProfileHandler) initialize(c *fiber.Ctx) {
	userID, name := middleware.CurrentUser(c)
	h.addresses.InitializeUserData(userID, name)
	h.payments.InitializeUserData(userID, name)
}

// HandleGetAddresses returns the user's saved addresses.
func (h *ProfileHandler) HandleGetAddresses(c *fiber.Ctx) error {
	h.initialize(c)
	return c.JSON(h.addresses.Addresses())
}

// HandleAddAddress saves a new address. A new address marked default
// displaces the previous default.
func (h *ProfileHandler) HandleAddAddress(c *fiber.Ctx) error {
	h.initialize(c)

	var address models.SavedAddress
	if err := c.BodyParser(&address); err != nil {
		log.Printf("Error parsing address: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	saved := h.addresses.AddAddress(address)
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// HandleUpdateAddress replaces an existing address in place.
func (h *ProfileHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	h.initialize(c)

	var address models.SavedAddress
	if err := c.BodyParser(&address); err != nil {
		log.Printf("Error parsing address: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	address.ID = c.Params("id")

	if err := h.addresses.UpdateAddress(address); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Address not found",
		})
	}
	return c.JSON(address)
}

// HandleRemoveAddress deletes an address. Removing the default leaves
// the book with no default until one is chosen.
func (h *ProfileHandler) HandleRemoveAddress(c *fiber.Ctx) error {
	h.initialize(c)

	if err := h.addresses.RemoveAddress(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Address not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Address removed",
	})
}

// HandleSetDefaultAddress marks one address as the default.
func (h *ProfileHandler) HandleSetDefaultAddress(c *fiber.Ctx) error {
	h.initialize(c)

	if err := h.addresses.SetDefault(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Address not found",
		})
	}
	return c.JSON(h.addresses.Addresses())
}

// HandleGetPaymentMethods returns the user's saved payment methods.
func (h *ProfileHandler) HandleGetPaymentMethods(c *fiber.Ctx) error {
	h.initialize(c)
	return c.JSON(h.payments.Methods())
}

// HandleAddPaymentMethod saves a new card or UPI handle.
func (h *ProfileHandler) HandleAddPaymentMethod(c *fiber.Ctx) error {
	h.initialize(c)

	var method models.PaymentMethod
	if err := c.BodyParser(&method); err != nil {
		log.Printf("Error parsing payment method: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	saved := h.payments.AddMethod(method)
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// HandleRemovePaymentMethod deletes a payment method.
func (h *ProfileHandler) HandleRemovePaymentMethod(c *fiber.Ctx) error {
	h.initialize(c)

	if err := h.payments.RemoveMethod(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Payment method not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Payment method removed",
	})
}

// HandleSetDefaultPaymentMethod marks one payment method as the default.
func (h *ProfileHandler) HandleSetDefaultPaymentMethod(c *fiber.Ctx) error {
	h.initialize(c)

	if err := h.payments.SetDefault(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Payment method not found",
		})
	}
	return c.JSON(h.payments.Methods())
}
