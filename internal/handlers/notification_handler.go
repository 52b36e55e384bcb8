package handlers

import (
	"shopfront/internal/middleware"
	"shopfront/internal/stores"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles HTTP requests for the notification feed.
type NotificationHandler struct {
	notifications *stores.NotificationStore
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications *stores.NotificationStore) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterRoutes registers the notification routes with the Fiber app.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Get("/", h.HandleGetNotifications)
	notificationRoutes.Post("/read-all", h.HandleMarkAllAsRead)
	notificationRoutes.Post("/:id/read", h.HandleMarkAsRead)
}

func (h *NotificationHandler) initialize(c *fiber.Ctx) {
	userID, _ := middleware.CurrentUser(c)
	h.notifications.InitializeUserData(userID)
}

// HandleGetNotifications returns the feed, newest first, with the
// unread count alongside.
func (h *NotificationHandler) HandleGetNotifications(c *fiber.Ctx) error {
	h.initialize(c)
	return c.JSON(fiber.Map{
		"notifications": h.notifications.Notifications(),
		"unread_count":  h.notifications.UnreadCount(),
	})
}

// HandleMarkAsRead marks a single notification as read.
func (h *NotificationHandler) HandleMarkAsRead(c *fiber.Ctx) error {
	h.initialize(c)

	h.notifications.MarkAsRead(c.Params("id"))
	return c.JSON(fiber.Map{
		"unread_count": h.notifications.UnreadCount(),
	})
}

// HandleMarkAllAsRead marks every notification in the feed as read.
func (h *NotificationHandler) HandleMarkAllAsRead(c *fiber.Ctx) error {
	h.initialize(c)

	h.notifications.MarkAllAsRead()
	return c.JSON(fiber.Map{
		"unread_count": h.notifications.UnreadCount(),
	})
}
