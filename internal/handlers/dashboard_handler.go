package handlers

import (
	"shopfront/internal/middleware"
	"shopfront/internal/mockdata"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles HTTP requests for the account dashboard.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard/spending", h.HandleGetSpending)
}

// HandleGetSpending returns the rolling twelve-month spending chart for
// the active user. The series is synthesized per user and stable for
// repeat requests within the same month.
func (h *DashboardHandler) HandleGetSpending(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUser(c)
	return c.JSON(mockdata.SpendingAnalytics(userID))
}
