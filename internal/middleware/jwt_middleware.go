package middleware

import (
	"log"
	"strings"

	"shopfront/internal/identity"
	"shopfront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// claimsToLocals copies the identity claims handlers care about into
// the Fiber context.
func claimsToLocals(c *fiber.Ctx, claims map[string]interface{}) {
	c.Locals("user_id", claims["user_id"])
	c.Locals("name", claims["name"])
	c.Locals("email", claims["email"])
}

// AuthRequired is a Fiber middleware that rejects requests without a
// valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		claimsToLocals(c, claims)
		return c.Next()
	}
}

// OptionalAuth resolves the active storefront user for routes guests
// may use. A valid Bearer token yields the account's derived user id;
// anything else falls back to the guest sentinel, which gets its own
// persisted namespace like any user.
func OptionalAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := authService.ValidateToken(parts[1]); err == nil {
				claimsToLocals(c, claims)
				return c.Next()
			}
		}

		c.Locals("user_id", identity.Guest)
		c.Locals("name", "Guest")
		return c.Next()
	}
}

// CurrentUser reads the resolved user id and display name set by
// AuthRequired or OptionalAuth.
func CurrentUser(c *fiber.Ctx) (string, string) {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		userID = identity.Guest
	}
	name, _ := c.Locals("name").(string)
	if name == "" {
		name = "Guest"
	}
	return userID, name
}
