package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medicore/hospital-backend/models"
)

// RequireRole rejects callers whose role is outside the allowed set. The role
// comes from the verified JWT claim that Protected() placed in locals, so no
// extra lookup is needed per request.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}

		if !models.Role(role).OneOf(allowed...) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to perform this action",
			})
		}

		return c.Next()
	}
}
