package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRoles allows the request through when the authenticated role is in roles.
func OnlyRoles(forbiddenMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "unauthorized: missing role information",
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		if forbiddenMessage == "" {
			forbiddenMessage = "forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": forbiddenMessage,
		})
	}
}
