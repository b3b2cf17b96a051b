package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "currimon_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validates role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocUserRole).(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles keeps route definitions clean
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
