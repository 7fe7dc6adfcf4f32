package handlers

import (
	applog "medcatalog/internal/log"
	"medcatalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// HeaderAdminPassword carries the shared admin secret.
const HeaderAdminPassword = "X-Admin-Password"

// RequireAdmin rejects requests whose credential is missing or wrong.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cred := c.Get(HeaderAdminPassword)
		if !auth.IsAuthorized(cred) {
			reason := "mismatch"
			if cred == "" {
				reason = "missing"
			}
			applog.Security(c, "access.denied.admin", map[string]any{"reason": reason})
			return sendError(c, fiber.StatusUnauthorized, "Administrator authentication required", nil)
		}
		c.Locals("admin", true)
		return c.Next()
	}
}

// OptionalAdmin lets anonymous requests through but still rejects a
// credential that is present and wrong.
func OptionalAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cred := c.Get(HeaderAdminPassword)
		if cred == "" {
			return c.Next()
		}
		if !auth.IsAuthorized(cred) {
			applog.Security(c, "access.denied.admin", map[string]any{"reason": "mismatch"})
			return sendError(c, fiber.StatusUnauthorized, "Invalid administrator password", nil)
		}
		c.Locals("admin", true)
		return c.Next()
	}
}
