package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func setCORSHeaders(c *fiber.Ctx) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, "+HeaderAdminPassword)
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET,POST,PUT,DELETE,OPTIONS")
}

// CORS stamps permissive headers on every response and answers API
// pre-flight requests itself, before any authorization.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		setCORSHeaders(c)
		if c.Method() == fiber.MethodOptions && strings.HasPrefix(c.Path(), "/api/") {
			c.Status(fiber.StatusNoContent)
			return nil
		}
		return c.Next()
	}
}
