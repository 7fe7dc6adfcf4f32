package handlers_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"medcatalog/internal/http/handlers"
)

// Unhandled failures become a generic 500 with no internal detail.
func TestErrorHandlerHidesInternals(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(recover.New())
	app.Use(requestid.New())

	app.Get("/err", func(c *fiber.Ctx) error {
		return errors.New("write data/listings.json: disk quota exceeded")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("secret trace")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	for _, path := range []string{"/err", "/panic"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("test request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusInternalServerError {
			t.Fatalf("%s: expected 500, got %d", path, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		s := string(body)
		if !strings.Contains(s, "Internal server error") {
			t.Fatalf("%s: generic message missing; body=%s", path, s)
		}
		if strings.Contains(s, "quota") || strings.Contains(s, "secret") {
			t.Fatalf("%s: internal details leaked; body=%s", path, s)
		}
		if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("%s: CORS header missing on error", path)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusTeapot {
		t.Fatalf("client errors keep their status, got %d", resp.StatusCode)
	}
}
