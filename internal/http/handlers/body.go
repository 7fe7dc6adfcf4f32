package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrInvalidJSON     = errors.New("invalid JSON")
)

// parseBody decodes the request body as untyped JSON. An empty body is an
// empty object.
func parseBody(c *fiber.Ctx, limit int) (any, error) {
	raw := c.Body()
	if limit > 0 && len(raw) > limit {
		c.Context().SetConnectionClose()
		return nil, ErrPayloadTooLarge
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, ErrInvalidJSON
	}
	return v, nil
}
