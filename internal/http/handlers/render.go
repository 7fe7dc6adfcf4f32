package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	applog "medcatalog/internal/log"
	"medcatalog/internal/repos"
	"medcatalog/internal/validate"
)

type apiError struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func sendError(c *fiber.Ctx, status int, msg string, fields []string) error {
	return c.Status(status).JSON(apiError{Error: msg, Fields: fields})
}

// fail maps store, body and validation errors to their responses. Anything
// else is returned for the app ErrorHandler to turn into a 500.
func fail(c *fiber.Ctx, err error, notFound string) error {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		applog.Security(c, "validation.fail", map[string]any{"fields": verr.Fields})
		return sendError(c, fiber.StatusBadRequest, "Missing or invalid fields", verr.Fields)
	case errors.Is(err, repos.ErrNotFound):
		return sendError(c, fiber.StatusNotFound, notFound, nil)
	case errors.Is(err, ErrInvalidJSON):
		return sendError(c, fiber.StatusBadRequest, "Invalid JSON", nil)
	case errors.Is(err, ErrPayloadTooLarge):
		return sendError(c, fiber.StatusBadRequest, "Payload too large", nil)
	}
	return err
}

// ErrorHandler is the last stop for every request: transport errors keep their
// status (an oversized body is a 400), everything else becomes a 500 without
// internal detail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	setCORSHeaders(c)
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		// the transport's body limit is reported like any other bad request
		if fe.Code == fiber.StatusRequestEntityTooLarge {
			return sendError(c, fiber.StatusBadRequest, "Payload too large", nil)
		}
		return sendError(c, fe.Code, fe.Message, nil)
	}
	applog.Error(c, "server.error", err, nil)
	return sendError(c, fiber.StatusInternalServerError, "Internal server error", nil)
}

// render shows a page template and falls back to plain text when no view
// engine can render it.
func render(c *fiber.Ctx, status int, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if admin, _ := c.Locals("admin").(bool); admin {
		data["Admin"] = true
	}
	if err := c.Status(status).Render(tmpl, data); err != nil {
		applog.Error(c, "render.fail", err, map[string]any{"template": tmpl})
		msg, _ := data["Message"].(string)
		if msg == "" {
			msg = utils.StatusMessage(status)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(status).SendString(msg)
	}
	return nil
}
