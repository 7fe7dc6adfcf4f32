package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "medcatalog/internal/log"
	"medcatalog/internal/repos"
	"medcatalog/internal/services"
	"medcatalog/internal/validate"
)

const listingNotFound = "Listing not found"

type ListingHandler struct {
	Catalog   *services.CatalogService
	BodyLimit int
}

// GET /api/listings
func (h *ListingHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/listings/:id
func (h *ListingHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, repos.ErrNotFound, listingNotFound)
	}
	l, err := h.Catalog.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, listingNotFound)
	}
	return c.JSON(l)
}

// POST /api/listings
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	payload, err := parseBody(c, h.BodyLimit)
	if err != nil {
		return fail(c, err, listingNotFound)
	}
	l, err := h.Catalog.Create(c.UserContext(), payload)
	if err != nil {
		return fail(c, err, listingNotFound)
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "listing.create", map[string]any{"listing_id": l.ID})
	return c.JSON(l)
}

// PUT /api/listings/:id
func (h *ListingHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	payload, err := parseBody(c, h.BodyLimit)
	if err != nil {
		return fail(c, err, listingNotFound)
	}
	if !ok {
		// still validate first so a bad payload reports its fields
		if _, err := validate.Listing(payload); err != nil {
			return fail(c, err, listingNotFound)
		}
		return fail(c, repos.ErrNotFound, listingNotFound)
	}
	l, err := h.Catalog.Update(c.UserContext(), id, payload)
	if err != nil {
		return fail(c, err, listingNotFound)
	}
	applog.Audit(c, "listing.update", map[string]any{"listing_id": l.ID})
	return c.JSON(l)
}

// DELETE /api/listings/:id
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, repos.ErrNotFound, listingNotFound)
	}
	l, err := h.Catalog.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err, listingNotFound)
	}
	applog.Audit(c, "listing.delete", map[string]any{"listing_id": l.ID})
	return c.JSON(l)
}

// PUT/DELETE /api/listings/ without an id
func (h *ListingHandler) MissingID(c *fiber.Ctx) error {
	return sendError(c, fiber.StatusBadRequest, "Listing identifier missing", nil)
}
