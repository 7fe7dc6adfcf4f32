package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "medcatalog/internal/log"
	"medcatalog/internal/repos"
	"medcatalog/internal/services"
	"medcatalog/internal/validate"
)

const consultationNotFound = "Consultation not found"

type ConsultationHandler struct {
	Consultations *services.ConsultationService
	BodyLimit     int
}

func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	out, err := h.Consultations.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ConsultationHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, repos.ErrNotFound, consultationNotFound)
	}
	cons, err := h.Consultations.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, consultationNotFound)
	}
	return c.JSON(cons)
}

func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	payload, err := parseBody(c, h.BodyLimit)
	if err != nil {
		return fail(c, err, consultationNotFound)
	}
	cons, err := h.Consultations.Create(c.UserContext(), payload)
	if err != nil {
		return fail(c, err, consultationNotFound)
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "consultation.create", map[string]any{"consultation_id": cons.ID})
	return c.JSON(cons)
}

// Update changes status and/or notes only.
func (h *ConsultationHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	payload, err := parseBody(c, h.BodyLimit)
	if err != nil {
		return fail(c, err, consultationNotFound)
	}
	if !ok {
		if _, err := validate.ConsultationUpdate(payload); err != nil {
			return fail(c, err, consultationNotFound)
		}
		return fail(c, repos.ErrNotFound, consultationNotFound)
	}
	cons, err := h.Consultations.Update(c.UserContext(), id, payload)
	if err != nil {
		return fail(c, err, consultationNotFound)
	}
	applog.Audit(c, "consultation.update", map[string]any{"consultation_id": cons.ID, "status": cons.Status})
	return c.JSON(cons)
}

func (h *ConsultationHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, repos.ErrNotFound, consultationNotFound)
	}
	cons, err := h.Consultations.Delete(c.UserContext(), id)
	if err != nil {
		return fail(c, err, consultationNotFound)
	}
	applog.Audit(c, "consultation.delete", map[string]any{"consultation_id": cons.ID})
	return c.JSON(cons)
}

func (h *ConsultationHandler) MissingID(c *fiber.Ctx) error {
	return sendError(c, fiber.StatusBadRequest, "Consultation identifier missing", nil)
}
