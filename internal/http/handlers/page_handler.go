package handlers

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"medcatalog/internal/domain"
	applog "medcatalog/internal/log"
	"medcatalog/internal/services"
)

type PageHandler struct {
	Catalog *services.CatalogService
}

// GET / renders the public catalog, optionally filtered by ?category=.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	listings, err := h.Catalog.List(c.UserContext())
	if err != nil {
		applog.Error(c, "page.home.fail", err, nil)
	}
	category := strings.TrimSpace(c.Query("category"))
	shown := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if category == "" || l.Category == category {
			shown = append(shown, l)
		}
	}
	// newest first, the way the console shows them
	sort.SliceStable(shown, func(i, j int) bool { return shown[i].CreatedAt > shown[j].CreatedAt })
	return render(c, fiber.StatusOK, "index", fiber.Map{"Listings": shown, "Category": category})
}

// GET /admin
func (h *PageHandler) Admin(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "admin", fiber.Map{"Header": HeaderAdminPassword})
}

// NotFound terminates every unmatched route.
func (h *PageHandler) NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return sendError(c, fiber.StatusNotFound, "Not found", nil)
	}
	return render(c, fiber.StatusNotFound, "notfound", fiber.Map{"Message": "Not Found"})
}
