package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"medcatalog/internal/config"
	applog "medcatalog/internal/log"
)

// NewApp wires middleware and routes. views may be nil, in which case pages
// degrade to plain text.
func NewApp(cfg config.Config, d *Deps, views fiber.Views) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:                 views,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{Output: log.Writer()}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(CORS())

	// ---------- API ----------
	api := app.Group("/api")
	api.Use(limiter.New(limiter.Config{
		Max:        cfg.WriteRateLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			m := c.Method()
			return m == fiber.MethodGet || m == fiber.MethodHead || m == fiber.MethodOptions
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.write.hit", nil)
			return sendError(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon", nil)
		},
	}))

	admin := RequireAdmin(d.Auth)
	lh := d.ListingHandler
	api.Get("/listings", OptionalAdmin(d.Auth), lh.List)
	api.Get("/listings/:id", OptionalAdmin(d.Auth), lh.Get)
	api.Post("/listings", admin, lh.Create)
	api.Put("/listings/:id", admin, lh.Update)
	api.Delete("/listings/:id", admin, lh.Delete)
	api.Put("/listings", admin, lh.MissingID)
	api.Delete("/listings", admin, lh.MissingID)

	ch := d.ConsultationHandler
	consultations := api.Group("/consultations", admin)
	consultations.Get("/", ch.List)
	consultations.Get("/:id", ch.Get)
	consultations.Post("/", ch.Create)
	consultations.Put("/:id", ch.Update)
	consultations.Delete("/:id", ch.Delete)
	consultations.Put("/", ch.MissingID)
	consultations.Delete("/", ch.MissingID)

	// ---------- Pages & static ----------
	ph := d.PageHandler
	app.Get("/", ph.Home)
	app.Get("/admin", ph.Admin)
	app.Static("/assets", cfg.StaticDir)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	// 404
	app.Use(ph.NotFound)
	return app
}
