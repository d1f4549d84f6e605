package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/config"
	"github.com/infoemi/campus-api/internal/handler"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/observability"
	"github.com/infoemi/campus-api/internal/service"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	DB *gorm.DB

	AuthService service.AuthService

	AuthHandler          *handler.AuthHandler
	CareerHandler        *handler.CareerHandler
	EventHandler         *handler.EventHandler
	FAQHandler           *handler.FAQHandler
	ContactHandler       *handler.ContactHandler
	ScholarshipHandler   *handler.ScholarshipHandler
	CalendarHandler      *handler.CalendarHandler
	PreUniversityHandler *handler.PreUniversityHandler
	InscriptionHandler   *handler.InscriptionHandler
	SystemConfigHandler  *handler.SystemConfigHandler
	AuditHandler         *handler.AuditHandler
	ChatHandler          *handler.ChatHandler
	BotHandler           *handler.BotHandler
}

// catalogHandler is implemented by every CRUD handler: public reads plus
// guarded mutations on one prefix.
type catalogHandler interface {
	RegisterPublic(fiber.Router)
	RegisterProtected(fiber.Router, fiber.Handler)
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/health", handler.HealthCheck(cfg.AppName, deps.DB))
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	adminAuth := middleware.AdminAuth(deps.AuthService)

	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterPublic(api, middleware.RateLimit("login", 10, time.Minute))
		deps.AuthHandler.RegisterProtected(api, adminAuth)
	}

	registerCatalog := func(prefix string, h catalogHandler) {
		group := api.Group(prefix)
		h.RegisterPublic(group)
		h.RegisterProtected(group, adminAuth)
	}

	if deps.CareerHandler != nil {
		registerCatalog("/careers", deps.CareerHandler)
	}
	if deps.EventHandler != nil {
		registerCatalog("/events", deps.EventHandler)
	}
	if deps.FAQHandler != nil {
		registerCatalog("/faqs", deps.FAQHandler)
	}
	if deps.ContactHandler != nil {
		registerCatalog("/contacts", deps.ContactHandler)
	}
	if deps.ScholarshipHandler != nil {
		registerCatalog("/scholarships", deps.ScholarshipHandler)
	}
	if deps.CalendarHandler != nil {
		registerCatalog("/calendar", deps.CalendarHandler)
	}
	if deps.PreUniversityHandler != nil {
		registerCatalog("/preuniversity", deps.PreUniversityHandler)
	}
	if deps.InscriptionHandler != nil {
		registerCatalog("/inscriptions", deps.InscriptionHandler)
	}
	if deps.SystemConfigHandler != nil {
		registerCatalog("/config", deps.SystemConfigHandler)
	}

	if deps.AuditHandler != nil {
		deps.AuditHandler.Register(api, adminAuth)
	}

	chatLimiter := middleware.RateLimit("chat", 20, time.Minute)
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterWeb(api, chatLimiter)
	}

	bot := app.Group("/bot")
	if deps.BotHandler != nil {
		deps.BotHandler.Register(bot)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterBot(bot, chatLimiter)
	}
}
