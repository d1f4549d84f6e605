package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// BotHandler serves the reduced projections consumed by the messaging bot.
type BotHandler struct {
	service service.BotService
	logger  zerolog.Logger
}

// NewBotHandler constructs a bot projection handler.
func NewBotHandler(service service.BotService, logger zerolog.Logger) *BotHandler {
	return &BotHandler{
		service: service,
		logger:  logger.With().Str("component", "bot_handler").Logger(),
	}
}

// Register wires the bot projection routes.
func (h *BotHandler) Register(router fiber.Router) {
	router.Get("/careers", h.careers)
	router.Get("/events", h.events)
	router.Get("/preuniversity", h.programs)
	router.Get("/scholarships", h.scholarships)
	router.Get("/faqs", h.faqs)
	router.Get("/contacts", h.contacts)
	router.Get("/calendar", h.calendar)
	router.Get("/inscriptions", h.inscriptions)
}

func (h *BotHandler) careers(c *fiber.Ctx) error {
	careers, err := h.service.Careers(c.UserContext())
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list careers")
	}
	return utils.SendSuccess(c, "careers retrieved", careers)
}

func (h *BotHandler) events(c *fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 10)
	events, err := h.service.Events(c.UserContext(), limit)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list events")
	}
	return utils.SendSuccess(c, "events retrieved", events)
}

func (h *BotHandler) programs(c *fiber.Ctx) error {
	programs, err := h.service.Programs(c.UserContext())
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list programs")
	}
	return utils.SendSuccess(c, "programs retrieved", programs)
}

func (h *BotHandler) scholarships(c *fiber.Ctx) error {
	scholarships, err := h.service.Scholarships(c.UserContext())
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list scholarships")
	}
	return utils.SendSuccess(c, "scholarships retrieved", scholarships)
}

func (h *BotHandler) faqs(c *fiber.Ctx) error {
	faqs, err := h.service.FAQs(c.UserContext())
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list faqs")
	}
	return utils.SendSuccess(c, "faqs retrieved", faqs)
}

func (h *BotHandler) contacts(c *fiber.Ctx) error {
	contacts, err := h.service.Contacts(c.UserContext())
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list contacts")
	}
	return utils.SendSuccess(c, "contacts retrieved", contacts)
}

func (h *BotHandler) calendar(c *fiber.Ctx) error {
	entries, err := h.service.Calendar(c.UserContext())
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list calendar entries")
	}
	return utils.SendSuccess(c, "calendar entries retrieved", entries)
}

func (h *BotHandler) inscriptions(c *fiber.Ctx) error {
	inscriptions, err := h.service.Inscriptions(c.UserContext())
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list inscriptions")
	}
	return utils.SendSuccess(c, "inscriptions retrieved", inscriptions)
}
