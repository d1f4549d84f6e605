package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// CalendarHandler exposes academic calendar CRUD.
type CalendarHandler struct {
	service service.CalendarService
	logger  zerolog.Logger
}

// NewCalendarHandler constructs a calendar handler.
func NewCalendarHandler(service service.CalendarService, logger zerolog.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		logger:  logger.With().Str("component", "calendar_handler").Logger(),
	}
}

// RegisterPublic wires read-only calendar routes.
func (h *CalendarHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterProtected wires mutating calendar routes behind the auth guard.
func (h *CalendarHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("", auth, h.create)
	router.Put("/:id", auth, h.update)
	router.Delete("/:id", auth, h.delete)
}

func (h *CalendarHandler) list(c *fiber.Ctx) error {
	activeOnly := parseQueryBool(c, "active_only", true)
	entries, err := h.service.List(c.UserContext(), activeOnly)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list calendar entries")
	}
	return utils.SendSuccess(c, "calendar entries retrieved", entries)
}

func (h *CalendarHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	entry, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to load calendar entry")
	}
	return utils.SendSuccess(c, "calendar entry retrieved", entry)
}

func (h *CalendarHandler) create(c *fiber.Ctx) error {
	var payload dto.CalendarEntryRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid calendar payload")
	}

	entry, err := h.service.Create(c.UserContext(), middleware.AdminID(c), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to create calendar entry")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "calendar entry created", dto.CreatedResponse{ID: entry.ID})
}

func (h *CalendarHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.CalendarEntryRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid calendar payload")
	}

	entry, err := h.service.Update(c.UserContext(), middleware.AdminID(c), id, payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to update calendar entry")
	}
	return utils.SendSuccess(c, "calendar entry updated", entry)
}

func (h *CalendarHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.UserContext(), middleware.AdminID(c), id); err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to delete calendar entry")
	}
	return utils.SendSuccess(c, "calendar entry deleted", nil)
}
