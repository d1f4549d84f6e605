package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// EventHandler exposes event CRUD.
type EventHandler struct {
	service service.EventService
	logger  zerolog.Logger
}

// NewEventHandler constructs an event handler.
func NewEventHandler(service service.EventService, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With().Str("component", "event_handler").Logger(),
	}
}

// RegisterPublic wires read-only event routes.
func (h *EventHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterProtected wires mutating event routes behind the auth guard.
func (h *EventHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("", auth, h.create)
	router.Put("/:id", auth, h.update)
	router.Delete("/:id", auth, h.delete)
}

func (h *EventHandler) list(c *fiber.Ctx) error {
	upcomingOnly := parseQueryBool(c, "upcoming_only", true)
	limit := parseQueryInt(c, "limit", 0)

	events, err := h.service.List(c.UserContext(), upcomingOnly, limit)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list events")
	}
	return utils.SendSuccess(c, "events retrieved", events)
}

func (h *EventHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	event, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to load event")
	}
	return utils.SendSuccess(c, "event retrieved", event)
}

func (h *EventHandler) create(c *fiber.Ctx) error {
	var payload dto.EventRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid event payload")
	}

	event, err := h.service.Create(c.UserContext(), middleware.AdminID(c), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to create event")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event created", dto.CreatedResponse{ID: event.ID})
}

func (h *EventHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.EventRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid event payload")
	}

	event, err := h.service.Update(c.UserContext(), middleware.AdminID(c), id, payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to update event")
	}
	return utils.SendSuccess(c, "event updated", event)
}

func (h *EventHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.UserContext(), middleware.AdminID(c), id); err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to delete event")
	}
	return utils.SendSuccess(c, "event deleted", nil)
}
