package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// ContactHandler exposes departmental contact CRUD.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// RegisterPublic wires read-only contact routes.
func (h *ContactHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterProtected wires mutating contact routes behind the auth guard.
func (h *ContactHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("", auth, h.create)
	router.Put("/:id", auth, h.update)
	router.Delete("/:id", auth, h.delete)
}

func (h *ContactHandler) list(c *fiber.Ctx) error {
	activeOnly := parseQueryBool(c, "active_only", true)
	contacts, err := h.service.List(c.UserContext(), activeOnly)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list contacts")
	}
	return utils.SendSuccess(c, "contacts retrieved", contacts)
}

func (h *ContactHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	contact, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to load contact")
	}
	return utils.SendSuccess(c, "contact retrieved", contact)
}

func (h *ContactHandler) create(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid contact payload")
	}

	contact, err := h.service.Create(c.UserContext(), middleware.AdminID(c), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to create contact")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "contact created", dto.CreatedResponse{ID: contact.ID})
}

func (h *ContactHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid contact payload")
	}

	contact, err := h.service.Update(c.UserContext(), middleware.AdminID(c), id, payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to update contact")
	}
	return utils.SendSuccess(c, "contact updated", contact)
}

func (h *ContactHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.UserContext(), middleware.AdminID(c), id); err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to delete contact")
	}
	return utils.SendSuccess(c, "contact deleted", nil)
}
