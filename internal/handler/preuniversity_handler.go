package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// PreUniversityHandler exposes preparatory program CRUD.
type PreUniversityHandler struct {
	service service.PreUniversityService
	logger  zerolog.Logger
}

// NewPreUniversityHandler constructs a preparatory program handler.
func NewPreUniversityHandler(service service.PreUniversityService, logger zerolog.Logger) *PreUniversityHandler {
	return &PreUniversityHandler{
		service: service,
		logger:  logger.With().Str("component", "preuniversity_handler").Logger(),
	}
}

// RegisterPublic wires read-only program routes.
func (h *PreUniversityHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterProtected wires mutating program routes behind the auth guard.
func (h *PreUniversityHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("", auth, h.create)
	router.Put("/:id", auth, h.update)
	router.Delete("/:id", auth, h.delete)
}

func (h *PreUniversityHandler) list(c *fiber.Ctx) error {
	activeOnly := parseQueryBool(c, "active_only", true)
	programs, err := h.service.List(c.UserContext(), activeOnly)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list programs")
	}
	return utils.SendSuccess(c, "programs retrieved", programs)
}

func (h *PreUniversityHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	program, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to load program")
	}
	return utils.SendSuccess(c, "program retrieved", program)
}

func (h *PreUniversityHandler) create(c *fiber.Ctx) error {
	var payload dto.PreUniversityRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid program payload")
	}

	program, err := h.service.Create(c.UserContext(), middleware.AdminID(c), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to create program")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "program created", dto.CreatedResponse{ID: program.ID})
}

func (h *PreUniversityHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.PreUniversityRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid program payload")
	}

	program, err := h.service.Update(c.UserContext(), middleware.AdminID(c), id, payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to update program")
	}
	return utils.SendSuccess(c, "program updated", program)
}

func (h *PreUniversityHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.UserContext(), middleware.AdminID(c), id); err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to delete program")
	}
	return utils.SendSuccess(c, "program deleted", nil)
}
