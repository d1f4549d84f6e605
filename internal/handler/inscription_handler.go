package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// InscriptionHandler exposes enrollment window CRUD.
type InscriptionHandler struct {
	service service.InscriptionService
	logger  zerolog.Logger
}

// NewInscriptionHandler constructs an inscription handler.
func NewInscriptionHandler(service service.InscriptionService, logger zerolog.Logger) *InscriptionHandler {
	return &InscriptionHandler{
		service: service,
		logger:  logger.With().Str("component", "inscription_handler").Logger(),
	}
}

// RegisterPublic wires read-only inscription routes.
func (h *InscriptionHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterProtected wires mutating inscription routes behind the auth guard.
func (h *InscriptionHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("", auth, h.create)
	router.Put("/:id", auth, h.update)
	router.Delete("/:id", auth, h.delete)
}

func (h *InscriptionHandler) list(c *fiber.Ctx) error {
	activeOnly := parseQueryBool(c, "active_only", true)
	inscriptions, err := h.service.List(c.UserContext(), activeOnly)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list inscriptions")
	}
	return utils.SendSuccess(c, "inscriptions retrieved", inscriptions)
}

func (h *InscriptionHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	inscription, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to load inscription")
	}
	return utils.SendSuccess(c, "inscription retrieved", inscription)
}

func (h *InscriptionHandler) create(c *fiber.Ctx) error {
	var payload dto.InscriptionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid inscription payload")
	}

	inscription, err := h.service.Create(c.UserContext(), middleware.AdminID(c), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to create inscription")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "inscription created", dto.CreatedResponse{ID: inscription.ID})
}

func (h *InscriptionHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.InscriptionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid inscription payload")
	}

	inscription, err := h.service.Update(c.UserContext(), middleware.AdminID(c), id, payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to update inscription")
	}
	return utils.SendSuccess(c, "inscription updated", inscription)
}

func (h *InscriptionHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.UserContext(), middleware.AdminID(c), id); err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to delete inscription")
	}
	return utils.SendSuccess(c, "inscription deleted", nil)
}
