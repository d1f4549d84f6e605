package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// ScholarshipHandler exposes scholarship CRUD.
type ScholarshipHandler struct {
	service service.ScholarshipService
	logger  zerolog.Logger
}

// NewScholarshipHandler constructs a scholarship handler.
func NewScholarshipHandler(service service.ScholarshipService, logger zerolog.Logger) *ScholarshipHandler {
	return &ScholarshipHandler{
		service: service,
		logger:  logger.With().Str("component", "scholarship_handler").Logger(),
	}
}

// RegisterPublic wires read-only scholarship routes.
func (h *ScholarshipHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterProtected wires mutating scholarship routes behind the auth guard.
func (h *ScholarshipHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("", auth, h.create)
	router.Put("/:id", auth, h.update)
	router.Delete("/:id", auth, h.delete)
}

func (h *ScholarshipHandler) list(c *fiber.Ctx) error {
	activeOnly := parseQueryBool(c, "active_only", true)
	scholarships, err := h.service.List(c.UserContext(), activeOnly)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list scholarships")
	}
	return utils.SendSuccess(c, "scholarships retrieved", scholarships)
}

func (h *ScholarshipHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	scholarship, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to load scholarship")
	}
	return utils.SendSuccess(c, "scholarship retrieved", scholarship)
}

func (h *ScholarshipHandler) create(c *fiber.Ctx) error {
	var payload dto.ScholarshipRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid scholarship payload")
	}

	scholarship, err := h.service.Create(c.UserContext(), middleware.AdminID(c), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to create scholarship")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "scholarship created", dto.CreatedResponse{ID: scholarship.ID})
}

func (h *ScholarshipHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.ScholarshipRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid scholarship payload")
	}

	scholarship, err := h.service.Update(c.UserContext(), middleware.AdminID(c), id, payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to update scholarship")
	}
	return utils.SendSuccess(c, "scholarship updated", scholarship)
}

func (h *ScholarshipHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.UserContext(), middleware.AdminID(c), id); err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to delete scholarship")
	}
	return utils.SendSuccess(c, "scholarship deleted", nil)
}
