package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// CareerHandler exposes academic program CRUD plus curriculum uploads.
type CareerHandler struct {
	service service.CareerService
	logger  zerolog.Logger
}

// NewCareerHandler constructs a career handler.
func NewCareerHandler(service service.CareerService, logger zerolog.Logger) *CareerHandler {
	return &CareerHandler{
		service: service,
		logger:  logger.With().Str("component", "career_handler").Logger(),
	}
}

// RegisterPublic wires read-only career routes.
func (h *CareerHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterProtected wires mutating career routes behind the auth guard.
func (h *CareerHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("", auth, h.create)
	router.Put("/:id", auth, h.update)
	router.Delete("/:id", auth, h.delete)
	router.Post("/:id/curriculum", auth, h.uploadCurriculum)
}

func (h *CareerHandler) list(c *fiber.Ctx) error {
	activeOnly := parseQueryBool(c, "active_only", true)
	careers, err := h.service.List(c.UserContext(), activeOnly)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list careers")
	}
	return utils.SendSuccess(c, "careers retrieved", careers)
}

func (h *CareerHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	career, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to load career")
	}
	return utils.SendSuccess(c, "career retrieved", career)
}

func (h *CareerHandler) create(c *fiber.Ctx) error {
	var payload dto.CareerRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid career payload")
	}

	career, err := h.service.Create(c.UserContext(), middleware.AdminID(c), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to create career")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "career created", dto.CreatedResponse{ID: career.ID})
}

func (h *CareerHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.CareerRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid career payload")
	}

	career, err := h.service.Update(c.UserContext(), middleware.AdminID(c), id, payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to update career")
	}
	return utils.SendSuccess(c, "career updated", career)
}

func (h *CareerHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.UserContext(), middleware.AdminID(c), id); err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to delete career")
	}
	return utils.SendSuccess(c, "career deleted", nil)
}

func (h *CareerHandler) uploadCurriculum(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "curriculum file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "unable to read uploaded file")
	}
	defer file.Close()

	career, err := h.service.SetCurriculum(c.UserContext(), middleware.AdminID(c), id, fileHeader.Filename, file)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to store curriculum")
	}
	return utils.SendSuccess(c, "curriculum updated", career)
}
