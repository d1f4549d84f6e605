package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// FAQHandler exposes FAQ CRUD.
type FAQHandler struct {
	service service.FAQService
	logger  zerolog.Logger
}

// NewFAQHandler constructs an FAQ handler.
func NewFAQHandler(service service.FAQService, logger zerolog.Logger) *FAQHandler {
	return &FAQHandler{
		service: service,
		logger:  logger.With().Str("component", "faq_handler").Logger(),
	}
}

// RegisterPublic wires read-only FAQ routes.
func (h *FAQHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

// RegisterProtected wires mutating FAQ routes behind the auth guard.
func (h *FAQHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("", auth, h.create)
	router.Put("/:id", auth, h.update)
	router.Delete("/:id", auth, h.delete)
}

func (h *FAQHandler) list(c *fiber.Ctx) error {
	activeOnly := parseQueryBool(c, "active_only", true)
	faqs, err := h.service.List(c.UserContext(), activeOnly)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list faqs")
	}
	return utils.SendSuccess(c, "faqs retrieved", faqs)
}

func (h *FAQHandler) get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	faq, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to load faq")
	}
	return utils.SendSuccess(c, "faq retrieved", faq)
}

func (h *FAQHandler) create(c *fiber.Ctx) error {
	var payload dto.FAQRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid faq payload")
	}

	faq, err := h.service.Create(c.UserContext(), middleware.AdminID(c), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to create faq")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "faq created", dto.CreatedResponse{ID: faq.ID})
}

func (h *FAQHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.FAQRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "invalid faq payload")
	}

	faq, err := h.service.Update(c.UserContext(), middleware.AdminID(c), id, payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to update faq")
	}
	return utils.SendSuccess(c, "faq updated", faq)
}

func (h *FAQHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.UserContext(), middleware.AdminID(c), id); err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to delete faq")
	}
	return utils.SendSuccess(c, "faq deleted", nil)
}
