package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// SystemConfigHandler exposes the key/value configuration surface.
type SystemConfigHandler struct {
	service service.SystemConfigService
	logger  zerolog.Logger
}

// NewSystemConfigHandler constructs a configuration handler.
func NewSystemConfigHandler(service service.SystemConfigService, logger zerolog.Logger) *SystemConfigHandler {
	return &SystemConfigHandler{
		service: service,
		logger:  logger.With().Str("component", "system_config_handler").Logger(),
	}
}

// RegisterPublic wires the public configuration listing.
func (h *SystemConfigHandler) RegisterPublic(router fiber.Router) {
	router.Get("", h.listPublic)
}

// RegisterProtected wires the value update route behind the auth guard.
func (h *SystemConfigHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Put("/:key", auth, h.updateValue)
}

func (h *SystemConfigHandler) listPublic(c *fiber.Ctx) error {
	entries, err := h.service.ListPublic(c.UserContext())
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list configuration")
	}
	return utils.SendSuccess(c, "configuration retrieved", entries)
}

func (h *SystemConfigHandler) updateValue(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid key")
	}

	var payload dto.SystemConfigRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "config_value is required")
	}

	entry, err := h.service.UpdateValue(c.UserContext(), middleware.AdminID(c), key, payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to update configuration")
	}
	return utils.SendSuccess(c, "configuration updated", entry)
}
