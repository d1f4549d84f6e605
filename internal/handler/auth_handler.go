package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// AuthHandler exposes login and credential management.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// RegisterPublic wires the unauthenticated login route.
func (h *AuthHandler) RegisterPublic(router fiber.Router, limiter fiber.Handler) {
	router.Post("/login", limiter, h.login)
}

// RegisterProtected wires routes that require an authenticated admin.
func (h *AuthHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Put("/admin/password", auth, h.changePassword)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "username and password are required")
	}

	response, err := h.service.Login(c.UserContext(), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to process login")
	}

	return utils.SendSuccess(c, "login successful", response)
}

func (h *AuthHandler) changePassword(c *fiber.Ctx) error {
	var payload dto.PasswordChangeRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "new password must be at least 8 characters")
	}

	if err := h.service.ChangePassword(c.UserContext(), middleware.AdminID(c), payload); err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to change password")
	}

	return utils.SendSuccess(c, "password updated", nil)
}
