package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

var validate = validator.New()

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// parseQueryBool reads a boolean query parameter, falling back to the given
// default when absent or malformed.
func parseQueryBool(c *fiber.Ctx, key string, fallback bool) bool {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseQueryInt(c *fiber.Ctx, key string, fallback int) int {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// sendServiceError maps the service error taxonomy onto HTTP statuses.
func sendServiceError(c *fiber.Ctx, logger zerolog.Logger, err error, fallbackMessage string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "record not found")
	case errors.Is(err, service.ErrConflict):
		return utils.SendError(c, fiber.StatusConflict, "record already exists")
	case errors.Is(err, service.ErrUnauthorized):
		return utils.SendError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrValidation):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		logger.Error().Err(err).Msg(fallbackMessage)
		return utils.SendError(c, fiber.StatusInternalServerError, fallbackMessage)
	}
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) zerolog.Logger {
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			return base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return base
}
