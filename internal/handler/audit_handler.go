package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// AuditHandler exposes the audit trail and aggregate statistics.
type AuditHandler struct {
	service service.AuditService
	logger  zerolog.Logger
}

// NewAuditHandler constructs an audit handler.
func NewAuditHandler(service service.AuditService, logger zerolog.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		logger:  logger.With().Str("component", "audit_handler").Logger(),
	}
}

// Register wires the audit trail and stats routes behind the auth guard.
func (h *AuditHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Get("/audit-logs", auth, h.list)
	router.Get("/stats", auth, h.stats)
}

func (h *AuditHandler) list(c *fiber.Ctx) error {
	req := dto.AuditLogListRequest{
		Page:      parseQueryInt(c, "page", 1),
		PageSize:  parseQueryInt(c, "page_size", 50),
		Action:    strings.TrimSpace(c.Query("action")),
		TableName: strings.TrimSpace(c.Query("table")),
	}

	response, err := h.service.List(c.UserContext(), req)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to list audit logs")
	}
	return utils.SendSuccess(c, "audit logs retrieved", response)
}

func (h *AuditHandler) stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to aggregate stats")
	}
	return utils.SendSuccess(c, "stats retrieved", stats)
}
