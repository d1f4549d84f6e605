package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// ChatHandler exposes the assistant to the web widget and the bot.
type ChatHandler struct {
	service service.AssistantService
	logger  zerolog.Logger
}

// NewChatHandler constructs a chat handler.
func NewChatHandler(service service.AssistantService, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger.With().Str("component", "chat_handler").Logger(),
	}
}

// RegisterWeb wires the web chat route.
func (h *ChatHandler) RegisterWeb(router fiber.Router, limiter fiber.Handler) {
	router.Post("/chat", limiter, h.chat)
}

// RegisterBot wires the bot question route.
func (h *ChatHandler) RegisterBot(router fiber.Router, limiter fiber.Handler) {
	router.Post("/ask", limiter, h.ask)
}

func (h *ChatHandler) chat(c *fiber.Ctx) error {
	var payload dto.ChatRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "message is required")
	}

	response, err := h.service.Chat(c.UserContext(), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to answer question")
	}
	return utils.SendSuccess(c, "answer generated", response)
}

func (h *ChatHandler) ask(c *fiber.Ctx) error {
	var payload dto.AskRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "question is required")
	}

	response, err := h.service.Ask(c.UserContext(), payload)
	if err != nil {
		return sendServiceError(c, requestLogger(h.logger, c), err, "failed to answer question")
	}
	return utils.SendSuccess(c, "answer generated", response)
}
