package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/pkg/ai"
)

type fixedCompleter struct {
	answer string
}

func (c fixedCompleter) Complete(context.Context, ai.Exchange) (string, error) {
	return c.answer, nil
}

func newChatApp(t *testing.T, completer ai.Completer) *fiber.App {
	t.Helper()

	db := newHandlerDB(t)
	require.NoError(t, db.Create(&models.Career{Code: "SIS", Name: "Sistemas", IsActive: true}).Error)

	careers := repository.NewCareerRepository(db)
	knowledge := service.NewKnowledgeService(
		careers,
		repository.NewFAQRepository(db),
		repository.NewSystemConfigRepository(db),
		repository.NewScholarshipRepository(db),
		repository.NewPreUniversityRepository(db),
		0,
		zerolog.Nop(),
	)
	assistant := service.NewAssistantService(completer, knowledge, careers, "/static/curricula", time.Second, zerolog.Nop())

	handler := NewChatHandler(assistant, zerolog.Nop())
	app := fiber.New()
	api := app.Group("/api")
	handler.RegisterWeb(api, func(c *fiber.Ctx) error { return c.Next() })
	bot := app.Group("/bot")
	handler.RegisterBot(bot, func(c *fiber.Ctx) error { return c.Next() })
	return app
}

func TestChatEndpointReturnsAnswerAndImage(t *testing.T) {
	app := newChatApp(t, fixedCompleter{answer: "Aquí tienes. [[SEND_IMAGE: SIS]]"})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/chat", map[string]string{"message": "malla de sistemas"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := decodeEnvelope(t, res)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "Aquí tienes.", data["response"])
	require.Equal(t, "/static/curricula/SIS.jpg", data["image"])
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	app := newChatApp(t, fixedCompleter{answer: "ignored"})

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/chat", map[string]string{}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	envelope := decodeEnvelope(t, res)
	require.False(t, envelope.Success)
	require.Equal(t, "message is required", envelope.Message)
}

func TestAskEndpointOmitsImage(t *testing.T) {
	app := newChatApp(t, fixedCompleter{answer: "Respuesta. [[SEND_IMAGE: SIS]]"})

	res, err := app.Test(jsonRequest(http.MethodPost, "/bot/ask", map[string]string{"question": "malla"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	raw := decodeEnvelope(t, res)
	payload, err := json.Marshal(raw.Data)
	require.NoError(t, err)
	require.JSONEq(t, `{"answer":"Respuesta."}`, string(payload))
}
