package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
	"github.com/infoemi/campus-api/pkg/ai"
)

type scriptedCompleter struct {
	answer string
	err    error
	seen   ai.Exchange
}

func (c *scriptedCompleter) Complete(_ context.Context, exchange ai.Exchange) (string, error) {
	c.seen = exchange
	return c.answer, c.err
}

func newAssistantFixture(t *testing.T, completer ai.Completer) AssistantService {
	t.Helper()

	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Career{
		Code:     "SIS",
		Name:     "Sistemas",
		IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.Career{
		Code:          "CIV",
		Name:          "Civil",
		CurriculumURL: "https://cdn.example/civil.png",
		IsActive:      true,
	}).Error)

	careers := repository.NewCareerRepository(db)
	knowledge := NewKnowledgeService(
		careers,
		repository.NewFAQRepository(db),
		repository.NewSystemConfigRepository(db),
		repository.NewScholarshipRepository(db),
		repository.NewPreUniversityRepository(db),
		0,
		zerolog.Nop(),
	)
	return NewAssistantService(completer, knowledge, careers, "/static/curricula", time.Second, zerolog.Nop())
}

func TestChatResolvesImageDirectiveAndStripsMarker(t *testing.T) {
	completer := &scriptedCompleter{answer: "Aquí está la malla. [[SEND_IMAGE: SIS]]"}
	service := newAssistantFixture(t, completer)

	response, err := service.Chat(context.Background(), dto.ChatRequest{Message: "malla de sistemas"})
	require.NoError(t, err)
	require.Equal(t, "Aquí está la malla.", response.Response)
	require.Equal(t, "/static/curricula/SIS.jpg", response.Image)

	require.Contains(t, completer.seen.SystemPrompt, "OFERTA ACADÉMICA")
	require.Equal(t, "malla de sistemas", completer.seen.UserPrompt)
}

func TestChatUsesStoredCurriculumURLWhenPresent(t *testing.T) {
	completer := &scriptedCompleter{answer: "Toma. [[SEND_IMAGE: CIV]]"}
	service := newAssistantFixture(t, completer)

	response, err := service.Chat(context.Background(), dto.ChatRequest{Message: "malla de civil"})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/civil.png", response.Image)
}

func TestChatWithoutDirectiveLeavesAnswerUntouched(t *testing.T) {
	completer := &scriptedCompleter{answer: "La EMI queda en La Paz."}
	service := newAssistantFixture(t, completer)

	response, err := service.Chat(context.Background(), dto.ChatRequest{Message: "ubicación"})
	require.NoError(t, err)
	require.Equal(t, "La EMI queda en La Paz.", response.Response)
	require.Empty(t, response.Image)
}

func TestChatHonoursOnlyFirstImageDirective(t *testing.T) {
	completer := &scriptedCompleter{answer: "Primera [[SEND_IMAGE: SIS]] segunda [[SEND_IMAGE: CIV]]"}
	service := newAssistantFixture(t, completer)

	response, err := service.Chat(context.Background(), dto.ChatRequest{Message: "mallas"})
	require.NoError(t, err)
	require.Equal(t, "Primera  segunda [[SEND_IMAGE: CIV]]", response.Response)
	require.Equal(t, "/static/curricula/SIS.jpg", response.Image)
}

func TestChatFallsBackWhenModelFails(t *testing.T) {
	completer := &scriptedCompleter{err: errors.New("upstream timeout")}
	service := newAssistantFixture(t, completer)

	response, err := service.Chat(context.Background(), dto.ChatRequest{Message: "hola"})
	require.NoError(t, err)
	require.Equal(t, FallbackAnswer, response.Response)
	require.Empty(t, response.Image)
}

func TestChatFallsBackWhenSanitizedMessageIsEmpty(t *testing.T) {
	completer := &scriptedCompleter{answer: "should not be used"}
	service := newAssistantFixture(t, completer)

	response, err := service.Chat(context.Background(), dto.ChatRequest{Message: "<script>alert(1)</script>"})
	require.NoError(t, err)
	require.Equal(t, FallbackAnswer, response.Response)
}

func TestAskStripsDirectiveWithoutImageResolution(t *testing.T) {
	completer := &scriptedCompleter{answer: "Respuesta. [[SEND_IMAGE: SIS]]"}
	service := newAssistantFixture(t, completer)

	response, err := service.Ask(context.Background(), dto.AskRequest{Question: "malla"})
	require.NoError(t, err)
	require.Equal(t, "Respuesta.", response.Answer)
}
