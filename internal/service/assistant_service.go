package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/observability"
	"github.com/infoemi/campus-api/internal/repository"
	"github.com/infoemi/campus-api/pkg/ai"
)

// FallbackAnswer is returned verbatim whenever the model cannot produce a
// reply, whatever the underlying cause.
const FallbackAnswer = "Lo siento, estoy teniendo problemas técnicos en este momento. Por favor, intenta de nuevo más tarde o contacta directamente con la universidad."

// imageDirective marks a career whose curriculum image should accompany the
// answer. Only the first occurrence is honoured; later ones pass through.
var imageDirective = regexp.MustCompile(`\[\[SEND_IMAGE: (\w+)\]\]`)

// AssistantService answers student questions grounded on the knowledge
// context.
type AssistantService interface {
	Chat(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error)
	Ask(ctx context.Context, req dto.AskRequest) (dto.AskResponse, error)
}

type assistantService struct {
	completer ai.Completer
	knowledge KnowledgeService
	careers   repository.CareerRepository
	imageBase string
	timeout   time.Duration
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewAssistantService constructs the answer synthesizer. imageBase is the
// URL prefix used for curriculum images when a career carries no explicit
// curriculum URL.
func NewAssistantService(completer ai.Completer, knowledge KnowledgeService, careers repository.CareerRepository, imageBase string, timeout time.Duration, logger zerolog.Logger) AssistantService {
	return &assistantService{
		completer: completer,
		knowledge: knowledge,
		careers:   careers,
		imageBase: strings.TrimRight(imageBase, "/"),
		timeout:   timeout,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "assistant_service").Logger(),
	}
}

// Chat answers a question and resolves an image directive if the model emits
// one. Every failure mode collapses into the fixed fallback answer; the
// endpoint itself never errors on model trouble.
func (s *assistantService) Chat(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error) {
	answer, ok := s.answer(ctx, req.Message)
	if !ok {
		return dto.ChatResponse{Response: FallbackAnswer}, nil
	}

	answer, code := extractImageDirective(answer)
	resp := dto.ChatResponse{Response: answer}
	if code != "" {
		resp.Image = s.resolveImage(ctx, code)
	}

	return resp, nil
}

// Ask is the reduced bot-facing variant: same synthesis, directives stripped,
// no image resolution.
func (s *assistantService) Ask(ctx context.Context, req dto.AskRequest) (dto.AskResponse, error) {
	answer, ok := s.answer(ctx, req.Question)
	if !ok {
		return dto.AskResponse{Answer: FallbackAnswer}, nil
	}

	answer, _ = extractImageDirective(answer)
	return dto.AskResponse{Answer: answer}, nil
}

func (s *assistantService) answer(parent context.Context, question string) (string, bool) {
	question = strings.TrimSpace(s.sanitizer.Sanitize(question))
	if question == "" {
		observability.AssistantAnswers().WithLabelValues("rejected").Inc()
		return "", false
	}

	ctx := parent
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, s.timeout)
		defer cancel()
	}

	if s.completer == nil {
		observability.AssistantAnswers().WithLabelValues("failure").Inc()
		return "", false
	}

	knowledge, err := s.knowledge.Context(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to assemble knowledge context")
		observability.AssistantAnswers().WithLabelValues("failure").Inc()
		return "", false
	}

	answer, err := s.completer.Complete(ctx, ai.Exchange{
		SystemPrompt: buildSystemPrompt(knowledge),
		UserPrompt:   question,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("chat completion failed")
		observability.AssistantAnswers().WithLabelValues("failure").Inc()
		return "", false
	}
	if strings.TrimSpace(answer) == "" {
		observability.AssistantAnswers().WithLabelValues("empty").Inc()
		return "", false
	}

	observability.AssistantAnswers().WithLabelValues("success").Inc()
	return answer, true
}

func buildSystemPrompt(knowledge string) string {
	b := strings.Builder{}
	b.WriteString("Eres el asistente virtual oficial de la Escuela Militar de Ingeniería (EMI). ")
	b.WriteString("Respondes en español, de forma breve y cordial.\n\n")
	b.WriteString("Responde ÚNICAMENTE con la información del siguiente contexto. ")
	b.WriteString("Si la pregunta no puede responderse con el contexto, indica que no tienes esa información y sugiere contactar a la universidad.\n\n")
	b.WriteString("Si el estudiante pide la malla curricular o el plan de estudios de una carrera, ")
	b.WriteString("incluye al final de tu respuesta la marca [[SEND_IMAGE: CODIGO]] usando el código de la carrera.\n\n")
	b.WriteString("CONTEXTO:\n")
	b.WriteString(knowledge)
	return b.String()
}

// extractImageDirective strips the first image directive from the answer and
// returns the career code it named. Additional directives are left in place.
func extractImageDirective(answer string) (string, string) {
	loc := imageDirective.FindStringSubmatchIndex(answer)
	if loc == nil {
		return answer, ""
	}

	code := answer[loc[2]:loc[3]]
	stripped := strings.TrimSpace(answer[:loc[0]] + answer[loc[1]:])
	return stripped, code
}

func (s *assistantService) resolveImage(ctx context.Context, code string) string {
	career, err := s.careers.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Err(err).Str("code", code).Msg("failed to look up career for image directive")
		}
		return fmt.Sprintf("%s/%s.jpg", s.imageBase, code)
	}

	if career.CurriculumURL != "" {
		return career.CurriculumURL
	}
	return fmt.Sprintf("%s/%s.jpg", s.imageBase, career.Code)
}
