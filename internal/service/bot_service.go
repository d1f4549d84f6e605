package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/repository"
)

// BotService serves the reduced read-only projections consumed by the
// messaging bot. Projections are cached in Redis when a client is configured;
// without one every call hits the database.
type BotService interface {
	Careers(ctx context.Context) ([]dto.BotCareer, error)
	Events(ctx context.Context, limit int) ([]dto.BotEvent, error)
	Programs(ctx context.Context) ([]dto.BotProgram, error)
	Scholarships(ctx context.Context) ([]dto.BotScholarship, error)
	FAQs(ctx context.Context) ([]dto.BotFAQ, error)
	Contacts(ctx context.Context) ([]dto.BotContact, error)
	Calendar(ctx context.Context) ([]dto.BotCalendarEntry, error)
	Inscriptions(ctx context.Context) ([]dto.BotInscription, error)
}

type botService struct {
	careers       repository.CareerRepository
	events        repository.EventRepository
	preuniversity repository.PreUniversityRepository
	scholarships  repository.ScholarshipRepository
	faqs          repository.FAQRepository
	contacts      repository.ContactRepository
	calendar      repository.CalendarRepository
	inscriptions  repository.InscriptionRepository
	cache         *redis.Client
	cacheTTL      time.Duration
	logger        zerolog.Logger
}

// BotServiceDeps bundles the repositories the bot projections read from.
type BotServiceDeps struct {
	Careers       repository.CareerRepository
	Events        repository.EventRepository
	PreUniversity repository.PreUniversityRepository
	Scholarships  repository.ScholarshipRepository
	FAQs          repository.FAQRepository
	Contacts      repository.ContactRepository
	Calendar      repository.CalendarRepository
	Inscriptions  repository.InscriptionRepository
}

// NewBotService builds the bot projection service.
func NewBotService(deps BotServiceDeps, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) BotService {
	return &botService{
		careers:       deps.Careers,
		events:        deps.Events,
		preuniversity: deps.PreUniversity,
		scholarships:  deps.Scholarships,
		faqs:          deps.FAQs,
		contacts:      deps.Contacts,
		calendar:      deps.Calendar,
		inscriptions:  deps.Inscriptions,
		cache:         cache,
		cacheTTL:      ttl,
		logger:        logger.With().Str("component", "bot_service").Logger(),
	}
}

func (s *botService) Careers(ctx context.Context) ([]dto.BotCareer, error) {
	return cachedProjection(ctx, s, "bot:careers", func(ctx context.Context) ([]dto.BotCareer, error) {
		careers, err := s.careers.List(ctx, true)
		if err != nil {
			return nil, err
		}
		out := make([]dto.BotCareer, 0, len(careers))
		for _, c := range careers {
			out = append(out, dto.NewBotCareer(c))
		}
		return out, nil
	})
}

func (s *botService) Events(ctx context.Context, limit int) ([]dto.BotEvent, error) {
	key := fmt.Sprintf("bot:events:%d", limit)
	return cachedProjection(ctx, s, key, func(ctx context.Context) ([]dto.BotEvent, error) {
		events, err := s.events.List(ctx, true, limit)
		if err != nil {
			return nil, err
		}
		out := make([]dto.BotEvent, 0, len(events))
		for _, e := range events {
			out = append(out, dto.NewBotEvent(e))
		}
		return out, nil
	})
}

func (s *botService) Programs(ctx context.Context) ([]dto.BotProgram, error) {
	return cachedProjection(ctx, s, "bot:programs", func(ctx context.Context) ([]dto.BotProgram, error) {
		programs, err := s.preuniversity.ListUpcoming(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.BotProgram, 0, len(programs))
		for _, p := range programs {
			out = append(out, dto.NewBotProgram(p))
		}
		return out, nil
	})
}

func (s *botService) Scholarships(ctx context.Context) ([]dto.BotScholarship, error) {
	return cachedProjection(ctx, s, "bot:scholarships", func(ctx context.Context) ([]dto.BotScholarship, error) {
		scholarships, err := s.scholarships.List(ctx, true)
		if err != nil {
			return nil, err
		}
		out := make([]dto.BotScholarship, 0, len(scholarships))
		for _, sc := range scholarships {
			out = append(out, dto.NewBotScholarship(sc))
		}
		return out, nil
	})
}

func (s *botService) FAQs(ctx context.Context) ([]dto.BotFAQ, error) {
	return cachedProjection(ctx, s, "bot:faqs", func(ctx context.Context) ([]dto.BotFAQ, error) {
		faqs, err := s.faqs.List(ctx, true)
		if err != nil {
			return nil, err
		}
		out := make([]dto.BotFAQ, 0, len(faqs))
		for _, f := range faqs {
			out = append(out, dto.NewBotFAQ(f))
		}
		return out, nil
	})
}

func (s *botService) Contacts(ctx context.Context) ([]dto.BotContact, error) {
	return cachedProjection(ctx, s, "bot:contacts", func(ctx context.Context) ([]dto.BotContact, error) {
		contacts, err := s.contacts.List(ctx, true)
		if err != nil {
			return nil, err
		}
		out := make([]dto.BotContact, 0, len(contacts))
		for _, c := range contacts {
			out = append(out, dto.NewBotContact(c))
		}
		return out, nil
	})
}

func (s *botService) Calendar(ctx context.Context) ([]dto.BotCalendarEntry, error) {
	return cachedProjection(ctx, s, "bot:calendar", func(ctx context.Context) ([]dto.BotCalendarEntry, error) {
		entries, err := s.calendar.List(ctx, true)
		if err != nil {
			return nil, err
		}
		out := make([]dto.BotCalendarEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, dto.NewBotCalendarEntry(e))
		}
		return out, nil
	})
}

func (s *botService) Inscriptions(ctx context.Context) ([]dto.BotInscription, error) {
	return cachedProjection(ctx, s, "bot:inscriptions", func(ctx context.Context) ([]dto.BotInscription, error) {
		inscriptions, err := s.inscriptions.List(ctx, true)
		if err != nil {
			return nil, err
		}
		out := make([]dto.BotInscription, 0, len(inscriptions))
		for _, i := range inscriptions {
			out = append(out, dto.NewBotInscription(i))
		}
		return out, nil
	})
}

// cachedProjection wraps a projection query with a read-through Redis cache.
// Cache trouble degrades to a direct database read, never to an error.
func cachedProjection[T any](ctx context.Context, s *botService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var out []T
			if unmarshalErr := json.Unmarshal([]byte(cached), &out); unmarshalErr == nil {
				s.logger.Debug().Str("key", key).Msg("bot projection cache hit")
				return out, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to read bot projection cache")
		}
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(out)
		if err == nil {
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Str("key", key).Msg("failed to store bot projection cache")
			}
		}
	}

	return out, nil
}
