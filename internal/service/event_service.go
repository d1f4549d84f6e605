package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// EventService manages scheduled events.
type EventService interface {
	List(ctx context.Context, upcomingOnly bool, limit int) ([]models.Event, error)
	Get(ctx context.Context, id uint) (models.Event, error)
	Create(ctx context.Context, actorID uint, req dto.EventRequest) (models.Event, error)
	Update(ctx context.Context, actorID uint, id uint, req dto.EventRequest) (models.Event, error)
	Delete(ctx context.Context, actorID uint, id uint) error
}

type eventService struct {
	repo  repository.EventRepository
	hooks mutationHooks
}

// NewEventService constructs the event service.
func NewEventService(repo repository.EventRepository, audit AuditService, logger zerolog.Logger) EventService {
	scoped := logger.With().Str("component", "event_service").Logger()
	return &eventService{
		repo:  repo,
		hooks: newMutationHooks(audit, nil, scoped),
	}
}

func (s *eventService) List(ctx context.Context, upcomingOnly bool, limit int) ([]models.Event, error) {
	return s.repo.List(ctx, upcomingOnly, limit)
}

func (s *eventService) Get(ctx context.Context, id uint) (models.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Event{}, translateLookupError(err)
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, actorID uint, req dto.EventRequest) (models.Event, error) {
	event, err := req.Model()
	if err != nil {
		return models.Event{}, ErrValidation
	}
	if err := s.repo.Create(ctx, &event); err != nil {
		return models.Event{}, err
	}

	s.hooks.created(ctx, actorID, "events", event.ID, req)
	return event, nil
}

func (s *eventService) Update(ctx context.Context, actorID uint, id uint, req dto.EventRequest) (models.Event, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Event{}, translateLookupError(err)
	}

	oldPayload := dto.NewEventRequestFromModel(existing)

	updated, err := req.Model()
	if err != nil {
		return models.Event{}, ErrValidation
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &updated); err != nil {
		return models.Event{}, err
	}

	s.hooks.updated(ctx, actorID, "events", updated.ID, oldPayload, req)
	return updated, nil
}

// Delete removes the event row outright. Past events carry no historic value
// once gone, so events are the one catalog entity deleted hard.
func (s *eventService) Delete(ctx context.Context, actorID uint, id uint) error {
	rows, err := s.repo.HardDelete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.hooks.deleted(ctx, actorID, "events", id)
	return nil
}
