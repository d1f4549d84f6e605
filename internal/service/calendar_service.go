package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// CalendarService manages academic calendar entries.
type CalendarService interface {
	List(ctx context.Context, activeOnly bool) ([]models.CalendarEntry, error)
	Get(ctx context.Context, id uint) (models.CalendarEntry, error)
	Create(ctx context.Context, actorID uint, req dto.CalendarEntryRequest) (models.CalendarEntry, error)
	Update(ctx context.Context, actorID uint, id uint, req dto.CalendarEntryRequest) (models.CalendarEntry, error)
	Delete(ctx context.Context, actorID uint, id uint) error
}

type calendarService struct {
	repo  repository.CalendarRepository
	hooks mutationHooks
}

// NewCalendarService constructs the calendar service.
func NewCalendarService(repo repository.CalendarRepository, audit AuditService, logger zerolog.Logger) CalendarService {
	scoped := logger.With().Str("component", "calendar_service").Logger()
	return &calendarService{
		repo:  repo,
		hooks: newMutationHooks(audit, nil, scoped),
	}
}

func (s *calendarService) List(ctx context.Context, activeOnly bool) ([]models.CalendarEntry, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *calendarService) Get(ctx context.Context, id uint) (models.CalendarEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.CalendarEntry{}, translateLookupError(err)
	}
	return entry, nil
}

func (s *calendarService) Create(ctx context.Context, actorID uint, req dto.CalendarEntryRequest) (models.CalendarEntry, error) {
	entry, err := req.Model()
	if err != nil {
		return models.CalendarEntry{}, ErrValidation
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		return models.CalendarEntry{}, err
	}

	s.hooks.created(ctx, actorID, "academic_calendar", entry.ID, req)
	return entry, nil
}

func (s *calendarService) Update(ctx context.Context, actorID uint, id uint, req dto.CalendarEntryRequest) (models.CalendarEntry, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.CalendarEntry{}, translateLookupError(err)
	}

	oldPayload := dto.NewCalendarEntryRequestFromModel(existing)

	updated, err := req.Model()
	if err != nil {
		return models.CalendarEntry{}, ErrValidation
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &updated); err != nil {
		return models.CalendarEntry{}, err
	}

	s.hooks.updated(ctx, actorID, "academic_calendar", updated.ID, oldPayload, req)
	return updated, nil
}

func (s *calendarService) Delete(ctx context.Context, actorID uint, id uint) error {
	rows, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.hooks.deleted(ctx, actorID, "academic_calendar", id)
	return nil
}
