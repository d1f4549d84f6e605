package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// PreUniversityService manages preparatory programs.
type PreUniversityService interface {
	List(ctx context.Context, activeOnly bool) ([]models.PreUniversityProgram, error)
	ListUpcoming(ctx context.Context) ([]models.PreUniversityProgram, error)
	Get(ctx context.Context, id uint) (models.PreUniversityProgram, error)
	Create(ctx context.Context, actorID uint, req dto.PreUniversityRequest) (models.PreUniversityProgram, error)
	Update(ctx context.Context, actorID uint, id uint, req dto.PreUniversityRequest) (models.PreUniversityProgram, error)
	Delete(ctx context.Context, actorID uint, id uint) error
}

type preUniversityService struct {
	repo  repository.PreUniversityRepository
	hooks mutationHooks
}

// NewPreUniversityService constructs the preparatory program service.
// Programs feed the assistant context, so mutations invalidate the knowledge
// cache.
func NewPreUniversityService(repo repository.PreUniversityRepository, audit AuditService, knowledge KnowledgeInvalidator, logger zerolog.Logger) PreUniversityService {
	scoped := logger.With().Str("component", "preuniversity_service").Logger()
	return &preUniversityService{
		repo:  repo,
		hooks: newMutationHooks(audit, knowledge, scoped),
	}
}

func (s *preUniversityService) List(ctx context.Context, activeOnly bool) ([]models.PreUniversityProgram, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *preUniversityService) ListUpcoming(ctx context.Context) ([]models.PreUniversityProgram, error) {
	return s.repo.ListUpcoming(ctx)
}

func (s *preUniversityService) Get(ctx context.Context, id uint) (models.PreUniversityProgram, error) {
	program, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.PreUniversityProgram{}, translateLookupError(err)
	}
	return program, nil
}

func (s *preUniversityService) Create(ctx context.Context, actorID uint, req dto.PreUniversityRequest) (models.PreUniversityProgram, error) {
	program, err := req.Model()
	if err != nil {
		return models.PreUniversityProgram{}, ErrValidation
	}
	if err := s.repo.Create(ctx, &program); err != nil {
		return models.PreUniversityProgram{}, err
	}

	s.hooks.created(ctx, actorID, "pre_university", program.ID, req)
	return program, nil
}

func (s *preUniversityService) Update(ctx context.Context, actorID uint, id uint, req dto.PreUniversityRequest) (models.PreUniversityProgram, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.PreUniversityProgram{}, translateLookupError(err)
	}

	oldPayload := dto.NewPreUniversityRequestFromModel(existing)

	updated, err := req.Model()
	if err != nil {
		return models.PreUniversityProgram{}, ErrValidation
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &updated); err != nil {
		return models.PreUniversityProgram{}, err
	}

	s.hooks.updated(ctx, actorID, "pre_university", updated.ID, oldPayload, req)
	return updated, nil
}

func (s *preUniversityService) Delete(ctx context.Context, actorID uint, id uint) error {
	rows, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.hooks.deleted(ctx, actorID, "pre_university", id)
	return nil
}
