package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// ScholarshipService manages scholarships and discounts.
type ScholarshipService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Scholarship, error)
	Get(ctx context.Context, id uint) (models.Scholarship, error)
	Create(ctx context.Context, actorID uint, req dto.ScholarshipRequest) (models.Scholarship, error)
	Update(ctx context.Context, actorID uint, id uint, req dto.ScholarshipRequest) (models.Scholarship, error)
	Delete(ctx context.Context, actorID uint, id uint) error
}

type scholarshipService struct {
	repo  repository.ScholarshipRepository
	hooks mutationHooks
}

// NewScholarshipService constructs the scholarship service. Scholarships feed
// the assistant context, so mutations invalidate the knowledge cache.
func NewScholarshipService(repo repository.ScholarshipRepository, audit AuditService, knowledge KnowledgeInvalidator, logger zerolog.Logger) ScholarshipService {
	scoped := logger.With().Str("component", "scholarship_service").Logger()
	return &scholarshipService{
		repo:  repo,
		hooks: newMutationHooks(audit, knowledge, scoped),
	}
}

func (s *scholarshipService) List(ctx context.Context, activeOnly bool) ([]models.Scholarship, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *scholarshipService) Get(ctx context.Context, id uint) (models.Scholarship, error) {
	scholarship, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Scholarship{}, translateLookupError(err)
	}
	return scholarship, nil
}

func (s *scholarshipService) Create(ctx context.Context, actorID uint, req dto.ScholarshipRequest) (models.Scholarship, error) {
	scholarship, err := req.Model()
	if err != nil {
		return models.Scholarship{}, ErrValidation
	}
	if err := s.repo.Create(ctx, &scholarship); err != nil {
		return models.Scholarship{}, err
	}

	s.hooks.created(ctx, actorID, "scholarships", scholarship.ID, req)
	return scholarship, nil
}

func (s *scholarshipService) Update(ctx context.Context, actorID uint, id uint, req dto.ScholarshipRequest) (models.Scholarship, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Scholarship{}, translateLookupError(err)
	}

	oldPayload := dto.NewScholarshipRequestFromModel(existing)

	updated, err := req.Model()
	if err != nil {
		return models.Scholarship{}, ErrValidation
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &updated); err != nil {
		return models.Scholarship{}, err
	}

	s.hooks.updated(ctx, actorID, "scholarships", updated.ID, oldPayload, req)
	return updated, nil
}

func (s *scholarshipService) Delete(ctx context.Context, actorID uint, id uint) error {
	rows, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.hooks.deleted(ctx, actorID, "scholarships", id)
	return nil
}
