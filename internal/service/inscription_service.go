package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// InscriptionService manages enrollment windows.
type InscriptionService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Inscription, error)
	Get(ctx context.Context, id uint) (models.Inscription, error)
	Create(ctx context.Context, actorID uint, req dto.InscriptionRequest) (models.Inscription, error)
	Update(ctx context.Context, actorID uint, id uint, req dto.InscriptionRequest) (models.Inscription, error)
	Delete(ctx context.Context, actorID uint, id uint) error
}

type inscriptionService struct {
	repo  repository.InscriptionRepository
	hooks mutationHooks
}

// NewInscriptionService constructs the inscription service.
func NewInscriptionService(repo repository.InscriptionRepository, audit AuditService, logger zerolog.Logger) InscriptionService {
	scoped := logger.With().Str("component", "inscription_service").Logger()
	return &inscriptionService{
		repo:  repo,
		hooks: newMutationHooks(audit, nil, scoped),
	}
}

func (s *inscriptionService) List(ctx context.Context, activeOnly bool) ([]models.Inscription, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *inscriptionService) Get(ctx context.Context, id uint) (models.Inscription, error) {
	inscription, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Inscription{}, translateLookupError(err)
	}
	return inscription, nil
}

func (s *inscriptionService) Create(ctx context.Context, actorID uint, req dto.InscriptionRequest) (models.Inscription, error) {
	inscription, err := req.Model()
	if err != nil {
		return models.Inscription{}, ErrValidation
	}
	if err := s.repo.Create(ctx, &inscription); err != nil {
		return models.Inscription{}, err
	}

	s.hooks.created(ctx, actorID, "inscriptions", inscription.ID, req)
	return inscription, nil
}

func (s *inscriptionService) Update(ctx context.Context, actorID uint, id uint, req dto.InscriptionRequest) (models.Inscription, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Inscription{}, translateLookupError(err)
	}

	oldPayload := dto.NewInscriptionRequestFromModel(existing)

	updated, err := req.Model()
	if err != nil {
		return models.Inscription{}, ErrValidation
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &updated); err != nil {
		return models.Inscription{}, err
	}

	s.hooks.updated(ctx, actorID, "inscriptions", updated.ID, oldPayload, req)
	return updated, nil
}

func (s *inscriptionService) Delete(ctx context.Context, actorID uint, id uint) error {
	rows, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.hooks.deleted(ctx, actorID, "inscriptions", id)
	return nil
}
