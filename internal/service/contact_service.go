package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// ContactService manages departmental contact records.
type ContactService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Contact, error)
	Get(ctx context.Context, id uint) (models.Contact, error)
	Create(ctx context.Context, actorID uint, req dto.ContactRequest) (models.Contact, error)
	Update(ctx context.Context, actorID uint, id uint, req dto.ContactRequest) (models.Contact, error)
	Delete(ctx context.Context, actorID uint, id uint) error
}

type contactService struct {
	repo  repository.ContactRepository
	hooks mutationHooks
}

// NewContactService constructs the contact service.
func NewContactService(repo repository.ContactRepository, audit AuditService, logger zerolog.Logger) ContactService {
	scoped := logger.With().Str("component", "contact_service").Logger()
	return &contactService{
		repo:  repo,
		hooks: newMutationHooks(audit, nil, scoped),
	}
}

func (s *contactService) List(ctx context.Context, activeOnly bool) ([]models.Contact, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *contactService) Get(ctx context.Context, id uint) (models.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Contact{}, translateLookupError(err)
	}
	return contact, nil
}

func (s *contactService) Create(ctx context.Context, actorID uint, req dto.ContactRequest) (models.Contact, error) {
	contact := req.Model()
	if err := s.repo.Create(ctx, &contact); err != nil {
		return models.Contact{}, err
	}

	s.hooks.created(ctx, actorID, "contacts", contact.ID, req)
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, actorID uint, id uint, req dto.ContactRequest) (models.Contact, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Contact{}, translateLookupError(err)
	}

	oldPayload := dto.NewContactRequestFromModel(existing)

	updated := req.Model()
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &updated); err != nil {
		return models.Contact{}, err
	}

	s.hooks.updated(ctx, actorID, "contacts", updated.ID, oldPayload, req)
	return updated, nil
}

func (s *contactService) Delete(ctx context.Context, actorID uint, id uint) error {
	rows, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.hooks.deleted(ctx, actorID, "contacts", id)
	return nil
}
