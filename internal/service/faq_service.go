package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// FAQService manages the frequently asked questions bank.
type FAQService interface {
	List(ctx context.Context, activeOnly bool) ([]models.FAQ, error)
	Get(ctx context.Context, id uint) (models.FAQ, error)
	Create(ctx context.Context, actorID uint, req dto.FAQRequest) (models.FAQ, error)
	Update(ctx context.Context, actorID uint, id uint, req dto.FAQRequest) (models.FAQ, error)
	Delete(ctx context.Context, actorID uint, id uint) error
}

type faqService struct {
	repo  repository.FAQRepository
	hooks mutationHooks
}

// NewFAQService constructs the FAQ service. FAQs feed the assistant context,
// so mutations invalidate the knowledge cache.
func NewFAQService(repo repository.FAQRepository, audit AuditService, knowledge KnowledgeInvalidator, logger zerolog.Logger) FAQService {
	scoped := logger.With().Str("component", "faq_service").Logger()
	return &faqService{
		repo:  repo,
		hooks: newMutationHooks(audit, knowledge, scoped),
	}
}

func (s *faqService) List(ctx context.Context, activeOnly bool) ([]models.FAQ, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *faqService) Get(ctx context.Context, id uint) (models.FAQ, error) {
	faq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.FAQ{}, translateLookupError(err)
	}
	return faq, nil
}

func (s *faqService) Create(ctx context.Context, actorID uint, req dto.FAQRequest) (models.FAQ, error) {
	faq := req.Model()
	if err := s.repo.Create(ctx, &faq); err != nil {
		return models.FAQ{}, err
	}

	s.hooks.created(ctx, actorID, "faqs", faq.ID, req)
	return faq, nil
}

func (s *faqService) Update(ctx context.Context, actorID uint, id uint, req dto.FAQRequest) (models.FAQ, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.FAQ{}, translateLookupError(err)
	}

	oldPayload := dto.NewFAQRequestFromModel(existing)

	updated := req.Model()
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &updated); err != nil {
		return models.FAQ{}, err
	}

	s.hooks.updated(ctx, actorID, "faqs", updated.ID, oldPayload, req)
	return updated, nil
}

func (s *faqService) Delete(ctx context.Context, actorID uint, id uint) error {
	rows, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.hooks.deleted(ctx, actorID, "faqs", id)
	return nil
}
