package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// SystemConfigService reads and updates key/value configuration entries.
// Keys are fixed at seed time; only values change through the API.
type SystemConfigService interface {
	ListPublic(ctx context.Context) ([]models.SystemConfig, error)
	Get(ctx context.Context, key string) (models.SystemConfig, error)
	UpdateValue(ctx context.Context, actorID uint, key string, req dto.SystemConfigRequest) (models.SystemConfig, error)
}

type systemConfigService struct {
	repo  repository.SystemConfigRepository
	hooks mutationHooks
}

// NewSystemConfigService constructs the configuration service. Public entries
// feed the assistant context, so value updates invalidate the knowledge cache.
func NewSystemConfigService(repo repository.SystemConfigRepository, audit AuditService, knowledge KnowledgeInvalidator, logger zerolog.Logger) SystemConfigService {
	scoped := logger.With().Str("component", "system_config_service").Logger()
	return &systemConfigService{
		repo:  repo,
		hooks: newMutationHooks(audit, knowledge, scoped),
	}
}

func (s *systemConfigService) ListPublic(ctx context.Context) ([]models.SystemConfig, error) {
	return s.repo.ListPublic(ctx)
}

func (s *systemConfigService) Get(ctx context.Context, key string) (models.SystemConfig, error) {
	entry, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return models.SystemConfig{}, translateLookupError(err)
	}
	return entry, nil
}

func (s *systemConfigService) UpdateValue(ctx context.Context, actorID uint, key string, req dto.SystemConfigRequest) (models.SystemConfig, error) {
	entry, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return models.SystemConfig{}, translateLookupError(err)
	}

	previous := entry.ConfigValue
	entry.ConfigValue = req.ConfigValue
	if err := s.repo.Update(ctx, &entry); err != nil {
		return models.SystemConfig{}, err
	}

	s.hooks.updated(ctx, actorID, "system_config", entry.ID,
		map[string]interface{}{"config_value": previous},
		map[string]interface{}{"config_value": entry.ConfigValue})
	return entry, nil
}
