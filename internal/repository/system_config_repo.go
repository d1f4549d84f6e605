package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// SystemConfigRepository reads and writes key/value configuration entries.
type SystemConfigRepository interface {
	ListPublic(ctx context.Context) ([]models.SystemConfig, error)
	GetByKey(ctx context.Context, key string) (models.SystemConfig, error)
	Update(ctx context.Context, entry *models.SystemConfig) error
}

type systemConfigRepository struct {
	db *gorm.DB
}

// NewSystemConfigRepository constructs a repository backed by GORM.
func NewSystemConfigRepository(db *gorm.DB) SystemConfigRepository {
	return &systemConfigRepository{db: db}
}

func (r *systemConfigRepository) ListPublic(ctx context.Context) ([]models.SystemConfig, error) {
	var entries []models.SystemConfig
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("config_key").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *systemConfigRepository) GetByKey(ctx context.Context, key string) (models.SystemConfig, error) {
	var entry models.SystemConfig
	err := r.db.WithContext(ctx).Where("config_key = ?", key).First(&entry).Error
	return entry, err
}

func (r *systemConfigRepository) Update(ctx context.Context, entry *models.SystemConfig) error {
	return r.db.WithContext(ctx).Save(entry).Error
}
