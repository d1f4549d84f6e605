package repository

import (
	"context"

	"gorm.io/gorm"
)

// StatsRepository aggregates record counts across catalog tables.
type StatsRepository interface {
	CountActive(ctx context.Context, table string) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository constructs the stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountActive(ctx context.Context, table string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(table).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
