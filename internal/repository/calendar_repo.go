package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// CalendarRepository persists academic calendar entries.
type CalendarRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.CalendarEntry, error)
	GetByID(ctx context.Context, id uint) (models.CalendarEntry, error)
	Create(ctx context.Context, entry *models.CalendarEntry) error
	Update(ctx context.Context, entry *models.CalendarEntry) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
	HardDelete(ctx context.Context, id uint) (int64, error)
}

type calendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository constructs a repository backed by GORM.
func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) List(ctx context.Context, activeOnly bool) ([]models.CalendarEntry, error) {
	query := r.db.WithContext(ctx).Model(&models.CalendarEntry{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var entries []models.CalendarEntry
	if err := query.Order("start_date").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *calendarRepository) GetByID(ctx context.Context, id uint) (models.CalendarEntry, error) {
	var entry models.CalendarEntry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	return entry, err
}

func (r *calendarRepository) Create(ctx context.Context, entry *models.CalendarEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *calendarRepository) Update(ctx context.Context, entry *models.CalendarEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *calendarRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	return deactivateRow(r.db.WithContext(ctx), &models.CalendarEntry{}, id)
}

func (r *calendarRepository) HardDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.CalendarEntry{}, id)
	return result.RowsAffected, result.Error
}
