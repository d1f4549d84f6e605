package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// EventRepository persists scheduled events.
type EventRepository interface {
	List(ctx context.Context, upcomingOnly bool, limit int) ([]models.Event, error)
	GetByID(ctx context.Context, id uint) (models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
	HardDelete(ctx context.Context, id uint) (int64, error)
	CountUpcoming(ctx context.Context, within time.Duration) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository constructs a repository backed by GORM.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context, upcomingOnly bool, limit int) ([]models.Event, error) {
	query := r.db.WithContext(ctx).Model(&models.Event{})
	if upcomingOnly {
		query = query.
			Where("date >= ?", startOfDay(time.Now().UTC())).
			Where("is_active = ?", true).
			Order("date").Order("start_time")
	} else {
		query = query.Order("date DESC")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	return event, err
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	return deactivateRow(r.db.WithContext(ctx), &models.Event{}, id)
}

func (r *eventRepository) HardDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	return result.RowsAffected, result.Error
}

func (r *eventRepository) CountUpcoming(ctx context.Context, within time.Duration) (int64, error) {
	now := startOfDay(time.Now().UTC())
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("is_active = ?", true).
		Where("date BETWEEN ? AND ?", now, now.Add(within)).
		Count(&count).Error
	return count, err
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
