package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// FAQRepository persists frequently asked questions.
type FAQRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.FAQ, error)
	GetByID(ctx context.Context, id uint) (models.FAQ, error)
	Create(ctx context.Context, faq *models.FAQ) error
	Update(ctx context.Context, faq *models.FAQ) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
	HardDelete(ctx context.Context, id uint) (int64, error)
}

type faqRepository struct {
	db *gorm.DB
}

// NewFAQRepository constructs a repository backed by GORM.
func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) List(ctx context.Context, activeOnly bool) ([]models.FAQ, error) {
	query := r.db.WithContext(ctx).Model(&models.FAQ{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var faqs []models.FAQ
	if err := query.Order("priority DESC").Order("id").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepository) GetByID(ctx context.Context, id uint) (models.FAQ, error) {
	var faq models.FAQ
	err := r.db.WithContext(ctx).First(&faq, id).Error
	return faq, err
}

func (r *faqRepository) Create(ctx context.Context, faq *models.FAQ) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

func (r *faqRepository) Update(ctx context.Context, faq *models.FAQ) error {
	return r.db.WithContext(ctx).Save(faq).Error
}

func (r *faqRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	return deactivateRow(r.db.WithContext(ctx), &models.FAQ{}, id)
}

func (r *faqRepository) HardDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.FAQ{}, id)
	return result.RowsAffected, result.Error
}
