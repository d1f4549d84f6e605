package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// ScholarshipRepository persists scholarship programs.
type ScholarshipRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Scholarship, error)
	GetByID(ctx context.Context, id uint) (models.Scholarship, error)
	Create(ctx context.Context, scholarship *models.Scholarship) error
	Update(ctx context.Context, scholarship *models.Scholarship) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
	HardDelete(ctx context.Context, id uint) (int64, error)
}

type scholarshipRepository struct {
	db *gorm.DB
}

// NewScholarshipRepository constructs a repository backed by GORM.
func NewScholarshipRepository(db *gorm.DB) ScholarshipRepository {
	return &scholarshipRepository{db: db}
}

func (r *scholarshipRepository) List(ctx context.Context, activeOnly bool) ([]models.Scholarship, error) {
	query := r.db.WithContext(ctx).Model(&models.Scholarship{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var scholarships []models.Scholarship
	if err := query.Order("name").Find(&scholarships).Error; err != nil {
		return nil, err
	}
	return scholarships, nil
}

func (r *scholarshipRepository) GetByID(ctx context.Context, id uint) (models.Scholarship, error) {
	var scholarship models.Scholarship
	err := r.db.WithContext(ctx).First(&scholarship, id).Error
	return scholarship, err
}

func (r *scholarshipRepository) Create(ctx context.Context, scholarship *models.Scholarship) error {
	return r.db.WithContext(ctx).Create(scholarship).Error
}

func (r *scholarshipRepository) Update(ctx context.Context, scholarship *models.Scholarship) error {
	return r.db.WithContext(ctx).Save(scholarship).Error
}

func (r *scholarshipRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	return deactivateRow(r.db.WithContext(ctx), &models.Scholarship{}, id)
}

func (r *scholarshipRepository) HardDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Scholarship{}, id)
	return result.RowsAffected, result.Error
}
