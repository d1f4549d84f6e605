package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// CareerRepository persists academic programs.
type CareerRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Career, error)
	GetByID(ctx context.Context, id uint) (models.Career, error)
	GetByCode(ctx context.Context, code string) (models.Career, error)
	Create(ctx context.Context, career *models.Career) error
	Update(ctx context.Context, career *models.Career) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
	HardDelete(ctx context.Context, id uint) (int64, error)
}

type careerRepository struct {
	db *gorm.DB
}

// NewCareerRepository constructs a repository backed by GORM.
func NewCareerRepository(db *gorm.DB) CareerRepository {
	return &careerRepository{db: db}
}

func (r *careerRepository) List(ctx context.Context, activeOnly bool) ([]models.Career, error) {
	query := r.db.WithContext(ctx).Model(&models.Career{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var careers []models.Career
	if err := query.Order("name").Find(&careers).Error; err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *careerRepository) GetByID(ctx context.Context, id uint) (models.Career, error) {
	var career models.Career
	err := r.db.WithContext(ctx).First(&career, id).Error
	return career, err
}

func (r *careerRepository) GetByCode(ctx context.Context, code string) (models.Career, error) {
	var career models.Career
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&career).Error
	return career, err
}

func (r *careerRepository) Create(ctx context.Context, career *models.Career) error {
	return r.db.WithContext(ctx).Create(career).Error
}

func (r *careerRepository) Update(ctx context.Context, career *models.Career) error {
	return r.db.WithContext(ctx).Save(career).Error
}

func (r *careerRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	return deactivateRow(r.db.WithContext(ctx), &models.Career{}, id)
}

func (r *careerRepository) HardDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Career{}, id)
	return result.RowsAffected, result.Error
}
