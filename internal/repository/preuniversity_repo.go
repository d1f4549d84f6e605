package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// PreUniversityRepository persists preparatory programs.
type PreUniversityRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.PreUniversityProgram, error)
	ListUpcoming(ctx context.Context) ([]models.PreUniversityProgram, error)
	GetByID(ctx context.Context, id uint) (models.PreUniversityProgram, error)
	Create(ctx context.Context, program *models.PreUniversityProgram) error
	Update(ctx context.Context, program *models.PreUniversityProgram) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
	HardDelete(ctx context.Context, id uint) (int64, error)
}

type preUniversityRepository struct {
	db *gorm.DB
}

// NewPreUniversityRepository constructs a repository backed by GORM.
func NewPreUniversityRepository(db *gorm.DB) PreUniversityRepository {
	return &preUniversityRepository{db: db}
}

func (r *preUniversityRepository) List(ctx context.Context, activeOnly bool) ([]models.PreUniversityProgram, error) {
	query := r.db.WithContext(ctx).Model(&models.PreUniversityProgram{})
	if activeOnly {
		query = query.Where("is_active = ?", true).Order("start_date").Order("program_name")
	} else {
		query = query.Order("start_date DESC")
	}

	var programs []models.PreUniversityProgram
	if err := query.Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// ListUpcoming returns active programs whose end date has not passed yet.
// Programs without an end date are always included.
func (r *preUniversityRepository) ListUpcoming(ctx context.Context) ([]models.PreUniversityProgram, error) {
	var programs []models.PreUniversityProgram
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("end_date IS NULL OR end_date >= ?", startOfDay(time.Now().UTC())).
		Order("start_date").Order("program_name").
		Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *preUniversityRepository) GetByID(ctx context.Context, id uint) (models.PreUniversityProgram, error) {
	var program models.PreUniversityProgram
	err := r.db.WithContext(ctx).First(&program, id).Error
	return program, err
}

func (r *preUniversityRepository) Create(ctx context.Context, program *models.PreUniversityProgram) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *preUniversityRepository) Update(ctx context.Context, program *models.PreUniversityProgram) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *preUniversityRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	return deactivateRow(r.db.WithContext(ctx), &models.PreUniversityProgram{}, id)
}

func (r *preUniversityRepository) HardDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.PreUniversityProgram{}, id)
	return result.RowsAffected, result.Error
}
