package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// InscriptionRepository persists enrollment-window records.
type InscriptionRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Inscription, error)
	GetByID(ctx context.Context, id uint) (models.Inscription, error)
	Create(ctx context.Context, inscription *models.Inscription) error
	Update(ctx context.Context, inscription *models.Inscription) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
	HardDelete(ctx context.Context, id uint) (int64, error)
}

type inscriptionRepository struct {
	db *gorm.DB
}

// NewInscriptionRepository constructs a repository backed by GORM.
func NewInscriptionRepository(db *gorm.DB) InscriptionRepository {
	return &inscriptionRepository{db: db}
}

func (r *inscriptionRepository) List(ctx context.Context, activeOnly bool) ([]models.Inscription, error) {
	query := r.db.WithContext(ctx).Model(&models.Inscription{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var inscriptions []models.Inscription
	if err := query.Order("period DESC").Find(&inscriptions).Error; err != nil {
		return nil, err
	}
	return inscriptions, nil
}

func (r *inscriptionRepository) GetByID(ctx context.Context, id uint) (models.Inscription, error) {
	var inscription models.Inscription
	err := r.db.WithContext(ctx).First(&inscription, id).Error
	return inscription, err
}

func (r *inscriptionRepository) Create(ctx context.Context, inscription *models.Inscription) error {
	return r.db.WithContext(ctx).Create(inscription).Error
}

func (r *inscriptionRepository) Update(ctx context.Context, inscription *models.Inscription) error {
	return r.db.WithContext(ctx).Save(inscription).Error
}

func (r *inscriptionRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	return deactivateRow(r.db.WithContext(ctx), &models.Inscription{}, id)
}

func (r *inscriptionRepository) HardDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Inscription{}, id)
	return result.RowsAffected, result.Error
}
