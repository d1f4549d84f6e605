package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// ContactRepository persists departmental contact records.
type ContactRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Contact, error)
	GetByID(ctx context.Context, id uint) (models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, contact *models.Contact) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
	HardDelete(ctx context.Context, id uint) (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository constructs a repository backed by GORM.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) List(ctx context.Context, activeOnly bool) ([]models.Contact, error) {
	query := r.db.WithContext(ctx).Model(&models.Contact{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var contacts []models.Contact
	if err := query.Order("priority DESC").Order("department").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).First(&contact, id).Error
	return contact, err
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) Update(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *contactRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	return deactivateRow(r.db.WithContext(ctx), &models.Contact{}, id)
}

func (r *contactRepository) HardDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Contact{}, id)
	return result.RowsAffected, result.Error
}
