package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// AdminRepository persists administrator credentials.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (models.Admin, error)
	GetByID(ctx context.Context, id uint) (models.Admin, error)
	TouchLastLogin(ctx context.Context, id uint) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository constructs a repository backed by GORM.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	return admin, err
}

func (r *adminRepository) GetByID(ctx context.Context, id uint) (models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).First(&admin, id).Error
	return admin, err
}

func (r *adminRepository) TouchLastLogin(ctx context.Context, id uint) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", id).
		Update("last_login", now).
		Error
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).
		Error
}
