package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

func newCareerFixture(t *testing.T) (CareerService, AuditService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	audit := NewAuditService(
		repository.NewAuditLogRepository(db),
		repository.NewStatsRepository(db),
		repository.NewEventRepository(db),
		nil, "", zerolog.Nop(),
	)
	service := NewCareerService(repository.NewCareerRepository(db), nil, audit, nil, zerolog.Nop())
	return service, audit, db
}

func sampleCareer() dto.CareerRequest {
	return dto.CareerRequest{
		Code:     "SIS",
		Name:     "Ingeniería de Sistemas",
		Faculty:  "Ingeniería",
		Duration: "5 years",
		Modality: "Presencial",
		Campus:   "La Paz",
	}
}

func TestCareerCreateAndReadBack(t *testing.T) {
	service, _, db := newCareerFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, sampleCareer())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.True(t, created.IsActive)

	loaded, err := service.GetByCode(ctx, "SIS")
	require.NoError(t, err)
	require.Equal(t, created.ID, loaded.ID)

	var entries []models.AuditLog
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	require.Equal(t, models.AuditActionCreate, entries[0].Action)
	require.Equal(t, "careers", entries[0].TableName)
	require.Equal(t, created.ID, entries[0].RecordID)
}

func TestCareerCreateDuplicateCodeConflicts(t *testing.T) {
	service, _, _ := newCareerFixture(t)
	ctx := context.Background()

	_, err := service.Create(ctx, 1, sampleCareer())
	require.NoError(t, err)

	_, err = service.Create(ctx, 1, sampleCareer())
	require.ErrorIs(t, err, ErrConflict)
}

func TestCareerUpdateAuditsChangedFieldsOnly(t *testing.T) {
	service, _, db := newCareerFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, sampleCareer())
	require.NoError(t, err)

	updated := sampleCareer()
	updated.Duration = "5 años"
	_, err = service.Update(ctx, 1, created.ID, updated)
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditActionUpdate).First(&entry).Error)
	require.Len(t, entry.Changes, 1)
	require.Contains(t, entry.Changes, "duration")
}

func TestCareerNoopUpdateStillWritesAuditEntry(t *testing.T) {
	service, _, db := newCareerFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, sampleCareer())
	require.NoError(t, err)

	_, err = service.Update(ctx, 1, created.ID, sampleCareer())
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditActionUpdate).First(&entry).Error)
	require.Empty(t, entry.Changes)
}

func TestCareerDeleteDeactivatesWithoutRemovingRow(t *testing.T) {
	service, _, _ := newCareerFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, sampleCareer())
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, 1, created.ID))

	active, err := service.List(ctx, true)
	require.NoError(t, err)
	require.Empty(t, active)

	all, err := service.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.False(t, all[0].IsActive)
}

func TestCareerDeleteMissingRecordReportsNotFound(t *testing.T) {
	service, _, _ := newCareerFixture(t)

	err := service.Delete(context.Background(), 1, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCareerUpdatePreservesCurriculumURL(t *testing.T) {
	service, _, db := newCareerFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, sampleCareer())
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Career{}).
		Where("id = ?", created.ID).
		Update("curriculum_url", "https://cdn.example/sis.jpg").Error)

	updated := sampleCareer()
	updated.Name = "Ingeniería de Sistemas y Computación"
	result, err := service.Update(ctx, 1, created.ID, updated)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/sis.jpg", result.CurriculumURL)
}
