package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

type failingAuditRepo struct{}

func (failingAuditRepo) Create(context.Context, *models.AuditLog) error {
	return errors.New("disk full")
}

func (failingAuditRepo) List(context.Context, repository.AuditLogFilter) ([]models.AuditLog, int64, error) {
	return nil, 0, nil
}

func (failingAuditRepo) CountSince(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func TestRecordSwallowsRepositoryFailure(t *testing.T) {
	db := newTestDB(t)
	service := NewAuditService(
		failingAuditRepo{},
		repository.NewStatsRepository(db),
		repository.NewEventRepository(db),
		nil, "", zerolog.Nop(),
	)

	// Must not panic or surface the failure.
	service.Record(context.Background(), models.AuditLog{
		AdminID:   1,
		Action:    models.AuditActionCreate,
		TableName: "careers",
		RecordID:  7,
	})
}

func TestAuditListPaginatesAndFilters(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewAuditLogRepository(db)
	service := NewAuditService(repo, repository.NewStatsRepository(db), repository.NewEventRepository(db), nil, "", zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.AuditLog{
			AdminID:   1,
			Action:    models.AuditActionCreate,
			TableName: "careers",
			RecordID:  uint(i + 1),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.AuditLog{
		AdminID:   1,
		Action:    models.AuditActionDelete,
		TableName: "events",
		RecordID:  99,
	}))

	page, err := service.List(ctx, dto.AuditLogListRequest{Page: 1, PageSize: 3, Action: models.AuditActionCreate})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	require.EqualValues(t, 5, page.Pagination.TotalItems)
	require.Equal(t, 2, page.Pagination.TotalPages)

	filtered, err := service.List(ctx, dto.AuditLogListRequest{Page: 1, PageSize: 10, TableName: "events"})
	require.NoError(t, err)
	require.Len(t, filtered.Items, 1)
}

func TestStatsCountsActiveRecordsAndRecentActivity(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewAuditLogRepository(db)
	service := NewAuditService(repo, repository.NewStatsRepository(db), repository.NewEventRepository(db), nil, "", zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Career{Code: "SIS", Name: "Sistemas", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Career{Code: "CIV", Name: "Civil", IsActive: false}).Error)
	require.NoError(t, db.Create(&models.Event{
		Title:     "Feria",
		EventType: "feria",
		Date:      time.Now().UTC().Add(48 * time.Hour),
		IsActive:  true,
	}).Error)
	require.NoError(t, repo.Create(ctx, &models.AuditLog{AdminID: 1, Action: models.AuditActionCreate, TableName: "careers", RecordID: 1}))

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Tables["careers"])
	require.EqualValues(t, 1, stats.Tables["events"])
	require.EqualValues(t, 1, stats.UpcomingEvents)
	require.EqualValues(t, 1, stats.RecentActivity)
}
