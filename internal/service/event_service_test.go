package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

func TestEventDeleteRemovesRowOutright(t *testing.T) {
	db := newTestDB(t)
	audit := NewAuditService(
		repository.NewAuditLogRepository(db),
		repository.NewStatsRepository(db),
		repository.NewEventRepository(db),
		nil, "", zerolog.Nop(),
	)
	service := NewEventService(repository.NewEventRepository(db), audit, zerolog.Nop())
	ctx := context.Background()

	created, err := service.Create(ctx, 1, dto.EventRequest{
		Title:     "Feria de carreras",
		EventType: "feria",
		Date:      "2030-06-15",
		StartTime: "09:00",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, 1, created.ID))

	var count int64
	require.NoError(t, db.Model(&models.Event{}).Count(&count).Error)
	require.Zero(t, count)

	var entry models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditActionDelete).First(&entry).Error)
	require.Equal(t, "events", entry.TableName)
	require.Equal(t, created.ID, entry.RecordID)
}

func TestEventCreateRejectsMalformedDate(t *testing.T) {
	db := newTestDB(t)
	service := NewEventService(repository.NewEventRepository(db), nil, zerolog.Nop())

	_, err := service.Create(context.Background(), 1, dto.EventRequest{
		Title:     "Feria",
		EventType: "feria",
		Date:      "15/06/2030",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestEventDeleteMissingRecordReportsNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewEventService(repository.NewEventRepository(db), nil, zerolog.Nop())

	err := service.Delete(context.Background(), 1, 4242)
	require.ErrorIs(t, err, ErrNotFound)
}
