package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

func newBotFixture(t *testing.T, cache *redis.Client) (BotService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	service := NewBotService(BotServiceDeps{
		Careers:       repository.NewCareerRepository(db),
		Events:        repository.NewEventRepository(db),
		PreUniversity: repository.NewPreUniversityRepository(db),
		Scholarships:  repository.NewScholarshipRepository(db),
		FAQs:          repository.NewFAQRepository(db),
		Contacts:      repository.NewContactRepository(db),
		Calendar:      repository.NewCalendarRepository(db),
		Inscriptions:  repository.NewInscriptionRepository(db),
	}, cache, time.Minute, zerolog.Nop())
	return service, db
}

func TestBotCareersServesFromCacheOnSecondRead(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	service, db := newBotFixture(t, cache)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Career{Code: "SIS", Name: "Sistemas", IsActive: true}).Error)

	first, err := service.Careers(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Row removal is invisible while the cached projection lives.
	require.NoError(t, db.Unscoped().Delete(&models.Career{}, "code = ?", "SIS").Error)

	cached, err := service.Careers(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	require.Equal(t, "Sistemas", cached[0].Name)
}

func TestBotProjectionsWorkWithoutCache(t *testing.T) {
	service, db := newBotFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.FAQ{Question: "¿Dónde?", Answer: "La Paz", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Contact{Department: "Admisiones", Phone: "222-0000", IsActive: true}).Error)

	faqs, err := service.FAQs(ctx)
	require.NoError(t, err)
	require.Len(t, faqs, 1)

	contacts, err := service.Contacts(ctx)
	require.NoError(t, err)
	require.Equal(t, "Admisiones", contacts[0].Department)
}

func TestBotProgramsExcludeExpired(t *testing.T) {
	service, db := newBotFixture(t, nil)
	ctx := context.Background()

	past := time.Now().UTC().Add(-30 * 24 * time.Hour)
	future := time.Now().UTC().Add(30 * 24 * time.Hour)
	require.NoError(t, db.Create(&models.PreUniversityProgram{
		ProgramName: "Vencido",
		Description: "terminado",
		EndDate:     &past,
		IsActive:    true,
	}).Error)
	require.NoError(t, db.Create(&models.PreUniversityProgram{
		ProgramName: "Vigente",
		Description: "en curso",
		EndDate:     &future,
		IsActive:    true,
	}).Error)
	require.NoError(t, db.Create(&models.PreUniversityProgram{
		ProgramName: "Sin fecha",
		Description: "permanente",
		IsActive:    true,
	}).Error)

	programs, err := service.Programs(ctx)
	require.NoError(t, err)
	require.Len(t, programs, 2)
	for _, p := range programs {
		require.NotEqual(t, "Vencido", p.ProgramName)
	}
}
