package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/models"
)

// newTestDB opens an isolated in-memory database with every table migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.AuditLog{},
		&models.Career{},
		&models.Event{},
		&models.FAQ{},
		&models.Contact{},
		&models.Scholarship{},
		&models.CalendarEntry{},
		&models.PreUniversityProgram{},
		&models.Inscription{},
		&models.SystemConfig{},
	))

	return db
}
