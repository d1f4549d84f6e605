package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/middleware"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "correct-horse"
)

func newHandlerDB(t *testing.T) *gorm.DB {
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
		&models.Scholarship{},
		&models.PreUniversityProgram{},
		&models.SystemConfig{},
	))
	return db
}

func newCareerApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := newHandlerDB(t)
	require.NoError(t, db.Create(&models.Admin{
		Username:     testAdminUser,
		PasswordHash: service.HashPassword(testAdminPassword),
	}).Error)

	audit := service.NewAuditService(
		repository.NewAuditLogRepository(db),
		repository.NewStatsRepository(db),
		repository.NewEventRepository(db),
		nil, "", zerolog.Nop(),
	)
	auth := service.NewAuthService(repository.NewAdminRepository(db), audit, "test-secret", time.Hour, zerolog.Nop())
	careers := service.NewCareerService(repository.NewCareerRepository(db), nil, audit, nil, zerolog.Nop())

	handler := NewCareerHandler(careers, zerolog.Nop())
	app := fiber.New()
	group := app.Group("/api/careers")
	handler.RegisterPublic(group)
	handler.RegisterProtected(group, middleware.AdminAuth(auth))
	return app, db
}

func basicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeEnvelope(t *testing.T, res *http.Response) utils.APIResponse {
	t.Helper()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestCareerListIsPublic(t *testing.T) {
	app, db := newCareerApp(t)

	require.NoError(t, db.Create(&models.Career{Code: "SIS", Name: "Sistemas", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Career{Code: "OLD", Name: "Archivada", IsActive: false}).Error)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/careers", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := decodeEnvelope(t, res)
	require.True(t, envelope.Success)
	require.Len(t, envelope.Data, 1)
}

func TestCareerCreateRequiresAuth(t *testing.T) {
	app, _ := newCareerApp(t)

	payload := map[string]interface{}{"code": "SIS", "name": "Sistemas"}

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/careers", payload))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	req := jsonRequest(http.MethodPost, "/api/careers", payload)
	req.Header.Set(fiber.HeaderAuthorization, basicAuthHeader(testAdminUser, "wrong"))
	res, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCareerCreateWithBasicAuth(t *testing.T) {
	app, db := newCareerApp(t)

	req := jsonRequest(http.MethodPost, "/api/careers", map[string]interface{}{
		"code": "SIS",
		"name": "Ingeniería de Sistemas",
	})
	req.Header.Set(fiber.HeaderAuthorization, basicAuthHeader(testAdminUser, testAdminPassword))

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var stored models.Career
	require.NoError(t, db.Where("code = ?", "SIS").First(&stored).Error)
	require.Equal(t, "Ingeniería de Sistemas", stored.Name)

	var entry models.AuditLog
	require.NoError(t, db.Where("table_name = ?", "careers").First(&entry).Error)
	require.Equal(t, models.AuditActionCreate, entry.Action)
	require.NotZero(t, entry.AdminID)
}

func TestCareerCreateDuplicateCodeConflicts(t *testing.T) {
	app, db := newCareerApp(t)

	require.NoError(t, db.Create(&models.Career{Code: "SIS", Name: "Sistemas", IsActive: true}).Error)

	req := jsonRequest(http.MethodPost, "/api/careers", map[string]interface{}{
		"code": "SIS",
		"name": "Duplicada",
	})
	req.Header.Set(fiber.HeaderAuthorization, basicAuthHeader(testAdminUser, testAdminPassword))

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestCareerCreateRejectsInvalidPayload(t *testing.T) {
	app, _ := newCareerApp(t)

	req := jsonRequest(http.MethodPost, "/api/careers", map[string]interface{}{"name": "sin código"})
	req.Header.Set(fiber.HeaderAuthorization, basicAuthHeader(testAdminUser, testAdminPassword))

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
}

func TestCareerGetRejectsMalformedID(t *testing.T) {
	app, _ := newCareerApp(t)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/careers/abc", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCareerGetMissingRecord(t *testing.T) {
	app, _ := newCareerApp(t)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/careers/999", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}
