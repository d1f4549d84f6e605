package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

func newAuthFixture(t *testing.T) (AuthService, repository.AdminRepository) {
	t.Helper()

	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Admin{
		Username:     "admin",
		PasswordHash: HashPassword("correct-horse"),
	}).Error)

	repo := repository.NewAdminRepository(db)
	return NewAuthService(repo, nil, "test-secret", time.Hour, zerolog.Nop()), repo
}

func TestVerifyUnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	_, unknownErr := service.Verify(ctx, "ghost", "correct-horse")
	require.ErrorIs(t, unknownErr, ErrUnauthorized)

	_, wrongErr := service.Verify(ctx, "admin", "wrong-password")
	require.ErrorIs(t, wrongErr, ErrUnauthorized)

	require.Equal(t, unknownErr, wrongErr)
}

func TestVerifySuccessRefreshesLastLogin(t *testing.T) {
	service, repo := newAuthFixture(t)
	ctx := context.Background()

	admin, err := service.Verify(ctx, "admin", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, "admin", admin.Username)

	stored, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
	require.WithinDuration(t, time.Now().UTC(), *stored.LastLogin, 5*time.Second)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	service, _ := newAuthFixture(t)

	response, err := service.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)
	require.Equal(t, int64(time.Hour.Seconds()), response.ExpiresIn)

	adminID, username, err := service.VerifyToken(response.Token)
	require.NoError(t, err)
	require.NotZero(t, adminID)
	require.Equal(t, "admin", username)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	service, _ := newAuthFixture(t)

	_, _, err := service.VerifyToken("not-a-token")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestChangePasswordRequiresCurrentPassword(t *testing.T) {
	service, repo := newAuthFixture(t)
	ctx := context.Background()

	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)

	err = service.ChangePassword(ctx, admin.ID, dto.PasswordChangeRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "brand-new-password",
	})
	require.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, service.ChangePassword(ctx, admin.ID, dto.PasswordChangeRequest{
		CurrentPassword: "correct-horse",
		NewPassword:     "brand-new-password",
	}))

	_, err = service.Verify(ctx, "admin", "brand-new-password")
	require.NoError(t, err)
}
