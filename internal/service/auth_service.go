package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/dto"
	"github.com/infoemi/campus-api/internal/models"
	"github.com/infoemi/campus-api/internal/repository"
)

// AuthService verifies admin credentials and issues bearer tokens.
type AuthService interface {
	Verify(ctx context.Context, username, password string) (models.Admin, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	VerifyToken(token string) (uint, string, error)
	ChangePassword(ctx context.Context, adminID uint, req dto.PasswordChangeRequest) error
}

type authService struct {
	repo   repository.AdminRepository
	audit  AuditService
	secret []byte
	ttl    time.Duration
	logger zerolog.Logger
}

// NewAuthService constructs the credential verifier.
func NewAuthService(repo repository.AdminRepository, audit AuditService, secret string, ttl time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		repo:   repo,
		audit:  audit,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger.With().Str("component", "auth_service").Logger(),
	}
}

// Verify checks the supplied credentials against the stored digest. Unknown
// usernames and wrong passwords both yield ErrUnauthorized so the failure
// mode is indistinguishable to the caller. A successful check refreshes the
// admin's last-login timestamp.
func (s *authService) Verify(ctx context.Context, username, password string) (models.Admin, error) {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Admin{}, ErrUnauthorized
		}
		return models.Admin{}, err
	}

	digest := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(admin.PasswordHash)) != 1 {
		return models.Admin{}, ErrUnauthorized
	}

	if err := s.repo.TouchLastLogin(ctx, admin.ID); err != nil {
		s.logger.Warn().Err(err).Uint("admin_id", admin.ID).Msg("failed to update last login")
	}

	return admin, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	admin, err := s.Verify(ctx, req.Username, req.Password)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      fmt.Sprintf("%d", admin.ID),
		"username": admin.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.ttl.Seconds()),
	}, nil
}

// VerifyToken validates a bearer token issued by Login and returns the admin
// identity embedded in it.
func (s *authService) VerifyToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrUnauthorized
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return 0, "", ErrUnauthorized
	}

	var adminID uint
	if _, err := fmt.Sscanf(subject, "%d", &adminID); err != nil {
		return 0, "", ErrUnauthorized
	}

	username, _ := claims["username"].(string)
	return adminID, username, nil
}

func (s *authService) ChangePassword(ctx context.Context, adminID uint, req dto.PasswordChangeRequest) error {
	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnauthorized
		}
		return err
	}

	current := HashPassword(req.CurrentPassword)
	if subtle.ConstantTimeCompare([]byte(current), []byte(admin.PasswordHash)) != 1 {
		return ErrUnauthorized
	}

	if err := s.repo.UpdatePassword(ctx, adminID, HashPassword(req.NewPassword)); err != nil {
		return err
	}

	if s.audit != nil {
		// Digests stay out of the audit trail.
		s.audit.Record(ctx, models.AuditLog{
			AdminID:   adminID,
			Action:    models.AuditActionUpdate,
			TableName: "admins",
			RecordID:  adminID,
		})
	}

	return nil
}

// HashPassword derives the stored credential digest.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
