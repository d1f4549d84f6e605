package dto

import "github.com/infoemi/campus-api/internal/models"

// LoginRequest carries admin credentials for token issuance.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the bearer token accepted wherever Basic auth is.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// PasswordChangeRequest rotates the calling admin's password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// AuditLogListRequest filters the audit trail listing.
type AuditLogListRequest struct {
	Page      int
	PageSize  int
	Action    string
	TableName string
}

// AuditLogListResponse is a page of audit entries.
type AuditLogListResponse struct {
	Items      []models.AuditLog `json:"items"`
	Pagination PaginationMeta    `json:"pagination"`
}

// StatsResponse aggregates active record counts and recent activity.
type StatsResponse struct {
	Tables         map[string]int64 `json:"tables"`
	UpcomingEvents int64            `json:"upcoming_events"`
	RecentActivity int64            `json:"recent_activity"`
}
