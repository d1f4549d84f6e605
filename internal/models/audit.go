package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit actions recorded for catalog mutations.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditLog captures an immutable record of an administrative mutation.
// Changes maps field name to {old, new}; it is null for creates and deletes.
type AuditLog struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	AdminID   uint              `gorm:"not null;index" json:"admin_id"`
	Action    string            `gorm:"size:16;not null" json:"action"`
	TableName string            `gorm:"size:64;not null;index" json:"table_name"`
	RecordID  uint              `json:"record_id"`
	Changes   datatypes.JSONMap `gorm:"type:json" json:"changes"`
	CreatedAt time.Time         `gorm:"index" json:"created_at"`
}
