package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel mirrors the append-only 'audit_logs' table.
type AuditLogModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Event     string         `gorm:"type:varchar(50);not null;index"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index"`
	Email     string         `gorm:"type:varchar(255);index"`
	IPAddress string         `gorm:"type:varchar(45)"`
	UserAgent string         `gorm:"type:varchar(500)"`
	TokenID   string         `gorm:"type:varchar(100)"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
