package model

import (
	"time"

	"github.com/google/uuid"
)

// TierChangeRequestModel mirrors the 'tier_change_requests' table.
// The partial unique index enforces at most one pending request per
// (vendor, request type) even under concurrent submissions.
type TierChangeRequestModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID        uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_pending_request,where:status = 'pending'"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null"`
	RequestType     string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_pending_request,where:status = 'pending'"`
	CurrentTier     string     `gorm:"type:varchar(20);not null"`
	RequestedTier   string     `gorm:"type:varchar(20);not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	VendorNotes     string     `gorm:"type:varchar(500);not null"`
	RejectionReason string     `gorm:"type:varchar(1000)"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	RequestedAt     time.Time  `gorm:"not null"`
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TierChangeRequestModel) TableName() string {
	return "tier_change_requests"
}
