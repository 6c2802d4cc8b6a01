package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string     `gorm:"type:varchar(255);unique;not null"`
	Name            string     `gorm:"type:varchar(100)"`
	Role            string     `gorm:"type:varchar(20);not null;default:'vendor'"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	VendorID        *uuid.UUID `gorm:"type:uuid;index"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	TokenVersion    int        `gorm:"not null;default:0"`
	RejectionReason string     `gorm:"type:varchar(1000)"`
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
