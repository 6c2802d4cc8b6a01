package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel mirrors the 'vendors' table.
type VendorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyName  string    `gorm:"type:varchar(255);not null"`
	Slug         string    `gorm:"type:varchar(255);unique;not null"`
	Description  string    `gorm:"type:text"`
	ContactEmail string    `gorm:"type:varchar(255);not null"`
	ContactPhone string    `gorm:"type:varchar(50)"`
	Website      string    `gorm:"type:varchar(255)"`
	Tier         string    `gorm:"type:varchar(20);not null;default:'free';index"`
	Published    bool      `gorm:"not null;default:false;index"`
	Featured     bool      `gorm:"not null;default:false"`
	ProductCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Locations    []VendorLocationModel `gorm:"foreignKey:VendorID"`
	MediaGallery []MediaItemModel      `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}

// VendorLocationModel mirrors the 'vendor_locations' table.
// The partial unique index keeps at most one HQ per vendor at the database level.
type VendorLocationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_vendor_hq,where:is_hq = true"`
	LocationName string    `gorm:"type:varchar(255)"`
	Address      string    `gorm:"type:varchar(500);not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100)"`
	Country      string    `gorm:"type:varchar(100);not null;index"`
	PostalCode   string    `gorm:"type:varchar(20)"`
	Latitude     float64   `gorm:"type:decimal(9,6);not null"`
	Longitude    float64   `gorm:"type:decimal(9,6);not null"`
	IsHQ         bool      `gorm:"column:is_hq;not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorLocationModel) TableName() string {
	return "vendor_locations"
}

// MediaItemModel mirrors the 'vendor_media' table.
type MediaItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	Caption   string    `gorm:"type:varchar(255)"`
	MimeType  string    `gorm:"type:varchar(100)"`
	SizeBytes int64     `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaItemModel) TableName() string {
	return "vendor_media"
}
