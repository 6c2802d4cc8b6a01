// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"thames/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrLocationNotFound is returned when a vendor location is not found.
	ErrLocationNotFound = errors.New("vendor location not found")
	// ErrDuplicateSlug is returned when creating a vendor with a slug that is already taken.
	ErrDuplicateSlug = errors.New("vendor slug already taken")
)

// VendorSearchFilter narrows public directory listings.
// Zero values mean "no filter" for the corresponding field.
type VendorSearchFilter struct {
	Query         string       // Free-text match against company name and description.
	Tier          *entity.Tier // Exact tier match.
	Country       string       // Country of at least one visible location.
	FeaturedOnly  bool         // Only vendors flagged as featured.
	PublishedOnly bool         // Only published vendors; always set for public queries.
	Limit         int
	Offset        int
}

// VendorRepository defines the interface for vendor-related database operations.
type VendorRepository interface {
	// FindByID retrieves a vendor with its locations and media gallery preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindBySlug retrieves a vendor by its public URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Vendor, error)

	// Search lists vendors matching the filter, ordered by featured first then company name.
	Search(ctx context.Context, filter VendorSearchFilter) ([]*entity.Vendor, int64, error)

	// Create persists a new vendor entity to the storage.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// Update modifies an existing vendor entity in the storage.
	Update(ctx context.Context, vendor *entity.Vendor) error

	// UpdateTier sets the vendor's subscription tier.
	UpdateTier(ctx context.Context, id uuid.UUID, tier entity.Tier) error

	// CreateLocation persists a new location for a vendor.
	CreateLocation(ctx context.Context, location *entity.VendorLocation) error

	// UpdateLocation modifies an existing vendor location.
	UpdateLocation(ctx context.Context, location *entity.VendorLocation) error

	// DeleteLocation removes a location by its ID.
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	// FindLocationByID retrieves a single location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.VendorLocation, error)

	// FindLocationsByVendor retrieves all locations for a vendor, HQ first.
	FindLocationsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorLocation, error)

	// ClearHQ unsets the HQ flag on all locations of a vendor.
	// Used before promoting another location so at most one HQ exists.
	ClearHQ(ctx context.Context, vendorID uuid.UUID) error

	// CountLocations returns the number of locations a vendor has.
	CountLocations(ctx context.Context, vendorID uuid.UUID) (int64, error)

	// FindPublishedWithCoordinates retrieves all published vendors that have
	// at least one location with valid coordinates. Used by proximity search.
	FindPublishedWithCoordinates(ctx context.Context) ([]*entity.Vendor, error)

	// AddMedia persists a new media gallery item for a vendor.
	AddMedia(ctx context.Context, item *entity.MediaItem) error

	// DeleteMedia removes a media gallery item by its ID.
	DeleteMedia(ctx context.Context, id uuid.UUID) error

	// CountMedia returns the number of media gallery items a vendor has.
	CountMedia(ctx context.Context, vendorID uuid.UUID) (int64, error)
}
