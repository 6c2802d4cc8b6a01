package usecase

import (
	"context"
	"io"

	"thames/internal/domain/entity"
	"thames/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateVendorProfileInput defines the editable vendor profile fields.
// Nil pointers mean "leave unchanged".
type UpdateVendorProfileInput struct {
	VendorID     uuid.UUID
	UserID       uuid.UUID
	CompanyName  *string
	Description  *string
	ContactEmail *string
	ContactPhone *string
	Website      *string
}

// LocationInput defines the data for creating or updating a vendor location.
type LocationInput struct {
	VendorID     uuid.UUID
	UserID       uuid.UUID
	LocationID   *uuid.UUID // Set for updates, nil for creation.
	LocationName string
	Address      string
	City         string
	State        string
	Country      string
	PostalCode   string
	Latitude     float64
	Longitude    float64
	IsHQ         bool
}

// MediaUploadInput defines the data for a media gallery upload.
type MediaUploadInput struct {
	VendorID    uuid.UUID
	UserID      uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	Caption     string
}

// ProximitySearchInput defines a distance-constrained directory search.
type ProximitySearchInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

// --- Output DTOs ---

// PublicProfile is a vendor profile prepared for an anonymous viewer.
// Locations are already filtered by the vendor's tier.
type PublicProfile struct {
	Vendor           *entity.Vendor
	VisibleLocations []*entity.VendorLocation
	TotalLocations   int
	UpgradePrompt    bool // True when locations were hidden by tier gating.
	TierInfo         entity.TierInfo
}

// ProximityMatch pairs a vendor with the location that satisfied the search.
type ProximityMatch struct {
	Vendor          *entity.Vendor
	MatchedLocation *entity.VendorLocation
	DistanceKm      float64
}

// VendorPage is a paged directory listing.
type VendorPage struct {
	Vendors []*entity.Vendor
	Total   int64
}

// VendorUsecase defines vendor profile, location, and directory operations.
type VendorUsecase interface {
	// GetPublicProfile loads a published vendor by slug with tier-gated locations.
	GetPublicProfile(ctx context.Context, slug string) (*PublicProfile, error)

	// GetVendor loads a vendor for its own portal. The caller must belong to the vendor.
	GetVendor(ctx context.Context, userID, vendorID uuid.UUID) (*entity.Vendor, error)

	// Search lists published vendors for the public directory.
	Search(ctx context.Context, filter repository.VendorSearchFilter) (*VendorPage, error)

	// SearchNearby returns vendors within the radius of the origin, closest first.
	// Vendors below the multi-location tier are matched against their HQ only.
	SearchNearby(ctx context.Context, input ProximitySearchInput) ([]*ProximityMatch, error)

	// UpdateProfile updates the vendor's editable profile fields.
	UpdateProfile(ctx context.Context, input UpdateVendorProfileInput) (*entity.Vendor, error)

	// AddLocation creates a location, enforcing the tier's location limit.
	// The vendor's first location becomes HQ regardless of the input flag.
	AddLocation(ctx context.Context, input LocationInput) (*entity.VendorLocation, error)

	// UpdateLocation updates a location. Setting IsHQ clears the previous HQ.
	UpdateLocation(ctx context.Context, input LocationInput) (*entity.VendorLocation, error)

	// DeleteLocation removes a location. Deleting the HQ promotes the oldest
	// remaining location to HQ.
	DeleteLocation(ctx context.Context, userID, vendorID, locationID uuid.UUID) error

	// SetHQ marks the location as HQ and clears the flag everywhere else.
	SetHQ(ctx context.Context, userID, vendorID, locationID uuid.UUID) ([]*entity.VendorLocation, error)

	// AddMedia stores an uploaded file and records it in the gallery,
	// enforcing the tier's media limit.
	AddMedia(ctx context.Context, input MediaUploadInput) (*entity.MediaItem, error)

	// DeleteMedia removes a gallery item and its stored file.
	DeleteMedia(ctx context.Context, userID, vendorID, mediaID uuid.UUID) error
}
