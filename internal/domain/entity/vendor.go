// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is the directory's central aggregate: a marine industry company
// with a public profile gated by its subscription tier.
type Vendor struct {
	ID            uuid.UUID        // The Global Unique Identifier (GUID) for the vendor.
	CompanyName   string           // The vendor's registered company name.
	Slug          string           // URL-safe identifier for the public profile page.
	Description   string           // Profile description shown on the public page.
	ContactEmail  string           // Primary contact email; recipient for tier decision notices.
	ContactPhone  string           // Optional contact phone number.
	Website       string           // Optional company website URL.
	Tier          Tier             // Current subscription tier; gates most downstream features.
	Published     bool             // Whether the profile is visible to anonymous visitors.
	Featured      bool             // Whether the profile is featured in its category.
	Locations     []VendorLocation // Office locations; at most one carries IsHQ.
	MediaGallery  []MediaItem      // Uploaded media, capped per tier.
	ProductCount  int              // Number of products, counted against the tier cap.
	CreatedAt     time.Time        // Timestamp of when the vendor was created.
	UpdatedAt     time.Time        // Timestamp of the last modification.
}

// HQ returns the vendor's headquarters location. When no location is
// explicitly flagged, the first location stands in as HQ so lower tiers
// always have something to show; ok is false only for an empty list.
func (v *Vendor) HQ() (VendorLocation, bool) {
	for _, loc := range v.Locations {
		if loc.IsHQ {
			return loc, true
		}
	}
	if len(v.Locations) > 0 {
		return v.Locations[0], true
	}

	return VendorLocation{}, false
}

// VendorLocation is a single office address with geographic coordinates.
type VendorLocation struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the location.
	VendorID     uuid.UUID // The vendor that owns this location.
	LocationName string    // Optional label, e.g. "Monaco Office".
	Address      string    // Street address.
	City         string    // City name.
	State        string    // Optional state or region.
	Country      string    // Country name.
	PostalCode   string    // Optional postal code.
	Latitude     float64   // Geographic latitude; must be finite.
	Longitude    float64   // Geographic longitude; must be finite.
	IsHQ         bool      // At most one location per vendor carries this flag.
	CreatedAt    time.Time // Timestamp of when this location was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// HasValidCoordinates reports whether the location carries usable
// coordinates. NaN, infinite and out-of-range values must surface as an
// explicit error state, never render silently.
func (l VendorLocation) HasValidCoordinates() bool {
	if l.Latitude != l.Latitude || l.Longitude != l.Longitude { // NaN check
		return false
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return false
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return false
	}

	return true
}

// MediaItem is a single entry in a vendor's media gallery.
type MediaItem struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the media item.
	VendorID  uuid.UUID // The vendor that owns this item.
	URL       string    // Public URL of the stored file.
	Caption   string    // Optional caption.
	MimeType  string    // Content type recorded at upload time.
	SizeBytes int64     // File size recorded at upload time.
	CreatedAt time.Time // Timestamp of when this item was uploaded.
}
