package usecase

import (
	"context"

	"thames/internal/domain/entity"

	"github.com/google/uuid"
)

// EffectiveAccess is the resolved entitlement set for one caller against one vendor.
// Admins bypass tier gating entirely; unknown tiers resolve to the free tier.
type EffectiveAccess struct {
	Tier         entity.Tier
	IsAdmin      bool
	Features     map[entity.FeatureKey]bool
	MaxLocations int
	MaxProducts  int
	MaxMedia     int
}

// HasFeature reports whether the feature is available to this caller.
func (a *EffectiveAccess) HasFeature(feature entity.FeatureKey) bool {
	if a.IsAdmin {
		return true
	}

	return a.Features[feature]
}

// EntitlementUsecase resolves what a caller may do against a vendor account.
type EntitlementUsecase interface {
	// ResolveAccess computes the effective access of a user over a vendor.
	// Resolution fails closed: any lookup error yields no access, not free-tier access.
	ResolveAccess(ctx context.Context, userID, vendorID uuid.UUID) (*EffectiveAccess, error)

	// ResolveVendorAccess computes access from the vendor's stored tier alone,
	// for contexts with no authenticated user (public profile rendering).
	ResolveVendorAccess(ctx context.Context, vendorID uuid.UUID) (*EffectiveAccess, error)

	// RequireFeature returns ErrTierRestricted when the caller's tier does not
	// include the feature. Admins always pass.
	RequireFeature(ctx context.Context, userID, vendorID uuid.UUID, feature entity.FeatureKey) (*EffectiveAccess, error)

	// Catalog returns the full tier catalog for pricing pages.
	Catalog(ctx context.Context) *entity.TierCatalog
}
