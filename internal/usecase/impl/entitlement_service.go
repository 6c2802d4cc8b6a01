// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "thames/internal/delivery/context"
	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// entitlementService implements the EntitlementUsecase interface.
type entitlementService struct {
	userRepo   repository.UserRepository
	vendorRepo repository.VendorRepository
	catalog    *entity.TierCatalog
	logger     *slog.Logger
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	VendorRepo repository.VendorRepository
	Logger     *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		userRepo:   params.UserRepo,
		vendorRepo: params.VendorRepo,
		catalog:    entity.DefaultTierCatalog(),
		logger:     params.Logger,
	}
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveAccess computes the effective access of a user over a vendor.
// Resolution fails closed: lookup errors yield an error, never a permissive default.
func (srv *entitlementService) ResolveAccess(ctx context.Context, userID, vendorID uuid.UUID) (*usecase.EffectiveAccess, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrForbidden.WrapMessage("unknown user")
		}

		return nil, errors.Wrap(err, "failed to find user for access resolution")
	}

	if user.Role == entity.RoleAdmin {
		return srv.adminAccess(ctx, vendorID)
	}

	if user.Status != entity.AccountStatusApproved {
		return nil, domainerrors.ErrAccountNotApproved
	}

	if user.VendorID == nil || *user.VendorID != vendorID {
		srv.log(ctx).Warn("Access denied: user does not belong to vendor",
			slog.String("userID", userID.String()),
			slog.String("vendorID", vendorID.String()))

		return nil, domainerrors.ErrForbidden
	}

	return srv.ResolveVendorAccess(ctx, vendorID)
}

// ResolveVendorAccess computes access from the vendor's stored tier alone.
func (srv *entitlementService) ResolveVendorAccess(ctx context.Context, vendorID uuid.UUID) (*usecase.EffectiveAccess, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor for access resolution")
	}

	return srv.accessForTier(entity.NormalizeTier(string(vendor.Tier))), nil
}

// RequireFeature enforces a feature gate for the caller.
func (srv *entitlementService) RequireFeature(ctx context.Context, userID, vendorID uuid.UUID, feature entity.FeatureKey) (*usecase.EffectiveAccess, error) {
	access, err := srv.ResolveAccess(ctx, userID, vendorID)
	if err != nil {
		return nil, err
	}

	if !access.HasFeature(feature) {
		srv.log(ctx).Info("Feature blocked by tier",
			slog.String("vendorID", vendorID.String()),
			slog.String("feature", string(feature)),
			slog.String("tier", string(access.Tier)))

		return nil, domainerrors.ErrTierRestricted
	}

	return access, nil
}

// Catalog returns the full tier catalog.
func (srv *entitlementService) Catalog(_ context.Context) *entity.TierCatalog {
	return srv.catalog
}

func (srv *entitlementService) accessForTier(tier entity.Tier) *usecase.EffectiveAccess {
	info := srv.catalog.InfoFor(tier)
	features := make(map[entity.FeatureKey]bool, len(srv.catalog.MinimumTier))
	for feature, minimum := range srv.catalog.MinimumTier {
		features[feature] = tier.AtLeast(minimum)
	}

	return &usecase.EffectiveAccess{
		Tier:         tier,
		Features:     features,
		MaxLocations: info.MaxLocations,
		MaxProducts:  info.MaxProducts,
		MaxMedia:     info.MaxMedia,
	}
}

// adminAccess forces feature access while still reporting the vendor's real
// tier, so admin tooling sees the account as it is.
func (srv *entitlementService) adminAccess(ctx context.Context, vendorID uuid.UUID) (*usecase.EffectiveAccess, error) {
	access, err := srv.ResolveVendorAccess(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	access.IsAdmin = true

	return access, nil
}
