package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"thames/config"
	deliverycontext "thames/internal/delivery/context"
	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/domain/service"
	"thames/internal/usecase"
	"thames/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSearchRadiusKm = 50
	maxSearchRadiusKm     = 500
	defaultNearbyLimit    = 50
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	vendorRepo   repository.VendorRepository
	entitlements usecase.EntitlementUsecase
	mediaStorage service.MediaStorage
	catalog      *entity.TierCatalog
	searchConfig *config.SearchConfig
	logger       *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo   repository.VendorRepository
	Entitlements usecase.EntitlementUsecase
	MediaStorage service.MediaStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	searchConfig := params.Config.Search
	if searchConfig == nil {
		searchConfig = &config.SearchConfig{
			DefaultRadiusKm: defaultSearchRadiusKm,
			MaxRadiusKm:     maxSearchRadiusKm,
		}
	}

	return &vendorService{
		vendorRepo:   params.VendorRepo,
		entitlements: params.Entitlements,
		mediaStorage: params.MediaStorage,
		catalog:      entity.DefaultTierCatalog(),
		searchConfig: searchConfig,
		logger:       params.Logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPublicProfile loads a published vendor by slug with tier-gated locations.
func (srv *vendorService) GetPublicProfile(ctx context.Context, slug string) (*usecase.PublicProfile, error) {
	vendor, err := srv.vendorRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by slug")
	}
	if !vendor.Published {
		return nil, domainerrors.ErrVendorNotFound
	}

	tier := entity.NormalizeTier(string(vendor.Tier))
	visible := VisibleLocations(tier, vendor.Locations)

	return &usecase.PublicProfile{
		Vendor:           vendor,
		VisibleLocations: visible,
		TotalLocations:   len(vendor.Locations),
		UpgradePrompt:    len(visible) < len(vendor.Locations),
		TierInfo:         srv.catalog.InfoFor(tier),
	}, nil
}

// GetVendor loads a vendor for its own portal.
func (srv *vendorService) GetVendor(ctx context.Context, userID, vendorID uuid.UUID) (*entity.Vendor, error) {
	if _, err := srv.entitlements.ResolveAccess(ctx, userID, vendorID); err != nil {
		return nil, err
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return vendor, nil
}

// Search lists published vendors for the public directory.
func (srv *vendorService) Search(ctx context.Context, filter repository.VendorSearchFilter) (*usecase.VendorPage, error) {
	filter.PublishedOnly = true
	vendors, total, err := srv.vendorRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search vendors")
	}

	// Public listings never leak tier-gated locations.
	for _, vendor := range vendors {
		tier := entity.NormalizeTier(string(vendor.Tier))
		vendor.Locations = dereference(VisibleLocations(tier, vendor.Locations))
	}

	return &usecase.VendorPage{Vendors: vendors, Total: total}, nil
}

// SearchNearby returns vendors within the radius of the origin, closest first.
func (srv *vendorService) SearchNearby(ctx context.Context, input usecase.ProximitySearchInput) ([]*usecase.ProximityMatch, error) {
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("origin coordinates out of range")
	}

	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = srv.searchConfig.DefaultRadiusKm
	}
	if srv.searchConfig.MaxRadiusKm > 0 && radiusKm > srv.searchConfig.MaxRadiusKm {
		radiusKm = srv.searchConfig.MaxRadiusKm
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	vendors, err := srv.vendorRepo.FindPublishedWithCoordinates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendors for proximity search")
	}

	origin := orb.Point{input.Longitude, input.Latitude}
	matches := make([]*usecase.ProximityMatch, 0, len(vendors))
	for _, vendor := range vendors {
		match := srv.matchVendor(vendor, origin, radiusKm)
		if match != nil {
			matches = append(matches, match)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// matchVendor applies the tier policy for distance matching: vendors below
// the multi-location tier are matched against their HQ only, even when a
// secondary location is closer to the origin.
func (srv *vendorService) matchVendor(vendor *entity.Vendor, origin orb.Point, radiusKm float64) *usecase.ProximityMatch {
	tier := entity.NormalizeTier(string(vendor.Tier))
	candidates := VisibleLocations(tier, vendor.Locations)

	var best *entity.VendorLocation
	bestKm := 0.0
	for _, location := range candidates {
		if !location.HasValidCoordinates() {
			continue
		}

		distanceKm := geo.Distance(origin, orb.Point{location.Longitude, location.Latitude}) / 1000
		if best == nil || distanceKm < bestKm {
			best = location
			bestKm = distanceKm
		}
	}

	if best == nil || bestKm > radiusKm {
		return nil
	}

	return &usecase.ProximityMatch{
		Vendor:          vendor,
		MatchedLocation: best,
		DistanceKm:      bestKm,
	}
}

// UpdateProfile updates the vendor's editable profile fields.
func (srv *vendorService) UpdateProfile(ctx context.Context, input usecase.UpdateVendorProfileInput) (*entity.Vendor, error) {
	if _, err := srv.entitlements.ResolveAccess(ctx, input.UserID, input.VendorID); err != nil {
		return nil, err
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	applyIfSet(&vendor.CompanyName, input.CompanyName)
	applyIfSet(&vendor.Description, input.Description)
	applyIfSet(&vendor.ContactEmail, input.ContactEmail)
	applyIfSet(&vendor.ContactPhone, input.ContactPhone)
	applyIfSet(&vendor.Website, input.Website)
	if strings.TrimSpace(vendor.CompanyName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("company name must not be empty")
	}
	vendor.UpdatedAt = time.Now()

	if err := srv.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to update vendor profile")
	}

	srv.log(ctx).Info("Vendor profile updated", slog.String("vendorID", input.VendorID.String()))

	return vendor, nil
}

// AddLocation creates a location, enforcing the tier's location limit.
func (srv *vendorService) AddLocation(ctx context.Context, input usecase.LocationInput) (*entity.VendorLocation, error) {
	access, err := srv.entitlements.ResolveAccess(ctx, input.UserID, input.VendorID)
	if err != nil {
		return nil, err
	}

	if err := validateLocationInput(&input); err != nil {
		return nil, err
	}

	count, err := srv.vendorRepo.CountLocations(ctx, input.VendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count vendor locations")
	}
	if !access.IsAdmin && count >= int64(access.MaxLocations) {
		return nil, domainerrors.ErrLocationLimitReached
	}
	if count > 0 && !access.HasFeature(entity.FeatureMultipleLocations) {
		return nil, domainerrors.ErrTierRestricted
	}

	now := time.Now()
	location := &entity.VendorLocation{
		ID:           uuid.New(),
		VendorID:     input.VendorID,
		LocationName: input.LocationName,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		Country:      input.Country,
		PostalCode:   input.PostalCode,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		// The first location is always the HQ.
		IsHQ:      input.IsHQ || count == 0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if location.IsHQ {
		if err := srv.vendorRepo.ClearHQ(ctx, input.VendorID); err != nil {
			return nil, errors.Wrap(err, "failed to clear previous HQ")
		}
	}
	if err := srv.vendorRepo.CreateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create vendor location")
	}

	srv.log(ctx).Info("Vendor location added",
		slog.String("vendorID", input.VendorID.String()),
		slog.String("locationID", location.ID.String()),
		slog.Bool("isHQ", location.IsHQ))

	return location, nil
}

// UpdateLocation updates a location. Setting IsHQ clears the previous HQ.
func (srv *vendorService) UpdateLocation(ctx context.Context, input usecase.LocationInput) (*entity.VendorLocation, error) {
	if _, err := srv.entitlements.ResolveAccess(ctx, input.UserID, input.VendorID); err != nil {
		return nil, err
	}
	if input.LocationID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location id is required")
	}
	if err := validateLocationInput(&input); err != nil {
		return nil, err
	}

	location, err := srv.ownedLocation(ctx, input.VendorID, *input.LocationID)
	if err != nil {
		return nil, err
	}

	wasHQ := location.IsHQ
	location.LocationName = input.LocationName
	location.Address = input.Address
	location.City = input.City
	location.State = input.State
	location.Country = input.Country
	location.PostalCode = input.PostalCode
	location.Latitude = input.Latitude
	location.Longitude = input.Longitude
	location.UpdatedAt = time.Now()

	if input.IsHQ && !wasHQ {
		if err := srv.vendorRepo.ClearHQ(ctx, input.VendorID); err != nil {
			return nil, errors.Wrap(err, "failed to clear previous HQ")
		}
		location.IsHQ = true
	}

	if err := srv.vendorRepo.UpdateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to update vendor location")
	}

	return location, nil
}

// DeleteLocation removes a location. Deleting the HQ promotes the oldest remaining location.
func (srv *vendorService) DeleteLocation(ctx context.Context, userID, vendorID, locationID uuid.UUID) error {
	if _, err := srv.entitlements.ResolveAccess(ctx, userID, vendorID); err != nil {
		return err
	}

	location, err := srv.ownedLocation(ctx, vendorID, locationID)
	if err != nil {
		return err
	}

	if err := srv.vendorRepo.DeleteLocation(ctx, locationID); err != nil {
		return errors.Wrap(err, "failed to delete vendor location")
	}

	if location.IsHQ {
		if err := srv.promoteOldestToHQ(ctx, vendorID); err != nil {
			return err
		}
	}

	srv.log(ctx).Info("Vendor location deleted",
		slog.String("vendorID", vendorID.String()),
		slog.String("locationID", locationID.String()))

	return nil
}

// SetHQ marks the location as HQ and clears the flag everywhere else.
func (srv *vendorService) SetHQ(ctx context.Context, userID, vendorID, locationID uuid.UUID) ([]*entity.VendorLocation, error) {
	if _, err := srv.entitlements.ResolveAccess(ctx, userID, vendorID); err != nil {
		return nil, err
	}

	location, err := srv.ownedLocation(ctx, vendorID, locationID)
	if err != nil {
		return nil, err
	}

	if !location.IsHQ {
		if err := srv.vendorRepo.ClearHQ(ctx, vendorID); err != nil {
			return nil, errors.Wrap(err, "failed to clear previous HQ")
		}
		location.IsHQ = true
		location.UpdatedAt = time.Now()
		if err := srv.vendorRepo.UpdateLocation(ctx, location); err != nil {
			return nil, errors.Wrap(err, "failed to mark location as HQ")
		}
	}

	locations, err := srv.vendorRepo.FindLocationsByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload vendor locations")
	}

	return locations, nil
}

// AddMedia stores an uploaded file and records it in the gallery.
func (srv *vendorService) AddMedia(ctx context.Context, input usecase.MediaUploadInput) (*entity.MediaItem, error) {
	access, err := srv.entitlements.RequireFeature(ctx, input.UserID, input.VendorID, entity.FeatureMediaGallery)
	if err != nil {
		return nil, err
	}

	count, err := srv.vendorRepo.CountMedia(ctx, input.VendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count media items")
	}
	if !access.IsAdmin && count >= int64(access.MaxMedia) {
		return nil, domainerrors.ErrMediaLimitReached
	}

	itemID := uuid.New()
	key := fmt.Sprintf("vendors/%s/media/%s%s", input.VendorID, itemID, path.Ext(input.FileName))
	url, err := srv.mediaStorage.Save(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store media file")
	}

	item := &entity.MediaItem{
		ID:        itemID,
		VendorID:  input.VendorID,
		URL:       url,
		Caption:   input.Caption,
		MimeType:  input.ContentType,
		SizeBytes: input.Size,
		CreatedAt: time.Now(),
	}
	if err := srv.vendorRepo.AddMedia(ctx, item); err != nil {
		// Best-effort cleanup of the orphaned blob.
		if cleanupErr := srv.mediaStorage.Delete(ctx, key); cleanupErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned media file",
				slog.String("key", key), slog.Any("error", cleanupErr))
		}

		return nil, errors.Wrap(err, "failed to record media item")
	}

	srv.log(ctx).Info("Media item uploaded",
		slog.String("vendorID", input.VendorID.String()),
		slog.String("mediaID", item.ID.String()),
		slog.String("size", util.FormatBytes(item.SizeBytes)))

	return item, nil
}

// DeleteMedia removes a gallery item and its stored file.
func (srv *vendorService) DeleteMedia(ctx context.Context, userID, vendorID, mediaID uuid.UUID) error {
	if _, err := srv.entitlements.ResolveAccess(ctx, userID, vendorID); err != nil {
		return err
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return errors.Wrap(err, "failed to find vendor")
	}

	var target *entity.MediaItem
	for i := range vendor.MediaGallery {
		if vendor.MediaGallery[i].ID == mediaID {
			target = &vendor.MediaGallery[i]

			break
		}
	}
	if target == nil {
		return domainerrors.ErrNotFound
	}

	if err := srv.vendorRepo.DeleteMedia(ctx, mediaID); err != nil {
		return errors.Wrap(err, "failed to delete media item")
	}
	if key, ok := storageKeyFromURL(target.URL); ok {
		if err := srv.mediaStorage.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to delete stored media file",
				slog.String("key", key), slog.Any("error", err))
		}
	}

	return nil
}

func (srv *vendorService) ownedLocation(ctx context.Context, vendorID, locationID uuid.UUID) (*entity.VendorLocation, error) {
	location, err := srv.vendorRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor location")
	}
	if location.VendorID != vendorID {
		return nil, domainerrors.ErrForbidden
	}

	return location, nil
}

func (srv *vendorService) promoteOldestToHQ(ctx context.Context, vendorID uuid.UUID) error {
	locations, err := srv.vendorRepo.FindLocationsByVendor(ctx, vendorID)
	if err != nil {
		return errors.Wrap(err, "failed to load locations for HQ promotion")
	}
	if len(locations) == 0 {
		return nil
	}

	oldest := locations[0]
	for _, location := range locations[1:] {
		if location.CreatedAt.Before(oldest.CreatedAt) {
			oldest = location
		}
	}
	oldest.IsHQ = true
	oldest.UpdatedAt = time.Now()

	return errors.Wrap(srv.vendorRepo.UpdateLocation(ctx, oldest), "failed to promote location to HQ")
}

// VisibleLocations applies tier gating to a vendor's location list for
// anonymous viewers and distance matching. Vendors below the multi-location
// visibility tier expose at most their HQ; without an explicit HQ the first
// location stands in for it.
func VisibleLocations(tier entity.Tier, locations []entity.VendorLocation) []*entity.VendorLocation {
	if len(locations) == 0 {
		return nil
	}

	if tier.AtLeast(entity.TierBusiness) {
		visible := make([]*entity.VendorLocation, 0, len(locations))
		// HQ first, insertion order otherwise.
		for i := range locations {
			if locations[i].IsHQ {
				visible = append(visible, &locations[i])
			}
		}
		for i := range locations {
			if !locations[i].IsHQ {
				visible = append(visible, &locations[i])
			}
		}

		return visible
	}

	for i := range locations {
		if locations[i].IsHQ {
			return []*entity.VendorLocation{&locations[i]}
		}
	}

	return []*entity.VendorLocation{&locations[0]}
}

func validateLocationInput(input *usecase.LocationInput) error {
	if strings.TrimSpace(input.Address) == "" || strings.TrimSpace(input.City) == "" || strings.TrimSpace(input.Country) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("address, city and country are required")
	}

	probe := entity.VendorLocation{Latitude: input.Latitude, Longitude: input.Longitude}
	if !probe.HasValidCoordinates() {
		return domainerrors.ErrValidationFailed.WithDetails("latitude/longitude must be finite and in range")
	}

	return nil
}

func applyIfSet(target *string, value *string) {
	if value != nil {
		*target = strings.TrimSpace(*value)
	}
}

func dereference(locations []*entity.VendorLocation) []entity.VendorLocation {
	out := make([]entity.VendorLocation, 0, len(locations))
	for _, location := range locations {
		out = append(out, *location)
	}

	return out
}
