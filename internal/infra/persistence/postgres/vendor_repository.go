package postgres

import (
	"context"

	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface using GORM.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// FindByID retrieves a vendor with its locations and media gallery preloaded.
func (repo *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Preload("Locations", locationOrder).
		Preload("MediaGallery").
		Where("id = ?", id).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by id")
	}

	return toVendorDomain(&vendorM), nil
}

// FindBySlug retrieves a vendor by its public URL slug.
func (repo *vendorRepository) FindBySlug(ctx context.Context, slug string) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Preload("Locations", locationOrder).
		Preload("MediaGallery").
		Where("slug = ?", slug).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by slug")
	}

	return toVendorDomain(&vendorM), nil
}

// Search lists vendors matching the filter, ordered by featured first then company name.
func (repo *vendorRepository) Search(ctx context.Context, filter repository.VendorSearchFilter) ([]*entity.Vendor, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.VendorModel{})

	if filter.PublishedOnly {
		query = query.Where("published = true")
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = true")
	}
	if filter.Tier != nil {
		query = query.Where("tier = ?", filter.Tier.String())
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("company_name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Country != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM vendor_locations vl WHERE vl.vendor_id = vendors.id AND vl.country = ?)",
			filter.Country)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count vendors")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var vendorModels []model.VendorModel
	if err := query.
		Preload("Locations", locationOrder).
		Order("featured DESC, company_name ASC").
		Find(&vendorModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for i := range vendorModels {
		vendors = append(vendors, toVendorDomain(&vendorModels[i]))
	}

	return vendors, total, nil
}

// Create persists a new vendor entity to the database.
func (repo *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// Update modifies an existing vendor entity in the database.
// Associations are managed through their own repository methods.
func (repo *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).
		Omit("Locations", "MediaGallery").
		Save(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update vendor")
	}

	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// UpdateTier sets the vendor's subscription tier.
func (repo *vendorRepository) UpdateTier(ctx context.Context, id uuid.UUID, tier entity.Tier) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Update("tier", tier.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vendor tier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// CreateLocation persists a new location for a vendor.
func (repo *vendorRepository) CreateLocation(ctx context.Context, location *entity.VendorLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// UpdateLocation modifies an existing vendor location.
func (repo *vendorRepository) UpdateLocation(ctx context.Context, location *entity.VendorLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update vendor location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// DeleteLocation removes a location by its ID.
func (repo *vendorRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VendorLocationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vendor location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// FindLocationByID retrieves a single location by its unique ID.
func (repo *vendorRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.VendorLocation, error) {
	var locationM model.VendorLocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor location by id")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationsByVendor retrieves all locations for a vendor, HQ first.
func (repo *vendorRepository) FindLocationsByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.VendorLocation, error) {
	var locationModels []model.VendorLocationModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("is_hq DESC, created_at ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by vendor")
	}

	locations := make([]*entity.VendorLocation, 0, len(locationModels))
	for i := range locationModels {
		locations = append(locations, toLocationDomain(&locationModels[i]))
	}

	return locations, nil
}

// ClearHQ unsets the HQ flag on all locations of a vendor.
func (repo *vendorRepository) ClearHQ(ctx context.Context, vendorID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.VendorLocationModel{}).
		Where("vendor_id = ? AND is_hq = true", vendorID).
		Update("is_hq", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear HQ flag")
	}

	return nil
}

// CountLocations returns the number of locations a vendor has.
func (repo *vendorRepository) CountLocations(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VendorLocationModel{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count vendor locations")
	}

	return count, nil
}

// FindPublishedWithCoordinates retrieves all published vendors that have at
// least one location. Coordinate validity is re-checked by the caller.
func (repo *vendorRepository) FindPublishedWithCoordinates(ctx context.Context) ([]*entity.Vendor, error) {
	var vendorModels []model.VendorModel

	if err := repo.db.WithContext(ctx).
		Preload("Locations", locationOrder).
		Where("published = true").
		Where("EXISTS (SELECT 1 FROM vendor_locations vl WHERE vl.vendor_id = vendors.id)").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendors for proximity search")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for i := range vendorModels {
		vendors = append(vendors, toVendorDomain(&vendorModels[i]))
	}

	return vendors, nil
}

// AddMedia persists a new media gallery item for a vendor.
func (repo *vendorRepository) AddMedia(ctx context.Context, item *entity.MediaItem) error {
	itemM := fromMediaDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create media item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// DeleteMedia removes a media gallery item by its ID.
func (repo *vendorRepository) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MediaItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete media item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	return nil
}

// CountMedia returns the number of media gallery items a vendor has.
func (repo *vendorRepository) CountMedia(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MediaItemModel{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count media items")
	}

	return count, nil
}

// locationOrder keeps preloaded location lists stable: HQ first, then insertion order.
func locationOrder(db *gorm.DB) *gorm.DB {
	return db.Order("is_hq DESC, created_at ASC")
}

func toVendorDomain(vendorM *model.VendorModel) *entity.Vendor {
	vendor := &entity.Vendor{
		ID:           vendorM.ID,
		CompanyName:  vendorM.CompanyName,
		Slug:         vendorM.Slug,
		Description:  vendorM.Description,
		ContactEmail: vendorM.ContactEmail,
		ContactPhone: vendorM.ContactPhone,
		Website:      vendorM.Website,
		Tier:         entity.Tier(vendorM.Tier),
		Published:    vendorM.Published,
		Featured:     vendorM.Featured,
		ProductCount: vendorM.ProductCount,
		CreatedAt:    vendorM.CreatedAt,
		UpdatedAt:    vendorM.UpdatedAt,
	}

	for i := range vendorM.Locations {
		vendor.Locations = append(vendor.Locations, *toLocationDomain(&vendorM.Locations[i]))
	}
	for i := range vendorM.MediaGallery {
		vendor.MediaGallery = append(vendor.MediaGallery, *toMediaDomain(&vendorM.MediaGallery[i]))
	}

	return vendor
}

func fromVendorDomain(vendor *entity.Vendor) *model.VendorModel {
	return &model.VendorModel{
		ID:           vendor.ID,
		CompanyName:  vendor.CompanyName,
		Slug:         vendor.Slug,
		Description:  vendor.Description,
		ContactEmail: vendor.ContactEmail,
		ContactPhone: vendor.ContactPhone,
		Website:      vendor.Website,
		Tier:         vendor.Tier.String(),
		Published:    vendor.Published,
		Featured:     vendor.Featured,
		ProductCount: vendor.ProductCount,
		CreatedAt:    vendor.CreatedAt,
		UpdatedAt:    vendor.UpdatedAt,
	}
}

func toLocationDomain(locationM *model.VendorLocationModel) *entity.VendorLocation {
	return &entity.VendorLocation{
		ID:           locationM.ID,
		VendorID:     locationM.VendorID,
		LocationName: locationM.LocationName,
		Address:      locationM.Address,
		City:         locationM.City,
		State:        locationM.State,
		Country:      locationM.Country,
		PostalCode:   locationM.PostalCode,
		Latitude:     locationM.Latitude,
		Longitude:    locationM.Longitude,
		IsHQ:         locationM.IsHQ,
		CreatedAt:    locationM.CreatedAt,
		UpdatedAt:    locationM.UpdatedAt,
	}
}

func fromLocationDomain(location *entity.VendorLocation) *model.VendorLocationModel {
	return &model.VendorLocationModel{
		ID:           location.ID,
		VendorID:     location.VendorID,
		LocationName: location.LocationName,
		Address:      location.Address,
		City:         location.City,
		State:        location.State,
		Country:      location.Country,
		PostalCode:   location.PostalCode,
		Latitude:     location.Latitude,
		Longitude:    location.Longitude,
		IsHQ:         location.IsHQ,
		CreatedAt:    location.CreatedAt,
		UpdatedAt:    location.UpdatedAt,
	}
}

func toMediaDomain(itemM *model.MediaItemModel) *entity.MediaItem {
	return &entity.MediaItem{
		ID:        itemM.ID,
		VendorID:  itemM.VendorID,
		URL:       itemM.URL,
		Caption:   itemM.Caption,
		MimeType:  itemM.MimeType,
		SizeBytes: itemM.SizeBytes,
		CreatedAt: itemM.CreatedAt,
	}
}

func fromMediaDomain(item *entity.MediaItem) *model.MediaItemModel {
	return &model.MediaItemModel{
		ID:        item.ID,
		VendorID:  item.VendorID,
		URL:       item.URL,
		Caption:   item.Caption,
		MimeType:  item.MimeType,
		SizeBytes: item.SizeBytes,
		CreatedAt: item.CreatedAt,
	}
}
