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

// tierRequestRepository implements the repository.TierRequestRepository interface using GORM.
type tierRequestRepository struct {
	db *gorm.DB
}

// NewTierRequestRepository is the constructor for tierRequestRepository.
func NewTierRequestRepository(db *gorm.DB) repository.TierRequestRepository {
	return &tierRequestRepository{
		db: db,
	}
}

// FindByID retrieves a tier change request by its unique ID.
func (repo *tierRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TierChangeRequest, error) {
	var requestM model.TierChangeRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTierRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find tier request by id")
	}

	return toTierRequestDomain(&requestM), nil
}

// FindPendingByVendorAndType retrieves the pending request for a vendor and request type.
func (repo *tierRequestRepository) FindPendingByVendorAndType(ctx context.Context, vendorID uuid.UUID, requestType entity.RequestType) (*entity.TierChangeRequest, error) {
	var requestM model.TierChangeRequestModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ? AND request_type = ? AND status = ?",
			vendorID, requestType.String(), entity.RequestStatusPending.String()).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTierRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending tier request")
	}

	return toTierRequestDomain(&requestM), nil
}

// FindByVendor retrieves all requests for a vendor, newest first.
func (repo *tierRequestRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.TierChangeRequest, error) {
	var requestModels []model.TierChangeRequestModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("requested_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tier requests by vendor")
	}

	return toTierRequestDomainSlice(requestModels), nil
}

// List retrieves requests matching the filter, newest first, with total count.
func (repo *tierRequestRepository) List(ctx context.Context, filter repository.TierRequestFilter) ([]*entity.TierChangeRequest, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.TierChangeRequestModel{})

	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.RequestType != nil {
		query = query.Where("request_type = ?", filter.RequestType.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tier requests")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var requestModels []model.TierChangeRequestModel
	if err := query.Order("requested_at DESC").Find(&requestModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tier requests")
	}

	return toTierRequestDomainSlice(requestModels), total, nil
}

// Create persists a new tier change request.
func (repo *tierRequestRepository) Create(ctx context.Context, request *entity.TierChangeRequest) error {
	requestM := fromTierRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePendingRequest
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tier request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// Update modifies an existing tier change request.
func (repo *tierRequestRepository) Update(ctx context.Context, request *entity.TierChangeRequest) error {
	requestM := fromTierRequestDomain(request)

	if err := repo.db.WithContext(ctx).Save(requestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update tier request")
	}

	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

func toTierRequestDomain(requestM *model.TierChangeRequestModel) *entity.TierChangeRequest {
	return &entity.TierChangeRequest{
		ID:              requestM.ID,
		VendorID:        requestM.VendorID,
		UserID:          requestM.UserID,
		RequestType:     entity.RequestType(requestM.RequestType),
		CurrentTier:     entity.Tier(requestM.CurrentTier),
		RequestedTier:   entity.Tier(requestM.RequestedTier),
		Status:          entity.RequestStatus(requestM.Status),
		VendorNotes:     requestM.VendorNotes,
		RejectionReason: requestM.RejectionReason,
		ReviewedBy:      requestM.ReviewedBy,
		RequestedAt:     requestM.RequestedAt,
		ReviewedAt:      requestM.ReviewedAt,
		CreatedAt:       requestM.CreatedAt,
		UpdatedAt:       requestM.UpdatedAt,
	}
}

func toTierRequestDomainSlice(requestModels []model.TierChangeRequestModel) []*entity.TierChangeRequest {
	requests := make([]*entity.TierChangeRequest, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, toTierRequestDomain(&requestModels[i]))
	}

	return requests
}

func fromTierRequestDomain(request *entity.TierChangeRequest) *model.TierChangeRequestModel {
	return &model.TierChangeRequestModel{
		ID:              request.ID,
		VendorID:        request.VendorID,
		UserID:          request.UserID,
		RequestType:     request.RequestType.String(),
		CurrentTier:     request.CurrentTier.String(),
		RequestedTier:   request.RequestedTier.String(),
		Status:          request.Status.String(),
		VendorNotes:     request.VendorNotes,
		RejectionReason: request.RejectionReason,
		ReviewedBy:      request.ReviewedBy,
		RequestedAt:     request.RequestedAt,
		ReviewedAt:      request.ReviewedAt,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}
}
