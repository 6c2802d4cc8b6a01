// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"thames/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for tier change request persistence.
var (
	// ErrTierRequestNotFound is returned when a tier change request is not found.
	ErrTierRequestNotFound = errors.New("tier change request not found")
	// ErrDuplicatePendingRequest is returned when a vendor already has a pending
	// request of the same type. Backed by a partial unique index.
	ErrDuplicatePendingRequest = errors.New("pending request of this type already exists")
)

// TierRequestFilter narrows admin listings of tier change requests.
type TierRequestFilter struct {
	VendorID    *uuid.UUID
	Status      *entity.RequestStatus
	RequestType *entity.RequestType
	Limit       int
	Offset      int
}

// TierRequestRepository defines the interface for tier change request persistence.
type TierRequestRepository interface {
	// FindByID retrieves a tier change request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TierChangeRequest, error)

	// FindPendingByVendorAndType retrieves the pending request for a vendor
	// and request type, if one exists. At most one can exist at a time.
	FindPendingByVendorAndType(ctx context.Context, vendorID uuid.UUID, requestType entity.RequestType) (*entity.TierChangeRequest, error)

	// FindByVendor retrieves all requests for a vendor, newest first.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.TierChangeRequest, error)

	// List retrieves requests matching the filter, newest first, with total count.
	List(ctx context.Context, filter TierRequestFilter) ([]*entity.TierChangeRequest, int64, error)

	// Create persists a new tier change request.
	// Returns ErrDuplicatePendingRequest when a pending request of the same type exists.
	Create(ctx context.Context, request *entity.TierChangeRequest) error

	// Update modifies an existing tier change request.
	Update(ctx context.Context, request *entity.TierChangeRequest) error
}
