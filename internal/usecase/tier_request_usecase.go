package usecase

import (
	"context"

	"thames/internal/domain/entity"
	"thames/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitTierRequestInput defines the data required to submit a tier change request.
type SubmitTierRequestInput struct {
	VendorID      uuid.UUID
	UserID        uuid.UUID
	RequestedTier entity.Tier
	VendorNotes   string // Optional; 20..500 characters when provided.
}

// ReviewTierRequestInput defines the data required for an admin decision.
type ReviewTierRequestInput struct {
	RequestID       uuid.UUID
	AdminID         uuid.UUID
	RejectionReason string // Rejection only; defaults when empty.
}

// --- Output DTOs ---

// TierRequestPage is a paged listing of tier change requests.
type TierRequestPage struct {
	Requests []*entity.TierChangeRequest
	Total    int64
}

// TierRequestUsecase defines the business operations around tier change requests.
type TierRequestUsecase interface {
	// Submit creates a pending request. The request type is derived from the
	// requested tier relative to the vendor's current tier. At most one pending
	// request per (vendor, type) may exist.
	Submit(ctx context.Context, input SubmitTierRequestInput) (*entity.TierChangeRequest, error)

	// Cancel transitions the vendor's own pending request to cancelled.
	Cancel(ctx context.Context, vendorID, userID, requestID uuid.UUID) (*entity.TierChangeRequest, error)

	// ListForVendor returns all requests of one vendor, newest first.
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.TierChangeRequest, error)

	// List returns requests matching the filter for the admin review queue.
	List(ctx context.Context, filter repository.TierRequestFilter) (*TierRequestPage, error)

	// Approve transitions a pending request to approved and applies the
	// requested tier to the vendor in the same transaction.
	Approve(ctx context.Context, input ReviewTierRequestInput) (*entity.TierChangeRequest, error)

	// Reject transitions a pending request to rejected. The vendor keeps its tier.
	Reject(ctx context.Context, input ReviewTierRequestInput) (*entity.TierChangeRequest, error)
}
