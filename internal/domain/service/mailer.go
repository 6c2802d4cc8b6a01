package service

import (
	"context"

	"thames/internal/domain/entity"
)

// EmailResult reports the outcome of a single email dispatch.
// Delivery is best-effort: callers log failures and carry on, so the
// result carries the error as a string instead of an error value.
type EmailResult struct {
	Success bool
	Error   string
}

// TierRequestEmail carries the fields rendered into tier change request templates.
type TierRequestEmail struct {
	VendorName      string
	VendorEmail     string
	RequestType     entity.RequestType
	CurrentTier     entity.Tier
	RequestedTier   entity.Tier
	VendorNotes     string
	RejectionReason string
	Benefits        []string // Benefit list of the requested tier, for approval notices.
}

// AccountEmail carries the fields rendered into account lifecycle templates.
type AccountEmail struct {
	Name            string
	Email           string
	RejectionReason string
}

// Mailer defines the interface for transactional email delivery.
// Implementations must suppress real sends when the suppression flags are set,
// returning a successful result so callers behave identically under test.
type Mailer interface {
	// SendTierRequestReceived confirms to the vendor that their request was submitted.
	SendTierRequestReceived(ctx context.Context, email TierRequestEmail) EmailResult

	// SendTierRequestAdminAlert notifies the admin inbox that a request awaits review.
	SendTierRequestAdminAlert(ctx context.Context, email TierRequestEmail) EmailResult

	// SendTierRequestApproved notifies the vendor that their request was approved.
	SendTierRequestApproved(ctx context.Context, email TierRequestEmail) EmailResult

	// SendTierRequestRejected notifies the vendor that their request was rejected.
	SendTierRequestRejected(ctx context.Context, email TierRequestEmail) EmailResult

	// SendAccountApproved notifies a user that their account was approved.
	SendAccountApproved(ctx context.Context, email AccountEmail) EmailResult

	// SendAccountRejected notifies a user that their account was rejected.
	SendAccountRejected(ctx context.Context, email AccountEmail) EmailResult
}
