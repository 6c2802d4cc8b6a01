// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle state of a tier change request.
// pending is the only non-terminal state.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are defined from this state.
func (s RequestStatus) IsTerminal() bool {
	return s != RequestStatusPending
}

// RequestType distinguishes upgrade requests from downgrade requests.
// A vendor may hold one pending request of each type simultaneously.
type RequestType string

const (
	RequestTypeUpgrade   RequestType = "upgrade"
	RequestTypeDowngrade RequestType = "downgrade"
)

// String returns the string representation of the RequestType.
func (t RequestType) String() string {
	return string(t)
}

// IsValid checks if the RequestType is a valid value.
func (t RequestType) IsValid() bool {
	return t == RequestTypeUpgrade || t == RequestTypeDowngrade
}

// TierChangeRequest is a vendor's petition to move to a different tier,
// reviewed by an admin. CurrentTier is a snapshot taken at submission time;
// it does not track later changes to the vendor's live tier.
type TierChangeRequest struct {
	ID              uuid.UUID     // The Global Unique Identifier (GUID) for the request.
	VendorID        uuid.UUID     // The vendor the request concerns.
	UserID          uuid.UUID     // The vendor-role user who submitted the request.
	RequestType     RequestType   // upgrade or downgrade.
	CurrentTier     Tier          // Snapshot of the vendor's tier at submission time.
	RequestedTier   Tier          // The tier the vendor wants to move to.
	Status          RequestStatus // pending | approved | rejected | cancelled.
	VendorNotes     string        // Optional submitter notes, 20..500 chars when provided.
	RejectionReason string        // Set by the reviewer on rejection; defaulted when absent.
	ReviewedBy      *uuid.UUID    // The admin who reviewed the request, nil while pending.
	RequestedAt     time.Time     // When the request was submitted.
	ReviewedAt      *time.Time    // When the request was reviewed, nil while pending.
	CreatedAt       time.Time     // Timestamp of when this record was created.
	UpdatedAt       time.Time     // Timestamp of the last modification.
}
