package service

import (
	"context"

	"thames/internal/domain/entity"
)

// DomainEvent is a side-effect trigger emitted after a state change commits.
// Consumers (mail, audit) run outside the originating transaction so their
// failures never roll back the state change.
type DomainEvent struct {
	RequestID string // For tracing across the dispatch boundary.
	Name      string

	// Snapshots taken at publish time. Only the fields relevant to the
	// event are set; consumers must tolerate nil.
	TierRequest *entity.TierChangeRequest
	Vendor      *entity.Vendor
	User        *entity.User
	Audit       *entity.AuditLogEntry
}

// Event names published by the use case layer.
const (
	EventTierRequestSubmitted = "tier_request.submitted"
	EventTierRequestApproved  = "tier_request.approved"
	EventTierRequestRejected  = "tier_request.rejected"
	EventTierRequestCancelled = "tier_request.cancelled"
	EventAccountApproved      = "account.approved"
	EventAccountRejected      = "account.rejected"
	EventAccountSuspended     = "account.suspended"
	EventAuditRecorded        = "audit.recorded"
)

// EventPublisher defines the interface for publishing domain events for async processing.
type EventPublisher interface {
	// Publish hands an event to the dispatcher. Must never block the caller
	// beyond the context deadline and must never return a business error.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
