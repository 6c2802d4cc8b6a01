package impl

import (
	"thames/internal/domain/entity"
)

// UserSnapshot captures the audit-relevant fields of a user before or after a mutation.
type UserSnapshot struct {
	Status       entity.AccountStatus
	TokenVersion int
}

// InferAccountAuditEvents derives audit events from a user mutation by diffing
// the before and after snapshots. A status transition produces its own event.
// A token version bump normally means a password change, except when the same
// mutation revoked the account: suspension and rejection bump the version too,
// and that bump must not masquerade as a password change.
func InferAccountAuditEvents(before, after UserSnapshot) []entity.AuditEvent {
	var events []entity.AuditEvent

	statusChanged := before.Status != after.Status
	if statusChanged {
		switch after.Status {
		case entity.AccountStatusApproved:
			events = append(events, entity.AuditAccountApproved)
		case entity.AccountStatusRejected:
			events = append(events, entity.AuditAccountRejected)
		case entity.AccountStatusSuspended:
			events = append(events, entity.AuditAccountSuspended)
		}
	}

	revoked := statusChanged && after.Status.IsRevoking()
	if after.TokenVersion > before.TokenVersion && !revoked {
		events = append(events, entity.AuditPasswordChanged)
	}

	return events
}
