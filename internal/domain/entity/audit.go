// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent enumerates the authentication and account lifecycle events
// recorded in the append-only audit log.
type AuditEvent string

const (
	AuditLoginSuccess       AuditEvent = "LOGIN_SUCCESS"
	AuditLoginFailed        AuditEvent = "LOGIN_FAILED"
	AuditLogout             AuditEvent = "LOGOUT"
	AuditTokenRefresh       AuditEvent = "TOKEN_REFRESH"
	AuditTokenRefreshFailed AuditEvent = "TOKEN_REFRESH_FAILED"
	AuditPasswordChanged    AuditEvent = "PASSWORD_CHANGED"
	AuditAccountSuspended   AuditEvent = "ACCOUNT_SUSPENDED"
	AuditAccountApproved    AuditEvent = "ACCOUNT_APPROVED"
	AuditAccountRejected    AuditEvent = "ACCOUNT_REJECTED"
)

// String returns the string representation of the AuditEvent.
func (e AuditEvent) String() string {
	return string(e)
}

// IsValid checks if the AuditEvent is a valid value.
func (e AuditEvent) IsValid() bool {
	switch e {
	case AuditLoginSuccess, AuditLoginFailed, AuditLogout,
		AuditTokenRefresh, AuditTokenRefreshFailed, AuditPasswordChanged,
		AuditAccountSuspended, AuditAccountApproved, AuditAccountRejected:
		return true
	default:
		return false
	}
}

// AuditLogEntry is one append-only audit record. Writes are fire-and-forget:
// a failed write is logged locally and never surfaces to the caller.
type AuditLogEntry struct {
	ID        uuid.UUID      // The Global Unique Identifier (GUID) for the entry.
	Event     AuditEvent     // The event being recorded.
	UserID    *uuid.UUID     // The affected user, when known.
	Email     string         // The email involved; kept even when no user matched.
	IPAddress string         // Client IP extracted from proxy headers, when available.
	UserAgent string         // Client user agent, when available.
	TokenID   string         // JTI of the token involved, when relevant.
	Metadata  map[string]any // Free-form event context.
	CreatedAt time.Time      // Timestamp of when this entry was recorded.
}
