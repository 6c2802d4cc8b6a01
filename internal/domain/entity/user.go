// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates a directory administrator who reviews vendors and requests.
	RoleAdmin Role = "admin"
	// RoleVendor indicates a vendor-portal user tied to a vendor record.
	RoleVendor Role = "vendor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleVendor
}

// AccountStatus represents the moderation state of a user account.
type AccountStatus string

const (
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusApproved  AccountStatus = "approved"
	AccountStatusRejected  AccountStatus = "rejected"
	AccountStatusSuspended AccountStatus = "suspended"
)

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusApproved, AccountStatusRejected, AccountStatusSuspended:
		return true
	default:
		return false
	}
}

// IsRevoking reports whether entering this status invalidates previously
// issued credentials. Transitions into a revoking status bump TokenVersion.
func (s AccountStatus) IsRevoking() bool {
	return s == AccountStatusSuspended || s == AccountStatusRejected
}

// User is a portal account, either an admin or a vendor-role user.
//
// TokenVersion is a monotonically increasing counter embedded in issued
// tokens; it increments by exactly one on a password change and on any
// transition into a revoking status, and never decreases. Tokens carrying
// a stale version are refused.
type User struct {
	ID              uuid.UUID     // The Global Unique Identifier (GUID) for the user.
	Email           string        // Login identifier and notification address.
	Name            string        // Display name.
	Role            Role          // admin or vendor.
	Status          AccountStatus // Moderation state of the account.
	VendorID        *uuid.UUID    // The vendor this account manages; nil for admins.
	PasswordHash    string        // bcrypt hash of the password.
	TokenVersion    int           // Credential invalidation counter, see type doc.
	RejectionReason string        // Reason recorded when the account was rejected.
	ApprovedAt      *time.Time    // When the account was approved, if ever.
	RejectedAt      *time.Time    // When the account was rejected, if ever.
	CreatedAt       time.Time     // Timestamp of when this account was created.
	UpdatedAt       time.Time     // Timestamp of the last modification.
}
