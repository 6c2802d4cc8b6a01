package impl

import (
	"testing"

	"thames/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestInferAccountAuditEvents_StatusTransitions(t *testing.T) {
	events := InferAccountAuditEvents(
		UserSnapshot{Status: entity.AccountStatusPending},
		UserSnapshot{Status: entity.AccountStatusApproved},
	)
	assert.Equal(t, []entity.AuditEvent{entity.AuditAccountApproved}, events)

	events = InferAccountAuditEvents(
		UserSnapshot{Status: entity.AccountStatusPending},
		UserSnapshot{Status: entity.AccountStatusRejected},
	)
	assert.Equal(t, []entity.AuditEvent{entity.AuditAccountRejected}, events)

	events = InferAccountAuditEvents(
		UserSnapshot{Status: entity.AccountStatusApproved},
		UserSnapshot{Status: entity.AccountStatusSuspended},
	)
	assert.Equal(t, []entity.AuditEvent{entity.AuditAccountSuspended}, events)
}

func TestInferAccountAuditEvents_TokenVersionBumpIsPasswordChange(t *testing.T) {
	events := InferAccountAuditEvents(
		UserSnapshot{Status: entity.AccountStatusApproved, TokenVersion: 1},
		UserSnapshot{Status: entity.AccountStatusApproved, TokenVersion: 2},
	)
	assert.Equal(t, []entity.AuditEvent{entity.AuditPasswordChanged}, events)
}

func TestInferAccountAuditEvents_RevocationBumpIsNotPasswordChange(t *testing.T) {
	// Suspension bumps the token version to kill outstanding tokens; that bump
	// must not be reported as a password change.
	events := InferAccountAuditEvents(
		UserSnapshot{Status: entity.AccountStatusApproved, TokenVersion: 1},
		UserSnapshot{Status: entity.AccountStatusSuspended, TokenVersion: 2},
	)
	assert.Equal(t, []entity.AuditEvent{entity.AuditAccountSuspended}, events)

	events = InferAccountAuditEvents(
		UserSnapshot{Status: entity.AccountStatusPending, TokenVersion: 0},
		UserSnapshot{Status: entity.AccountStatusRejected, TokenVersion: 1},
	)
	assert.Equal(t, []entity.AuditEvent{entity.AuditAccountRejected}, events)
}

func TestInferAccountAuditEvents_NoChange(t *testing.T) {
	events := InferAccountAuditEvents(
		UserSnapshot{Status: entity.AccountStatusApproved, TokenVersion: 3},
		UserSnapshot{Status: entity.AccountStatusApproved, TokenVersion: 3},
	)
	assert.Empty(t, events)
}
