package usecase

import (
	"context"

	"thames/internal/domain/entity"
	"thames/internal/domain/repository"

	"github.com/google/uuid"
)

// ReviewAccountInput defines the data for an admin account decision.
type ReviewAccountInput struct {
	UserID          uuid.UUID
	AdminID         uuid.UUID
	RejectionReason string // Rejection only; defaults when empty.
	IPAddress       string
	UserAgent       string
}

// AuditLogPage is a paged listing of audit log entries.
type AuditLogPage struct {
	Entries []*entity.AuditLogEntry
	Total   int64
}

// AccountUsecase defines admin moderation over user accounts.
type AccountUsecase interface {
	// ListUsers returns users filtered by account status for the review queue.
	ListUsers(ctx context.Context, status entity.AccountStatus) ([]*entity.User, error)

	// Approve transitions a pending user to approved.
	Approve(ctx context.Context, input ReviewAccountInput) (*entity.User, error)

	// Reject transitions a pending user to rejected and bumps the token version.
	Reject(ctx context.Context, input ReviewAccountInput) (*entity.User, error)

	// Suspend transitions an approved user to suspended and bumps the token
	// version so outstanding sessions die immediately.
	Suspend(ctx context.Context, input ReviewAccountInput) (*entity.User, error)

	// AuditLog returns audit entries matching the filter, newest first.
	AuditLog(ctx context.Context, filter repository.AuditLogFilter) (*AuditLogPage, error)
}
