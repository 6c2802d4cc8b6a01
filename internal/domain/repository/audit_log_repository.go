// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"thames/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogFilter narrows admin queries over the audit trail.
type AuditLogFilter struct {
	UserID *uuid.UUID
	Event  *entity.AuditEvent
	Email  string
	Limit  int
	Offset int
}

// AuditLogRepository defines the interface for the append-only audit trail.
// Entries are never updated or deleted.
type AuditLogRepository interface {
	// Create persists a new audit log entry.
	Create(ctx context.Context, entry *entity.AuditLogEntry) error

	// List retrieves entries matching the filter, newest first, with total count.
	List(ctx context.Context, filter AuditLogFilter) ([]*entity.AuditLogEntry, int64, error)
}
