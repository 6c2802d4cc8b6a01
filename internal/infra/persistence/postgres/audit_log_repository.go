package postgres

import (
	"context"
	"encoding/json"

	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface using GORM.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create persists a new audit log entry.
func (repo *auditLogRepository) Create(ctx context.Context, entry *entity.AuditLogEntry) error {
	entryM, err := fromAuditDomain(entry)
	if err != nil {
		return errors.Wrap(err, "failed to encode audit metadata")
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// List retrieves entries matching the filter, newest first, with total count.
func (repo *auditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter) ([]*entity.AuditLogEntry, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AuditLogModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Event != nil {
		query = query.Where("event = ?", filter.Event.String())
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count audit log entries")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var entryModels []model.AuditLogModel
	if err := query.Order("created_at DESC").Find(&entryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list audit log entries")
	}

	entries := make([]*entity.AuditLogEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, toAuditDomain(&entryModels[i]))
	}

	return entries, total, nil
}

func toAuditDomain(entryM *model.AuditLogModel) *entity.AuditLogEntry {
	entry := &entity.AuditLogEntry{
		ID:        entryM.ID,
		Event:     entity.AuditEvent(entryM.Event),
		UserID:    entryM.UserID,
		Email:     entryM.Email,
		IPAddress: entryM.IPAddress,
		UserAgent: entryM.UserAgent,
		TokenID:   entryM.TokenID,
		CreatedAt: entryM.CreatedAt,
	}

	if len(entryM.Metadata) > 0 {
		// A decode failure only loses context, never the entry itself.
		_ = json.Unmarshal(entryM.Metadata, &entry.Metadata)
	}

	return entry
}

func fromAuditDomain(entry *entity.AuditLogEntry) (*model.AuditLogModel, error) {
	entryM := &model.AuditLogModel{
		ID:        entry.ID,
		Event:     entry.Event.String(),
		UserID:    entry.UserID,
		Email:     entry.Email,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
		TokenID:   entry.TokenID,
		CreatedAt: entry.CreatedAt,
	}

	if len(entry.Metadata) > 0 {
		raw, err := json.Marshal(entry.Metadata)
		if err != nil {
			return nil, err
		}
		entryM.Metadata = datatypes.JSON(raw)
	}

	return entryM, nil
}
