package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "thames/internal/delivery/context"
	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/domain/service"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	auditLogRepo repository.AuditLogRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	AuditLogRepo repository.AuditLogRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		auditLogRepo: params.AuditLogRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns users filtered by account status for the review queue.
func (srv *accountService) ListUsers(ctx context.Context, status entity.AccountStatus) ([]*entity.User, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account status: " + status.String())
	}

	users, err := srv.userRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by status")
	}

	return users, nil
}

// Approve transitions a pending user to approved.
func (srv *accountService) Approve(ctx context.Context, input usecase.ReviewAccountInput) (*entity.User, error) {
	return srv.transition(ctx, input, func(user *entity.User) error {
		if user.Status != entity.AccountStatusPending {
			return domainerrors.ErrConflict.WithDetails("account is " + user.Status.String())
		}

		now := time.Now()
		user.Status = entity.AccountStatusApproved
		user.ApprovedAt = &now
		user.RejectionReason = ""

		return nil
	}, service.EventAccountApproved)
}

// Reject transitions a pending user to rejected and bumps the token version.
func (srv *accountService) Reject(ctx context.Context, input usecase.ReviewAccountInput) (*entity.User, error) {
	reason := strings.TrimSpace(input.RejectionReason)
	if reason == "" {
		reason = "No reason provided"
	}
	if utf8.RuneCountInString(reason) > 1000 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rejection reason must be at most 1000 characters")
	}

	return srv.transition(ctx, input, func(user *entity.User) error {
		if user.Status != entity.AccountStatusPending {
			return domainerrors.ErrConflict.WithDetails("account is " + user.Status.String())
		}

		now := time.Now()
		user.Status = entity.AccountStatusRejected
		user.RejectedAt = &now
		user.RejectionReason = reason
		user.TokenVersion++

		return nil
	}, service.EventAccountRejected)
}

// Suspend transitions an approved user to suspended and bumps the token
// version so outstanding sessions die immediately.
func (srv *accountService) Suspend(ctx context.Context, input usecase.ReviewAccountInput) (*entity.User, error) {
	return srv.transition(ctx, input, func(user *entity.User) error {
		if user.Status != entity.AccountStatusApproved {
			return domainerrors.ErrConflict.WithDetails("account is " + user.Status.String())
		}

		user.Status = entity.AccountStatusSuspended
		user.TokenVersion++

		return nil
	}, service.EventAccountSuspended)
}

// AuditLog returns audit entries matching the filter, newest first.
func (srv *accountService) AuditLog(ctx context.Context, filter repository.AuditLogFilter) (*usecase.AuditLogPage, error) {
	entries, total, err := srv.auditLogRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit log entries")
	}

	return &usecase.AuditLogPage{Entries: entries, Total: total}, nil
}

// transition loads the user, applies the mutation, persists it, and publishes
// the inferred audit events plus the lifecycle event for mail dispatch.
func (srv *accountService) transition(ctx context.Context, input usecase.ReviewAccountInput, mutate func(*entity.User) error, eventName string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	before := UserSnapshot{Status: user.Status, TokenVersion: user.TokenVersion}
	if err := mutate(user); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user status")
	}

	after := UserSnapshot{Status: user.Status, TokenVersion: user.TokenVersion}
	for _, auditEvent := range InferAccountAuditEvents(before, after) {
		srv.publish(ctx, &service.DomainEvent{
			Name: service.EventAuditRecorded,
			Audit: &entity.AuditLogEntry{
				ID:        uuid.New(),
				Event:     auditEvent,
				UserID:    &user.ID,
				Email:     user.Email,
				IPAddress: input.IPAddress,
				UserAgent: input.UserAgent,
				Metadata:  map[string]any{"adminId": input.AdminID.String()},
				CreatedAt: time.Now(),
			},
		})
	}

	srv.publish(ctx, &service.DomainEvent{
		Name: eventName,
		User: user,
	})

	srv.log(ctx).Info("Account transition applied",
		slog.String("userID", user.ID.String()),
		slog.String("status", user.Status.String()),
		slog.String("adminID", input.AdminID.String()))

	return user, nil
}

func (srv *accountService) publish(ctx context.Context, event *service.DomainEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event",
			slog.String("event", event.Name),
			slog.Any("error", err))
	}
}
