package impl

import (
	"context"
	"testing"

	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/service"
	mockRepo "thames/internal/mocks/repository"
	mockSvc "thames/internal/mocks/service"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	userRepo     *mockRepo.MockUserRepository
	auditLogRepo *mockRepo.MockAuditLogRepository
	publisher    *mockSvc.MockEventPublisher
	service      usecase.AccountUsecase
}

func newAccountFixture(t *testing.T) *accountFixture {
	f := &accountFixture{
		userRepo:     mockRepo.NewMockUserRepository(t),
		auditLogRepo: mockRepo.NewMockAuditLogRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewAccountService(AccountServiceParams{
		UserRepo:     f.userRepo,
		AuditLogRepo: f.auditLogRepo,
		Publisher:    f.publisher,
		Logger:       discardLogger(),
	})

	return f
}

func TestAccountService_Approve(t *testing.T) {
	f := newAccountFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:     userID,
		Email:  "owner@riviera.example",
		Status: entity.AccountStatusPending,
	}

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	f.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	var published []string
	f.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			published = append(published, event.Name)
		}).
		Return(nil).
		Times(2)

	approved, err := f.service.Approve(ctx, usecase.ReviewAccountInput{
		UserID:  userID,
		AdminID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusApproved, approved.Status)
	assert.NotNil(t, approved.ApprovedAt)
	assert.Equal(t, []string{service.EventAuditRecorded, service.EventAccountApproved}, published)
}

func TestAccountService_Approve_NotPending(t *testing.T) {
	f := newAccountFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Status: entity.AccountStatusSuspended}, nil)

	_, err := f.service.Approve(ctx, usecase.ReviewAccountInput{
		UserID:  userID,
		AdminID: uuid.New(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
}

func TestAccountService_Reject_NoPasswordChangedAudit(t *testing.T) {
	f := newAccountFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "owner@riviera.example",
		Status:       entity.AccountStatusPending,
		TokenVersion: 1,
	}

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	f.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	var auditEvents []entity.AuditEvent
	f.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			if event.Audit != nil {
				auditEvents = append(auditEvents, event.Audit.Event)
			}
		}).
		Return(nil).
		Times(2)

	rejected, err := f.service.Reject(ctx, usecase.ReviewAccountInput{
		UserID:  userID,
		AdminID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusRejected, rejected.Status)
	assert.Equal(t, "No reason provided", rejected.RejectionReason)
	assert.Equal(t, 2, rejected.TokenVersion)

	// The rejection bumps the token version, but that bump must not surface
	// as a password change in the audit trail.
	assert.Equal(t, []entity.AuditEvent{entity.AuditAccountRejected}, auditEvents)
}

func TestAccountService_Suspend(t *testing.T) {
	f := newAccountFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "owner@riviera.example",
		Status:       entity.AccountStatusApproved,
		TokenVersion: 4,
	}

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	f.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	var auditEvents []entity.AuditEvent
	f.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			if event.Audit != nil {
				auditEvents = append(auditEvents, event.Audit.Event)
			}
		}).
		Return(nil).
		Times(2)

	suspended, err := f.service.Suspend(ctx, usecase.ReviewAccountInput{
		UserID:  userID,
		AdminID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusSuspended, suspended.Status)
	assert.Equal(t, 5, suspended.TokenVersion)
	assert.Equal(t, []entity.AuditEvent{entity.AuditAccountSuspended}, auditEvents)
}

func TestAccountService_Suspend_OnlyApprovedAccounts(t *testing.T) {
	f := newAccountFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Status: entity.AccountStatusPending}, nil)

	_, err := f.service.Suspend(ctx, usecase.ReviewAccountInput{
		UserID:  userID,
		AdminID: uuid.New(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
}

func TestAccountService_ListUsers_UnknownStatus(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.service.ListUsers(context.Background(), entity.AccountStatus("archived"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}
