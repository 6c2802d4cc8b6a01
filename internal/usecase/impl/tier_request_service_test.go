package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	mockRepo "thames/internal/mocks/repository"
	mockSvc "thames/internal/mocks/service"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRepoFactory hands the test's mocks to code running inside a transaction.
type stubRepoFactory struct {
	users        repository.UserRepository
	vendors      repository.VendorRepository
	tierRequests repository.TierRequestRepository
	auditLogs    repository.AuditLogRepository
}

func (f *stubRepoFactory) NewUserRepository() repository.UserRepository { return f.users }
func (f *stubRepoFactory) NewVendorRepository() repository.VendorRepository {
	return f.vendors
}
func (f *stubRepoFactory) NewTierRequestRepository() repository.TierRequestRepository {
	return f.tierRequests
}
func (f *stubRepoFactory) NewAuditLogRepository() repository.AuditLogRepository {
	return f.auditLogs
}

type tierRequestFixture struct {
	txManager       *mockRepo.MockTransactionManager
	tierRequestRepo *mockRepo.MockTierRequestRepository
	vendorRepo      *mockRepo.MockVendorRepository
	userRepo        *mockRepo.MockUserRepository
	publisher       *mockSvc.MockEventPublisher
	service         usecase.TierRequestUsecase
}

func newTierRequestFixture(t *testing.T) *tierRequestFixture {
	f := &tierRequestFixture{
		txManager:       mockRepo.NewMockTransactionManager(t),
		tierRequestRepo: mockRepo.NewMockTierRequestRepository(t),
		vendorRepo:      mockRepo.NewMockVendorRepository(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewTierRequestService(TierRequestServiceParams{
		TxManager:       f.txManager,
		TierRequestRepo: f.tierRequestRepo,
		VendorRepo:      f.vendorRepo,
		UserRepo:        f.userRepo,
		Publisher:       f.publisher,
		Logger:          discardLogger(),
	})

	return f
}

func validNotes() string {
	return "We are expanding to three new marinas this season."
}

func TestTierRequestService_Submit_Upgrade(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	vendorID := uuid.New()
	userID := uuid.New()

	vendor := &entity.Vendor{ID: vendorID, CompanyName: "Riviera Charters", Tier: entity.TierFree}

	f.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(vendor, nil)

	f.tierRequestRepo.EXPECT().
		FindPendingByVendorAndType(ctx, vendorID, entity.RequestTypeUpgrade).
		Return(nil, repository.ErrTierRequestNotFound)

	f.tierRequestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.TierChangeRequest")).
		Return(nil)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "owner@riviera.example"}, nil)

	f.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	request, err := f.service.Submit(ctx, usecase.SubmitTierRequestInput{
		VendorID:      vendorID,
		UserID:        userID,
		RequestedTier: entity.TierBusiness,
		VendorNotes:   "  " + validNotes() + "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestTypeUpgrade, request.RequestType)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, entity.TierFree, request.CurrentTier)
	assert.Equal(t, entity.TierBusiness, request.RequestedTier)
	assert.Equal(t, validNotes(), request.VendorNotes)
}

func TestTierRequestService_Submit_DowngradeType(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	vendorID := uuid.New()
	userID := uuid.New()

	f.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Tier: entity.TierEnterprise}, nil)

	f.tierRequestRepo.EXPECT().
		FindPendingByVendorAndType(ctx, vendorID, entity.RequestTypeDowngrade).
		Return(nil, repository.ErrTierRequestNotFound)

	f.tierRequestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.TierChangeRequest")).
		Return(nil)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	f.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	request, err := f.service.Submit(ctx, usecase.SubmitTierRequestInput{
		VendorID:      vendorID,
		UserID:        userID,
		RequestedTier: entity.TierProfessional,
		VendorNotes:   validNotes(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestTypeDowngrade, request.RequestType)
}

func TestTierRequestService_Submit_NotesLength(t *testing.T) {
	tests := []struct {
		name     string
		notes    string
		accepted bool
	}{
		{name: "empty notes are allowed", notes: "", accepted: true},
		{name: "whitespace-only counts as empty", notes: "   ", accepted: true},
		{name: "below minimum", notes: "too short", accepted: false},
		{name: "exactly at minimum", notes: strings.Repeat("x", 20), accepted: true},
		{name: "exactly at maximum", notes: strings.Repeat("x", 500), accepted: true},
		{name: "above maximum", notes: strings.Repeat("x", 501), accepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTierRequestFixture(t)

			ctx := context.Background()
			vendorID := uuid.New()
			userID := uuid.New()

			if tt.accepted {
				f.vendorRepo.EXPECT().
					FindByID(ctx, vendorID).
					Return(&entity.Vendor{ID: vendorID, Tier: entity.TierFree}, nil)
				f.tierRequestRepo.EXPECT().
					FindPendingByVendorAndType(ctx, vendorID, entity.RequestTypeUpgrade).
					Return(nil, repository.ErrTierRequestNotFound)
				f.tierRequestRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*entity.TierChangeRequest")).
					Return(nil)
				f.userRepo.EXPECT().
					FindByID(ctx, userID).
					Return(&entity.User{ID: userID}, nil)
				f.publisher.EXPECT().
					Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
					Return(nil)
			}

			request, err := f.service.Submit(ctx, usecase.SubmitTierRequestInput{
				VendorID:      vendorID,
				UserID:        userID,
				RequestedTier: entity.TierBusiness,
				VendorNotes:   tt.notes,
			})
			if tt.accepted {
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tt.notes), request.VendorNotes)

				return
			}

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
		})
	}
}

func TestTierRequestService_Submit_SameTier(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	vendorID := uuid.New()

	f.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Tier: entity.TierBusiness}, nil)

	_, err := f.service.Submit(ctx, usecase.SubmitTierRequestInput{
		VendorID:      vendorID,
		UserID:        uuid.New(),
		RequestedTier: entity.TierBusiness,
		VendorNotes:   validNotes(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrSameTierRequested)
}

func TestTierRequestService_Submit_DuplicatePending(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	vendorID := uuid.New()

	f.vendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Tier: entity.TierFree}, nil)

	existing := &entity.TierChangeRequest{
		ID:          uuid.New(),
		VendorID:    vendorID,
		RequestType: entity.RequestTypeUpgrade,
		Status:      entity.RequestStatusPending,
		RequestedAt: time.Now(),
	}
	f.tierRequestRepo.EXPECT().
		FindPendingByVendorAndType(ctx, vendorID, entity.RequestTypeUpgrade).
		Return(existing, nil)

	_, err := f.service.Submit(ctx, usecase.SubmitTierRequestInput{
		VendorID:      vendorID,
		UserID:        uuid.New(),
		RequestedTier: entity.TierProfessional,
		VendorNotes:   validNotes(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_REQUEST", appErr.ErrorCode())
}

func TestTierRequestService_Cancel(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	vendorID := uuid.New()
	userID := uuid.New()
	requestID := uuid.New()

	request := &entity.TierChangeRequest{
		ID:       requestID,
		VendorID: vendorID,
		UserID:   userID,
		Status:   entity.RequestStatusPending,
	}

	f.tierRequestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(request, nil)

	f.tierRequestRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.TierChangeRequest")).
		Return(nil)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	f.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	cancelled, err := f.service.Cancel(ctx, vendorID, userID, requestID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusCancelled, cancelled.Status)
}

func TestTierRequestService_Cancel_WrongVendor(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	requestID := uuid.New()

	f.tierRequestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.TierChangeRequest{
			ID:       requestID,
			VendorID: uuid.New(),
			Status:   entity.RequestStatusPending,
		}, nil)

	_, err := f.service.Cancel(ctx, uuid.New(), uuid.New(), requestID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTierRequestService_Cancel_AlreadyReviewed(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	vendorID := uuid.New()
	requestID := uuid.New()

	f.tierRequestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.TierChangeRequest{
			ID:       requestID,
			VendorID: vendorID,
			Status:   entity.RequestStatusApproved,
		}, nil)

	_, err := f.service.Cancel(ctx, vendorID, uuid.New(), requestID)
	assert.ErrorIs(t, err, domainerrors.ErrRequestAlreadyReviewed)
}

func TestTierRequestService_Approve_AppliesTier(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	vendorID := uuid.New()
	userID := uuid.New()
	adminID := uuid.New()
	requestID := uuid.New()

	request := &entity.TierChangeRequest{
		ID:            requestID,
		VendorID:      vendorID,
		UserID:        userID,
		RequestType:   entity.RequestTypeUpgrade,
		CurrentTier:   entity.TierFree,
		RequestedTier: entity.TierBusiness,
		Status:        entity.RequestStatusPending,
	}

	txTierRequestRepo := mockRepo.NewMockTierRequestRepository(t)
	txVendorRepo := mockRepo.NewMockVendorRepository(t)

	txTierRequestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(request, nil)

	txTierRequestRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.TierChangeRequest")).
		Return(nil)

	txVendorRepo.EXPECT().
		UpdateTier(ctx, vendorID, entity.TierBusiness).
		Return(nil)

	txVendorRepo.EXPECT().
		FindByID(ctx, vendorID).
		Return(&entity.Vendor{ID: vendorID, Tier: entity.TierBusiness}, nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(&stubRepoFactory{
				tierRequests: txTierRequestRepo,
				vendors:      txVendorRepo,
			})
		})

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	f.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	approved, err := f.service.Approve(ctx, usecase.ReviewTierRequestInput{
		RequestID: requestID,
		AdminID:   adminID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, adminID, *approved.ReviewedBy)
	assert.NotNil(t, approved.ReviewedAt)
}

func TestTierRequestService_Approve_AlreadyReviewed(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	requestID := uuid.New()

	txTierRequestRepo := mockRepo.NewMockTierRequestRepository(t)
	txTierRequestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.TierChangeRequest{
			ID:     requestID,
			Status: entity.RequestStatusRejected,
		}, nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(&stubRepoFactory{tierRequests: txTierRequestRepo})
		})

	_, err := f.service.Approve(ctx, usecase.ReviewTierRequestInput{
		RequestID: requestID,
		AdminID:   uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrRequestAlreadyReviewed)
}

func TestTierRequestService_Reject_DefaultReason(t *testing.T) {
	f := newTierRequestFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	requestID := uuid.New()

	f.tierRequestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.TierChangeRequest{
			ID:     requestID,
			UserID: userID,
			Status: entity.RequestStatusPending,
		}, nil)

	f.tierRequestRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.TierChangeRequest")).
		Return(nil)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	f.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	rejected, err := f.service.Reject(ctx, usecase.ReviewTierRequestInput{
		RequestID:       requestID,
		AdminID:         uuid.New(),
		RejectionReason: "   ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, rejected.Status)
	assert.Equal(t, "No reason provided", rejected.RejectionReason)
}

func TestTierRequestService_Reject_ReasonTooLong(t *testing.T) {
	f := newTierRequestFixture(t)

	_, err := f.service.Reject(context.Background(), usecase.ReviewTierRequestInput{
		RequestID:       uuid.New(),
		AdminID:         uuid.New(),
		RejectionReason: strings.Repeat("x", 1001),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}
