package impl

import (
	"context"
	"fmt"
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

const (
	vendorNotesMinLength = 20
	vendorNotesMaxLength = 500

	rejectionReasonMaxLength = 1000
	// Applied when an admin rejects without giving a reason.
	defaultRejectionReason = "No reason provided"
)

// tierRequestService implements the TierRequestUsecase interface.
type tierRequestService struct {
	txManager       repository.TransactionManager
	tierRequestRepo repository.TierRequestRepository
	vendorRepo      repository.VendorRepository
	userRepo        repository.UserRepository
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// TierRequestServiceParams holds dependencies for TierRequestService, injected by Fx.
type TierRequestServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	TierRequestRepo repository.TierRequestRepository
	VendorRepo      repository.VendorRepository
	UserRepo        repository.UserRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewTierRequestService is the constructor for tierRequestService.
func NewTierRequestService(params TierRequestServiceParams) usecase.TierRequestUsecase {
	return &tierRequestService{
		txManager:       params.TxManager,
		tierRequestRepo: params.TierRequestRepo,
		vendorRepo:      params.VendorRepo,
		userRepo:        params.UserRepo,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
}

func (srv *tierRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit creates a pending tier change request for a vendor.
func (srv *tierRequestService) Submit(ctx context.Context, input usecase.SubmitTierRequestInput) (*entity.TierChangeRequest, error) {
	if err := validateVendorNotes(input.VendorNotes); err != nil {
		return nil, err
	}
	if !input.RequestedTier.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown tier: " + string(input.RequestedTier))
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor for tier request")
	}

	currentTier := entity.NormalizeTier(string(vendor.Tier))
	if input.RequestedTier == currentTier {
		return nil, domainerrors.ErrSameTierRequested
	}

	requestType := entity.RequestTypeUpgrade
	if entity.IsDowngrade(currentTier, input.RequestedTier) {
		requestType = entity.RequestTypeDowngrade
	}

	if existing, err := srv.tierRequestRepo.FindPendingByVendorAndType(ctx, input.VendorID, requestType); err == nil && existing != nil {
		return nil, duplicateRequestError(existing)
	} else if err != nil && !errors.Is(err, repository.ErrTierRequestNotFound) {
		return nil, errors.Wrap(err, "failed to check for pending tier request")
	}

	now := time.Now()
	request := &entity.TierChangeRequest{
		ID:            uuid.New(),
		VendorID:      input.VendorID,
		UserID:        input.UserID,
		RequestType:   requestType,
		CurrentTier:   currentTier,
		RequestedTier: input.RequestedTier,
		Status:        entity.RequestStatusPending,
		VendorNotes:   strings.TrimSpace(input.VendorNotes),
		RequestedAt:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.tierRequestRepo.Create(ctx, request); err != nil {
		// The partial unique index closes the race between the pre-check and the insert.
		if errors.Is(err, repository.ErrDuplicatePendingRequest) {
			return nil, duplicateRequestError(request)
		}

		srv.log(ctx).Error("Failed to create tier request",
			slog.String("vendorID", input.VendorID.String()),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create tier request")
	}

	srv.publish(ctx, &service.DomainEvent{
		Name:        service.EventTierRequestSubmitted,
		TierRequest: request,
		Vendor:      vendor,
		User:        srv.lookupRequester(ctx, input.UserID),
	})

	srv.log(ctx).Info("Tier request submitted",
		slog.String("requestID", request.ID.String()),
		slog.String("vendorID", input.VendorID.String()),
		slog.String("type", string(requestType)),
		slog.String("requestedTier", string(input.RequestedTier)))

	return request, nil
}

// Cancel transitions the vendor's own pending request to cancelled.
func (srv *tierRequestService) Cancel(ctx context.Context, vendorID, userID, requestID uuid.UUID) (*entity.TierChangeRequest, error) {
	request, err := srv.tierRequestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrTierRequestNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find tier request")
	}

	if request.VendorID != vendorID {
		return nil, domainerrors.ErrForbidden
	}
	if request.Status != entity.RequestStatusPending {
		return nil, domainerrors.ErrRequestAlreadyReviewed
	}

	request.Status = entity.RequestStatusCancelled
	request.UpdatedAt = time.Now()

	if err := srv.tierRequestRepo.Update(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to cancel tier request")
	}

	srv.publish(ctx, &service.DomainEvent{
		Name:        service.EventTierRequestCancelled,
		TierRequest: request,
		User:        srv.lookupRequester(ctx, userID),
	})

	srv.log(ctx).Info("Tier request cancelled", slog.String("requestID", requestID.String()))

	return request, nil
}

// ListForVendor returns all requests of one vendor, newest first.
func (srv *tierRequestService) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.TierChangeRequest, error) {
	requests, err := srv.tierRequestRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tier requests for vendor")
	}

	return requests, nil
}

// List returns requests matching the filter for the admin review queue.
func (srv *tierRequestService) List(ctx context.Context, filter repository.TierRequestFilter) (*usecase.TierRequestPage, error) {
	requests, total, err := srv.tierRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tier requests")
	}

	return &usecase.TierRequestPage{Requests: requests, Total: total}, nil
}

// Approve transitions a pending request to approved and applies the tier.
func (srv *tierRequestService) Approve(ctx context.Context, input usecase.ReviewTierRequestInput) (*entity.TierChangeRequest, error) {
	var request *entity.TierChangeRequest
	var vendor *entity.Vendor

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tierRequestRepo := repoFactory.NewTierRequestRepository()
		vendorRepo := repoFactory.NewVendorRepository()

		found, err := tierRequestRepo.FindByID(ctx, input.RequestID)
		if err != nil {
			if errors.Is(err, repository.ErrTierRequestNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find tier request")
		}
		if found.Status != entity.RequestStatusPending {
			return domainerrors.ErrRequestAlreadyReviewed
		}

		now := time.Now()
		found.Status = entity.RequestStatusApproved
		found.ReviewedBy = &input.AdminID
		found.ReviewedAt = &now
		found.UpdatedAt = now

		if err := tierRequestRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update tier request")
		}

		// The vendor tier and the request decision move together or not at all.
		if err := vendorRepo.UpdateTier(ctx, found.VendorID, found.RequestedTier); err != nil {
			return errors.Wrap(err, "failed to apply tier to vendor")
		}

		vendor, err = vendorRepo.FindByID(ctx, found.VendorID)
		if err != nil {
			return errors.Wrap(err, "failed to reload vendor after tier change")
		}

		request = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, &service.DomainEvent{
		Name:        service.EventTierRequestApproved,
		TierRequest: request,
		Vendor:      vendor,
		User:        srv.lookupRequester(ctx, request.UserID),
	})

	srv.log(ctx).Info("Tier request approved",
		slog.String("requestID", request.ID.String()),
		slog.String("vendorID", request.VendorID.String()),
		slog.String("tier", string(request.RequestedTier)))

	return request, nil
}

// Reject transitions a pending request to rejected. The vendor keeps its tier.
func (srv *tierRequestService) Reject(ctx context.Context, input usecase.ReviewTierRequestInput) (*entity.TierChangeRequest, error) {
	reason := strings.TrimSpace(input.RejectionReason)
	if reason == "" {
		reason = defaultRejectionReason
	}
	if utf8.RuneCountInString(reason) > rejectionReasonMaxLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("rejection reason must be at most %d characters", rejectionReasonMaxLength))
	}

	request, err := srv.tierRequestRepo.FindByID(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrTierRequestNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find tier request")
	}
	if request.Status != entity.RequestStatusPending {
		return nil, domainerrors.ErrRequestAlreadyReviewed
	}

	now := time.Now()
	request.Status = entity.RequestStatusRejected
	request.RejectionReason = reason
	request.ReviewedBy = &input.AdminID
	request.ReviewedAt = &now
	request.UpdatedAt = now

	if err := srv.tierRequestRepo.Update(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to reject tier request")
	}

	srv.publish(ctx, &service.DomainEvent{
		Name:        service.EventTierRequestRejected,
		TierRequest: request,
		User:        srv.lookupRequester(ctx, request.UserID),
	})

	srv.log(ctx).Info("Tier request rejected",
		slog.String("requestID", request.ID.String()),
		slog.String("vendorID", request.VendorID.String()))

	return request, nil
}

// publish hands an event to the dispatcher. Side effects are best-effort:
// a publish failure is logged and swallowed.
func (srv *tierRequestService) publish(ctx context.Context, event *service.DomainEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event",
			slog.String("event", event.Name),
			slog.Any("error", err))
	}
}

// lookupRequester resolves the requesting user for notification snapshots.
// Failure only degrades the notification, never the operation.
func (srv *tierRequestService) lookupRequester(ctx context.Context, userID uuid.UUID) *entity.User {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load requester for notification",
			slog.String("userID", userID.String()),
			slog.Any("error", err))

		return nil
	}

	return user
}

// validateVendorNotes enforces the length bounds only when notes are given;
// submitting without notes is allowed.
func validateVendorNotes(notes string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(notes))
	if length == 0 {
		return nil
	}
	if length < vendorNotesMinLength || length > vendorNotesMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("vendor notes must be between %d and %d characters", vendorNotesMinLength, vendorNotesMaxLength))
	}

	return nil
}

func duplicateRequestError(existing *entity.TierChangeRequest) error {
	return domainerrors.ErrDuplicateRequest.WithDetails(
		fmt.Sprintf("pending %s request %s submitted at %s",
			existing.RequestType, existing.ID, existing.RequestedAt.Format(time.RFC3339)))
}
