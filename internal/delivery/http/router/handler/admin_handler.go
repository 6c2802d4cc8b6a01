package handler

import (
	"context"
	"net/http"

	"thames/internal/delivery/http/middleware"
	"thames/internal/delivery/http/response"
	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the admin review queues: tier requests, user accounts
// and the audit log.
type AdminHandler struct {
	tierRequests usecase.TierRequestUsecase
	accounts     usecase.AccountUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(tierRequests usecase.TierRequestUsecase, accounts usecase.AccountUsecase) *AdminHandler {
	return &AdminHandler{tierRequests: tierRequests, accounts: accounts}
}

// ListTierRequests returns tier change requests for the review queue.
func (h *AdminHandler) ListTierRequests(c echo.Context) error {
	filter := repository.TierRequestFilter{
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.RequestStatus(raw)
		if !status.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("Unknown status: " + raw)
		}
		filter.Status = &status
	}
	if raw := c.QueryParam("type"); raw != "" {
		requestType := entity.RequestType(raw)
		if !requestType.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("Unknown request type: " + raw)
		}
		filter.RequestType = &requestType
	}
	if raw := c.QueryParam("vendorId"); raw != "" {
		vendorID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("Invalid vendor ID")
		}
		filter.VendorID = &vendorID
	}

	page, err := h.tierRequests.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items:  toTierRequestListJSON(page.Requests),
		Total:  page.Total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// ApproveTierRequest approves a pending request and applies the tier change.
func (h *AdminHandler) ApproveTierRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid request ID")
	}

	request, err := h.tierRequests.Approve(c.Request().Context(), usecase.ReviewTierRequestInput{
		RequestID: requestID,
		AdminID:   middleware.UserID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTierRequestJSON(request))
}

type rejectRequest struct {
	RejectionReason string `json:"rejectionReason" validate:"omitempty,max=1000"`
}

// RejectTierRequest rejects a pending request. The vendor keeps its tier.
func (h *AdminHandler) RejectTierRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid request ID")
	}

	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid rejection input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	request, err := h.tierRequests.Reject(c.Request().Context(), usecase.ReviewTierRequestInput{
		RequestID:       requestID,
		AdminID:         middleware.UserID(c),
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTierRequestJSON(request))
}

// ListUsers returns user accounts filtered by status for the review queue.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	status := entity.AccountStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.AccountStatusPending
	}
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("Unknown status: " + status.String())
	}

	users, err := h.accounts.ListUsers(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]userJSON, 0, len(users))
	for _, user := range users {
		items = append(items, toUserJSON(user))
	}

	return response.Success(c, http.StatusOK, items)
}

// ApproveUser approves a pending account.
func (h *AdminHandler) ApproveUser(c echo.Context) error {
	return h.reviewUser(c, h.accounts.Approve)
}

// RejectUser rejects a pending account and revokes its credentials.
func (h *AdminHandler) RejectUser(c echo.Context) error {
	return h.reviewUser(c, h.accounts.Reject)
}

// SuspendUser suspends an approved account and revokes its credentials.
func (h *AdminHandler) SuspendUser(c echo.Context) error {
	return h.reviewUser(c, h.accounts.Suspend)
}

func (h *AdminHandler) reviewUser(
	c echo.Context,
	decide func(ctx context.Context, input usecase.ReviewAccountInput) (*entity.User, error),
) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid user ID")
	}

	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}

	user, err := decide(c.Request().Context(), usecase.ReviewAccountInput{
		UserID:          userID,
		AdminID:         middleware.UserID(c),
		RejectionReason: req.RejectionReason,
		IPAddress:       c.RealIP(),
		UserAgent:       c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserJSON(user))
}

// AuditLog returns audit entries matching the filter, newest first.
func (h *AdminHandler) AuditLog(c echo.Context) error {
	filter := repository.AuditLogFilter{
		Email:  c.QueryParam("email"),
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}
	if raw := c.QueryParam("event"); raw != "" {
		event := entity.AuditEvent(raw)
		if !event.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("Unknown event: " + raw)
		}
		filter.Event = &event
	}
	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("Invalid user ID")
		}
		filter.UserID = &userID
	}

	page, err := h.accounts.AuditLog(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]auditEntryJSON, 0, len(page.Entries))
	for _, entry := range page.Entries {
		items = append(items, toAuditEntryJSON(entry))
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items:  items,
		Total:  page.Total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}
