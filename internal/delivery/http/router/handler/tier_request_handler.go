package handler

import (
	"net/http"

	"thames/internal/delivery/http/middleware"
	"thames/internal/delivery/http/response"
	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TierRequestHandler serves the vendor-facing tier change request endpoints.
type TierRequestHandler struct {
	uc usecase.TierRequestUsecase
}

// NewTierRequestHandler is the constructor for TierRequestHandler, injected by Fx.
func NewTierRequestHandler(uc usecase.TierRequestUsecase) *TierRequestHandler {
	return &TierRequestHandler{uc: uc}
}

type submitTierRequestRequest struct {
	RequestedTier string `json:"requestedTier" validate:"required"`
	VendorNotes   string `json:"vendorNotes"`
}

// Submit creates a pending tier change request for the caller's vendor.
func (h *TierRequestHandler) Submit(c echo.Context) error {
	var req submitTierRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tier request input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tier, err := entity.ParseTier(req.RequestedTier)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Unknown tier: " + req.RequestedTier)
	}

	request, err := h.uc.Submit(c.Request().Context(), usecase.SubmitTierRequestInput{
		VendorID:      middleware.VendorID(c),
		UserID:        middleware.UserID(c),
		RequestedTier: tier,
		VendorNotes:   req.VendorNotes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTierRequestJSON(request))
}

// Cancel withdraws the caller's own pending request.
func (h *TierRequestHandler) Cancel(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid request ID")
	}

	request, err := h.uc.Cancel(c.Request().Context(), middleware.VendorID(c), middleware.UserID(c), requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTierRequestJSON(request))
}

// List returns the caller's request history, newest first.
func (h *TierRequestHandler) List(c echo.Context) error {
	requests, err := h.uc.ListForVendor(c.Request().Context(), middleware.VendorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTierRequestListJSON(requests))
}
