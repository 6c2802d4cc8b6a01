package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"thames/internal/delivery/http/middleware"
	"thames/internal/delivery/http/validator"
	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	mockUC "thames/internal/mocks/usecase"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newPortalContext builds an echo context for a vendor-portal request with
// the auth middleware's context values already in place.
func newPortalContext(t *testing.T, userID, vendorID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyVendorID, vendorID)

	return c, rec
}

func TestTierRequestHandler_Submit_UnknownTier(t *testing.T) {
	t.Parallel()

	uc := mockUC.NewMockTierRequestUsecase(t)
	h := NewTierRequestHandler(uc)

	c, _ := newPortalContext(t, uuid.New(), uuid.New(), `{"requestedTier":"platinum"}`)

	err := h.Submit(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestTierRequestHandler_Submit_NotesAreOptional(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	vendorID := uuid.New()

	request := &entity.TierChangeRequest{
		ID:            uuid.New(),
		VendorID:      vendorID,
		UserID:        userID,
		RequestType:   entity.RequestTypeUpgrade,
		CurrentTier:   entity.TierFree,
		RequestedTier: entity.TierProfessional,
		Status:        entity.RequestStatusPending,
	}

	uc := mockUC.NewMockTierRequestUsecase(t)
	uc.EXPECT().
		Submit(mock.Anything, usecase.SubmitTierRequestInput{
			VendorID:      vendorID,
			UserID:        userID,
			RequestedTier: entity.TierProfessional,
		}).
		Return(request, nil)

	h := NewTierRequestHandler(uc)
	c, rec := newPortalContext(t, userID, vendorID, `{"requestedTier":"tier1"}`)

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestTierRequestHandler_Submit_ForwardsNotes(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	vendorID := uuid.New()
	notes := strings.Repeat("n", 40)

	uc := mockUC.NewMockTierRequestUsecase(t)
	uc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("usecase.SubmitTierRequestInput")).
		Run(func(_ context.Context, input usecase.SubmitTierRequestInput) {
			assert.Equal(t, notes, input.VendorNotes)
		}).
		Return(&entity.TierChangeRequest{
			ID:            uuid.New(),
			VendorID:      vendorID,
			RequestedTier: entity.TierBusiness,
			Status:        entity.RequestStatusPending,
		}, nil)

	h := NewTierRequestHandler(uc)
	c, rec := newPortalContext(t, userID, vendorID, `{"requestedTier":"tier2","vendorNotes":"`+notes+`"}`)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
