package handler

import (
	"net/http"
	"testing"

	domainerrors "thames/internal/domain/errors"
	mockUC "thames/internal/mocks/usecase"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationHandler_ImportExecute_RequiresConfirmation(t *testing.T) {
	t.Parallel()

	importer := mockUC.NewMockImportUsecase(t)
	h := NewLocationHandler(nil, importer, nil)

	c, _ := newPortalContext(t, uuid.New(), uuid.New(), `{"token":"preview-token"}`)

	err := h.ImportExecute(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestLocationHandler_ImportExecute_Confirmed(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	vendorID := uuid.New()

	importer := mockUC.NewMockImportUsecase(t)
	importer.EXPECT().
		Execute(mock.Anything, userID, vendorID, "preview-token").
		Return(&usecase.ImportResult{Created: 2, Skipped: 1}, nil)

	h := NewLocationHandler(nil, importer, nil)
	c, rec := newPortalContext(t, userID, vendorID, `{"token":"preview-token","confirmed":true}`)

	require.NoError(t, h.ImportExecute(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":2`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
