package handler

import (
	"net/http"

	"thames/config"
	"thames/internal/delivery/http/middleware"
	"thames/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TestHandler handles endpoints registered only when test routes are enabled.
// End-to-end suites use them to assert middleware behavior and suppression state.
type TestHandler struct {
	cfg *config.Config
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(cfg *config.Config) *TestHandler {
	return &TestHandler{cfg: cfg}
}

// WhoAmI echoes the authenticated caller from the request context.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	data := map[string]any{
		"userId": middleware.UserID(c).String(),
		"role":   middleware.Role(c).String(),
	}
	if vendorID := middleware.VendorID(c); vendorID != uuid.Nil {
		data["vendorId"] = vendorID.String()
	}

	return response.Success(c, http.StatusOK, data)
}

// EmailStatus reports whether outbound email is suppressed, so end-to-end
// suites can assert their environment before running notification flows.
func (h *TestHandler) EmailStatus(c echo.Context) error {
	disabled := true
	if h.cfg.Email != nil {
		disabled = h.cfg.Email.Disabled
	}

	return response.Success(c, http.StatusOK, map[string]bool{"emailsDisabled": disabled})
}
