package handler

import (
	"net/http"

	"thames/internal/delivery/http/middleware"
	"thames/internal/delivery/http/response"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler serves the vendor portal's location management endpoints,
// including bulk spreadsheet import and the geocoding proxy.
type LocationHandler struct {
	uc       usecase.VendorUsecase
	importer usecase.ImportUsecase
	geocoder usecase.GeocodeUsecase
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.VendorUsecase, importer usecase.ImportUsecase, geocoder usecase.GeocodeUsecase) *LocationHandler {
	return &LocationHandler{uc: uc, importer: importer, geocoder: geocoder}
}

type locationRequest struct {
	LocationName string  `json:"locationName" validate:"omitempty,max=200"`
	Address      string  `json:"address" validate:"required,max=500"`
	City         string  `json:"city" validate:"required,max=200"`
	State        string  `json:"state" validate:"omitempty,max=200"`
	Country      string  `json:"country" validate:"required,max=200"`
	PostalCode   string  `json:"postalCode" validate:"omitempty,max=20"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	IsHQ         bool    `json:"isHq"`
}

// List returns every location of the caller's vendor.
func (h *LocationHandler) List(c echo.Context) error {
	vendor, err := h.uc.GetVendor(c.Request().Context(), middleware.UserID(c), middleware.VendorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]locationJSON, 0, len(vendor.Locations))
	for i := range vendor.Locations {
		items = append(items, toLocationJSON(&vendor.Locations[i]))
	}

	return response.Success(c, http.StatusOK, items)
}

// Create adds a location, subject to the tier's location limit.
func (h *LocationHandler) Create(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.uc.AddLocation(c.Request().Context(), h.toInput(c, req, nil))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLocationJSON(location))
}

// Update replaces the fields of an existing location.
func (h *LocationHandler) Update(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid location ID")
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.uc.UpdateLocation(c.Request().Context(), h.toInput(c, req, &locationID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationJSON(location))
}

// Delete removes a location. Deleting the HQ promotes the oldest remaining one.
func (h *LocationHandler) Delete(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid location ID")
	}

	err = h.uc.DeleteLocation(c.Request().Context(), middleware.UserID(c), middleware.VendorID(c), locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"})
}

// SetHQ marks a location as headquarters, clearing the flag everywhere else.
func (h *LocationHandler) SetHQ(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid location ID")
	}

	locations, err := h.uc.SetHQ(c.Request().Context(), middleware.UserID(c), middleware.VendorID(c), locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationListJSON(locations))
}

// ImportPreview parses an uploaded spreadsheet and validates it without writing.
func (h *LocationHandler) ImportPreview(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("A 'file' form field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	preview, err := h.importer.Preview(c.Request().Context(), middleware.UserID(c), middleware.VendorID(c), file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toImportPreviewJSON(preview))
}

type importExecuteRequest struct {
	Token     string `json:"token" validate:"required"`
	Confirmed bool   `json:"confirmed"`
}

// ImportExecute commits the valid rows of a prior preview. The caller must
// confirm explicitly; holding a preview token alone is not consent to write.
func (h *LocationHandler) ImportExecute(c echo.Context) error {
	var req importExecuteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid import input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !req.Confirmed {
		return domainerrors.ErrValidationFailed.WithDetails("Import must be confirmed")
	}

	result, err := h.importer.Execute(c.Request().Context(), middleware.UserID(c), middleware.VendorID(c), req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"created": result.Created,
		"skipped": result.Skipped,
	})
}

// Geocode proxies a forward geocoding lookup for the location editor.
func (h *LocationHandler) Geocode(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return domainerrors.ErrValidationFailed.WithDetails("An 'address' query parameter is required")
	}

	results, err := h.geocoder.Lookup(c.Request().Context(), address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results)
}

func (h *LocationHandler) toInput(c echo.Context, req locationRequest, locationID *uuid.UUID) usecase.LocationInput {
	return usecase.LocationInput{
		VendorID:     middleware.VendorID(c),
		UserID:       middleware.UserID(c),
		LocationID:   locationID,
		LocationName: req.LocationName,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsHQ:         req.IsHQ,
	}
}

type importRowJSON struct {
	RowNumber int           `json:"rowNumber"`
	Location  *locationJSON `json:"location,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

type importPreviewJSON struct {
	Token      string          `json:"token"`
	Rows       []importRowJSON `json:"rows"`
	ValidCount int             `json:"validCount"`
	ErrorCount int             `json:"errorCount"`
}

func toImportPreviewJSON(preview *usecase.ImportPreview) importPreviewJSON {
	out := importPreviewJSON{
		Token:      preview.Token,
		Rows:       make([]importRowJSON, 0, len(preview.Rows)),
		ValidCount: preview.ValidCount,
		ErrorCount: preview.ErrorCount,
	}
	for _, row := range preview.Rows {
		rowJSON := importRowJSON{
			RowNumber: row.RowNumber,
			Errors:    row.Errors,
		}
		if row.Location != nil {
			loc := toLocationJSON(row.Location)
			rowJSON.Location = &loc
		}
		out.Rows = append(out.Rows, rowJSON)
	}

	return out
}
