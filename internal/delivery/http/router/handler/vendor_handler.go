package handler

import (
	"net/http"
	"strconv"

	"thames/config"
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

const defaultMaxUploadSize = 10 << 20 // 10 MiB

// VendorHandler serves the public directory and the vendor portal profile.
type VendorHandler struct {
	uc           usecase.VendorUsecase
	entitlements usecase.EntitlementUsecase
	cfg          *config.Config
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, entitlements usecase.EntitlementUsecase, cfg *config.Config) *VendorHandler {
	return &VendorHandler{uc: uc, entitlements: entitlements, cfg: cfg}
}

// Search lists published vendors for the public directory.
func (h *VendorHandler) Search(c echo.Context) error {
	filter := repository.VendorSearchFilter{
		Query:         c.QueryParam("q"),
		Country:       c.QueryParam("country"),
		FeaturedOnly:  c.QueryParam("featured") == "true",
		PublishedOnly: true,
		Limit:         queryInt(c, "limit", h.defaultPageSize()),
		Offset:        queryInt(c, "offset", 0),
	}
	if raw := c.QueryParam("tier"); raw != "" {
		tier, err := entity.ParseTier(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("Unknown tier: " + raw)
		}
		filter.Tier = &tier
	}
	if max := h.maxPageSize(); filter.Limit > max {
		filter.Limit = max
	}

	page, err := h.uc.Search(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]vendorJSON, 0, len(page.Vendors))
	for _, vendor := range page.Vendors {
		items = append(items, toVendorSummaryJSON(vendor))
	}

	return response.Success(c, http.StatusOK, response.Page{
		Items:  items,
		Total:  page.Total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

type nearbyMatchJSON struct {
	Vendor          vendorJSON   `json:"vendor"`
	MatchedLocation locationJSON `json:"matchedLocation"`
	DistanceKm      float64      `json:"distanceKm"`
}

// SearchNearby returns published vendors within a radius of the origin.
func (h *VendorHandler) SearchNearby(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return domainerrors.ErrValidationFailed.WithDetails("lat and lng are required numeric parameters")
	}

	radiusKm, _ := strconv.ParseFloat(c.QueryParam("radiusKm"), 64)

	matches, err := h.uc.SearchNearby(c.Request().Context(), usecase.ProximitySearchInput{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radiusKm,
		Limit:     queryInt(c, "limit", 0),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]nearbyMatchJSON, 0, len(matches))
	for _, match := range matches {
		items = append(items, nearbyMatchJSON{
			Vendor:          toVendorSummaryJSON(match.Vendor),
			MatchedLocation: toLocationJSON(match.MatchedLocation),
			DistanceKm:      match.DistanceKm,
		})
	}

	return response.Success(c, http.StatusOK, items)
}

type publicProfileJSON struct {
	Vendor         vendorJSON      `json:"vendor"`
	Locations      []locationJSON  `json:"locations"`
	TotalLocations int             `json:"totalLocations"`
	UpgradePrompt  bool            `json:"upgradePrompt"`
	TierInfo       entity.TierInfo `json:"tierInfo"`
}

// GetPublicProfile renders a published vendor with tier-gated locations.
func (h *VendorHandler) GetPublicProfile(c echo.Context) error {
	profile, err := h.uc.GetPublicProfile(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	vendor := toVendorJSON(profile.Vendor)
	// The location list on the vendor is unfiltered; only the gated list leaves.
	vendor.Locations = nil

	return response.Success(c, http.StatusOK, publicProfileJSON{
		Vendor:         vendor,
		Locations:      toLocationListJSON(profile.VisibleLocations),
		TotalLocations: profile.TotalLocations,
		UpgradePrompt:  profile.UpgradePrompt,
		TierInfo:       profile.TierInfo,
	})
}

// GetTierCatalog returns the tier table for pricing pages.
func (h *VendorHandler) GetTierCatalog(c echo.Context) error {
	catalog := h.entitlements.Catalog(c.Request().Context())

	tiers := make([]map[string]any, 0, len(entity.AllTiers()))
	for _, tier := range entity.AllTiers() {
		info := catalog.InfoFor(tier)
		tiers = append(tiers, map[string]any{
			"tier":         string(tier),
			"name":         info.Name,
			"description":  info.Description,
			"monthlyPrice": info.MonthlyPrice,
			"yearlyPrice":  info.YearlyPrice,
			"maxLocations": info.MaxLocations,
			"maxProducts":  info.MaxProducts,
			"maxMedia":     info.MaxMedia,
			"benefits":     info.Benefits,
		})
	}

	return response.Success(c, http.StatusOK, tiers)
}

// GetOwnProfile loads the caller's vendor for the portal.
func (h *VendorHandler) GetOwnProfile(c echo.Context) error {
	vendor, err := h.uc.GetVendor(c.Request().Context(), middleware.UserID(c), middleware.VendorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVendorJSON(vendor))
}

type updateProfileRequest struct {
	CompanyName  *string `json:"companyName" validate:"omitempty,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,max=50"`
	Website      *string `json:"website" validate:"omitempty,url"`
}

// UpdateProfile updates the caller's vendor profile. Absent fields are unchanged.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vendor, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateVendorProfileInput{
		VendorID:     middleware.VendorID(c),
		UserID:       middleware.UserID(c),
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Website:      req.Website,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVendorJSON(vendor))
}

// AddMedia accepts a multipart upload into the vendor's media gallery.
func (h *VendorHandler) AddMedia(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("A 'file' form field is required")
	}

	maxSize := int64(defaultMaxUploadSize)
	if h.cfg.Media != nil && h.cfg.Media.MaxUploadSize > 0 {
		maxSize = h.cfg.Media.MaxUploadSize
	}
	if fileHeader.Size > maxSize {
		return domainerrors.ErrValidationFailed.WithDetails("File exceeds the maximum upload size")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	item, err := h.uc.AddMedia(c.Request().Context(), usecase.MediaUploadInput{
		VendorID:    middleware.VendorID(c),
		UserID:      middleware.UserID(c),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
		Caption:     c.FormValue("caption"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMediaJSON(item))
}

// DeleteMedia removes a gallery item and its stored file.
func (h *VendorHandler) DeleteMedia(c echo.Context) error {
	mediaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid media ID")
	}

	err = h.uc.DeleteMedia(c.Request().Context(), middleware.UserID(c), middleware.VendorID(c), mediaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *VendorHandler) defaultPageSize() int {
	if h.cfg.Search != nil && h.cfg.Search.DefaultPageSize > 0 {
		return h.cfg.Search.DefaultPageSize
	}

	return 20
}

func (h *VendorHandler) maxPageSize() int {
	if h.cfg.Search != nil && h.cfg.Search.MaxPageSize > 0 {
		return h.cfg.Search.MaxPageSize
	}

	return 100
}

// queryInt parses an integer query parameter, falling back on absence or junk.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
