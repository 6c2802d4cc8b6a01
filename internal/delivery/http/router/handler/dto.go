package handler

import (
	"time"

	"thames/internal/domain/entity"
)

// JSON shapes returned by the API. The domain entities never serialize
// directly so internal fields (password hashes, token versions) cannot leak.

type vendorJSON struct {
	ID           string         `json:"id"`
	CompanyName  string         `json:"companyName"`
	Slug         string         `json:"slug"`
	Description  string         `json:"description,omitempty"`
	ContactEmail string         `json:"contactEmail,omitempty"`
	ContactPhone string         `json:"contactPhone,omitempty"`
	Website      string         `json:"website,omitempty"`
	Tier         string         `json:"tier"`
	Published    bool           `json:"published"`
	Featured     bool           `json:"featured"`
	Locations    []locationJSON `json:"locations,omitempty"`
	MediaGallery []mediaJSON    `json:"mediaGallery,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type locationJSON struct {
	ID           string  `json:"id"`
	LocationName string  `json:"locationName,omitempty"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state,omitempty"`
	Country      string  `json:"country"`
	PostalCode   string  `json:"postalCode,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	IsHQ         bool    `json:"isHq"`
}

type mediaJSON struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	MimeType  string    `json:"mimeType"`
	SizeBytes int64     `json:"sizeBytes"`
	CreatedAt time.Time `json:"createdAt"`
}

type tierRequestJSON struct {
	ID              string     `json:"id"`
	VendorID        string     `json:"vendorId"`
	RequestType     string     `json:"requestType"`
	CurrentTier     string     `json:"currentTier"`
	RequestedTier   string     `json:"requestedTier"`
	Status          string     `json:"status"`
	VendorNotes     string     `json:"vendorNotes"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type userJSON struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	VendorID        string    `json:"vendorId,omitempty"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type auditEntryJSON struct {
	ID        string         `json:"id"`
	Event     string         `json:"event"`
	UserID    string         `json:"userId,omitempty"`
	Email     string         `json:"email,omitempty"`
	IPAddress string         `json:"ipAddress,omitempty"`
	UserAgent string         `json:"userAgent,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toVendorJSON(v *entity.Vendor) vendorJSON {
	out := vendorJSON{
		ID:           v.ID.String(),
		CompanyName:  v.CompanyName,
		Slug:         v.Slug,
		Description:  v.Description,
		ContactEmail: v.ContactEmail,
		ContactPhone: v.ContactPhone,
		Website:      v.Website,
		Tier:         string(v.Tier),
		Published:    v.Published,
		Featured:     v.Featured,
		CreatedAt:    v.CreatedAt,
	}
	for i := range v.Locations {
		out.Locations = append(out.Locations, toLocationJSON(&v.Locations[i]))
	}
	for i := range v.MediaGallery {
		out.MediaGallery = append(out.MediaGallery, toMediaJSON(&v.MediaGallery[i]))
	}

	return out
}

// toVendorSummaryJSON renders a vendor without its associations, for listings.
func toVendorSummaryJSON(v *entity.Vendor) vendorJSON {
	summary := toVendorJSON(v)
	summary.Locations = nil
	summary.MediaGallery = nil

	return summary
}

func toLocationJSON(l *entity.VendorLocation) locationJSON {
	return locationJSON{
		ID:           l.ID.String(),
		LocationName: l.LocationName,
		Address:      l.Address,
		City:         l.City,
		State:        l.State,
		Country:      l.Country,
		PostalCode:   l.PostalCode,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		IsHQ:         l.IsHQ,
	}
}

func toLocationListJSON(locations []*entity.VendorLocation) []locationJSON {
	out := make([]locationJSON, 0, len(locations))
	for _, l := range locations {
		out = append(out, toLocationJSON(l))
	}

	return out
}

func toMediaJSON(m *entity.MediaItem) mediaJSON {
	return mediaJSON{
		ID:        m.ID.String(),
		URL:       m.URL,
		Caption:   m.Caption,
		MimeType:  m.MimeType,
		SizeBytes: m.SizeBytes,
		CreatedAt: m.CreatedAt,
	}
}

func toTierRequestJSON(r *entity.TierChangeRequest) tierRequestJSON {
	return tierRequestJSON{
		ID:              r.ID.String(),
		VendorID:        r.VendorID.String(),
		RequestType:     string(r.RequestType),
		CurrentTier:     string(r.CurrentTier),
		RequestedTier:   string(r.RequestedTier),
		Status:          string(r.Status),
		VendorNotes:     r.VendorNotes,
		RejectionReason: r.RejectionReason,
		ReviewedAt:      r.ReviewedAt,
		CreatedAt:       r.CreatedAt,
	}
}

func toTierRequestListJSON(requests []*entity.TierChangeRequest) []tierRequestJSON {
	out := make([]tierRequestJSON, 0, len(requests))
	for _, r := range requests {
		out = append(out, toTierRequestJSON(r))
	}

	return out
}

func toUserJSON(u *entity.User) userJSON {
	out := userJSON{
		ID:              u.ID.String(),
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role.String(),
		Status:          u.Status.String(),
		RejectionReason: u.RejectionReason,
		CreatedAt:       u.CreatedAt,
	}
	if u.VendorID != nil {
		out.VendorID = u.VendorID.String()
	}

	return out
}

func toAuditEntryJSON(e *entity.AuditLogEntry) auditEntryJSON {
	out := auditEntryJSON{
		ID:        e.ID.String(),
		Event:     e.Event.String(),
		Email:     e.Email,
		IPAddress: e.IPAddress,
		UserAgent: e.UserAgent,
		Metadata:  e.Metadata,
		CreatedAt: e.CreatedAt,
	}
	if e.UserID != nil {
		out.UserID = e.UserID.String()
	}

	return out
}
