package service

import "context"

// GeocodeResult is a single candidate returned by forward geocoding.
type GeocodeResult struct {
	DisplayName string
	Latitude    float64
	Longitude   float64
}

// Geocoder defines the interface for resolving free-form addresses to coordinates.
type Geocoder interface {
	// Geocode resolves an address string to candidate coordinates, best match first.
	// An empty slice with a nil error means the address produced no matches.
	Geocode(ctx context.Context, address string) ([]GeocodeResult, error)
}
