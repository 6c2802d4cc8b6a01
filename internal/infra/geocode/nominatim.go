package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"thames/config"
	"thames/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint  = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent = "thames-directory/1.0"
	defaultTimeout   = 10 * time.Second
	maxResults       = 5
)

// NominatimGeocoder resolves addresses against a Nominatim-compatible endpoint.
type NominatimGeocoder struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// NewNominatimGeocoder creates a Geocoder from configuration, applying defaults
// for any unset field.
func NewNominatimGeocoder(cfg *config.Config) service.Geocoder {
	endpoint := defaultEndpoint
	userAgent := defaultUserAgent
	timeout := defaultTimeout
	if cfg.Geocode != nil {
		if cfg.Geocode.Endpoint != "" {
			endpoint = cfg.Geocode.Endpoint
		}
		if cfg.Geocode.UserAgent != "" {
			userAgent = cfg.Geocode.UserAgent
		}
		if cfg.Geocode.Timeout > 0 {
			timeout = cfg.Geocode.Timeout
		}
	}

	return &NominatimGeocoder{
		endpoint:  endpoint,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocode performs a forward lookup. Nominatim returns results ordered by
// relevance, which is preserved here.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) ([]service.GeocodeResult, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build geocode request")
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocode request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocode endpoint returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, errors.Wrap(err, "decode geocode response")
	}

	results := make([]service.GeocodeResult, 0, len(places))
	for _, place := range places {
		lat, latErr := strconv.ParseFloat(place.Lat, 64)
		lon, lonErr := strconv.ParseFloat(place.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		results = append(results, service.GeocodeResult{
			DisplayName: place.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	return results, nil
}
