package usecase

import (
	"context"

	"thames/internal/domain/service"
)

// GeocodeUsecase proxies forward geocoding for the location editor.
// Failures are non-fatal to the caller's workflow: the editor falls back
// to manual coordinate entry.
type GeocodeUsecase interface {
	// Lookup resolves an address to candidate coordinates, best match first.
	Lookup(ctx context.Context, address string) ([]service.GeocodeResult, error)
}
