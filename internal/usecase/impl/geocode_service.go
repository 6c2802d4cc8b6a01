package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "thames/internal/delivery/context"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/service"
	"thames/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// geocodeService implements the GeocodeUsecase interface.
type geocodeService struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// GeocodeServiceParams holds dependencies for GeocodeService, injected by Fx.
type GeocodeServiceParams struct {
	fx.In

	Geocoder service.Geocoder
	Logger   *slog.Logger
}

// NewGeocodeService is the constructor for geocodeService.
func NewGeocodeService(params GeocodeServiceParams) usecase.GeocodeUsecase {
	return &geocodeService{
		geocoder: params.Geocoder,
		logger:   params.Logger,
	}
}

// Lookup resolves an address to candidate coordinates, best match first.
func (srv *geocodeService) Lookup(ctx context.Context, address string) ([]service.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	results, err := srv.geocoder.Geocode(ctx, address)
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
		logger.Warn("Geocoding failed", slog.String("address", address), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGeocodingFailed, err.Error())
	}

	return results, nil
}
