package main

import (
	"context"
	"log/slog"
	"os"

	"thames/config"
	"thames/internal/delivery"
	"thames/internal/delivery/http"
	"thames/internal/delivery/http/middleware"
	"thames/internal/delivery/http/router/handler"
	"thames/internal/domain/service"
	"thames/internal/infra/auth"
	"thames/internal/infra/events"
	"thames/internal/infra/excel"
	"thames/internal/infra/geocode"
	logs "thames/internal/infra/log"
	"thames/internal/infra/mail"
	"thames/internal/infra/media"
	"thames/internal/infra/persistence/postgres"
	"thames/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startDispatcher,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVendorRepository,
			postgres.NewTierRequestRepository,
			postgres.NewAuditLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewResendMailer,
			excel.NewSheetParser,
			geocode.NewNominatimGeocoder,
			media.NewBlobStorage,
			events.NewBus,
			newEventPublisher,
			events.NewDispatcher,
		),
	)
}

// newEventPublisher exposes the bus under its domain-facing interface.
func newEventPublisher(bus *events.Bus) service.EventPublisher {
	return bus
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewEntitlementService,
			impl.NewTierRequestService,
			impl.NewVendorService,
			impl.NewAccountService,
			impl.NewImportService,
			impl.NewGeocodeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewVendorHandler,
			handler.NewLocationHandler,
			handler.NewTierRequestHandler,
			handler.NewAdminHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startDispatcher forces the event dispatcher into the object graph so its
// lifecycle hooks run even though nothing else depends on it.
func startDispatcher(_ *events.Dispatcher) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
