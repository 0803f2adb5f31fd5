package main

import (
	"context"
	"log/slog"
	"os"

	"manor/config"
	"manor/internal/delivery"
	"manor/internal/delivery/http"
	"manor/internal/delivery/http/middleware"
	"manor/internal/delivery/http/router/handler"
	"manor/internal/infra/auth"
	logs "manor/internal/infra/log"
	"manor/internal/infra/persistence/postgres"
	"manor/internal/usecase/impl"

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
			postgres.NewEstateRepository,
			postgres.NewBlockRepository,
			postgres.NewApartmentRepository,
			postgres.NewAmenityRepository,
			postgres.NewFurnishingRepository,
			postgres.NewTenantRepository,
			postgres.NewTenantTypeRepository,
			postgres.NewPaymentRepository,
			postgres.NewPaymentStatusRepository,
			postgres.NewComplaintRepository,
			postgres.NewComplaintStatusRepository,
			postgres.NewComplaintCategoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEstateService,
			impl.NewApartmentService,
			impl.NewAvailabilityService,
			impl.NewOccupancyService,
			impl.NewTenantService,
			impl.NewPaymentService,
			impl.NewComplaintService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEstateHandler,
			handler.NewApartmentHandler,
			handler.NewTenantHandler,
			handler.NewPaymentHandler,
			handler.NewComplaintHandler,
			handler.NewCatalogHandler,
			handler.NewOccupancyHandler,
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
