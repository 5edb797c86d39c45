package main

import (
	"context"
	"log/slog"
	"os"

	"healthtrack/config"
	"healthtrack/internal/delivery"
	"healthtrack/internal/delivery/api"
	"healthtrack/internal/delivery/api/middleware"
	"healthtrack/internal/delivery/api/router/handler"
	"healthtrack/internal/infra/auth"
	"healthtrack/internal/infra/clock"
	logs "healthtrack/internal/infra/log"
	"healthtrack/internal/infra/persistence/postgres"
	"healthtrack/internal/infra/storage"
	"healthtrack/internal/usecase/impl"

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
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMealRepository,
			postgres.NewExerciseRepository,
			postgres.NewActivityRepository,
			postgres.NewPlanRepository,
			postgres.NewProfileRepository,
			postgres.NewFeedbackRepository,
			postgres.NewStatisticsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			clock.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewMealService,
			impl.NewExerciseService,
			impl.NewMediaService,
			impl.NewActivityService,
			impl.NewPlannerService,
			impl.NewProfileService,
			impl.NewFeedbackService,
			impl.NewAdminService,
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
			handler.NewMealHandler,
			handler.NewExerciseHandler,
			handler.NewMediaHandler,
			handler.NewActivityHandler,
			handler.NewPlannerHandler,
			handler.NewProfileHandler,
			handler.NewFeedbackHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
