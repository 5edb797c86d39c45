package main

import (
	"context"
	"log/slog"

	"healthtrack/config"
	"healthtrack/internal/domain/lifecycle"
	"healthtrack/internal/errors"
	"healthtrack/internal/infra/auth"
	"healthtrack/internal/infra/clock"
	logs "healthtrack/internal/infra/log"
	"healthtrack/internal/infra/persistence/postgres"
	"healthtrack/internal/usecase/impl"

	"go.uber.org/fx"
)

// withApp boots the dependency graph, fills targets through fx.Populate,
// runs fn and shuts everything down again.
func withApp(fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewStatisticsRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			clock.New,
			impl.NewAdminService,
		),
		// Schema changes are driven by the command itself, never by the start hook.
		fx.Decorate(func(cfg *config.Config) *config.Config {
			cp := *cfg
			cp.Migration.AutoMigrate = false

			return &cp
		}),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	runErr := fn(context.Background())

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		slog.Warn("Shutdown finished with errors", slog.Any("error", err))
	}

	return runErr
}
