package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"healthtrack/internal/errors"
	"healthtrack/internal/infra/persistence/migrations"
	"healthtrack/internal/usecase"
	"healthtrack/internal/util"

	"gorm.io/gorm"
)

// MigrateUpCmd applies pending migrations.
type MigrateUpCmd struct{}

// Run implements the kong command.
func (c *MigrateUpCmd) Run() error {
	return withDatabase(func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.WithStack(err)
		}

		start := time.Now()
		if err := migrations.Up(ctx, sqlDB, logger); err != nil {
			return err
		}
		fmt.Printf("migrations applied in %s\n", util.FormatElapsed(time.Since(start)))

		return nil
	})
}

// MigrateDownCmd rolls back one migration.
type MigrateDownCmd struct{}

// Run implements the kong command.
func (c *MigrateDownCmd) Run() error {
	return withDatabase(func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.WithStack(err)
		}

		start := time.Now()
		if err := migrations.Down(ctx, sqlDB, logger); err != nil {
			return err
		}
		fmt.Printf("rolled back in %s\n", util.FormatElapsed(time.Since(start)))

		return nil
	})
}

// MigrateStatusCmd prints the migration state.
type MigrateStatusCmd struct{}

// Run implements the kong command.
func (c *MigrateStatusCmd) Run() error {
	return withDatabase(func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.WithStack(err)
		}

		version, err := migrations.Status(ctx, sqlDB, logger)
		if err != nil {
			return err
		}
		fmt.Printf("schema version: %d\n", version)

		return nil
	})
}

// CreateAdminCmd creates an admin account or promotes the one already using the email.
type CreateAdminCmd struct {
	Name     string `help:"Display name." required:""`
	Email    string `help:"Login email." required:""`
	Password string `help:"Password for a new account. Ignored when the account exists." required:"" env:"HEALTHCTL_ADMIN_PASSWORD"`
}

// Run implements the kong command.
func (c *CreateAdminCmd) Run() error {
	var admin usecase.AdminUsecase

	return withApp(func(ctx context.Context) error {
		user, err := admin.EnsureAdmin(ctx, &usecase.RegisterInput{
			Name:     c.Name,
			Email:    c.Email,
			Password: c.Password,
		})
		if err != nil {
			return err
		}
		fmt.Printf("admin ready: %s <%s> (%s)\n", user.Name, user.Email, user.ID)

		return nil
	}, &admin)
}

func withDatabase(fn func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	return withApp(func(ctx context.Context) error {
		return fn(ctx, db, logger)
	}, &db, &logger)
}
