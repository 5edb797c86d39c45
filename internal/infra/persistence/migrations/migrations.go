// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"healthtrack/internal/errors"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

// goose keeps its configuration in package state; these seams let tests stub the runners.
var (
	gooseUp     = goose.UpContext
	gooseDown   = goose.DownContext
	gooseStatus = goose.StatusContext
	gooseVer    = goose.GetDBVersionContext
)

func setup(logger *slog.Logger) error {
	goose.SetBaseFS(files)
	if logger != nil {
		goose.SetLogger(gooseLogger{logger: logger})
	} else {
		goose.SetLogger(goose.NopLogger())
	}

	return errors.Wrap(goose.SetDialect("postgres"), "set goose dialect")
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := setup(logger); err != nil {
		return err
	}

	return errors.Wrap(gooseUp(ctx, db, dir), "apply migrations")
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := setup(logger); err != nil {
		return err
	}

	return errors.Wrap(gooseDown(ctx, db, dir), "roll back migration")
}

// Status logs the applied state of every migration and returns the current version.
func Status(ctx context.Context, db *sql.DB, logger *slog.Logger) (int64, error) {
	if err := setup(logger); err != nil {
		return 0, err
	}
	if err := gooseStatus(ctx, db, dir); err != nil {
		return 0, errors.Wrap(err, "migration status")
	}

	version, err := gooseVer(ctx, db)
	if err != nil {
		return 0, errors.Wrap(err, "read schema version")
	}

	return version, nil
}

// Source lists the embedded migration file names, mostly for diagnostics.
func Source() ([]string, error) {
	entries, err := files.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read embedded migrations")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names, nil
}

type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error("goose", slog.String("msg", fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info("goose", slog.String("msg", fmt.Sprintf(format, v...)))
}
