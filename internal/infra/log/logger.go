package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"healthtrack/config"

	charmlog "github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle `optional:"true"`
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	// Parse log level from config
	level, err := parseLogLevel(logCfg.Level)
	if err != nil {
		return nil, err
	}

	handler := consoleHandler(os.Stdout, logCfg.Pretty, level)

	if logCfg.File != nil && logCfg.File.Path != "" {
		sink := newRotatingFile(logCfg.File)
		handler = fanout{handler, slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level})}

		if params.Lifecycle != nil {
			params.Lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error {
					return sink.Close()
				},
			})
		}
	}

	logger := slog.New(handler).With(slog.String("service", params.Config.Env.ServiceName))

	return logger, nil
}

// consoleHandler renders human-friendly colored lines when pretty is set and JSON otherwise.
func consoleHandler(w io.Writer, pretty bool, level slog.Level) slog.Handler {
	if pretty {
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
		})
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

func newRotatingFile(cfg *config.LogFile) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
