package middleware

import (
	"log/slog"
	"time"

	"healthtrack/config"
	deliverycontext "healthtrack/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// slowRequestThreshold marks a request worth logging even outside debug mode.
const slowRequestThreshold = 2 * time.Second

// AccessLogMiddleware writes one line per request. Debug mode logs every
// request; otherwise only server errors and slow requests are written.
type AccessLogMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) *AccessLogMiddleware {
	return &AccessLogMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *AccessLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		latency := time.Since(start)
		status := c.Response().Status
		if m.debug || status >= 500 || latency >= slowRequestThreshold {
			m.write(c, start, latency, err)
		}

		return err
	}
}

func (m *AccessLogMiddleware) write(c echo.Context, start time.Time, latency time.Duration, err error) {
	req := c.Request()
	status := c.Response().Status

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("started_at", start.Format(time.RFC3339)),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}

	// Authentication runs inside the route group, so the identity is only
	// visible on the request after next returns.
	if identity, ok := deliverycontext.GetIdentity(req.Context()); ok {
		attrs = append(attrs,
			slog.String("user_id", identity.UserID.String()),
			slog.String("role", identity.Role),
		)
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	if latency >= slowRequestThreshold {
		attrs = append(attrs, slog.Bool("slow", true))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400 || latency >= slowRequestThreshold:
		level = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "request handled", attrs...)
}
