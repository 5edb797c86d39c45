package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthtrack/config"
	deliverycontext "healthtrack/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "keeps client id", header: "req-123", wantSame: true},
		{name: "replaces empty id", header: ""},
		{name: "replaces id with spaces", header: "bad id"},
		{name: "replaces oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenID string
			var seenLogger *slog.Logger
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.GetLogger(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})

			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.NotNil(t, seenLogger)

			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccessLogMiddleware_LogsWhenDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/planning/today?x=1", nil)
	req = req.WithContext(deliverycontext.WithIdentity(req.Context(), deliverycontext.Identity{UserID: uuid.New()}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewAccessLogMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusTeapot)
	})

	require.NoError(t, handler(c))

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"query":"x=1"`)
	assert.Contains(t, out, `"user_id"`)
	assert.Contains(t, out, `"level":"WARN"`)
}

func TestAccessLogMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := NewAccessLogMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Empty(t, buf.String())
}

func TestAccessLogMiddleware_ServerErrorsWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/planning", nil), httptest.NewRecorder())

	handler := NewAccessLogMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusServiceUnavailable)
	})

	require.NoError(t, handler(c))

	out := buf.String()
	assert.Contains(t, out, `"status":503`)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"request handled"`)
}
