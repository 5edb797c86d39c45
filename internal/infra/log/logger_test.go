package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/config"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected slog.Level
		wantErr  bool
	}{
		{in: "debug", expected: slog.LevelDebug},
		{in: "INFO", expected: slog.LevelInfo},
		{in: "", expected: slog.LevelInfo},
		{in: "warn", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "verbose", expected: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseLogLevel(tt.in)
			assert.Equal(t, tt.expected, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}

func TestNew_WritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	cfg := &config.Config{}
	cfg.Env.ServiceName = "healthtrack"
	cfg.Env.Log.Level = "info"
	cfg.Env.Log.File = &config.LogFile{Path: path, MaxSizeMB: 1}

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)

	logger.Info("plan executed", slog.String("plan_id", "p-1"))
	logger.Debug("filtered out")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(raw), []byte("\n"))
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "plan executed", record["msg"])
	assert.Equal(t, "p-1", record["plan_id"])
	assert.Equal(t, "healthtrack", record["service"])
}

func TestFanout_RespectsEachHandlerLevel(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	h := fanout{
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	}

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(h).With(slog.String("k", "v"))
	logger.Debug("only debug")
	logger.Error("both")

	assert.Contains(t, debugBuf.String(), "only debug")
	assert.Contains(t, debugBuf.String(), "both")
	assert.NotContains(t, errorBuf.String(), "only debug")
	assert.Contains(t, errorBuf.String(), `"k":"v"`)
}

func TestConsoleHandler_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(consoleHandler(&buf, true, slog.LevelInfo))

	logger.Info("hello", slog.Int("cups", 3))

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "cups=3")
}
