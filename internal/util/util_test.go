package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes    int64
		expected string
	}{
		{bytes: 0, expected: "0 B"},
		{bytes: 1023, expected: "1023 B"},
		{bytes: 1024, expected: "1.0 KB"},
		{bytes: 100 << 10, expected: "100.0 KB"},
		{bytes: 5 << 20, expected: "5.0 MB"},
		{bytes: 3 << 30, expected: "3.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       time.Duration
		expected string
	}{
		{in: 300 * time.Millisecond, expected: "0s"},
		{in: 45 * time.Second, expected: "45s"},
		{in: 59*time.Second + 600*time.Millisecond, expected: "1m0s"},
		{in: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{in: 90 * time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatElapsed(tt.in))
		})
	}
}
