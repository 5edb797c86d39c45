package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		expected string
		wantErr  bool
	}{
		{name: "hours and minutes", in: "14:00", expected: "14:00:00"},
		{name: "with seconds", in: "07:30:15", expected: "07:30:15"},
		{name: "single digit hour", in: "7:30", expected: "07:30:00"},
		{name: "out of range", in: "25:00", wantErr: true},
		{name: "garbage", in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeClock(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTrailingWeek(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 3, 2, 18, 45, 0, 0, time.FixedZone("UTC+8", 8*3600))
	days := TrailingWeek(today)

	require.Len(t, days, 7)
	assert.Equal(t, "2024-02-25", days[0].Format(DateLayout))
	assert.Equal(t, "2024-03-02", days[6].Format(DateLayout))
	for _, d := range days {
		assert.Equal(t, time.UTC, d.Location())
	}
}

func TestCupsFromMl(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CupsFromMl(0))
	assert.Equal(t, 0, CupsFromMl(120))
	assert.Equal(t, 1, CupsFromMl(125))
	assert.Equal(t, 3, CupsFromMl(750))
	assert.Equal(t, 4, CupsFromMl(900))
}
