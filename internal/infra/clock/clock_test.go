package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/config"
)

func TestClock_TodayFollowsTimezone(t *testing.T) {
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	instant := time.Date(2024, 5, 31, 20, 30, 0, 0, time.UTC)
	c := NewWithFunc(taipei, func() time.Time { return instant })

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), c.Today())
	assert.Equal(t, taipei, c.Now().Location())
}

func TestNew_RejectsUnknownTimezone(t *testing.T) {
	_, err := New(&config.Config{App: config.AppConfig{Timezone: "Nowhere/Land"}})
	assert.Error(t, err)
}
