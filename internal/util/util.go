// Package util holds small formatting helpers shared by the API and the CLI.
package util

import (
	"fmt"
	"time"
)

const byteUnits = "KMGTPE"

// FormatBytes renders a size with binary units, e.g. 5242880 -> "5.0 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	value := float64(n)
	unit := -1
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %cB", value, byteUnits[unit])
}

// FormatElapsed renders a duration rounded to the second in its two largest units ("45s", "2m30s", "1h30m").
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d/time.Minute), int(d%time.Minute/time.Second))
	default:
		return fmt.Sprintf("%dh%dm", int(d/time.Hour), int(d%time.Hour/time.Minute))
	}
}
