package entity

import "time"

const (
	// DateLayout is the calendar date format used on the wire and in date columns.
	DateLayout = "2006-01-02"
	// ClockLayout is the time-of-day format stored for plans.
	ClockLayout = "15:04:05"
)

// DateOf returns the calendar date of t (in t's location) as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// NormalizeClock accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func NormalizeClock(s string) (string, error) {
	for _, layout := range []string{ClockLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ClockLayout), nil
		}
	}

	_, err := time.Parse(ClockLayout, s)

	return "", err
}

// TrailingWeek returns the seven calendar dates ending at today, oldest first.
func TrailingWeek(today time.Time) []time.Time {
	today = DateOf(today)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = today.AddDate(0, 0, i-6)
	}

	return days
}
