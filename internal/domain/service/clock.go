package service

import "time"

// Clock supplies the current instant and the calendar date it falls on for the configured timezone.
type Clock interface {
	Now() time.Time
	Today() time.Time
}
