// Package clock provides the wall clock bound to the application timezone.
package clock

import (
	"time"

	"healthtrack/config"
	"healthtrack/internal/domain/entity"
	"healthtrack/internal/domain/service"
)

type zonedClock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a clock whose calendar dates follow app.timezone.
func New(cfg *config.Config) (service.Clock, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}

	return NewWithFunc(loc, time.Now), nil
}

// NewWithFunc builds a clock from an explicit time source.
func NewWithFunc(loc *time.Location, now func() time.Time) service.Clock {
	return &zonedClock{loc: loc, now: now}
}

func (c *zonedClock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *zonedClock) Today() time.Time {
	return entity.DateOf(c.Now())
}
