package repository

import (
	"context"
	"time"

	"healthtrack/internal/domain/entity"
)

// StatisticsRepository computes the counts shown on the admin dashboard.
type StatisticsRepository interface {
	Collect(ctx context.Context, today time.Time) (*entity.Statistics, error)
}
