package repository

import (
	"context"
	"time"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityRepository stores the daily log and its entries. Every write is a single insert.
type ActivityRepository interface {
	// EnsureDailyLog returns the (user, date) anchor row, creating it on first use.
	EnsureDailyLog(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyLog, error)

	AddMealEntry(ctx context.Context, entry *entity.MealLogEntry) error
	AddExerciseEntry(ctx context.Context, entry *entity.ExerciseLogEntry) error
	AddWater(ctx context.Context, water *entity.WaterLog) error
	AddSleep(ctx context.Context, sleep *entity.SleepLog) error

	// FindDay assembles everything logged on date. It never creates rows.
	FindDay(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DayActivity, error)

	// LatestSleep returns the most recent sleep entry for date, or nil when there is none.
	LatestSleep(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.SleepLog, error)

	// DailyTotals aggregates calories and water per date in [from, to]. Dates without entries are omitted.
	DailyTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.DayTotals, error)
}
