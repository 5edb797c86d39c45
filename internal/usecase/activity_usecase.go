package usecase

import (
	"context"
	"time"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// LogMealInput is one eaten meal. MealID links it to a catalog item.
type LogMealInput struct {
	MealID   *uuid.UUID
	Name     string
	MealType entity.MealType
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

// LogExerciseInput is one finished workout.
type LogExerciseInput struct {
	ExerciseID      *uuid.UUID
	Title           string
	DurationMinutes int
	CaloriesBurned  int
}

// LogSleepInput is one night of sleep. A zero Date means today.
type LogSleepInput struct {
	Date          time.Time
	DurationHours float64
	Quality       entity.SleepQuality
	Notes         string
}

// ActivityUsecase appends to and reads the daily activity log.
type ActivityUsecase interface {
	LogMeal(ctx context.Context, userID uuid.UUID, input *LogMealInput) (*entity.MealLogEntry, error)
	LogExercise(ctx context.Context, userID uuid.UUID, input *LogExerciseInput) (*entity.ExerciseLogEntry, error)
	LogWater(ctx context.Context, userID uuid.UUID, amountMl int) (*entity.WaterLog, error)
	LogSleep(ctx context.Context, userID uuid.UUID, input *LogSleepInput) (*entity.SleepLog, error)

	Today(ctx context.Context, userID uuid.UUID) (*entity.DayActivity, error)
	ForDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DayActivity, error)
	Weekly(ctx context.Context, userID uuid.UUID) ([]entity.DayTotals, error)
	SleepToday(ctx context.Context, userID uuid.UUID) (*entity.SleepLog, error)
}
