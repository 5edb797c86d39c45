package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// WaterCupMl is the volume of one cup and of the water logged by executing a water plan.
const WaterCupMl = 250

// DailyLog is the per-user, per-date anchor row for logged meals and exercises.
// At most one exists per (user, date); it is created on the first write and never deleted.
type DailyLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	LogDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MealLogEntry is one meal eaten on a given day.
type MealLogEntry struct {
	ID         uuid.UUID
	DailyLogID uuid.UUID
	UserID     uuid.UUID
	LogDate    time.Time
	MealID     *uuid.UUID // catalog reference, if the entry came from the catalog
	Name       string
	MealType   MealType
	Calories   int
	Protein    float64
	Carbs      float64
	Fat        float64
	LoggedAt   time.Time
}

// ExerciseLogEntry is one workout completed on a given day.
type ExerciseLogEntry struct {
	ID              uuid.UUID
	DailyLogID      uuid.UUID
	UserID          uuid.UUID
	LogDate         time.Time
	ExerciseID      *uuid.UUID
	Title           string
	DurationMinutes int
	CaloriesBurned  int
	LoggedAt        time.Time
}

// WaterLog is a single water intake event. Daily totals are derived, never stored.
type WaterLog struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	AmountMl int
	LoggedAt time.Time
	LogDate  time.Time
}

// SleepQuality is the self-reported quality of a night's sleep.
type SleepQuality string

const (
	SleepQualityPoor      SleepQuality = "poor"
	SleepQualityFair      SleepQuality = "fair"
	SleepQualityGood      SleepQuality = "good"
	SleepQualityExcellent SleepQuality = "excellent"
)

// SleepLog is a sleep entry for a date.
type SleepLog struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SleepDate     time.Time
	DurationHours float64
	Quality       SleepQuality
	Notes         string
	CreatedAt     time.Time
}

// DayActivity is everything logged by a user on one date.
type DayActivity struct {
	Date      time.Time
	Meals     []*MealLogEntry
	Exercises []*ExerciseLogEntry
	Water     []*WaterLog
	Sleep     *SleepLog
}

// TotalWaterMl sums the water events of the day.
func (d *DayActivity) TotalWaterMl() int {
	total := 0
	for _, w := range d.Water {
		total += w.AmountMl
	}

	return total
}

// TotalCalories sums the calories of the meals eaten.
func (d *DayActivity) TotalCalories() int {
	total := 0
	for _, m := range d.Meals {
		total += m.Calories
	}

	return total
}

// CaloriesBurned sums the calories burned by logged exercises.
func (d *DayActivity) CaloriesBurned() int {
	total := 0
	for _, e := range d.Exercises {
		total += e.CaloriesBurned
	}

	return total
}

// DayTotals is the per-day aggregate used by the weekly chart.
type DayTotals struct {
	Date           time.Time
	TotalCalories  int
	CaloriesBurned int
	WaterMl        int
}

// WaterCups converts the day's water volume to cups, rounded to the nearest cup.
func (t DayTotals) WaterCups() int {
	return CupsFromMl(t.WaterMl)
}

// CupsFromMl converts a water volume to whole cups.
func CupsFromMl(ml int) int {
	return int(math.Round(float64(ml) / WaterCupMl))
}
