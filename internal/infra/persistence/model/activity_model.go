package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyLogModel anchors one user's logs for one date. UNIQUE (user_id, log_date).
type DailyLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_date"`
	LogDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_logs_user_date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyLogModel) TableName() string {
	return "daily_logs"
}

// MealLogEntryModel is one row per logged meal.
type MealLogEntryModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DailyLogID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null"`
	LogDate    time.Time  `gorm:"type:date;not null"`
	MealID     *uuid.UUID `gorm:"type:uuid"`
	Name       string     `gorm:"type:varchar(255);not null"`
	MealType   string     `gorm:"type:varchar(16);not null;default:''"`
	Calories   int        `gorm:"not null;default:0"`
	Protein    float64    `gorm:"not null;default:0"`
	Carbs      float64    `gorm:"not null;default:0"`
	Fat        float64    `gorm:"not null;default:0"`
	LoggedAt   time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MealLogEntryModel) TableName() string {
	return "meal_log_entries"
}

// ExerciseLogEntryModel is one row per logged workout.
type ExerciseLogEntryModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DailyLogID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null"`
	LogDate         time.Time  `gorm:"type:date;not null"`
	ExerciseID      *uuid.UUID `gorm:"type:uuid"`
	Title           string     `gorm:"type:varchar(255);not null"`
	DurationMinutes int        `gorm:"not null;default:0"`
	CaloriesBurned  int        `gorm:"not null;default:0"`
	LoggedAt        time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ExerciseLogEntryModel) TableName() string {
	return "exercise_log_entries"
}

// WaterLogModel is a single water intake event.
type WaterLogModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null"`
	AmountMl int       `gorm:"not null"`
	LoggedAt time.Time `gorm:"not null"`
	LogDate  time.Time `gorm:"type:date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WaterLogModel) TableName() string {
	return "water_logs"
}

// SleepLogModel is a sleep entry.
type SleepLogModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null"`
	SleepDate     time.Time `gorm:"type:date;not null"`
	DurationHours float64   `gorm:"not null"`
	Quality       string    `gorm:"type:varchar(16);not null"`
	Notes         string    `gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SleepLogModel) TableName() string {
	return "sleep_logs"
}
