package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table, one row per user.
type ProfileModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Age           int       `gorm:"not null"`
	WeightKg      float64   `gorm:"not null"`
	HeightCm      float64   `gorm:"not null"`
	Gender        string    `gorm:"type:varchar(16);not null"`
	ActivityLevel string    `gorm:"type:varchar(16);not null"`
	Goal          string    `gorm:"type:varchar(16);not null"`
	BMR           int       `gorm:"column:bmr;not null"`
	TDEE          int       `gorm:"column:tdee;not null"`
	CalorieGoal   int       `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
