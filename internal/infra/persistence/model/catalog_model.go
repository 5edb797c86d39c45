package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel is the GORM-specific struct for the 'meals' table.
// Admin items have a NULL owner_id.
type MealModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID         *uuid.UUID `gorm:"type:uuid;index"`
	Source          string     `gorm:"type:varchar(16);not null"`
	OriginID        *uuid.UUID `gorm:"type:uuid"`
	Visibility      string     `gorm:"type:varchar(16);not null;default:public"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text;not null;default:''"`
	MealType        string     `gorm:"type:varchar(16);not null"`
	Calories        int        `gorm:"not null;default:0"`
	Protein         float64    `gorm:"not null;default:0"`
	Carbs           float64    `gorm:"not null;default:0"`
	Fat             float64    `gorm:"not null;default:0"`
	PrepTimeMinutes int        `gorm:"not null;default:0"`
	Ingredients     []string   `gorm:"type:text;serializer:json"`
	Steps           []string   `gorm:"type:text;serializer:json"`
	ImageURL        string     `gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// ExerciseModel is the GORM-specific struct for the 'exercises' table.
type ExerciseModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID         *uuid.UUID `gorm:"type:uuid;index"`
	Source          string     `gorm:"type:varchar(16);not null"`
	OriginID        *uuid.UUID `gorm:"type:uuid"`
	Visibility      string     `gorm:"type:varchar(16);not null;default:public"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text;not null;default:''"`
	Category        string     `gorm:"type:varchar(64);not null;default:''"`
	Difficulty      string     `gorm:"type:varchar(16);not null"`
	DurationMinutes int        `gorm:"not null;default:0"`
	CaloriesBurned  int        `gorm:"not null;default:0"`
	Steps           []string   `gorm:"type:text;serializer:json"`
	ImageURL        string     `gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExerciseModel) TableName() string {
	return "exercises"
}
