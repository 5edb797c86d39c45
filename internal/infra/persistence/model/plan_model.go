package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanModel is the GORM-specific struct for the 'plans' table.
type PlanModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_plans_user_date"`
	PlanDate      time.Time  `gorm:"type:date;not null;index:idx_plans_user_date"`
	PlanTime      string     `gorm:"type:varchar(8);not null"` // HH:MM:SS, sorts lexically
	ActivityType  string     `gorm:"type:varchar(16);not null"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Description   string     `gorm:"type:text;not null;default:''"`
	Notes         string     `gorm:"type:text;not null;default:''"`
	Completed     bool       `gorm:"not null;default:false"`
	CatalogItemID *uuid.UUID `gorm:"type:uuid"`
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}
