package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel is the GORM-specific struct for the 'feedback' table.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(16);not null;default:new"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}

// FeedbackWithSender is the projection used by the admin listing.
type FeedbackWithSender struct {
	FeedbackModel
	UserName  string
	UserEmail string
}
