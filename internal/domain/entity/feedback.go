package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackStatus tracks where a feedback entry is in triage.
type FeedbackStatus string

const (
	FeedbackNew        FeedbackStatus = "new"
	FeedbackInProgress FeedbackStatus = "in_progress"
	FeedbackDone       FeedbackStatus = "done"
)

// IsValid checks if the FeedbackStatus is a valid value.
func (s FeedbackStatus) IsValid() bool {
	switch s {
	case FeedbackNew, FeedbackInProgress, FeedbackDone:
		return true
	default:
		return false
	}
}

// Feedback is a message a user sent to the administrators.
type Feedback struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UserName  string // populated on admin listings
	UserEmail string
	Message   string
	Status    FeedbackStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
