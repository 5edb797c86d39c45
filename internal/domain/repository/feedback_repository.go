package repository

import (
	"context"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFeedbackNotFound is returned when a feedback entry does not exist.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository persists feedback messages.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error

	// ListByUser returns the user's own feedback, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Feedback, error)

	// List returns all feedback with the sender's name and email, optionally filtered by status.
	List(ctx context.Context, status *entity.FeedbackStatus) ([]*entity.Feedback, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
