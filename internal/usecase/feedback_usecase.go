package usecase

import (
	"context"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackUsecase collects user feedback and lets admins triage it.
type FeedbackUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, message string) (*entity.Feedback, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Feedback, error)
	ListAll(ctx context.Context, status *entity.FeedbackStatus) ([]*entity.Feedback, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
