package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "healthtrack/internal/delivery/context"
	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// maxFeedbackLength bounds a single feedback message.
const maxFeedbackLength = 5000

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, logger *slog.Logger) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *feedbackService) Submit(ctx context.Context, userID uuid.UUID, message string) (*entity.Feedback, error) {
	message = strings.TrimSpace(message)
	if message == "" || len(message) > maxFeedbackLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message must be between 1 and 5000 characters")
	}

	feedback := &entity.Feedback{
		UserID:  userID,
		Message: message,
		Status:  entity.FeedbackNew,
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to submit feedback")
	}

	srv.log(ctx).Info("Feedback submitted", slog.Any("feedbackID", feedback.ID))

	return feedback, nil
}

// ListMine returns the caller's feedback, newest first.
func (srv *feedbackService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Feedback, error) {
	items, err := srv.feedbackRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return items, nil
}

// ListAll returns every entry with its sender, optionally narrowed to one status.
func (srv *feedbackService) ListAll(ctx context.Context, status *entity.FeedbackStatus) ([]*entity.Feedback, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of new, in_progress, done")
	}

	items, err := srv.feedbackRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return items, nil
}

func (srv *feedbackService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of new, in_progress, done")
	}

	feedback, err := srv.feedbackRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, feedbackError(err, "failed to update feedback status")
	}

	return feedback, nil
}

func (srv *feedbackService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.feedbackRepo.Delete(ctx, id); err != nil {
		return feedbackError(err, "failed to delete feedback")
	}

	return nil
}

func feedbackError(err error, action string) error {
	if errors.Is(err, repository.ErrFeedbackNotFound) {
		return errors.Wrap(domainerrors.ErrFeedbackNotFound, action)
	}

	return errors.Wrap(err, action)
}
