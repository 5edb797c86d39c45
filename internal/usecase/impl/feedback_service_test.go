package impl

import (
	"context"
	"strings"
	"testing"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	mockRepo "healthtrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_Submit(t *testing.T) {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	service := NewFeedbackService(feedbackRepo, newDiscardLogger())

	userID := uuid.New()
	feedbackRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(f *entity.Feedback) bool {
			return f.UserID == userID && f.Status == entity.FeedbackNew && f.Message == "Love the planner"
		})).
		Return(nil)

	feedback, err := service.Submit(context.Background(), userID, "  Love the planner ")
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackNew, feedback.Status)

	_, err = service.Submit(context.Background(), userID, "   ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = service.Submit(context.Background(), userID, strings.Repeat("a", 5001))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFeedbackService_ListAll_StatusFilter(t *testing.T) {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	service := NewFeedbackService(feedbackRepo, newDiscardLogger())

	status := entity.FeedbackInProgress
	feedbackRepo.EXPECT().List(mock.Anything, &status).Return([]*entity.Feedback{}, nil)

	_, err := service.ListAll(context.Background(), &status)
	require.NoError(t, err)

	bogus := entity.FeedbackStatus("closed")
	_, err = service.ListAll(context.Background(), &bogus)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFeedbackService_UpdateStatus(t *testing.T) {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	service := NewFeedbackService(feedbackRepo, newDiscardLogger())

	id := uuid.New()
	feedbackRepo.EXPECT().UpdateStatus(mock.Anything, id, entity.FeedbackDone).Return(&entity.Feedback{ID: id, Status: entity.FeedbackDone}, nil)

	got, err := service.UpdateStatus(context.Background(), id, entity.FeedbackDone)
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackDone, got.Status)

	missing := uuid.New()
	feedbackRepo.EXPECT().UpdateStatus(mock.Anything, missing, entity.FeedbackNew).Return(nil, repository.ErrFeedbackNotFound)

	_, err = service.UpdateStatus(context.Background(), missing, entity.FeedbackNew)
	assert.True(t, errors.Is(err, domainerrors.ErrFeedbackNotFound))
}

func TestFeedbackService_Delete_Missing(t *testing.T) {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	service := NewFeedbackService(feedbackRepo, newDiscardLogger())

	id := uuid.New()
	feedbackRepo.EXPECT().Delete(mock.Anything, id).Return(repository.ErrFeedbackNotFound)

	err := service.Delete(context.Background(), id)

	assert.True(t, errors.Is(err, domainerrors.ErrFeedbackNotFound))
}
