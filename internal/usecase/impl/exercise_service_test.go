package impl

import (
	"context"
	"testing"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	mockRepo "healthtrack/internal/mocks/repository"
	mockSvc "healthtrack/internal/mocks/service"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestExerciseService(t *testing.T) (usecase.ExerciseUsecase, *mockRepo.MockExerciseRepository) {
	exerciseRepo := mockRepo.NewMockExerciseRepository(t)

	service := NewExerciseService(ExerciseServiceParams{
		ExerciseRepo: exerciseRepo,
		Images:       mockSvc.NewMockImageStore(t),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return service, exerciseRepo
}

func TestExerciseService_ListExercises_PassesFilter(t *testing.T) {
	service, exerciseRepo := createTestExerciseService(t)

	filter := entity.CatalogFilter{Scope: entity.ScopeAdminPublic, Kind: "beginner", Query: "run"}
	expected := []*entity.Exercise{{ID: uuid.New(), Title: "Running"}}
	exerciseRepo.EXPECT().List(mock.Anything, filter).Return(expected, nil)

	got, err := service.ListExercises(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestExerciseService_GetExercise_Hidden(t *testing.T) {
	service, exerciseRepo := createTestExerciseService(t)

	id, userID := uuid.New(), uuid.New()
	exerciseRepo.EXPECT().FindVisible(mock.Anything, id, userID).Return(nil, repository.ErrExerciseNotFound)

	_, err := service.GetExercise(context.Background(), id, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrExerciseNotFound))
}

func TestExerciseService_UpdateExercise_OverwritesFields(t *testing.T) {
	service, exerciseRepo := createTestExerciseService(t)

	userID := uuid.New()
	existing := &entity.Exercise{
		ID:        uuid.New(),
		Ownership: entity.Ownership{OwnerID: &userID, Source: entity.SourceCopied, Visibility: entity.VisibilityPublic},
		Title:     "Walk",
		ImageURL:  "/media/exercises/a.png",
	}
	exerciseRepo.EXPECT().FindOwned(mock.Anything, existing.ID, &userID).Return(existing, nil)
	exerciseRepo.EXPECT().Update(mock.Anything, existing).Return(nil)

	got, err := service.UpdateExercise(context.Background(), existing.ID, &userID, &usecase.ExerciseInput{
		Title:           "Brisk walk",
		Difficulty:      entity.DifficultyBeginner,
		DurationMinutes: 30,
		CaloriesBurned:  150,
	})

	require.NoError(t, err)
	assert.Equal(t, "Brisk walk", got.Title)
	assert.Equal(t, 150, got.CaloriesBurned)
	assert.Equal(t, entity.SourceCopied, got.Source)
	assert.Equal(t, "/media/exercises/a.png", got.ImageURL)
}

func TestExerciseService_CopyExercise(t *testing.T) {
	service, exerciseRepo := createTestExerciseService(t)

	userID := uuid.New()
	source := &entity.Exercise{
		ID:        uuid.New(),
		Ownership: entity.Ownership{Source: entity.SourceAdmin, Visibility: entity.VisibilityPublic},
		Title:     "Plank",
		Steps:     []string{"hold"},
	}
	exerciseRepo.EXPECT().FindVisible(mock.Anything, source.ID, userID).Return(source, nil)
	exerciseRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Exercise")).Return(nil)

	cp, err := service.CopyExercise(context.Background(), source.ID, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.SourceCopied, cp.Source)
	assert.Equal(t, source.ID, *cp.OriginID)
	assert.Equal(t, "Plank", cp.Title)
}
