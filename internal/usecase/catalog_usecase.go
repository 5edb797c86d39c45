package usecase

import (
	"context"
	"io"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// MealInput carries the editable fields of a meal.
type MealInput struct {
	Name            string
	Description     string
	MealType        entity.MealType
	Calories        int
	Protein         float64
	Carbs           float64
	Fat             float64
	PrepTimeMinutes int
	Ingredients     []string
	Steps           []string
	// Visibility is honoured for admin items only. Empty means public.
	Visibility entity.Visibility
}

// ExerciseInput carries the editable fields of an exercise.
type ExerciseInput struct {
	Title           string
	Description     string
	Category        string
	Difficulty      entity.Difficulty
	DurationMinutes int
	CaloriesBurned  int
	Steps           []string
	Visibility      entity.Visibility
}

// ImageUpload is an uploaded catalog picture.
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// MealUsecase covers the meal catalog. A nil ownerID addresses the admin catalog.
type MealUsecase interface {
	ListMeals(ctx context.Context, filter entity.CatalogFilter) ([]*entity.Meal, error)
	GetMeal(ctx context.Context, id, userID uuid.UUID) (*entity.Meal, error)
	CreateMeal(ctx context.Context, ownerID *uuid.UUID, input *MealInput) (*entity.Meal, error)
	UpdateMeal(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, input *MealInput) (*entity.Meal, error)
	CopyMeal(ctx context.Context, id, userID uuid.UUID) (*entity.Meal, error)
	SetMealVisibility(ctx context.Context, id uuid.UUID, visibility entity.Visibility) (*entity.Meal, error)
	UploadMealImage(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, image *ImageUpload) (*entity.Meal, error)
	DeleteMeal(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error
}

// ExerciseUsecase covers the exercise catalog. A nil ownerID addresses the admin catalog.
type ExerciseUsecase interface {
	ListExercises(ctx context.Context, filter entity.CatalogFilter) ([]*entity.Exercise, error)
	GetExercise(ctx context.Context, id, userID uuid.UUID) (*entity.Exercise, error)
	CreateExercise(ctx context.Context, ownerID *uuid.UUID, input *ExerciseInput) (*entity.Exercise, error)
	UpdateExercise(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, input *ExerciseInput) (*entity.Exercise, error)
	CopyExercise(ctx context.Context, id, userID uuid.UUID) (*entity.Exercise, error)
	SetExerciseVisibility(ctx context.Context, id uuid.UUID, visibility entity.Visibility) (*entity.Exercise, error)
	UploadExerciseImage(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, image *ImageUpload) (*entity.Exercise, error)
	DeleteExercise(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error
}

// MediaUsecase serves stored catalog images.
type MediaUsecase interface {
	OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error)
}
