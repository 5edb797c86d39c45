package repository

import (
	"context"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrMealNotFound is returned when no meal matches the id within the requested scope.
	ErrMealNotFound = errors.New("meal not found")
	// ErrExerciseNotFound is returned when no exercise matches the id within the requested scope.
	ErrExerciseNotFound = errors.New("exercise not found")
)

// MealRepository persists admin and personal meals in one table.
//
// Methods taking an ownerID pointer scope the statement to admin items when it
// is nil and to that user's personal items otherwise.
type MealRepository interface {
	Create(ctx context.Context, meal *entity.Meal) error

	// FindVisible returns the meal if userID may read it.
	FindVisible(ctx context.Context, id, userID uuid.UUID) (*entity.Meal, error)

	// FindOwned returns the meal if it belongs to ownerID's scope.
	FindOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Meal, error)

	List(ctx context.Context, filter entity.CatalogFilter) ([]*entity.Meal, error)

	// Update overwrites the editable fields of a meal within its owner's scope.
	Update(ctx context.Context, meal *entity.Meal) error

	// SetVisibility toggles an admin meal between public and hidden.
	SetVisibility(ctx context.Context, id uuid.UUID, visibility entity.Visibility) error

	SetImageURL(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, url string) error

	Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error
}

// ExerciseRepository mirrors MealRepository for exercises.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *entity.Exercise) error
	FindVisible(ctx context.Context, id, userID uuid.UUID) (*entity.Exercise, error)
	FindOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Exercise, error)
	List(ctx context.Context, filter entity.CatalogFilter) ([]*entity.Exercise, error)
	Update(ctx context.Context, exercise *entity.Exercise) error
	SetVisibility(ctx context.Context, id uuid.UUID, visibility entity.Visibility) error
	SetImageURL(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, url string) error
	Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error
}
