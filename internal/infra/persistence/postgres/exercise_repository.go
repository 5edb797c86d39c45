package postgres

import (
	"context"
	"time"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	"healthtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// exerciseRepository implements the repository.ExerciseRepository interface.
type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository is the constructor for exerciseRepository.
func NewExerciseRepository(db *gorm.DB) repository.ExerciseRepository {
	return &exerciseRepository{db: db}
}

// Create persists a new exercise, admin or personal.
func (repo *exerciseRepository) Create(ctx context.Context, exercise *entity.Exercise) error {
	exerciseM := fromExerciseDomain(exercise)

	if err := repo.db.WithContext(ctx).Create(exerciseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create exercise")
	}

	exercise.ID = exerciseM.ID
	exercise.CreatedAt = exerciseM.CreatedAt
	exercise.UpdatedAt = exerciseM.UpdatedAt

	return nil
}

// FindVisible returns an exercise readable by userID.
func (repo *exerciseRepository) FindVisible(ctx context.Context, id, userID uuid.UUID) (*entity.Exercise, error) {
	return repo.findOne(ctx, id, visibleTo(userID))
}

// FindOwned returns an exercise within ownerID's scope.
func (repo *exerciseRepository) FindOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Exercise, error) {
	return repo.findOne(ctx, id, ownedBy(ownerID))
}

func (repo *exerciseRepository) findOne(ctx context.Context, id uuid.UUID, scope func(*gorm.DB) *gorm.DB) (*entity.Exercise, error) {
	var exerciseM model.ExerciseModel

	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Where("id = ?", id).
		First(&exerciseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExerciseNotFound
		}

		return nil, errors.Wrap(err, "failed to find exercise")
	}

	return toExerciseDomain(&exerciseM), nil
}

// List returns exercises for the filter ordered by name.
func (repo *exerciseRepository) List(ctx context.Context, filter entity.CatalogFilter) ([]*entity.Exercise, error) {
	var exerciseModels []*model.ExerciseModel

	if err := repo.db.WithContext(ctx).
		Scopes(catalogFilter(filter, "difficulty", "title")).
		Order("title ASC").
		Find(&exerciseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list exercises")
	}

	exercises := make([]*entity.Exercise, 0, len(exerciseModels))
	for _, exerciseM := range exerciseModels {
		exercises = append(exercises, toExerciseDomain(exerciseM))
	}

	return exercises, nil
}

// Update overwrites the editable columns of an exercise within its owner's scope.
func (repo *exerciseRepository) Update(ctx context.Context, exercise *entity.Exercise) error {
	exerciseM := fromExerciseDomain(exercise)
	exerciseM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ExerciseModel{}).
		Scopes(ownedBy(exercise.OwnerID)).
		Where("id = ?", exercise.ID).
		Select("title", "description", "category", "difficulty", "duration_minutes",
			"calories_burned", "steps", "updated_at").
		Updates(exerciseM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update exercise")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExerciseNotFound
	}

	exercise.UpdatedAt = exerciseM.UpdatedAt

	return nil
}

// SetVisibility toggles an admin exercise between public and hidden.
func (repo *exerciseRepository) SetVisibility(ctx context.Context, id uuid.UUID, visibility entity.Visibility) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExerciseModel{}).
		Where("id = ? AND owner_id IS NULL", id).
		Updates(map[string]any{"visibility": string(visibility), "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update exercise visibility")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExerciseNotFound
	}

	return nil
}

// SetImageURL records where the exercise's image is served from.
func (repo *exerciseRepository) SetImageURL(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, url string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExerciseModel{}).
		Scopes(ownedBy(ownerID)).
		Where("id = ?", id).
		Updates(map[string]any{"image_url": url, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update exercise image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExerciseNotFound
	}

	return nil
}

// Delete removes an exercise within its owner's scope.
func (repo *exerciseRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Scopes(ownedBy(ownerID)).
		Where("id = ?", id).
		Delete(&model.ExerciseModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete exercise")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExerciseNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toExerciseDomain(data *model.ExerciseModel) *entity.Exercise {
	if data == nil {
		return nil
	}

	return &entity.Exercise{
		ID: data.ID,
		Ownership: entity.Ownership{
			OwnerID:    data.OwnerID,
			Source:     entity.Source(data.Source),
			OriginID:   data.OriginID,
			Visibility: entity.Visibility(data.Visibility),
		},
		Title:           data.Title,
		Description:     data.Description,
		Category:        data.Category,
		Difficulty:      entity.Difficulty(data.Difficulty),
		DurationMinutes: data.DurationMinutes,
		CaloriesBurned:  data.CaloriesBurned,
		Steps:           nonNil(data.Steps),
		ImageURL:        data.ImageURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromExerciseDomain(data *entity.Exercise) *model.ExerciseModel {
	if data == nil {
		return nil
	}

	visibility := data.Visibility
	if visibility == "" {
		visibility = entity.VisibilityPublic
	}

	return &model.ExerciseModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Source:          string(data.Source),
		OriginID:        data.OriginID,
		Visibility:      string(visibility),
		Title:           data.Title,
		Description:     data.Description,
		Category:        data.Category,
		Difficulty:      string(data.Difficulty),
		DurationMinutes: data.DurationMinutes,
		CaloriesBurned:  data.CaloriesBurned,
		Steps:           nonNil(data.Steps),
		ImageURL:        data.ImageURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
