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

// mealRepository implements the repository.MealRepository interface.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

// Create persists a new meal, admin or personal.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt
	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// FindVisible returns a meal readable by userID.
func (repo *mealRepository) FindVisible(ctx context.Context, id, userID uuid.UUID) (*entity.Meal, error) {
	return repo.findOne(ctx, id, visibleTo(userID))
}

// FindOwned returns a meal within ownerID's scope.
func (repo *mealRepository) FindOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Meal, error) {
	return repo.findOne(ctx, id, ownedBy(ownerID))
}

func (repo *mealRepository) findOne(ctx context.Context, id uuid.UUID, scope func(*gorm.DB) *gorm.DB) (*entity.Meal, error) {
	var mealM model.MealModel

	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Where("id = ?", id).
		First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal")
	}

	return toMealDomain(&mealM), nil
}

// List returns meals for the filter ordered by name.
func (repo *mealRepository) List(ctx context.Context, filter entity.CatalogFilter) ([]*entity.Meal, error) {
	var mealModels []*model.MealModel

	if err := repo.db.WithContext(ctx).
		Scopes(catalogFilter(filter, "meal_type", "name")).
		Order("name ASC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// Update overwrites the editable columns of a meal within its owner's scope.
func (repo *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)
	mealM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Scopes(ownedBy(meal.OwnerID)).
		Where("id = ?", meal.ID).
		Select("name", "description", "meal_type", "calories", "protein", "carbs", "fat",
			"prep_time_minutes", "ingredients", "steps", "updated_at").
		Updates(mealM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// SetVisibility toggles an admin meal between public and hidden.
func (repo *mealRepository) SetVisibility(ctx context.Context, id uuid.UUID, visibility entity.Visibility) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ? AND owner_id IS NULL", id).
		Updates(map[string]any{"visibility": string(visibility), "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal visibility")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// SetImageURL records where the meal's image is served from.
func (repo *mealRepository) SetImageURL(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, url string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Scopes(ownedBy(ownerID)).
		Where("id = ?", id).
		Updates(map[string]any{"image_url": url, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// Delete removes a meal within its owner's scope.
func (repo *mealRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Scopes(ownedBy(ownerID)).
		Where("id = ?", id).
		Delete(&model.MealModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	return &entity.Meal{
		ID: data.ID,
		Ownership: entity.Ownership{
			OwnerID:    data.OwnerID,
			Source:     entity.Source(data.Source),
			OriginID:   data.OriginID,
			Visibility: entity.Visibility(data.Visibility),
		},
		Name:            data.Name,
		Description:     data.Description,
		MealType:        entity.MealType(data.MealType),
		Calories:        data.Calories,
		Protein:         data.Protein,
		Carbs:           data.Carbs,
		Fat:             data.Fat,
		PrepTimeMinutes: data.PrepTimeMinutes,
		Ingredients:     nonNil(data.Ingredients),
		Steps:           nonNil(data.Steps),
		ImageURL:        data.ImageURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	visibility := data.Visibility
	if visibility == "" {
		visibility = entity.VisibilityPublic
	}

	return &model.MealModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Source:          string(data.Source),
		OriginID:        data.OriginID,
		Visibility:      string(visibility),
		Name:            data.Name,
		Description:     data.Description,
		MealType:        string(data.MealType),
		Calories:        data.Calories,
		Protein:         data.Protein,
		Carbs:           data.Carbs,
		Fat:             data.Fat,
		PrepTimeMinutes: data.PrepTimeMinutes,
		Ingredients:     nonNil(data.Ingredients),
		Steps:           nonNil(data.Steps),
		ImageURL:        data.ImageURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
