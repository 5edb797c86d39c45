package impl

import (
	"context"
	"log/slog"
	"strings"

	"healthtrack/config"
	deliverycontext "healthtrack/internal/delivery/context"
	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	"healthtrack/internal/domain/service"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealService implements the MealUsecase interface.
type mealService struct {
	mealRepo      repository.MealRepository
	images        service.ImageStore
	maxImageBytes int64
	logger        *slog.Logger
}

// MealServiceParams holds dependencies for MealService, injected by Fx.
type MealServiceParams struct {
	fx.In

	MealRepo repository.MealRepository
	Images   service.ImageStore
	Config   *config.Config
	Logger   *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(params MealServiceParams) usecase.MealUsecase {
	return &mealService{
		mealRepo:      params.MealRepo,
		images:        params.Images,
		maxImageBytes: params.Config.Storage.MaxImageBytes,
		logger:        params.Logger,
	}
}

func (srv *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *mealService) ListMeals(ctx context.Context, filter entity.CatalogFilter) ([]*entity.Meal, error) {
	meals, err := srv.mealRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	return meals, nil
}

func (srv *mealService) GetMeal(ctx context.Context, id, userID uuid.UUID) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindVisible(ctx, id, userID)
	if err != nil {
		return nil, mealError(err, "failed to get meal")
	}

	return meal, nil
}

// CreateMeal adds a personal item for ownerID, or an admin item when ownerID is nil.
func (srv *mealService) CreateMeal(ctx context.Context, ownerID *uuid.UUID, input *usecase.MealInput) (*entity.Meal, error) {
	ownership, err := newOwnership(ownerID, input.Visibility)
	if err != nil {
		return nil, err
	}

	meal := &entity.Meal{Ownership: ownership}
	applyMealInput(meal, input)

	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		return nil, mealError(err, "failed to create meal")
	}

	srv.log(ctx).Info("Meal created", slog.Any("mealID", meal.ID), slog.String("source", string(meal.Source)))

	return meal, nil
}

func (srv *mealService) UpdateMeal(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, input *usecase.MealInput) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, mealError(err, "failed to find meal for update")
	}

	applyMealInput(meal, input)

	if err := srv.mealRepo.Update(ctx, meal); err != nil {
		return nil, mealError(err, "failed to update meal")
	}

	return meal, nil
}

// CopyMeal duplicates a visible admin meal into the caller's personal catalog.
func (srv *mealService) CopyMeal(ctx context.Context, id, userID uuid.UUID) (*entity.Meal, error) {
	source, err := srv.mealRepo.FindVisible(ctx, id, userID)
	if err != nil {
		return nil, mealError(err, "failed to find meal to copy")
	}

	if !source.IsAdminItem() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("only admin meals can be copied")
	}

	cp := source.CopyFor(userID)
	if err := srv.mealRepo.Create(ctx, cp); err != nil {
		return nil, mealError(err, "failed to copy meal")
	}

	srv.log(ctx).Info("Meal copied", slog.Any("originID", id), slog.Any("mealID", cp.ID))

	return cp, nil
}

func (srv *mealService) SetMealVisibility(ctx context.Context, id uuid.UUID, visibility entity.Visibility) (*entity.Meal, error) {
	if !visibility.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("visibility must be public or hidden")
	}

	if err := srv.mealRepo.SetVisibility(ctx, id, visibility); err != nil {
		return nil, mealError(err, "failed to set meal visibility")
	}

	meal, err := srv.mealRepo.FindOwned(ctx, id, nil)
	if err != nil {
		return nil, mealError(err, "failed to reload meal")
	}

	return meal, nil
}

func (srv *mealService) UploadMealImage(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, image *usecase.ImageUpload) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, mealError(err, "failed to find meal for image upload")
	}

	url, key, err := storeCatalogImage(ctx, srv.images, srv.maxImageBytes, "meals", meal.ID, image)
	if err != nil {
		return nil, err
	}

	if err := srv.mealRepo.SetImageURL(ctx, meal.ID, ownerID, url); err != nil {
		if delErr := srv.images.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned meal image", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, mealError(err, "failed to attach meal image")
	}

	meal.ImageURL = url

	return meal, nil
}

func (srv *mealService) DeleteMeal(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error {
	if err := srv.mealRepo.Delete(ctx, id, ownerID); err != nil {
		return mealError(err, "failed to delete meal")
	}

	return nil
}

func applyMealInput(meal *entity.Meal, input *usecase.MealInput) {
	meal.Name = strings.TrimSpace(input.Name)
	meal.Description = input.Description
	meal.MealType = input.MealType
	meal.Calories = input.Calories
	meal.Protein = input.Protein
	meal.Carbs = input.Carbs
	meal.Fat = input.Fat
	meal.PrepTimeMinutes = input.PrepTimeMinutes
	meal.Ingredients = input.Ingredients
	meal.Steps = input.Steps
}

func mealError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrMealNotFound):
		return errors.Wrap(domainerrors.ErrMealNotFound, action)
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, action)
	default:
		return errors.Wrap(err, action)
	}
}

// newOwnership builds the ownership of a freshly created catalog item.
func newOwnership(ownerID *uuid.UUID, visibility entity.Visibility) (entity.Ownership, error) {
	if ownerID != nil {
		return entity.Ownership{OwnerID: ownerID, Source: entity.SourceCustom, Visibility: entity.VisibilityPublic}, nil
	}

	if visibility == "" {
		visibility = entity.VisibilityPublic
	}
	if !visibility.IsValid() {
		return entity.Ownership{}, domainerrors.ErrValidationFailed.WithDetails("visibility must be public or hidden")
	}

	return entity.Ownership{Source: entity.SourceAdmin, Visibility: visibility}, nil
}
