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

// exerciseService implements the ExerciseUsecase interface.
type exerciseService struct {
	exerciseRepo      repository.ExerciseRepository
	images        service.ImageStore
	maxImageBytes int64
	logger        *slog.Logger
}

// ExerciseServiceParams holds dependencies for ExerciseService, injected by Fx.
type ExerciseServiceParams struct {
	fx.In

	ExerciseRepo repository.ExerciseRepository
	Images   service.ImageStore
	Config   *config.Config
	Logger   *slog.Logger
}

// NewExerciseService is the constructor for exerciseService.
func NewExerciseService(params ExerciseServiceParams) usecase.ExerciseUsecase {
	return &exerciseService{
		exerciseRepo:      params.ExerciseRepo,
		images:        params.Images,
		maxImageBytes: params.Config.Storage.MaxImageBytes,
		logger:        params.Logger,
	}
}

func (srv *exerciseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *exerciseService) ListExercises(ctx context.Context, filter entity.CatalogFilter) ([]*entity.Exercise, error) {
	exercises, err := srv.exerciseRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list exercises")
	}

	return exercises, nil
}

func (srv *exerciseService) GetExercise(ctx context.Context, id, userID uuid.UUID) (*entity.Exercise, error) {
	exercise, err := srv.exerciseRepo.FindVisible(ctx, id, userID)
	if err != nil {
		return nil, exerciseError(err, "failed to get exercise")
	}

	return exercise, nil
}

// CreateExercise adds a personal item for ownerID, or an admin item when ownerID is nil.
func (srv *exerciseService) CreateExercise(ctx context.Context, ownerID *uuid.UUID, input *usecase.ExerciseInput) (*entity.Exercise, error) {
	ownership, err := newOwnership(ownerID, input.Visibility)
	if err != nil {
		return nil, err
	}

	exercise := &entity.Exercise{Ownership: ownership}
	applyExerciseInput(exercise, input)

	if err := srv.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, exerciseError(err, "failed to create exercise")
	}

	srv.log(ctx).Info("Exercise created", slog.Any("exerciseID", exercise.ID), slog.String("source", string(exercise.Source)))

	return exercise, nil
}

func (srv *exerciseService) UpdateExercise(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, input *usecase.ExerciseInput) (*entity.Exercise, error) {
	exercise, err := srv.exerciseRepo.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, exerciseError(err, "failed to find exercise for update")
	}

	applyExerciseInput(exercise, input)

	if err := srv.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, exerciseError(err, "failed to update exercise")
	}

	return exercise, nil
}

// CopyExercise duplicates a visible admin exercise into the caller's personal catalog.
func (srv *exerciseService) CopyExercise(ctx context.Context, id, userID uuid.UUID) (*entity.Exercise, error) {
	source, err := srv.exerciseRepo.FindVisible(ctx, id, userID)
	if err != nil {
		return nil, exerciseError(err, "failed to find exercise to copy")
	}

	if !source.IsAdminItem() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("only admin exercises can be copied")
	}

	cp := source.CopyFor(userID)
	if err := srv.exerciseRepo.Create(ctx, cp); err != nil {
		return nil, exerciseError(err, "failed to copy exercise")
	}

	srv.log(ctx).Info("Exercise copied", slog.Any("originID", id), slog.Any("exerciseID", cp.ID))

	return cp, nil
}

func (srv *exerciseService) SetExerciseVisibility(ctx context.Context, id uuid.UUID, visibility entity.Visibility) (*entity.Exercise, error) {
	if !visibility.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("visibility must be public or hidden")
	}

	if err := srv.exerciseRepo.SetVisibility(ctx, id, visibility); err != nil {
		return nil, exerciseError(err, "failed to set exercise visibility")
	}

	exercise, err := srv.exerciseRepo.FindOwned(ctx, id, nil)
	if err != nil {
		return nil, exerciseError(err, "failed to reload exercise")
	}

	return exercise, nil
}

func (srv *exerciseService) UploadExerciseImage(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, image *usecase.ImageUpload) (*entity.Exercise, error) {
	exercise, err := srv.exerciseRepo.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, exerciseError(err, "failed to find exercise for image upload")
	}

	url, key, err := storeCatalogImage(ctx, srv.images, srv.maxImageBytes, "exercises", exercise.ID, image)
	if err != nil {
		return nil, err
	}

	if err := srv.exerciseRepo.SetImageURL(ctx, exercise.ID, ownerID, url); err != nil {
		if delErr := srv.images.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned exercise image", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, exerciseError(err, "failed to attach exercise image")
	}

	exercise.ImageURL = url

	return exercise, nil
}

func (srv *exerciseService) DeleteExercise(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error {
	if err := srv.exerciseRepo.Delete(ctx, id, ownerID); err != nil {
		return exerciseError(err, "failed to delete exercise")
	}

	return nil
}

func applyExerciseInput(exercise *entity.Exercise, input *usecase.ExerciseInput) {
	exercise.Title = strings.TrimSpace(input.Title)
	exercise.Description = input.Description
	exercise.Category = input.Category
	exercise.Difficulty = input.Difficulty
	exercise.DurationMinutes = input.DurationMinutes
	exercise.CaloriesBurned = input.CaloriesBurned
	exercise.Steps = input.Steps
}

func exerciseError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrExerciseNotFound):
		return errors.Wrap(domainerrors.ErrExerciseNotFound, action)
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, action)
	default:
		return errors.Wrap(err, action)
	}
}
