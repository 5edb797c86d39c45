package impl

import (
	"context"
	"log/slog"
	"strings"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	clock       service.Clock
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the account and its profile. The profile is nil until first saved.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, userError(err, "failed to find user")
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return &usecase.ProfileOutput{User: user, Profile: profile}, nil
}

// SaveProfile recomputes the calorie metrics and replaces the stored profile.
func (srv *profileService) SaveProfile(ctx context.Context, userID uuid.UUID, biometrics entity.Biometrics) (*entity.Profile, error) {
	if err := validateBiometrics(biometrics); err != nil {
		return nil, err
	}

	profile := entity.NewProfile(userID, biometrics, srv.clock.Now())

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, userError(err, "failed to save profile")
	}

	srv.log(ctx).Info("Profile saved", slog.Any("userID", userID), slog.Int("calorieGoal", profile.CalorieGoal))

	return profile, nil
}

// UpdateAccount changes the caller's name and/or email.
func (srv *profileService) UpdateAccount(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.User, error) {
	patch := entity.UserPatch{Name: trimmed(input.Name), Email: trimmed(input.Email)}
	if patch.Name != nil && *patch.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
	}
	if patch.Email != nil && *patch.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email cannot be empty")
	}

	if patch.IsEmpty() {
		user, err := srv.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, userError(err, "failed to find user")
		}

		return user, nil
	}

	user, err := srv.userRepo.Patch(ctx, userID, patch)
	if err != nil {
		return nil, userError(err, "failed to update account")
	}

	return user, nil
}

// Calculate previews the metrics without storing anything.
func (srv *profileService) Calculate(_ context.Context, biometrics entity.Biometrics) (entity.CalorieMetrics, error) {
	if err := validateBiometrics(biometrics); err != nil {
		return entity.CalorieMetrics{}, err
	}

	return biometrics.Calculate(), nil
}

func validateBiometrics(b entity.Biometrics) error {
	switch {
	case b.Age <= 0 || b.Age > 150:
		return domainerrors.ErrValidationFailed.WithDetails("age must be between 1 and 150")
	case b.WeightKg <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("weight must be positive")
	case b.HeightCm <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("height must be positive")
	case b.Gender != entity.GenderMale && b.Gender != entity.GenderFemale:
		return domainerrors.ErrValidationFailed.WithDetails("gender must be male or female")
	case b.ActivityLevel == "":
		return domainerrors.ErrValidationFailed.WithDetails("activityLevel is required")
	case b.Goal == "":
		return domainerrors.ErrValidationFailed.WithDetails("goal is required")
	}

	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}

func userError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, action)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, action)
	default:
		return errors.Wrap(err, action)
	}
}
