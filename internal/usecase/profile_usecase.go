package usecase

import (
	"context"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateAccountInput edits the caller's own account. Nil fields are kept.
type UpdateAccountInput struct {
	Name  *string
	Email *string
}

// ProfileOutput pairs the account with its biometric profile, which is nil until first saved.
type ProfileOutput struct {
	User    *entity.User
	Profile *entity.Profile
}

// ProfileUsecase defines the biometric profile and calorie calculator operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, biometrics entity.Biometrics) (*entity.Profile, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, input *UpdateAccountInput) (*entity.User, error)
	Calculate(ctx context.Context, biometrics entity.Biometrics) (entity.CalorieMetrics, error)
}
