package repository

import (
	"context"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when the user never saved a profile.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the one-per-user biometrics profile.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Upsert inserts or fully replaces the user's profile.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
