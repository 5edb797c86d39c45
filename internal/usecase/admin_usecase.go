package usecase

import (
	"context"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase backs the administrator views.
type AdminUsecase interface {
	ListUsers(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error)
	DeleteUser(ctx context.Context, actorID, id uuid.UUID) error
	Statistics(ctx context.Context) (*entity.Statistics, error)
	// EnsureAdmin creates an admin account, or promotes and reactivates an existing one.
	EnsureAdmin(ctx context.Context, input *RegisterInput) (*entity.User, error)
}
