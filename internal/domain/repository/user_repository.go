// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already taken by another account.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Patch applies the non-nil fields of patch and returns the updated user.
	Patch(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error)

	// Delete removes the user and, through cascades, everything they own.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns users matching filter, newest first.
	List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error)
}
