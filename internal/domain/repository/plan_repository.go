package repository

import (
	"context"
	"time"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPlanNotFound is returned when no plan matches (id, user).
var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository persists day plans. Every lookup is scoped to the owning user.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error

	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Plan, error)

	// ListByDate returns the user's plans for date ordered by time of day.
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Plan, error)

	// Save writes every mutable column, completion state included.
	Save(ctx context.Context, plan *entity.Plan) error

	// Delete removes the plan if it exists. A missing plan is not an error.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// CompleteMatching marks today's pending plans for the given catalog item as completed.
	CompleteMatching(ctx context.Context, userID uuid.UUID, date time.Time, activity entity.ActivityType, catalogItemID uuid.UUID, at time.Time) (int64, error)

	// Summary counts plans per (date, activity type) within [from, to].
	Summary(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.PlanSummary, error)
}
