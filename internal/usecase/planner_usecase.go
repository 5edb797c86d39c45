package usecase

import (
	"context"
	"time"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlanInput schedules one activity.
type CreatePlanInput struct {
	Date          time.Time
	Time          string
	ActivityType  entity.ActivityType
	Title         string
	Description   string
	Notes         string
	CatalogItemID *uuid.UUID
}

// PlannerUsecase manages the day planner. Every operation is scoped to the calling user.
type PlannerUsecase interface {
	ListToday(ctx context.Context, userID uuid.UUID) ([]*entity.Plan, error)
	ListForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Plan, error)
	CreatePlan(ctx context.Context, userID uuid.UUID, input *CreatePlanInput) (*entity.Plan, error)
	UpdatePlan(ctx context.Context, userID, planID uuid.UUID, update entity.PlanUpdate) (*entity.Plan, error)
	SetStatus(ctx context.Context, userID, planID uuid.UUID, completed bool) (*entity.Plan, error)
	ExecutePlan(ctx context.Context, userID, planID uuid.UUID) (*entity.ExecutionResult, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
	WeeklySummary(ctx context.Context, userID uuid.UUID) ([]entity.PlanSummary, error)
}
