package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// plannedWaterMl is the amount logged when a water plan is executed.
const plannedWaterMl = entity.WaterCupMl

// plannerService implements the PlannerUsecase interface.
type plannerService struct {
	txManager repository.TransactionManager
	planRepo  repository.PlanRepository
	clock     service.Clock
	logger    *slog.Logger
}

// PlannerServiceParams holds dependencies for PlannerService, injected by Fx.
type PlannerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PlanRepo  repository.PlanRepository
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewPlannerService is the constructor for plannerService.
func NewPlannerService(params PlannerServiceParams) usecase.PlannerUsecase {
	return &plannerService{
		txManager: params.TxManager,
		planRepo:  params.PlanRepo,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *plannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *plannerService) ListToday(ctx context.Context, userID uuid.UUID) ([]*entity.Plan, error) {
	return srv.ListForDate(ctx, userID, srv.clock.Today())
}

// ListForDate returns the plans of one day ordered by time.
func (srv *plannerService) ListForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Plan, error) {
	plans, err := srv.planRepo.ListByDate(ctx, userID, entity.DateOf(date))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return plans, nil
}

// CreatePlan stores a pending plan. Overlapping times are allowed.
func (srv *plannerService) CreatePlan(ctx context.Context, userID uuid.UUID, input *usecase.CreatePlanInput) (*entity.Plan, error) {
	if input.Date.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date is required")
	}
	if !input.ActivityType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("activityType must be one of meal, exercise, water, sleep")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	planTime, err := entity.NormalizeClock(input.Time)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	plan := &entity.Plan{
		UserID:        userID,
		PlanDate:      entity.DateOf(input.Date),
		PlanTime:      planTime,
		ActivityType:  input.ActivityType,
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		Notes:         input.Notes,
		CatalogItemID: input.CatalogItemID,
	}

	if err := srv.planRepo.Create(ctx, plan); err != nil {
		return nil, planError(err, "failed to create plan")
	}

	srv.log(ctx).Info("Plan created", slog.Any("planID", plan.ID), slog.String("activityType", string(plan.ActivityType)))

	return plan, nil
}

// UpdatePlan overwrites time, title, description and notes. Completion is left alone.
func (srv *plannerService) UpdatePlan(ctx context.Context, userID, planID uuid.UUID, update entity.PlanUpdate) (*entity.Plan, error) {
	if strings.TrimSpace(update.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	planTime, err := entity.NormalizeClock(update.PlanTime)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	plan, err := srv.planRepo.FindByID(ctx, planID, userID)
	if err != nil {
		return nil, planError(err, "failed to find plan for update")
	}

	plan.PlanTime = planTime
	plan.Title = strings.TrimSpace(update.Title)
	plan.Description = update.Description
	plan.Notes = update.Notes

	if err := srv.planRepo.Save(ctx, plan); err != nil {
		return nil, planError(err, "failed to update plan")
	}

	return plan, nil
}

// SetStatus flips the completion flag without writing to the activity log.
func (srv *plannerService) SetStatus(ctx context.Context, userID, planID uuid.UUID, completed bool) (*entity.Plan, error) {
	plan, err := srv.planRepo.FindByID(ctx, planID, userID)
	if err != nil {
		return nil, planError(err, "failed to find plan for status change")
	}

	plan.SetCompleted(completed, srv.clock.Now())

	if err := srv.planRepo.Save(ctx, plan); err != nil {
		return nil, planError(err, "failed to update plan status")
	}

	return plan, nil
}

// ExecutePlan completes a plan and records the planned activity in one transaction.
func (srv *plannerService) ExecutePlan(ctx context.Context, userID, planID uuid.UUID) (*entity.ExecutionResult, error) {
	var result *entity.ExecutionResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.NewPlanRepository()

		plan, err := planRepo.FindByID(ctx, planID, userID)
		if err != nil {
			return planError(err, "failed to find plan for execution")
		}

		now := srv.clock.Now()
		plan.MarkCompleted(now)

		if err := planRepo.Save(ctx, plan); err != nil {
			return planError(err, "failed to complete plan")
		}

		res, err := srv.recordPlannedActivity(ctx, repoFactory, plan, now)
		if err != nil {
			return err
		}
		result = res

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute plan", slog.Any("planID", planID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute plan")
	}

	srv.log(ctx).Info("Plan executed",
		slog.Any("planID", planID),
		slog.Bool("logged", result.Logged),
		slog.String("reason", result.Reason),
	)

	return result, nil
}

// recordPlannedActivity writes the log entry matching the plan's activity type.
// A catalog item that cannot be resolved is reported in the result, not as an error.
func (srv *plannerService) recordPlannedActivity(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	plan *entity.Plan,
	now time.Time,
) (*entity.ExecutionResult, error) {
	result := &entity.ExecutionResult{Plan: plan, ActivityType: plan.ActivityType}
	today := srv.clock.Today()

	switch plan.ActivityType {
	case entity.ActivityMeal:
		if plan.CatalogItemID == nil {
			result.Reason = entity.ReasonCatalogItemNotFound
			return result, nil
		}

		meal, err := repoFactory.NewMealRepository().FindVisible(ctx, *plan.CatalogItemID, plan.UserID)
		if errors.Is(err, repository.ErrMealNotFound) {
			result.Reason = entity.ReasonCatalogItemNotFound
			return result, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve planned meal")
		}

		entry := &entity.MealLogEntry{
			UserID:   plan.UserID,
			LogDate:  today,
			MealID:   &meal.ID,
			Name:     meal.Name,
			MealType: meal.MealType,
			Calories: meal.Calories,
			Protein:  meal.Protein,
			Carbs:    meal.Carbs,
			Fat:      meal.Fat,
			LoggedAt: now,
		}
		if err := appendMealEntry(ctx, repoFactory.NewActivityRepository(), entry); err != nil {
			return nil, errors.Wrap(err, "failed to log planned meal")
		}

	case entity.ActivityExercise:
		if plan.CatalogItemID == nil {
			result.Reason = entity.ReasonCatalogItemNotFound
			return result, nil
		}

		exercise, err := repoFactory.NewExerciseRepository().FindVisible(ctx, *plan.CatalogItemID, plan.UserID)
		if errors.Is(err, repository.ErrExerciseNotFound) {
			result.Reason = entity.ReasonCatalogItemNotFound
			return result, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve planned exercise")
		}

		entry := &entity.ExerciseLogEntry{
			UserID:          plan.UserID,
			LogDate:         today,
			ExerciseID:      &exercise.ID,
			Title:           exercise.Title,
			DurationMinutes: exercise.DurationMinutes,
			CaloriesBurned:  exercise.CaloriesBurned,
			LoggedAt:        now,
		}
		if err := appendExerciseEntry(ctx, repoFactory.NewActivityRepository(), entry); err != nil {
			return nil, errors.Wrap(err, "failed to log planned exercise")
		}

	case entity.ActivityWater:
		water := &entity.WaterLog{
			UserID:   plan.UserID,
			AmountMl: plannedWaterMl,
			LoggedAt: now,
			LogDate:  today,
		}
		if err := repoFactory.NewActivityRepository().AddWater(ctx, water); err != nil {
			return nil, errors.Wrap(err, "failed to log planned water")
		}

	default:
		result.Reason = entity.ReasonNotApplicable
		return result, nil
	}

	result.Logged = true

	return result, nil
}

// DeletePlan removes the plan if the caller owns it. Missing plans are not an error.
func (srv *plannerService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	if err := srv.planRepo.Delete(ctx, planID, userID); err != nil {
		return errors.Wrap(err, "failed to delete plan")
	}

	return nil
}

func (srv *plannerService) WeeklySummary(ctx context.Context, userID uuid.UUID) ([]entity.PlanSummary, error) {
	days := entity.TrailingWeek(srv.clock.Today())

	summary, err := srv.planRepo.Summary(ctx, userID, days[0], days[len(days)-1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize plans")
	}

	return summary, nil
}

func planError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrPlanNotFound):
		return errors.Wrap(domainerrors.ErrPlanNotFound, action)
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, action)
	default:
		return errors.Wrap(err, action)
	}
}
