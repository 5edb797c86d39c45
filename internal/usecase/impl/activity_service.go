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

// activityService implements the ActivityUsecase interface.
type activityService struct {
	txManager    repository.TransactionManager
	activityRepo repository.ActivityRepository
	planRepo     repository.PlanRepository
	clock        service.Clock
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ActivityRepo repository.ActivityRepository
	PlanRepo     repository.PlanRepository
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		txManager:    params.TxManager,
		activityRepo: params.ActivityRepo,
		planRepo:     params.PlanRepo,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LogMeal appends a meal to today's log. A catalog reference also completes matching plans.
func (srv *activityService) LogMeal(ctx context.Context, userID uuid.UUID, input *usecase.LogMealInput) (*entity.MealLogEntry, error) {
	if strings.TrimSpace(input.Name) == "" || input.Calories < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required and calories cannot be negative")
	}

	now := srv.clock.Now()
	entry := &entity.MealLogEntry{
		UserID:   userID,
		LogDate:  srv.clock.Today(),
		MealID:   input.MealID,
		Name:     strings.TrimSpace(input.Name),
		MealType: input.MealType,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		LoggedAt: now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return appendMealEntry(ctx, repoFactory.NewActivityRepository(), entry)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log meal")
	}

	if entry.MealID != nil {
		srv.completeMatchingPlans(ctx, userID, entry.LogDate, entity.ActivityMeal, *entry.MealID, now)
	}

	return entry, nil
}

// LogExercise appends a workout to today's log. A catalog reference also completes matching plans.
func (srv *activityService) LogExercise(ctx context.Context, userID uuid.UUID, input *usecase.LogExerciseInput) (*entity.ExerciseLogEntry, error) {
	if strings.TrimSpace(input.Title) == "" || input.DurationMinutes < 0 || input.CaloriesBurned < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required and amounts cannot be negative")
	}

	now := srv.clock.Now()
	entry := &entity.ExerciseLogEntry{
		UserID:          userID,
		LogDate:         srv.clock.Today(),
		ExerciseID:      input.ExerciseID,
		Title:           strings.TrimSpace(input.Title),
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		LoggedAt:        now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return appendExerciseEntry(ctx, repoFactory.NewActivityRepository(), entry)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log exercise")
	}

	if entry.ExerciseID != nil {
		srv.completeMatchingPlans(ctx, userID, entry.LogDate, entity.ActivityExercise, *entry.ExerciseID, now)
	}

	return entry, nil
}

func (srv *activityService) LogWater(ctx context.Context, userID uuid.UUID, amountMl int) (*entity.WaterLog, error) {
	if amountMl <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amountMl must be positive")
	}

	water := &entity.WaterLog{
		UserID:   userID,
		AmountMl: amountMl,
		LoggedAt: srv.clock.Now(),
		LogDate:  srv.clock.Today(),
	}

	if err := srv.activityRepo.AddWater(ctx, water); err != nil {
		return nil, errors.Wrap(err, "failed to log water")
	}

	return water, nil
}

func (srv *activityService) LogSleep(ctx context.Context, userID uuid.UUID, input *usecase.LogSleepInput) (*entity.SleepLog, error) {
	if input.DurationHours <= 0 || input.DurationHours > 24 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("durationHours must be within (0, 24]")
	}

	date := input.Date
	if date.IsZero() {
		date = srv.clock.Today()
	}

	sleep := &entity.SleepLog{
		UserID:        userID,
		SleepDate:     entity.DateOf(date),
		DurationHours: input.DurationHours,
		Quality:       input.Quality,
		Notes:         input.Notes,
		CreatedAt:     srv.clock.Now(),
	}

	if err := srv.activityRepo.AddSleep(ctx, sleep); err != nil {
		return nil, errors.Wrap(err, "failed to log sleep")
	}

	return sleep, nil
}

func (srv *activityService) Today(ctx context.Context, userID uuid.UUID) (*entity.DayActivity, error) {
	return srv.ForDate(ctx, userID, srv.clock.Today())
}

// ForDate assembles one day. Nothing is created when the day is empty.
func (srv *activityService) ForDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DayActivity, error) {
	day, err := srv.activityRepo.FindDay(ctx, userID, entity.DateOf(date))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load daily activity")
	}

	return day, nil
}

// Weekly returns one element per day of the trailing week, oldest first, empty days included.
func (srv *activityService) Weekly(ctx context.Context, userID uuid.UUID) ([]entity.DayTotals, error) {
	days := entity.TrailingWeek(srv.clock.Today())

	totals, err := srv.activityRepo.DailyTotals(ctx, userID, days[0], days[len(days)-1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to load weekly totals")
	}

	byDate := make(map[string]entity.DayTotals, len(totals))
	for _, t := range totals {
		byDate[t.Date.Format(entity.DateLayout)] = t
	}

	week := make([]entity.DayTotals, 0, len(days))
	for _, d := range days {
		t := byDate[d.Format(entity.DateLayout)]
		t.Date = d
		week = append(week, t)
	}

	return week, nil
}

func (srv *activityService) SleepToday(ctx context.Context, userID uuid.UUID) (*entity.SleepLog, error) {
	sleep, err := srv.activityRepo.LatestSleep(ctx, userID, srv.clock.Today())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load today's sleep")
	}

	return sleep, nil
}

// completeMatchingPlans marks today's open plans for the same catalog item as done.
// Failures are logged and never reach the caller.
func (srv *activityService) completeMatchingPlans(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
	activity entity.ActivityType,
	catalogItemID uuid.UUID,
	at time.Time,
) {
	completed, err := srv.planRepo.CompleteMatching(ctx, userID, date, activity, catalogItemID, at)
	if err != nil {
		srv.log(ctx).Warn("Failed to auto-complete matching plans",
			slog.Any("userID", userID),
			slog.String("activityType", string(activity)),
			slog.Any("catalogItemID", catalogItemID),
			slog.Any("error", err),
		)

		return
	}

	if completed > 0 {
		srv.log(ctx).Debug("Auto-completed plans", slog.Int64("count", completed), slog.String("activityType", string(activity)))
	}
}

// appendMealEntry attaches entry to its day and stores it.
func appendMealEntry(ctx context.Context, activityRepo repository.ActivityRepository, entry *entity.MealLogEntry) error {
	daily, err := activityRepo.EnsureDailyLog(ctx, entry.UserID, entry.LogDate)
	if err != nil {
		return err
	}
	entry.DailyLogID = daily.ID

	return activityRepo.AddMealEntry(ctx, entry)
}

// appendExerciseEntry attaches entry to its day and stores it.
func appendExerciseEntry(ctx context.Context, activityRepo repository.ActivityRepository, entry *entity.ExerciseLogEntry) error {
	daily, err := activityRepo.EnsureDailyLog(ctx, entry.UserID, entry.LogDate)
	if err != nil {
		return err
	}
	entry.DailyLogID = daily.ID

	return activityRepo.AddExerciseEntry(ctx, entry)
}
