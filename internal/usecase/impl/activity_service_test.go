package impl

import (
	"context"
	"testing"
	"time"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	mockRepo "healthtrack/internal/mocks/repository"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type activityServiceFixtures struct {
	service      usecase.ActivityUsecase
	txManager    *mockRepo.MockTransactionManager
	activityRepo *mockRepo.MockActivityRepository
	planRepo     *mockRepo.MockPlanRepository
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	planRepo := mockRepo.NewMockPlanRepository(t)

	service := NewActivityService(ActivityServiceParams{
		TxManager:    txManager,
		ActivityRepo: activityRepo,
		PlanRepo:     planRepo,
		Clock:        fixedClock{now: testNow},
		Logger:       newDiscardLogger(),
	})

	return activityServiceFixtures{
		service:      service,
		txManager:    txManager,
		activityRepo: activityRepo,
		planRepo:     planRepo,
	}
}

// expectDailyLogAppend wires a transactional activity repository that accepts one meal entry.
func expectDailyLogAppend(t *testing.T, fx activityServiceFixtures, userID, dailyLogID uuid.UUID) *mockRepo.MockActivityRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txActivityRepo := mockRepo.NewMockActivityRepository(t)
	today := entity.DateOf(testNow)

	factory.EXPECT().NewActivityRepository().Return(txActivityRepo)
	txActivityRepo.EXPECT().
		EnsureDailyLog(mock.Anything, userID, today).
		Return(&entity.DailyLog{ID: dailyLogID, UserID: userID, LogDate: today}, nil)

	expectTransaction(t, fx.txManager, factory)

	return txActivityRepo
}

func TestActivityService_LogMeal_CompletesMatchingPlans(t *testing.T) {
	fx := createTestActivityService(t)

	userID, dailyLogID, mealID := uuid.New(), uuid.New(), uuid.New()
	txActivityRepo := expectDailyLogAppend(t, fx, userID, dailyLogID)
	txActivityRepo.EXPECT().
		AddMealEntry(mock.Anything, mock.MatchedBy(func(e *entity.MealLogEntry) bool {
			return e.DailyLogID == dailyLogID && e.Calories == 420 && *e.MealID == mealID
		})).
		Return(nil)
	fx.planRepo.EXPECT().
		CompleteMatching(mock.Anything, userID, entity.DateOf(testNow), entity.ActivityMeal, mealID, testNow).
		Return(int64(1), nil)

	entry, err := fx.service.LogMeal(context.Background(), userID, &usecase.LogMealInput{
		MealID:   &mealID,
		Name:     "Pasta",
		MealType: entity.MealTypeDinner,
		Calories: 420,
	})

	require.NoError(t, err)
	assert.Equal(t, dailyLogID, entry.DailyLogID)
	assert.Equal(t, testNow, entry.LoggedAt)
}

func TestActivityService_LogMeal_AutoCompleteFailureIsSwallowed(t *testing.T) {
	fx := createTestActivityService(t)

	userID, mealID := uuid.New(), uuid.New()
	txActivityRepo := expectDailyLogAppend(t, fx, userID, uuid.New())
	txActivityRepo.EXPECT().AddMealEntry(mock.Anything, mock.Anything).Return(nil)
	fx.planRepo.EXPECT().
		CompleteMatching(mock.Anything, userID, mock.Anything, entity.ActivityMeal, mealID, mock.Anything).
		Return(int64(0), errors.New("connection reset"))

	entry, err := fx.service.LogMeal(context.Background(), userID, &usecase.LogMealInput{MealID: &mealID, Name: "Pasta", Calories: 1})

	require.NoError(t, err)
	assert.NotNil(t, entry)
}

func TestActivityService_LogMeal_WithoutCatalogReferenceSkipsPlans(t *testing.T) {
	fx := createTestActivityService(t)

	userID := uuid.New()
	txActivityRepo := expectDailyLogAppend(t, fx, userID, uuid.New())
	txActivityRepo.EXPECT().AddMealEntry(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.LogMeal(context.Background(), userID, &usecase.LogMealInput{Name: "Apple", Calories: 80})

	require.NoError(t, err)
}

func TestActivityService_LogExercise_CompletesMatchingPlans(t *testing.T) {
	fx := createTestActivityService(t)

	userID, dailyLogID, exerciseID := uuid.New(), uuid.New(), uuid.New()
	txActivityRepo := expectDailyLogAppend(t, fx, userID, dailyLogID)
	txActivityRepo.EXPECT().AddExerciseEntry(mock.Anything, mock.AnythingOfType("*entity.ExerciseLogEntry")).Return(nil)
	fx.planRepo.EXPECT().
		CompleteMatching(mock.Anything, userID, entity.DateOf(testNow), entity.ActivityExercise, exerciseID, testNow).
		Return(int64(2), nil)

	_, err := fx.service.LogExercise(context.Background(), userID, &usecase.LogExerciseInput{
		ExerciseID:      &exerciseID,
		Title:           "Run",
		DurationMinutes: 30,
		CaloriesBurned:  300,
	})

	require.NoError(t, err)
}

func TestActivityService_LogWater(t *testing.T) {
	fx := createTestActivityService(t)

	userID := uuid.New()
	fx.activityRepo.EXPECT().
		AddWater(mock.Anything, &entity.WaterLog{UserID: userID, AmountMl: 500, LoggedAt: testNow, LogDate: entity.DateOf(testNow)}).
		Return(nil)

	water, err := fx.service.LogWater(context.Background(), userID, 500)
	require.NoError(t, err)
	assert.Equal(t, 500, water.AmountMl)

	_, err = fx.service.LogWater(context.Background(), userID, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestActivityService_LogSleep_DefaultsToToday(t *testing.T) {
	fx := createTestActivityService(t)

	userID := uuid.New()
	fx.activityRepo.EXPECT().
		AddSleep(mock.Anything, mock.MatchedBy(func(s *entity.SleepLog) bool {
			return s.SleepDate.Equal(entity.DateOf(testNow)) && s.Quality == entity.SleepQualityGood
		})).
		Return(nil)

	_, err := fx.service.LogSleep(context.Background(), userID, &usecase.LogSleepInput{DurationHours: 7.5, Quality: entity.SleepQualityGood})

	require.NoError(t, err)
}

func TestActivityService_Weekly_FillsEmptyDays(t *testing.T) {
	fx := createTestActivityService(t)

	userID := uuid.New()
	today := entity.DateOf(testNow)
	from := today.AddDate(0, 0, -6)

	fx.activityRepo.EXPECT().
		DailyTotals(mock.Anything, userID, from, today).
		Return([]entity.DayTotals{
			{Date: today, TotalCalories: 1800, CaloriesBurned: 300, WaterMl: 1500},
			{Date: from, TotalCalories: 900},
		}, nil)

	week, err := fx.service.Weekly(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, from, week[0].Date)
	assert.Equal(t, 900, week[0].TotalCalories)
	assert.Equal(t, today.AddDate(0, 0, -3), week[3].Date)
	assert.Zero(t, week[3].TotalCalories)
	assert.Equal(t, today, week[6].Date)
	assert.Equal(t, 6, week[6].WaterCups())
}

func TestActivityService_SleepToday_None(t *testing.T) {
	fx := createTestActivityService(t)

	userID := uuid.New()
	fx.activityRepo.EXPECT().LatestSleep(mock.Anything, userID, entity.DateOf(testNow)).Return(nil, nil)

	sleep, err := fx.service.SleepToday(context.Background(), userID)

	require.NoError(t, err)
	assert.Nil(t, sleep)
}

func TestActivityService_ForDate_NormalizesDate(t *testing.T) {
	fx := createTestActivityService(t)

	userID := uuid.New()
	date := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	day := &entity.DayActivity{Date: date}
	fx.activityRepo.EXPECT().FindDay(mock.Anything, userID, date).Return(day, nil)

	got, err := fx.service.ForDate(context.Background(), userID, date.Add(15*time.Hour))

	require.NoError(t, err)
	assert.Same(t, day, got)
}
