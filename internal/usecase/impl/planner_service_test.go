package impl

import (
	"context"
	"testing"
	"time"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	mockRepo "healthtrack/internal/mocks/repository"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type plannerServiceFixtures struct {
	service   usecase.PlannerUsecase
	txManager *mockRepo.MockTransactionManager
	planRepo  *mockRepo.MockPlanRepository
}

func createTestPlannerService(t *testing.T) plannerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	planRepo := mockRepo.NewMockPlanRepository(t)

	service := NewPlannerService(PlannerServiceParams{
		TxManager: txManager,
		PlanRepo:  planRepo,
		Clock:     fixedClock{now: testNow},
		Logger:    newDiscardLogger(),
	})

	return plannerServiceFixtures{service: service, txManager: txManager, planRepo: planRepo}
}

// executionMocks are the transactional repositories seen by ExecutePlan.
type executionMocks struct {
	factory      *mockRepo.MockRepositoryFactory
	planRepo     *mockRepo.MockPlanRepository
	mealRepo     *mockRepo.MockMealRepository
	exerciseRepo *mockRepo.MockExerciseRepository
	activityRepo *mockRepo.MockActivityRepository
}

func newExecutionMocks(t *testing.T, fx plannerServiceFixtures, plan *entity.Plan) executionMocks {
	m := executionMocks{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		planRepo:     mockRepo.NewMockPlanRepository(t),
		mealRepo:     mockRepo.NewMockMealRepository(t),
		exerciseRepo: mockRepo.NewMockExerciseRepository(t),
		activityRepo: mockRepo.NewMockActivityRepository(t),
	}

	m.factory.EXPECT().NewPlanRepository().Return(m.planRepo)
	m.planRepo.EXPECT().FindByID(mock.Anything, plan.ID, plan.UserID).Return(plan, nil)
	m.planRepo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(p *entity.Plan) bool { return p.Completed && p.CompletedAt != nil })).
		Return(nil)

	expectTransaction(t, fx.txManager, m.factory)

	return m
}

func newPlan(activity entity.ActivityType, catalogItemID *uuid.UUID) *entity.Plan {
	return &entity.Plan{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		PlanDate:      entity.DateOf(testNow),
		PlanTime:      "12:00:00",
		ActivityType:  activity,
		Title:         "Lunch",
		CatalogItemID: catalogItemID,
	}
}

func TestPlannerService_ExecutePlan_MealLogged(t *testing.T) {
	fx := createTestPlannerService(t)

	mealID := uuid.New()
	plan := newPlan(entity.ActivityMeal, &mealID)
	m := newExecutionMocks(t, fx, plan)
	dailyLogID := uuid.New()

	m.factory.EXPECT().NewMealRepository().Return(m.mealRepo)
	m.mealRepo.EXPECT().
		FindVisible(mock.Anything, mealID, plan.UserID).
		Return(&entity.Meal{ID: mealID, Name: "Chicken bowl", MealType: entity.MealTypeLunch, Calories: 640}, nil)
	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.activityRepo.EXPECT().
		EnsureDailyLog(mock.Anything, plan.UserID, entity.DateOf(testNow)).
		Return(&entity.DailyLog{ID: dailyLogID}, nil)
	m.activityRepo.EXPECT().
		AddMealEntry(mock.Anything, mock.MatchedBy(func(e *entity.MealLogEntry) bool {
			return e.DailyLogID == dailyLogID && e.Calories == 640 && e.Name == "Chicken bowl" && *e.MealID == mealID
		})).
		Return(nil)

	result, err := fx.service.ExecutePlan(context.Background(), plan.UserID, plan.ID)

	require.NoError(t, err)
	assert.True(t, result.Logged)
	assert.Empty(t, result.Reason)
	assert.Equal(t, entity.ActivityMeal, result.ActivityType)
	assert.True(t, result.Plan.Completed)
	assert.Equal(t, testNow, *result.Plan.CompletedAt)
}

func TestPlannerService_ExecutePlan_UnresolvableMeal(t *testing.T) {
	fx := createTestPlannerService(t)

	mealID := uuid.New()
	plan := newPlan(entity.ActivityMeal, &mealID)
	m := newExecutionMocks(t, fx, plan)

	m.factory.EXPECT().NewMealRepository().Return(m.mealRepo)
	m.mealRepo.EXPECT().FindVisible(mock.Anything, mealID, plan.UserID).Return(nil, repository.ErrMealNotFound)

	result, err := fx.service.ExecutePlan(context.Background(), plan.UserID, plan.ID)

	require.NoError(t, err)
	assert.False(t, result.Logged)
	assert.Equal(t, entity.ReasonCatalogItemNotFound, result.Reason)
	assert.True(t, result.Plan.Completed)
}

func TestPlannerService_ExecutePlan_ExerciseWithoutReference(t *testing.T) {
	fx := createTestPlannerService(t)

	plan := newPlan(entity.ActivityExercise, nil)
	newExecutionMocks(t, fx, plan)

	result, err := fx.service.ExecutePlan(context.Background(), plan.UserID, plan.ID)

	require.NoError(t, err)
	assert.False(t, result.Logged)
	assert.Equal(t, entity.ReasonCatalogItemNotFound, result.Reason)
}

func TestPlannerService_ExecutePlan_ExerciseLogged(t *testing.T) {
	fx := createTestPlannerService(t)

	exerciseID := uuid.New()
	plan := newPlan(entity.ActivityExercise, &exerciseID)
	m := newExecutionMocks(t, fx, plan)

	m.factory.EXPECT().NewExerciseRepository().Return(m.exerciseRepo)
	m.exerciseRepo.EXPECT().
		FindVisible(mock.Anything, exerciseID, plan.UserID).
		Return(&entity.Exercise{ID: exerciseID, Title: "Swim", DurationMinutes: 45, CaloriesBurned: 400}, nil)
	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.activityRepo.EXPECT().EnsureDailyLog(mock.Anything, plan.UserID, mock.Anything).Return(&entity.DailyLog{ID: uuid.New()}, nil)
	m.activityRepo.EXPECT().
		AddExerciseEntry(mock.Anything, mock.MatchedBy(func(e *entity.ExerciseLogEntry) bool {
			return e.CaloriesBurned == 400 && e.DurationMinutes == 45
		})).
		Return(nil)

	result, err := fx.service.ExecutePlan(context.Background(), plan.UserID, plan.ID)

	require.NoError(t, err)
	assert.True(t, result.Logged)
}

func TestPlannerService_ExecutePlan_WaterLogsOneCup(t *testing.T) {
	fx := createTestPlannerService(t)

	plan := newPlan(entity.ActivityWater, nil)
	m := newExecutionMocks(t, fx, plan)

	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.activityRepo.EXPECT().
		AddWater(mock.Anything, mock.MatchedBy(func(w *entity.WaterLog) bool { return w.AmountMl == 250 })).
		Return(nil)

	result, err := fx.service.ExecutePlan(context.Background(), plan.UserID, plan.ID)

	require.NoError(t, err)
	assert.True(t, result.Logged)
}

func TestPlannerService_ExecutePlan_SleepNotApplicable(t *testing.T) {
	fx := createTestPlannerService(t)

	plan := newPlan(entity.ActivitySleep, nil)
	newExecutionMocks(t, fx, plan)

	result, err := fx.service.ExecutePlan(context.Background(), plan.UserID, plan.ID)

	require.NoError(t, err)
	assert.False(t, result.Logged)
	assert.Equal(t, entity.ReasonNotApplicable, result.Reason)
	assert.True(t, result.Plan.Completed)
}

func TestPlannerService_ExecutePlan_LogFailureFailsWholeUnit(t *testing.T) {
	fx := createTestPlannerService(t)

	plan := newPlan(entity.ActivityWater, nil)
	m := newExecutionMocks(t, fx, plan)

	m.factory.EXPECT().NewActivityRepository().Return(m.activityRepo)
	m.activityRepo.EXPECT().AddWater(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	result, err := fx.service.ExecutePlan(context.Background(), plan.UserID, plan.ID)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestPlannerService_ExecutePlan_NotFound(t *testing.T) {
	fx := createTestPlannerService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	planRepo := mockRepo.NewMockPlanRepository(t)
	userID, planID := uuid.New(), uuid.New()

	factory.EXPECT().NewPlanRepository().Return(planRepo)
	planRepo.EXPECT().FindByID(mock.Anything, planID, userID).Return(nil, repository.ErrPlanNotFound)
	expectTransaction(t, fx.txManager, factory)

	_, err := fx.service.ExecutePlan(context.Background(), userID, planID)

	assert.True(t, errors.Is(err, domainerrors.ErrPlanNotFound))
}

func TestPlannerService_CreatePlan(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   usecase.CreatePlanInput
		wantErr bool
	}{
		{
			name:  "valid",
			input: usecase.CreatePlanInput{Date: date, Time: "7:30", ActivityType: entity.ActivityWater, Title: "Drink"},
		},
		{
			name:    "missing date",
			input:   usecase.CreatePlanInput{Time: "07:30", ActivityType: entity.ActivityWater, Title: "Drink"},
			wantErr: true,
		},
		{
			name:    "bad activity",
			input:   usecase.CreatePlanInput{Date: date, Time: "07:30", ActivityType: "nap", Title: "Drink"},
			wantErr: true,
		},
		{
			name:    "bad time",
			input:   usecase.CreatePlanInput{Date: date, Time: "25:00", ActivityType: entity.ActivityWater, Title: "Drink"},
			wantErr: true,
		},
		{
			name:    "blank title",
			input:   usecase.CreatePlanInput{Date: date, Time: "07:30", ActivityType: entity.ActivityWater, Title: "  "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlannerService(t)

			if !tt.wantErr {
				fx.planRepo.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(p *entity.Plan) bool {
						return p.PlanTime == "07:30:00" && !p.Completed && p.PlanDate.Equal(date)
					})).
					Return(nil)
			}

			plan, err := fx.service.CreatePlan(context.Background(), userID, &tt.input)

			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Title, plan.Title)
		})
	}
}

func TestPlannerService_UpdatePlan_KeepsCompletion(t *testing.T) {
	fx := createTestPlannerService(t)

	plan := newPlan(entity.ActivityMeal, nil)
	completedAt := testNow.Add(-time.Hour)
	plan.Completed = true
	plan.CompletedAt = &completedAt
	plan.Notes = "old"

	fx.planRepo.EXPECT().FindByID(mock.Anything, plan.ID, plan.UserID).Return(plan, nil)
	fx.planRepo.EXPECT().Save(mock.Anything, plan).Return(nil)

	got, err := fx.service.UpdatePlan(context.Background(), plan.UserID, plan.ID, entity.PlanUpdate{
		PlanTime: "13:15",
		Title:    "Late lunch",
	})

	require.NoError(t, err)
	assert.Equal(t, "13:15:00", got.PlanTime)
	assert.Equal(t, "Late lunch", got.Title)
	assert.Empty(t, got.Notes)
	assert.True(t, got.Completed)
	assert.Equal(t, completedAt, *got.CompletedAt)
	assert.Equal(t, entity.ActivityMeal, got.ActivityType)
}

func TestPlannerService_SetStatus_Toggle(t *testing.T) {
	fx := createTestPlannerService(t)

	plan := newPlan(entity.ActivityExercise, nil)
	fx.planRepo.EXPECT().FindByID(mock.Anything, plan.ID, plan.UserID).Return(plan, nil)
	fx.planRepo.EXPECT().Save(mock.Anything, plan).Return(nil)

	got, err := fx.service.SetStatus(context.Background(), plan.UserID, plan.ID, true)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, "Lunch", got.Title)

	got, err = fx.service.SetStatus(context.Background(), plan.UserID, plan.ID, false)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)
}

func TestPlannerService_WeeklySummary_Range(t *testing.T) {
	fx := createTestPlannerService(t)

	userID := uuid.New()
	today := entity.DateOf(testNow)
	fx.planRepo.EXPECT().Summary(mock.Anything, userID, today.AddDate(0, 0, -6), today).Return([]entity.PlanSummary{}, nil)

	_, err := fx.service.WeeklySummary(context.Background(), userID)

	require.NoError(t, err)
}
