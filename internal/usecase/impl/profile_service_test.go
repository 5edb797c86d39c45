package impl

import (
	"context"
	"testing"

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

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	userRepo    *mockRepo.MockUserRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	service := NewProfileService(ProfileServiceParams{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Clock:       fixedClock{now: testNow},
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{service: service, userRepo: userRepo, profileRepo: profileRepo}
}

func sampleBiometrics() entity.Biometrics {
	return entity.Biometrics{
		Age:           25,
		WeightKg:      70,
		HeightCm:      170,
		Gender:        entity.GenderMale,
		ActivityLevel: entity.ActivityModerate,
		Goal:          entity.GoalMaintain,
	}
}

func TestProfileService_GetProfile_NeverSaved(t *testing.T) {
	fx := createTestProfileService(t)

	user := &entity.User{ID: uuid.New(), Name: "Ada"}
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.profileRepo.EXPECT().FindByUserID(mock.Anything, user.ID).Return(nil, repository.ErrProfileNotFound)

	output, err := fx.service.GetProfile(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Nil(t, output.Profile)
}

func TestProfileService_SaveProfile_ComputesMetrics(t *testing.T) {
	fx := createTestProfileService(t)

	userID := uuid.New()
	fx.profileRepo.EXPECT().
		Upsert(mock.Anything, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.UserID == userID && p.BMR == 1700 && p.TDEE == 2635 && p.CalorieGoal == 2635
		})).
		Return(nil)

	profile, err := fx.service.SaveProfile(context.Background(), userID, sampleBiometrics())

	require.NoError(t, err)
	assert.Equal(t, testNow, profile.UpdatedAt)
}

func TestProfileService_SaveProfile_RejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *entity.Biometrics)
	}{
		{name: "age", mutate: func(b *entity.Biometrics) { b.Age = 0 }},
		{name: "weight", mutate: func(b *entity.Biometrics) { b.WeightKg = 0 }},
		{name: "height", mutate: func(b *entity.Biometrics) { b.HeightCm = -1 }},
		{name: "gender", mutate: func(b *entity.Biometrics) { b.Gender = "" }},
		{name: "activity level", mutate: func(b *entity.Biometrics) { b.ActivityLevel = "" }},
		{name: "goal", mutate: func(b *entity.Biometrics) { b.Goal = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			b := sampleBiometrics()
			tt.mutate(&b)

			_, err := fx.service.SaveProfile(context.Background(), uuid.New(), b)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestProfileService_Calculate_GainGoal(t *testing.T) {
	fx := createTestProfileService(t)

	b := sampleBiometrics()
	b.Goal = entity.GoalGain

	metrics, err := fx.service.Calculate(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, entity.CalorieMetrics{BMR: 1700, TDEE: 2635, CalorieGoal: 3135}, metrics)
}

func TestProfileService_UpdateAccount(t *testing.T) {
	userID := uuid.New()
	email := " new@example.com "

	t.Run("patches trimmed email", func(t *testing.T) {
		fx := createTestProfileService(t)

		updated := &entity.User{ID: userID, Email: "new@example.com"}
		fx.userRepo.EXPECT().
			Patch(mock.Anything, userID, mock.MatchedBy(func(p entity.UserPatch) bool {
				return p.Name == nil && p.Email != nil && *p.Email == "new@example.com" && p.Role == nil
			})).
			Return(updated, nil)

		user, err := fx.service.UpdateAccount(context.Background(), userID, &usecase.UpdateAccountInput{Email: &email})

		require.NoError(t, err)
		assert.Equal(t, updated, user)
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.userRepo.EXPECT().Patch(mock.Anything, userID, mock.Anything).Return(nil, repository.ErrDuplicateEmail)

		_, err := fx.service.UpdateAccount(context.Background(), userID, &usecase.UpdateAccountInput{Email: &email})

		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})

	t.Run("nothing to change", func(t *testing.T) {
		fx := createTestProfileService(t)

		current := &entity.User{ID: userID}
		fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(current, nil)

		user, err := fx.service.UpdateAccount(context.Background(), userID, &usecase.UpdateAccountInput{})

		require.NoError(t, err)
		assert.Equal(t, current, user)
	})
}
