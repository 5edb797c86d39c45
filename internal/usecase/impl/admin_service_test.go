package impl

import (
	"context"
	"testing"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	mockRepo "healthtrack/internal/mocks/repository"
	mockSvc "healthtrack/internal/mocks/service"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	statsRepo *mockRepo.MockStatisticsRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	fx := adminServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		statsRepo: mockRepo.NewMockStatisticsRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
	}

	fx.service = NewAdminService(AdminServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		StatsRepo: fx.statsRepo,
		Hasher:    fx.hasher,
		Clock:     fixedClock{now: testNow},
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestAdminService_DeleteUser_Self(t *testing.T) {
	fx := createTestAdminService(t)

	adminID := uuid.New()

	err := fx.service.DeleteUser(context.Background(), adminID, adminID)

	assert.True(t, errors.Is(err, domainerrors.ErrCannotDeleteSelf))
}

func TestAdminService_DeleteUser_Missing(t *testing.T) {
	fx := createTestAdminService(t)

	target := uuid.New()
	fx.userRepo.EXPECT().Delete(mock.Anything, target).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(context.Background(), uuid.New(), target)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAdminService_UpdateUser(t *testing.T) {
	id := uuid.New()

	t.Run("rejects unknown role", func(t *testing.T) {
		fx := createTestAdminService(t)

		role := entity.Role("root")
		_, err := fx.service.UpdateUser(context.Background(), id, entity.UserPatch{Role: &role})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("deactivates", func(t *testing.T) {
		fx := createTestAdminService(t)

		status := entity.UserStatusInactive
		fx.userRepo.EXPECT().
			Patch(mock.Anything, id, entity.UserPatch{Status: &status}).
			Return(&entity.User{ID: id, Status: status}, nil)

		user, err := fx.service.UpdateUser(context.Background(), id, entity.UserPatch{Status: &status})

		require.NoError(t, err)
		assert.False(t, user.IsActive())
	})
}

func TestAdminService_ListUsers_InvalidFilter(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.ListUsers(context.Background(), entity.UserFilter{Status: "banned"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_Statistics_UsesToday(t *testing.T) {
	fx := createTestAdminService(t)

	stats := &entity.Statistics{}
	stats.Users.Total = 3
	fx.statsRepo.EXPECT().Collect(mock.Anything, entity.DateOf(testNow)).Return(stats, nil)

	got, err := fx.service.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Users.Total)
}

func TestAdminService_EnsureAdmin(t *testing.T) {
	input := &usecase.RegisterInput{Name: "Root", Email: "root@example.com", Password: "Sup3r$ecret"}

	t.Run("promotes existing account", func(t *testing.T) {
		fx := createTestAdminService(t)

		factory := mockRepo.NewMockRepositoryFactory(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		existing := &entity.User{ID: uuid.New(), Email: input.Email, Role: entity.RoleUser}

		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		txUserRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(existing, nil)
		txUserRepo.EXPECT().
			Patch(mock.Anything, existing.ID, mock.MatchedBy(func(p entity.UserPatch) bool {
				return *p.Role == entity.RoleAdmin && *p.Status == entity.UserStatusActive && p.Email == nil
			})).
			Return(&entity.User{ID: existing.ID, Email: input.Email, Role: entity.RoleAdmin}, nil)
		expectTransaction(t, fx.txManager, factory)

		admin, err := fx.service.EnsureAdmin(context.Background(), input)

		require.NoError(t, err)
		assert.True(t, admin.IsAdmin())
	})

	t.Run("creates new account", func(t *testing.T) {
		fx := createTestAdminService(t)

		factory := mockRepo.NewMockRepositoryFactory(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		txUserRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
		fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
		txUserRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
				return u.Role == entity.RoleAdmin && u.PasswordHash == "hashed"
			})).
			Return(nil)
		expectTransaction(t, fx.txManager, factory)

		admin, err := fx.service.EnsureAdmin(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "Root", admin.Name)
	})
}
