package impl

import (
	"context"
	"testing"
	"time"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	"healthtrack/internal/domain/service"
	mockRepo "healthtrack/internal/mocks/repository"
	mockSvc "healthtrack/internal/mocks/service"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: " Ada ", Email: "ada@example.com", Password: "Password123!"}
	expiresAt := testNow.Add(24 * time.Hour)

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		Generate(mock.MatchedBy(func(identity service.TokenIdentity) bool {
			return identity.Email == input.Email && identity.Role == "user" && identity.Name == "Ada"
		})).
		Return("signed-token", expiresAt, nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, entity.UserStatusActive, output.User.Status)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "abc"}
	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength.WithDetails("must be at least 6 characters long"))

	output, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Login(t *testing.T) {
	activeUser := &entity.User{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
	}
	inactiveUser := *activeUser
	inactiveUser.Status = entity.UserStatusInactive

	tests := []struct {
		name      string
		setup     func(fx authServiceFixtures)
		wantErr   error
		wantToken string
	}{
		{
			name: "valid credentials",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(activeUser, nil)
				fx.hasher.EXPECT().Check("secret", "hash").Return(true)
				fx.tokenService.EXPECT().
					Generate(service.TokenIdentity{UserID: activeUser.ID, Name: "Ada", Email: "ada@example.com", Role: "admin"}).
					Return("token", testNow, nil)
			},
			wantToken: "token",
		},
		{
			name: "unknown email",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(activeUser, nil)
				fx.hasher.EXPECT().Check("secret", "hash").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "inactive account",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(&inactiveUser, nil)
				fx.hasher.EXPECT().Check("secret", "hash").Return(true)
			},
			wantErr: domainerrors.ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com", Password: "secret"})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, output)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, output.Token)
		})
	}
}

func TestAuthService_Me_UserGone(t *testing.T) {
	fx := createTestAuthService(t)

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Me(context.Background(), userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
