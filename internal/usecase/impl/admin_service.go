package impl

import (
	"context"
	"log/slog"
	"strings"

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

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	statsRepo repository.StatisticsRepository
	hasher    service.PasswordHasher
	clock     service.Clock
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	StatsRepo repository.StatisticsRepository
	Hasher    service.PasswordHasher
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		statsRepo: params.StatsRepo,
		hasher:    params.Hasher,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) ListUsers(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	if filter.Role != "" && !filter.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be user or admin")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be active or inactive")
	}

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *adminService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, userError(err, "failed to get user")
	}

	return user, nil
}

// UpdateUser applies a partial update to any account.
func (srv *adminService) UpdateUser(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error) {
	patch.Name = trimmed(patch.Name)
	patch.Email = trimmed(patch.Email)

	switch {
	case patch.Name != nil && *patch.Name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
	case patch.Email != nil && *patch.Email == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("email cannot be empty")
	case patch.Role != nil && !patch.Role.IsValid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be user or admin")
	case patch.Status != nil && !patch.Status.IsValid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be active or inactive")
	}

	if patch.IsEmpty() {
		return srv.GetUser(ctx, id)
	}

	user, err := srv.userRepo.Patch(ctx, id, patch)
	if err != nil {
		return nil, userError(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated by admin", slog.Any("userID", id))

	return user, nil
}

// DeleteUser removes an account and everything it owns. Admins cannot delete themselves.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return domainerrors.ErrCannotDeleteSelf
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return userError(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted by admin", slog.Any("userID", id), slog.Any("actorID", actorID))

	return nil
}

func (srv *adminService) Statistics(ctx context.Context) (*entity.Statistics, error) {
	stats, err := srv.statsRepo.Collect(ctx, srv.clock.Today())
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect statistics")
	}

	return stats, nil
}

// EnsureAdmin creates an admin account, or promotes and reactivates the account owning the email.
// The password of an existing account is left unchanged.
func (srv *adminService) EnsureAdmin(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	var admin *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			role, status := entity.RoleAdmin, entity.UserStatusActive
			admin, err = userRepo.Patch(ctx, existing.ID, entity.UserPatch{Role: &role, Status: &status})

			return userError(err, "failed to promote user")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up admin email")
		}

		if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
			return err
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		admin = &entity.User{
			Name:         strings.TrimSpace(input.Name),
			Email:        email,
			PasswordHash: hashedPassword,
			Role:         entity.RoleAdmin,
			Status:       entity.UserStatusActive,
		}

		return userError(userRepo.Create(ctx, admin), "failed to create admin")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure admin account")
	}

	srv.log(ctx).Info("Admin account ready", slog.Any("userID", admin.ID), slog.String("email", admin.Email))

	return admin, nil
}
