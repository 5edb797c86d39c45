package postgres

import (
	"context"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	"healthtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID reads from the primary so a profile saved a moment ago is returned.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// Upsert writes the whole profile row, replacing any previous one.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	return nil
}

func toProfileDomain(m *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UserID: m.UserID,
		Biometrics: entity.Biometrics{
			Age:           m.Age,
			WeightKg:      m.WeightKg,
			HeightCm:      m.HeightCm,
			Gender:        entity.Gender(m.Gender),
			ActivityLevel: entity.ActivityLevel(m.ActivityLevel),
			Goal:          entity.Goal(m.Goal),
		},
		CalorieMetrics: entity.CalorieMetrics{
			BMR:         m.BMR,
			TDEE:        m.TDEE,
			CalorieGoal: m.CalorieGoal,
		},
		UpdatedAt: m.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		UserID:        p.UserID,
		Age:           p.Age,
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		Gender:        string(p.Gender),
		ActivityLevel: string(p.ActivityLevel),
		Goal:          string(p.Goal),
		BMR:           p.BMR,
		TDEE:          p.TDEE,
		CalorieGoal:   p.CalorieGoal,
		UpdatedAt:     p.UpdatedAt,
	}
}
