package postgres

import (
	"context"
	"time"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/repository"
	"healthtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

// Create persists a new plan.
func (repo *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	planM := fromPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

// FindByID reads a plan from the primary so a just-written plan is always visible.
func (repo *planRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Plan, error) {
	var planM model.PlanModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ? AND user_id = ?", id, userID).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	return toPlanDomain(&planM), nil
}

// ListByDate returns the user's plans for one date ordered by time of day.
func (repo *planRepository) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.Plan, error) {
	var planModels []*model.PlanModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND plan_date = ?", userID, entity.DateOf(date)).
		Order("plan_time ASC").
		Order("created_at ASC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, nil
}

// Save writes the mutable columns of a plan, completion state included.
func (repo *planRepository) Save(ctx context.Context, plan *entity.Plan) error {
	plan.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("id = ? AND user_id = ?", plan.ID, plan.UserID).
		Updates(map[string]any{
			"plan_time":    plan.PlanTime,
			"title":        plan.Title,
			"description":  plan.Description,
			"notes":        plan.Notes,
			"completed":    plan.Completed,
			"completed_at": plan.CompletedAt,
			"updated_at":   plan.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// Delete removes the plan scoped to its owner. Deleting a missing plan is a no-op.
func (repo *planRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PlanModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete plan")
	}

	return nil
}

// CompleteMatching marks pending plans of the date that point at catalogItemID as completed.
func (repo *planRepository) CompleteMatching(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
	activity entity.ActivityType,
	catalogItemID uuid.UUID,
	at time.Time,
) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("user_id = ? AND plan_date = ? AND activity_type = ? AND catalog_item_id = ? AND completed = ?",
			userID, entity.DateOf(date), string(activity), catalogItemID, false).
		Updates(map[string]any{"completed": true, "completed_at": at, "updated_at": at})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete matching plans")
	}

	return result.RowsAffected, nil
}

type planSummaryRow struct {
	PlanDate     time.Time
	ActivityType string
	Total        int
	Completed    int
}

// Summary counts total and completed plans per (date, activity type).
func (repo *planRepository) Summary(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.PlanSummary, error) {
	var rows []planSummaryRow

	if err := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Select("plan_date, activity_type, COUNT(*) AS total, COUNT(*) FILTER (WHERE completed) AS completed").
		Where("user_id = ? AND plan_date BETWEEN ? AND ?", userID, entity.DateOf(from), entity.DateOf(to)).
		Group("plan_date, activity_type").
		Order("plan_date ASC, activity_type ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize plans")
	}

	summary := make([]entity.PlanSummary, 0, len(rows))
	for _, r := range rows {
		summary = append(summary, entity.PlanSummary{
			PlanDate:     entity.DateOf(r.PlanDate),
			ActivityType: entity.ActivityType(r.ActivityType),
			Total:        r.Total,
			Completed:    r.Completed,
		})
	}

	return summary, nil
}

// --- Mapper Functions ---

func toPlanDomain(data *model.PlanModel) *entity.Plan {
	if data == nil {
		return nil
	}

	return &entity.Plan{
		ID:            data.ID,
		UserID:        data.UserID,
		PlanDate:      data.PlanDate,
		PlanTime:      data.PlanTime,
		ActivityType:  entity.ActivityType(data.ActivityType),
		Title:         data.Title,
		Description:   data.Description,
		Notes:         data.Notes,
		Completed:     data.Completed,
		CatalogItemID: data.CatalogItemID,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPlanDomain(data *entity.Plan) *model.PlanModel {
	if data == nil {
		return nil
	}

	return &model.PlanModel{
		ID:            data.ID,
		UserID:        data.UserID,
		PlanDate:      entity.DateOf(data.PlanDate),
		PlanTime:      data.PlanTime,
		ActivityType:  string(data.ActivityType),
		Title:         data.Title,
		Description:   data.Description,
		Notes:         data.Notes,
		Completed:     data.Completed,
		CatalogItemID: data.CatalogItemID,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
