package postgres

import (
	"context"
	"time"

	"healthtrack/internal/domain/entity"
	"healthtrack/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statisticsRepository implements the repository.StatisticsRepository interface.
type statisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository is the constructor for statisticsRepository.
func NewStatisticsRepository(db *gorm.DB) repository.StatisticsRepository {
	return &statisticsRepository{db: db}
}

type countQuery struct {
	table string
	where string
	args  []any
	dest  *int64
}

// Collect runs one COUNT per dashboard figure.
func (repo *statisticsRepository) Collect(ctx context.Context, today time.Time) (*entity.Statistics, error) {
	stats := &entity.Statistics{Feedback: map[entity.FeedbackStatus]int64{}}
	day := entity.DateOf(today)

	queries := []countQuery{
		{table: "users", dest: &stats.Users.Total},
		{table: "users", where: "status = ?", args: []any{string(entity.UserStatusActive)}, dest: &stats.Users.Active},
		{table: "users", where: "role = ?", args: []any{string(entity.RoleAdmin)}, dest: &stats.Users.Admins},
		{table: "meals", where: "owner_id IS NULL", dest: &stats.Catalog.AdminMeals},
		{table: "meals", where: "owner_id IS NOT NULL", dest: &stats.Catalog.PersonalMeals},
		{table: "exercises", where: "owner_id IS NULL", dest: &stats.Catalog.AdminExercises},
		{table: "exercises", where: "owner_id IS NOT NULL", dest: &stats.Catalog.PersonalExercises},
		{table: "plans", dest: &stats.Plans.Total},
		{table: "plans", where: "completed = ?", args: []any{true}, dest: &stats.Plans.Completed},
		{table: "meal_log_entries", where: "log_date = ?", args: []any{day}, dest: &stats.Today.MealLogs},
		{table: "exercise_log_entries", where: "log_date = ?", args: []any{day}, dest: &stats.Today.ExerciseLogs},
		{table: "water_logs", where: "log_date = ?", args: []any{day}, dest: &stats.Today.WaterLogs},
	}

	for _, q := range queries {
		if err := repo.count(ctx, q); err != nil {
			return nil, err
		}
	}

	var byStatus []struct {
		Status string
		Count  int64
	}
	if err := repo.db.WithContext(ctx).
		Table("feedback").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count feedback")
	}
	for _, s := range []entity.FeedbackStatus{entity.FeedbackNew, entity.FeedbackInProgress, entity.FeedbackDone} {
		stats.Feedback[s] = 0
	}
	for _, row := range byStatus {
		stats.Feedback[entity.FeedbackStatus(row.Status)] = row.Count
	}

	return stats, nil
}

func (repo *statisticsRepository) count(ctx context.Context, q countQuery) error {
	query := repo.db.WithContext(ctx).Table(q.table)
	if q.where != "" {
		query = query.Where(q.where, q.args...)
	}

	return errors.Wrapf(query.Count(q.dest).Error, "failed to count %s", q.table)
}
