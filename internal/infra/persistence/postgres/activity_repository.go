package postgres

import (
	"context"
	"sort"
	"time"

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

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// EnsureDailyLog inserts the (user, date) row if missing and returns it.
func (repo *activityRepository) EnsureDailyLog(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyLog, error) {
	date = entity.DateOf(date)
	now := time.Now()

	insert := &model.DailyLogModel{UserID: userID, LogDate: date, CreatedAt: now, UpdatedAt: now}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "log_date"}},
			DoNothing: true,
		}).
		Create(insert).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure daily log")
	}

	var logM model.DailyLogModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND log_date = ?", userID, date).
		First(&logM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load daily log")
	}

	return &entity.DailyLog{
		ID:        logM.ID,
		UserID:    logM.UserID,
		LogDate:   logM.LogDate,
		CreatedAt: logM.CreatedAt,
		UpdatedAt: logM.UpdatedAt,
	}, nil
}

// AddMealEntry appends one meal to a daily log.
func (repo *activityRepository) AddMealEntry(ctx context.Context, entry *entity.MealLogEntry) error {
	entryM := &model.MealLogEntryModel{
		DailyLogID: entry.DailyLogID,
		UserID:     entry.UserID,
		LogDate:    entity.DateOf(entry.LogDate),
		MealID:     entry.MealID,
		Name:       entry.Name,
		MealType:   string(entry.MealType),
		Calories:   entry.Calories,
		Protein:    entry.Protein,
		Carbs:      entry.Carbs,
		Fat:        entry.Fat,
		LoggedAt:   entry.LoggedAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to log meal")
	}
	entry.ID = entryM.ID

	return nil
}

// AddExerciseEntry appends one workout to a daily log.
func (repo *activityRepository) AddExerciseEntry(ctx context.Context, entry *entity.ExerciseLogEntry) error {
	entryM := &model.ExerciseLogEntryModel{
		DailyLogID:      entry.DailyLogID,
		UserID:          entry.UserID,
		LogDate:         entity.DateOf(entry.LogDate),
		ExerciseID:      entry.ExerciseID,
		Title:           entry.Title,
		DurationMinutes: entry.DurationMinutes,
		CaloriesBurned:  entry.CaloriesBurned,
		LoggedAt:        entry.LoggedAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to log exercise")
	}
	entry.ID = entryM.ID

	return nil
}

// AddWater inserts a water event.
func (repo *activityRepository) AddWater(ctx context.Context, water *entity.WaterLog) error {
	waterM := &model.WaterLogModel{
		UserID:   water.UserID,
		AmountMl: water.AmountMl,
		LoggedAt: water.LoggedAt,
		LogDate:  entity.DateOf(water.LogDate),
	}

	if err := repo.db.WithContext(ctx).Create(waterM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to log water")
	}
	water.ID = waterM.ID

	return nil
}

// AddSleep inserts a sleep entry.
func (repo *activityRepository) AddSleep(ctx context.Context, sleep *entity.SleepLog) error {
	sleepM := &model.SleepLogModel{
		UserID:        sleep.UserID,
		SleepDate:     entity.DateOf(sleep.SleepDate),
		DurationHours: sleep.DurationHours,
		Quality:       string(sleep.Quality),
		Notes:         sleep.Notes,
		CreatedAt:     sleep.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(sleepM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to log sleep")
	}
	sleep.ID = sleepM.ID
	sleep.CreatedAt = sleepM.CreatedAt

	return nil
}

// FindDay reads everything logged on date without creating rows.
func (repo *activityRepository) FindDay(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DayActivity, error) {
	date = entity.DateOf(date)
	db := repo.db.WithContext(ctx)

	var mealModels []*model.MealLogEntryModel
	if err := db.Where("user_id = ? AND log_date = ?", userID, date).
		Order("logged_at ASC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read meal log")
	}

	var exerciseModels []*model.ExerciseLogEntryModel
	if err := db.Where("user_id = ? AND log_date = ?", userID, date).
		Order("logged_at ASC").
		Find(&exerciseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read exercise log")
	}

	var waterModels []*model.WaterLogModel
	if err := db.Where("user_id = ? AND log_date = ?", userID, date).
		Order("logged_at ASC").
		Find(&waterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read water log")
	}

	sleep, err := repo.LatestSleep(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	day := &entity.DayActivity{
		Date:      date,
		Meals:     make([]*entity.MealLogEntry, 0, len(mealModels)),
		Exercises: make([]*entity.ExerciseLogEntry, 0, len(exerciseModels)),
		Water:     make([]*entity.WaterLog, 0, len(waterModels)),
		Sleep:     sleep,
	}
	for _, m := range mealModels {
		day.Meals = append(day.Meals, toMealEntryDomain(m))
	}
	for _, e := range exerciseModels {
		day.Exercises = append(day.Exercises, toExerciseEntryDomain(e))
	}
	for _, w := range waterModels {
		day.Water = append(day.Water, &entity.WaterLog{
			ID:       w.ID,
			UserID:   w.UserID,
			AmountMl: w.AmountMl,
			LoggedAt: w.LoggedAt,
			LogDate:  w.LogDate,
		})
	}

	return day, nil
}

// LatestSleep returns the newest sleep entry for date, or nil.
func (repo *activityRepository) LatestSleep(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.SleepLog, error) {
	var sleepM model.SleepLogModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND sleep_date = ?", userID, entity.DateOf(date)).
		Order("created_at DESC").
		First(&sleepM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sleep log")
	}

	return &entity.SleepLog{
		ID:            sleepM.ID,
		UserID:        sleepM.UserID,
		SleepDate:     sleepM.SleepDate,
		DurationHours: sleepM.DurationHours,
		Quality:       entity.SleepQuality(sleepM.Quality),
		Notes:         sleepM.Notes,
		CreatedAt:     sleepM.CreatedAt,
	}, nil
}

type dateSum struct {
	LogDate time.Time
	Total   int
}

// DailyTotals sums meal calories, burned calories and water per date in [from, to].
func (repo *activityRepository) DailyTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.DayTotals, error) {
	from, to = entity.DateOf(from), entity.DateOf(to)
	byDate := map[string]*entity.DayTotals{}

	sums := []struct {
		table  string
		column string
		apply  func(*entity.DayTotals, int)
	}{
		{"meal_log_entries", "calories", func(t *entity.DayTotals, v int) { t.TotalCalories = v }},
		{"exercise_log_entries", "calories_burned", func(t *entity.DayTotals, v int) { t.CaloriesBurned = v }},
		{"water_logs", "amount_ml", func(t *entity.DayTotals, v int) { t.WaterMl = v }},
	}

	for _, s := range sums {
		var rows []dateSum
		if err := repo.db.WithContext(ctx).
			Table(s.table).
			Select("log_date, COALESCE(SUM("+s.column+"), 0) AS total").
			Where("user_id = ? AND log_date BETWEEN ? AND ?", userID, from, to).
			Group("log_date").
			Scan(&rows).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to aggregate %s", s.table)
		}

		for _, r := range rows {
			key := r.LogDate.Format(entity.DateLayout)
			t, ok := byDate[key]
			if !ok {
				t = &entity.DayTotals{Date: entity.DateOf(r.LogDate)}
				byDate[key] = t
			}
			s.apply(t, r.Total)
		}
	}

	totals := make([]entity.DayTotals, 0, len(byDate))
	for _, t := range byDate {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date.Before(totals[j].Date) })

	return totals, nil
}

func toMealEntryDomain(m *model.MealLogEntryModel) *entity.MealLogEntry {
	return &entity.MealLogEntry{
		ID:         m.ID,
		DailyLogID: m.DailyLogID,
		UserID:     m.UserID,
		LogDate:    m.LogDate,
		MealID:     m.MealID,
		Name:       m.Name,
		MealType:   entity.MealType(m.MealType),
		Calories:   m.Calories,
		Protein:    m.Protein,
		Carbs:      m.Carbs,
		Fat:        m.Fat,
		LoggedAt:   m.LoggedAt,
	}
}

func toExerciseEntryDomain(e *model.ExerciseLogEntryModel) *entity.ExerciseLogEntry {
	return &entity.ExerciseLogEntry{
		ID:              e.ID,
		DailyLogID:      e.DailyLogID,
		UserID:          e.UserID,
		LogDate:         e.LogDate,
		ExerciseID:      e.ExerciseID,
		Title:           e.Title,
		DurationMinutes: e.DurationMinutes,
		CaloriesBurned:  e.CaloriesBurned,
		LoggedAt:        e.LoggedAt,
	}
}
