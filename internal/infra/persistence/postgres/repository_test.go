package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"healthtrack/internal/domain/entity"
	"healthtrack/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestPlanRepository_DeleteMissingPlanIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlanRepository(db)

	planID, userID := uuid.New(), uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "plans" WHERE id = $1 AND user_id = $2`)).
		WithArgs(planID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), planID, userID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_SaveReportsMissingPlan(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlanRepository(db)

	mock.ExpectExec(`UPDATE "plans" SET .* WHERE id = \$\d+ AND user_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &entity.Plan{ID: uuid.New(), UserID: uuid.New(), PlanTime: "08:00:00"})
	assert.ErrorIs(t, err, repository.ErrPlanNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_CompleteMatchingReturnsAffectedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlanRepository(db)

	mock.ExpectExec(`UPDATE "plans" SET .*completed.* WHERE user_id = \$\d+ AND plan_date = \$\d+ AND activity_type = \$\d+ AND catalog_item_id = \$\d+ AND completed = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.CompleteMatching(context.Background(), uuid.New(), time.Now(), entity.ActivityMeal, uuid.New(), time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlanRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "plans" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrPlanNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailIsCaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE lower\(email\) = \$1`).
		WithArgs("ada@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "status", "created_at", "updated_at"}).
			AddRow(id, "Ada", "ada@example.com", "hash", "admin", "active", now, now))

	user, err := repo.FindByEmail(context.Background(), "  Ada@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.True(t, user.IsAdmin())
	assert.True(t, user.IsActive())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestMealRepository_DeleteAdminScope(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMealRepository(db)

	mock.ExpectExec(`DELETE FROM "meals" WHERE .*owner_id IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, repository.ErrMealNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciseRepository_DeleteOwnedScope(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExerciseRepository(db)

	owner := uuid.New()
	mock.ExpectExec(`DELETE FROM "exercises" WHERE .*owner_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), uuid.New(), &owner))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_LatestSleepNoneLogged(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sleep_logs" WHERE user_id = \$1 AND sleep_date = \$2 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	sleep, err := repo.LatestSleep(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, sleep)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_EnsureDailyLogUsesOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	userID, logID := uuid.New(), uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "daily_logs" .* ON CONFLICT \("user_id","log_date"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "daily_logs" WHERE user_id = \$1 AND log_date = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "log_date", "created_at", "updated_at"}).
			AddRow(logID, userID, date, date, date))

	log, err := repo.EnsureDailyLog(context.Background(), userID, date.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, logID, log.ID)
	assert.Equal(t, date, log.LogDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db)

	mock.ExpectExec(`DELETE FROM "feedback" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrFeedbackNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "plans"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	sentinel := assert.AnError
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.NewPlanRepository().Delete(context.Background(), uuid.New(), uuid.New()); err != nil {
			return err
		}

		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error { return nil })
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
