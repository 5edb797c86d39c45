package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"healthtrack/config"
	"healthtrack/internal/domain/entity"
	"healthtrack/internal/domain/repository"
	mockRepo "healthtrack/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, time.March, 10, 8, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{
			PublicBaseURL: "/media",
			MaxImageBytes: 1024,
		},
	}
}

// fixedClock pins both Now and Today.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time   { return c.now }
func (c fixedClock) Today() time.Time { return entity.DateOf(c.now) }

// expectTransaction makes txManager run the callback against factory and return its error.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
