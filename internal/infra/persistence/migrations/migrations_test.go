package migrations

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/errors"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestSource_ListsOrderedMigrations(t *testing.T) {
	names, err := Source()
	require.NoError(t, err)

	require.NotEmpty(t, names)
	assert.True(t, strings.HasPrefix(names[0], "00001_"))
	for _, n := range names {
		assert.True(t, strings.HasSuffix(n, ".sql"), n)
	}
}

func TestUp_RunsGooseAgainstEmbeddedDir(t *testing.T) {
	db := newDB(t)

	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var gotDir string
	gooseUp = func(_ context.Context, _ *sql.DB, d string, _ ...goose.OptionsFunc) error {
		gotDir = d
		return nil
	}

	require.NoError(t, Up(context.Background(), db, nil))
	assert.Equal(t, "sql", gotDir)
}

func TestUp_WrapsFailure(t *testing.T) {
	db := newDB(t)

	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	boom := errors.New("boom")
	gooseUp = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return boom
	}

	err := Up(context.Background(), db, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "apply migrations")
}

func TestStatus_ReturnsVersion(t *testing.T) {
	db := newDB(t)

	origStatus, origVer := gooseStatus, gooseVer
	t.Cleanup(func() { gooseStatus, gooseVer = origStatus, origVer })

	gooseStatus = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return nil }
	gooseVer = func(context.Context, *sql.DB) (int64, error) { return 5, nil }

	version, err := Status(context.Background(), db, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 5, version)
}

func TestDown_RunsGoose(t *testing.T) {
	db := newDB(t)

	orig := gooseDown
	t.Cleanup(func() { gooseDown = orig })

	called := false
	gooseDown = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		called = true
		return nil
	}

	require.NoError(t, Down(context.Background(), db, nil))
	assert.True(t, called)
}
