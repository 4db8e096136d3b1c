package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/moodtrack/internal/common"
	"github.com/dmitrijs2005/moodtrack/internal/dbx"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

// Integration tests run against a real database when MOODTRACK_TEST_DSN is
// set. Each test body executes inside dbx.WithRollback, so nothing it writes
// survives the test.

func testDB(t *testing.T) *dbTestEnv {
	t.Helper()

	dsn := os.Getenv("MOODTRACK_TEST_DSN")
	if dsn == "" {
		t.Skip("MOODTRACK_TEST_DSN not set; skipping integration test")
	}

	db, err := OpenDB(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := NewPostgresRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background(), db))

	return &dbTestEnv{db: db, m: m}
}

type dbTestEnv struct {
	db *sql.DB
	m  *PostgresRepositoryManager
}

func (e *dbTestEnv) run(t *testing.T, fn func(ctx context.Context, tx dbx.DBTX)) {
	t.Helper()
	err := dbx.WithRollback(context.Background(), e.db, func(ctx context.Context, tx dbx.DBTX) error {
		fn(ctx, tx)
		return nil
	})
	require.NoError(t, err)
}

func TestIntegration_MoodPerDayUniqueness(t *testing.T) {
	env := testDB(t)

	env.run(t, func(ctx context.Context, tx dbx.DBTX) {
		user, err := env.m.Users(tx).Create(ctx, &models.User{
			Email: "it-moods@example.com", Username: "it", PasswordHash: "x",
		})
		require.NoError(t, err)

		mood := &models.Mood{UserID: user.ID, Date: "2024-08-01", MoodScore: 8, Emotions: []string{"happy"}}
		created, err := env.m.Moods(tx).Create(ctx, mood)
		require.NoError(t, err)

		fetched, err := env.m.Moods(tx).GetByID(ctx, created.ID, user.ID)
		require.NoError(t, err)
		require.Equal(t, 8, fetched.MoodScore)
		require.Equal(t, []string{"happy"}, fetched.Emotions)
		require.Equal(t, "2024-08-01", fetched.Date)

		// last statement in the tx: the failed insert aborts the
		// transaction on the server side
		_, err = env.m.Moods(tx).Create(ctx, &models.Mood{
			UserID: user.ID, Date: "2024-08-01", MoodScore: 3, Emotions: []string{"sad"},
		})
		require.True(t, errors.Is(err, common.ErrorAlreadyExists), "second mood same day must conflict, got %v", err)
	})
}

func TestIntegration_DateRangeBoundsInclusive(t *testing.T) {
	env := testDB(t)

	env.run(t, func(ctx context.Context, tx dbx.DBTX) {
		user, err := env.m.Users(tx).Create(ctx, &models.User{
			Email: "it-range@example.com", Username: "it", PasswordHash: "x",
		})
		require.NoError(t, err)

		repo := env.m.Activities(tx)
		for _, date := range []string{"2024-07-31", "2024-08-01", "2024-08-15", "2024-08-31", "2024-09-01"} {
			_, err := repo.Create(ctx, &models.Activity{UserID: user.ID, Date: date, Activity: "walk"})
			require.NoError(t, err)
		}

		got, err := repo.GetByDateRange(ctx, user.ID, "2024-08-01", "2024-08-31")
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, "2024-08-01", got[0].Date)
		require.Equal(t, "2024-08-31", got[2].Date)
	})
}

func TestIntegration_DuplicateEmailConflict(t *testing.T) {
	env := testDB(t)

	env.run(t, func(ctx context.Context, tx dbx.DBTX) {
		repo := env.m.Users(tx)
		_, err := repo.Create(ctx, &models.User{Email: "dup@example.com", Username: "a", PasswordHash: "x"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &models.User{Email: "dup@example.com", Username: "b", PasswordHash: "y"})
		require.True(t, errors.Is(err, common.ErrorAlreadyExists), "got %v", err)
	})
}
