package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countTours(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tours`).Scan(&n))
	return n
}

func TestWithTxCommitsAndRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	boom := errors.New("boom")
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO tours(id, name, title) VALUES ('x', 'x', 'X')`)
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countTours(t, db))

	require.NoError(t, WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO tours(id, name, title) VALUES ('x', 'x', 'X')`)
		return err
	}))
	require.Equal(t, 1, countTours(t, db))
}

func TestWithTxHonoursCancelledContext(t *testing.T) {
	db := openTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, db, func(*sql.Tx) error {
		called = true
		return nil
	})
	require.Error(t, err)
	require.False(t, called)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))
	require.Equal(t, 2, countTours(t, db))

	var id string
	require.NoError(t, db.QueryRow(`SELECT id FROM tours WHERE name = 'replay'`).Scan(&id))
	require.Equal(t, TourID("replay"), id)
	require.Equal(t, TourID("replay"), TourID("replay"))
	require.NotEqual(t, TourID("replay"), TourID("issue-details"))
}

func TestOpenFailsForMissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "test.db"))
	require.Error(t, err)
}
