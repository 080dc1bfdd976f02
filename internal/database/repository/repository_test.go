package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/waypoint/internal/database"
	"github.com/jask/waypoint/internal/database/repository"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(context.Background(), db))
	return db
}

func TestTourRepoSeeded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewTourRepo(db)

	tours, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 2)
	require.Equal(t, "issue-details", tours[0].Name)
	require.Equal(t, 5, tours[0].StepCount)
	require.Equal(t, "replay", tours[1].Name)

	require.Equal(t, database.TourID("issue-details"), tours[0].ID)

	// seeding twice keeps ids stable
	require.NoError(t, database.SeedDefaults(ctx, db))
	again, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, again, 2)
	require.Equal(t, tours[0].ID, again[0].ID)
}

func TestProgressRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewProgressRepo(openDB(t))

	got, err := repo.Get(ctx, "replay")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Upsert(ctx, repository.Progress{TourName: "replay", Status: repository.StatusDismissed, LastStep: "timeline"}))
	require.NoError(t, repo.Upsert(ctx, repository.Progress{TourName: "replay", Status: repository.StatusCompleted, LastStep: "console"}))

	got, err = repo.Get(ctx, "replay")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, repository.StatusCompleted, got.Status)
	require.Equal(t, "console", got.LastStep)
	require.Equal(t, 2, got.Runs)

	require.NoError(t, repo.Upsert(ctx, repository.Progress{TourName: "issue-details", Status: repository.StatusCompleted}))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	existed, err := repo.Delete(ctx, "replay")
	require.NoError(t, err)
	require.True(t, existed)
	existed, err = repo.Delete(ctx, "replay")
	require.NoError(t, err)
	require.False(t, existed)
}

func TestProgressRejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	repo := repository.NewProgressRepo(openDB(t))
	err := repo.Upsert(context.Background(), repository.Progress{TourName: "replay", Status: "paused"})
	require.Error(t, err)
}

func TestRunRepoLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewRunRepo(openDB(t))
	start := database.Now()

	require.NoError(t, repo.Start(ctx, repository.Run{ID: "run-1", TourName: "issue-details", FirstStep: "aggregates", StartedAt: start}))
	require.NoError(t, repo.AddEvent(ctx, repository.Event{RunID: "run-1", Kind: repository.EventViewed, Step: "filters", CreatedAt: start.Add(time.Second)}))

	run, err := repo.Get(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, "filters", run.LastStep)
	require.Nil(t, run.Outcome)
	require.Nil(t, run.EndedAt)

	end := start.Add(2 * time.Second)
	require.NoError(t, repo.Finish(ctx, "run-1", repository.EventDismissed, "filters", end))
	// finishing twice keeps the first outcome
	require.NoError(t, repo.Finish(ctx, "run-1", repository.EventCompleted, "breadcrumbs", end.Add(time.Second)))

	run, err = repo.Get(ctx, "run-1")
	require.NoError(t, err)
	require.NotNil(t, run.Outcome)
	require.Equal(t, repository.EventDismissed, *run.Outcome)
	require.NotNil(t, run.EndedAt)
	require.True(t, run.EndedAt.Equal(end))

	events, err := repo.Events(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, repository.EventStarted, events[0].Kind)
	require.Equal(t, "aggregates", events[0].Step)
	require.Equal(t, "filters", events[1].Step)
}

func TestRunRepoRecent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewRunRepo(openDB(t))
	base := database.Now()

	for i, tour := range []string{"replay", "issue-details", "replay"} {
		run := repository.Run{ID: "run-" + string(rune('a'+i)), TourName: tour, FirstStep: "x", StartedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Start(ctx, run))
	}

	all, err := repo.Recent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "run-c", all[0].ID)

	replays, err := repo.Recent(ctx, "replay", 1)
	require.NoError(t, err)
	require.Len(t, replays, 1)
	require.Equal(t, "run-c", replays[0].ID)
}

func TestRunRequiresKnownTour(t *testing.T) {
	t.Parallel()
	repo := repository.NewRunRepo(openDB(t))
	ctx := context.Background()
	err := repo.Start(ctx, repository.Run{ID: "r", TourName: "ghost", FirstStep: "x", StartedAt: database.Now()})
	require.Error(t, err)

	run, err := repo.Get(ctx, "r")
	require.NoError(t, err)
	require.Nil(t, run)
}

func TestAddEventRollsBackForUnknownRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewRunRepo(openDB(t))

	err := repo.AddEvent(ctx, repository.Event{RunID: "missing", Kind: repository.EventViewed, Step: "x", CreatedAt: database.Now()})
	require.Error(t, err)
	events, err := repo.Events(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, events)
}
