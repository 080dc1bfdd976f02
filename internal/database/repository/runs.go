package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jask/waypoint/internal/database"
)

// RunRepo handles tour runs and their events.
type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo { return &RunRepo{db: db} }

// Start inserts a new open run together with its started event.
func (r *RunRepo) Start(ctx context.Context, run Run) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO tour_runs(id, tour_name, first_step, last_step, started_at) VALUES (?, ?, ?, ?, ?);
		`, run.ID, run.TourName, run.FirstStep, run.FirstStep, run.StartedAt); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
		INSERT INTO tour_events(run_id, kind, step, created_at) VALUES (?, ?, ?, ?);
		`, run.ID, EventStarted, run.FirstStep, run.StartedAt)
		return err
	})
}

// AddEvent appends an event and moves the run's last step to it.
func (r *RunRepo) AddEvent(ctx context.Context, e Event) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO tour_events(run_id, kind, step, created_at) VALUES (?, ?, ?, ?);
		`, e.RunID, e.Kind, e.Step, e.CreatedAt); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `UPDATE tour_runs SET last_step = ? WHERE id = ?`, e.Step, e.RunID)
		return err
	})
}

// Finish closes a run with its outcome.
func (r *RunRepo) Finish(ctx context.Context, id, outcome, lastStep string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE tour_runs SET outcome = ?, last_step = ?, ended_at = ? WHERE id = ? AND ended_at IS NULL;
	`, outcome, lastStep, at, id)
	return err
}

func (r *RunRepo) Get(ctx context.Context, id string) (*Run, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, tour_name, first_step, last_step, outcome, started_at, ended_at FROM tour_runs WHERE id = ?
	`, id)
	var run Run
	if err := row.Scan(&run.ID, &run.TourName, &run.FirstStep, &run.LastStep, &run.Outcome, &run.StartedAt, &run.EndedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// Recent lists the latest runs, newest first. An empty tourName lists all tours.
func (r *RunRepo) Recent(ctx context.Context, tourName string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, tour_name, first_step, last_step, outcome, started_at, ended_at FROM tour_runs`
	args := []interface{}{}
	if tourName != "" {
		query += ` WHERE tour_name = ?`
		args = append(args, tourName)
	}
	query += ` ORDER BY started_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.TourName, &run.FirstStep, &run.LastStep, &run.Outcome, &run.StartedAt, &run.EndedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *RunRepo) Events(ctx context.Context, runID string) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, run_id, kind, step, created_at FROM tour_events WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.RunID, &e.Kind, &e.Step, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
