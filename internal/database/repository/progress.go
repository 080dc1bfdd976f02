package repository

import (
	"context"
	"database/sql"
)

// ProgressRepo handles per-tour completion state.
type ProgressRepo struct {
	db *sql.DB
}

func NewProgressRepo(db *sql.DB) *ProgressRepo { return &ProgressRepo{db: db} }

// Upsert records the end of a run. The run counter is incremented on every call.
func (r *ProgressRepo) Upsert(ctx context.Context, p Progress) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO tour_progress(tour_name, status, last_step, runs, updated_at) VALUES (?, ?, ?, 1, CURRENT_TIMESTAMP)
	ON CONFLICT(tour_name) DO UPDATE SET
	 status=excluded.status, last_step=excluded.last_step, runs=tour_progress.runs+1, updated_at=CURRENT_TIMESTAMP;
	`, p.TourName, p.Status, p.LastStep)
	return err
}

func (r *ProgressRepo) Get(ctx context.Context, tourName string) (*Progress, error) {
	row := r.db.QueryRowContext(ctx, `SELECT tour_name, status, last_step, runs, updated_at FROM tour_progress WHERE tour_name = ?`, tourName)
	var p Progress
	if err := row.Scan(&p.TourName, &p.Status, &p.LastStep, &p.Runs, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepo) List(ctx context.Context) ([]Progress, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT tour_name, status, last_step, runs, updated_at FROM tour_progress ORDER BY tour_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Progress
	for rows.Next() {
		var p Progress
		if err := rows.Scan(&p.TourName, &p.Status, &p.LastStep, &p.Runs, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete forgets progress for one tour and reports whether a row existed.
func (r *ProgressRepo) Delete(ctx context.Context, tourName string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tour_progress WHERE tour_name = ?`, tourName)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
