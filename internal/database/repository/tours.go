package repository

import (
	"context"
	"database/sql"
)

// TourRepo reads the declared tours. Rows are written by database.SeedDefaults.
type TourRepo struct {
	db *sql.DB
}

func NewTourRepo(db *sql.DB) *TourRepo { return &TourRepo{db: db} }

// List returns the seeded tours ordered by name.
func (r *TourRepo) List(ctx context.Context) ([]Tour, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, title, step_count, updated_at FROM tours ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Tour
	for rows.Next() {
		var t Tour
		if err := rows.Scan(&t.ID, &t.Name, &t.Title, &t.StepCount, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
