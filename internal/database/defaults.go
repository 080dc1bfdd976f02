package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/waypoint/internal/catalog"
)

// TourID is the stable row id of a declared tour.
func TourID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("tour:"+name)).String()
}

// SeedDefaults ensures every declared tour has a row with its current title and step count. It
// is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, e := range catalog.All() {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO tours(id, name, title, step_count, updated_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(name) DO UPDATE SET title=excluded.title, step_count=excluded.step_count, updated_at=CURRENT_TIMESTAMP;
			`, TourID(e.Name), e.Name, e.Title, len(e.Steps)); err != nil {
				return fmt.Errorf("seed tour %s: %w", e.Name, err)
			}
		}
		return nil
	})
}
