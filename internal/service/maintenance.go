package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/waypoint/internal/catalog"
	"github.com/jask/waypoint/internal/database"
	"github.com/jask/waypoint/internal/database/repository"
)

// MaintenanceService houses destructive actions surfaced through the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// ResetTour forgets progress for one tour so it is offered again. Run history is kept.
func (s *MaintenanceService) ResetTour(ctx context.Context, name string) (bool, error) {
	if s.DB == nil {
		return false, fmt.Errorf("maintenance: db not configured")
	}
	e, err := catalog.Lookup(name)
	if err != nil {
		return false, err
	}
	existed, err := repository.NewProgressRepo(s.DB).Delete(ctx, e.Name)
	if err != nil {
		return false, fmt.Errorf("reset %s: %w", e.Name, err)
	}
	return existed, nil
}

// ResetAll wipes progress and run history. It keeps the schema and seeded tours intact.
func (s *MaintenanceService) ResetAll(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		tables := []string{
			"tour_events",
			"tour_runs",
			"tour_progress",
		}
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
