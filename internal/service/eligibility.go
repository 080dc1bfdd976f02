package service

import (
	"context"
	"fmt"

	"github.com/jask/waypoint/internal/config"
	"github.com/jask/waypoint/internal/database/repository"
)

// Eligibility decides whether a tour may be offered. It is the external check that feeds a
// tour's availability flag.
type Eligibility struct {
	Config   config.Config
	Progress *repository.ProgressRepo
}

// Available reports whether tourName is enabled and, unless it may repeat, not yet finished or
// dismissed.
func (e *Eligibility) Available(ctx context.Context, tourName string) (bool, error) {
	tc := e.Config.Tour(tourName)
	if !tc.Enabled {
		return false, nil
	}
	if tc.Repeat || e.Progress == nil {
		return true, nil
	}
	p, err := e.Progress.Get(ctx, tourName)
	if err != nil {
		return false, fmt.Errorf("eligibility %s: %w", tourName, err)
	}
	return p == nil, nil
}
