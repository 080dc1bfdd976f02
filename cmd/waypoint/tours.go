package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/waypoint/internal/catalog"
	"github.com/jask/waypoint/internal/config"
	"github.com/jask/waypoint/internal/database/repository"
	"github.com/jask/waypoint/internal/service"
)

var (
	resetAll     bool
	historyLimit int
)

var toursCmd = &cobra.Command{
	Use:   "tours",
	Short: "Inspect and reset tour progress",
}

var toursListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available tours and their progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(ctx context.Context, db *sql.DB) error {
			return listTours(ctx, cmd.OutOrStdout(), cfg, db)
		})
	},
}

var toursResetCmd = &cobra.Command{
	Use:   "reset [name]",
	Short: "Forget progress so a tour is offered again",
	Long: `Forget the completed or dismissed state of a tour so it is offered again.

With --all every tour's progress and run history is wiped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		if (name == "") == !resetAll {
			return fmt.Errorf("pass a tour name or --all")
		}
		return withDB(cmd, func(ctx context.Context, db *sql.DB) error {
			return resetTours(ctx, cmd.OutOrStdout(), db, name, resetAll)
		})
	},
}

var toursHistoryCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show recent tour runs and how they ended",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			e, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			name = e.Name
		}
		return withDB(cmd, func(ctx context.Context, db *sql.DB) error {
			return printHistory(ctx, cmd.OutOrStdout(), db, name, historyLimit)
		})
	},
}

func init() {
	toursResetCmd.Flags().BoolVar(&resetAll, "all", false, "Reset every tour and clear run history")
	toursHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to show")
}

func withDB(cmd *cobra.Command, fn func(ctx context.Context, db *sql.DB) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(ctx, db)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func listTours(ctx context.Context, w io.Writer, c config.Config, db *sql.DB) error {
	tours, err := repository.NewTourRepo(db).List(ctx)
	if err != nil {
		return fmt.Errorf("list tours: %w", err)
	}
	progress := repository.NewProgressRepo(db)
	elig := &service.Eligibility{Config: c, Progress: progress}

	t := newTable("TOUR", "TITLE", "STEPS", "STATUS", "RUNS", "OFFERED")
	for _, e := range tours {
		p, err := progress.Get(ctx, e.Name)
		if err != nil {
			return fmt.Errorf("progress %s: %w", e.Name, err)
		}
		status, runs := "new", "0"
		if p != nil {
			status = p.Status + " at " + p.LastStep
			runs = strconv.Itoa(p.Runs)
		}
		offered, err := elig.Available(ctx, e.Name)
		if err != nil {
			return err
		}
		yes := "no"
		if offered {
			yes = "yes"
		}
		t.Row(e.Name, e.Title, strconv.Itoa(e.StepCount), status, runs, yes)
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}

func resetTours(ctx context.Context, w io.Writer, db *sql.DB, name string, all bool) error {
	m := &service.MaintenanceService{DB: db}
	if all {
		if err := m.ResetAll(ctx); err != nil {
			return err
		}
		logger.Info("reset all tours")
		_, err := fmt.Fprintln(w, "Reset all tours")
		return err
	}
	existed, err := m.ResetTour(ctx, name)
	if err != nil {
		return err
	}
	e, _ := catalog.Lookup(name)
	logger.Info("reset tour", zap.String("tour", e.Name), zap.Bool("existed", existed))
	if !existed {
		_, err = fmt.Fprintf(w, "%s has no saved progress\n", e.Name)
		return err
	}
	_, err = fmt.Fprintf(w, "Reset %s\n", e.Name)
	return err
}

func printHistory(ctx context.Context, w io.Writer, db *sql.DB, name string, limit int) error {
	runs, err := repository.NewRunRepo(db).Recent(ctx, name, limit)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No tour runs recorded")
		return err
	}
	t := newTable("STARTED", "TOUR", "OUTCOME", "STEPS", "DURATION")
	for _, r := range runs {
		outcome, duration := "in progress", "-"
		if r.Outcome != nil {
			outcome = *r.Outcome
		}
		if r.EndedAt != nil {
			duration = r.EndedAt.Sub(r.StartedAt).String()
		}
		steps := r.FirstStep
		if r.LastStep != "" && r.LastStep != r.FirstStep {
			steps = strings.Join([]string{r.FirstStep, r.LastStep}, " → ")
		}
		t.Row(r.StartedAt.Local().Format("2006-01-02 15:04"), r.TourName, outcome, steps, duration)
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}
