package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/waypoint/internal/config"
	"github.com/jask/waypoint/internal/database"
	"github.com/jask/waypoint/internal/database/repository"
	"github.com/jask/waypoint/internal/logging"
	"github.com/jask/waypoint/internal/service"
	"github.com/jask/waypoint/internal/tui"
)

var (
	// Global flags
	cfgPath string
	verbose bool
	// Deep link
	tourName string
	stepKey  string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "waypoint",
	Short: "Guided product tours in the terminal",
	Long: `waypoint walks through the issue details and session replay screens with a guided tour.

Run without arguments to open the interactive UI. Use --tour and --step to jump straight
into a tour, and the tours subcommands to inspect or reset saved progress.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath != "" {
			if err := os.Setenv("WAYPOINT_CONFIG", cfgPath); err != nil {
				return err
			}
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default ~/.config/waypoint/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log tour transitions at debug level")
	rootCmd.Flags().StringVar(&tourName, "tour", "", "Start the named tour")
	rootCmd.Flags().StringVar(&stepKey, "step", "", "Step to start --tour at (default: first step)")

	toursCmd.AddCommand(toursListCmd, toursResetCmd, toursHistoryCmd)
	rootCmd.AddCommand(toursCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDB prepares the sqlite database: directory, migrations and seeded tours.
func openDB(ctx context.Context, c config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(c.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(c.Database.Path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(c.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if stepKey != "" && tourName == "" {
		return fmt.Errorf("--step requires --tour")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	progress := repository.NewProgressRepo(db)
	services := tui.Services{
		Eligibility: &service.Eligibility{Config: cfg, Progress: progress},
		Recorder:    &service.Recorder{Runs: repository.NewRunRepo(db), Progress: progress, Logger: logger},
	}
	app, err := tui.New(ctx, services, logger, tui.Options{
		Autostart:  cfg.UI.Autostart,
		MountDelay: cfg.UI.MountDelay,
		Tour:       tourName,
		Step:       stepKey,
	})
	if err != nil {
		return err
	}

	logger.Info("starting ui", zap.String("db", cfg.Database.Path), zap.String("tour", tourName))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
