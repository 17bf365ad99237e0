// Package cmd implements the vowbudget CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/vowbudget/internal/config"
	"github.com/theirongolddev/vowbudget/internal/game"
	"github.com/theirongolddev/vowbudget/internal/logging"
	"github.com/theirongolddev/vowbudget/internal/planner"
	"github.com/theirongolddev/vowbudget/internal/progress"
	"github.com/theirongolddev/vowbudget/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:           "vowbudget",
	Short:         "Wedding budget planner",
	Long:          "Estimate a wedding budget, tune the category split, and collect rewards along the way.",
	RunE:          runBreakdown,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default from config or VOWBUDGET_DB)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log warnings and errors")
}

// env is the state every command works against.
type env struct {
	cfg      config.Config
	logger   *slog.Logger
	db       *store.DB
	progress *progress.Store
	engine   *game.Engine
	plans    planner.DocumentPersister
}

// openEnv loads config, sets up logging and opens the database. Callers must
// Close the result.
func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.Setup(config.LogLevel(cfg), flagQuiet)

	path := flagDB
	if path == "" {
		path = config.DBPath(cfg)
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("database opened", "path", path)

	ps, err := progress.Open(store.ProgressPersister{DB: db}, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	engine := game.New(ps, db, logger)
	engine.DiscountTTL = config.DiscountTTL(cfg)

	return &env{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		progress: ps,
		engine:   engine,
		plans:    planner.DocumentPersister{Docs: db},
	}, nil
}

func (e *env) Close() {
	if err := e.db.Close(); err != nil {
		e.logger.Warn("closing database", "error", err)
	}
}

// session loads the saved plan.
func (e *env) session() (*planner.Session, error) {
	return planner.Load(e.plans, e.engine, e.logger)
}

// noPlanHint prints guidance when ErrNoPlan is hit and swallows it.
func noPlanHint(err error) error {
	if !errors.Is(err, planner.ErrNoPlan) {
		return err
	}
	fmt.Println()
	fmt.Println("  No budget plan yet.")
	fmt.Println()
	fmt.Println("  Create one:")
	fmt.Println("    vowbudget estimate                               (interactive)")
	fmt.Println("    vowbudget estimate --budget 30000 --guests 120   (one-shot)")
	fmt.Println()
	return nil
}
