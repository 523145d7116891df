package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/neurosprint/internal/cli"
	"github.com/alexanderramin/neurosprint/internal/config"
	"github.com/alexanderramin/neurosprint/internal/db"
	"github.com/alexanderramin/neurosprint/internal/logger"
	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/alexanderramin/neurosprint/internal/repository"
	"github.com/alexanderramin/neurosprint/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Debug: cfg.Debug, LogDir: cfg.LogDir})
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer log.Close()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repository, unit of work and services
	stateRepo := repository.NewSQLiteStateRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewSlogUseCaseObserver(log.Slog())

	stateSvc := service.NewStateService(stateRepo, uow, cfg.StateKey, service.DefaultHistoryKeep, observer)
	backupSvc := service.NewBackupService(filepath.Join(cfg.DataDir, "backups"), cfg.MaxBackups, observer)

	ctx := context.Background()
	state, found, err := stateSvc.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("loading planner: %w", err)
	}

	opts := []planner.Option{planner.WithDefaultSprintWeeks(cfg.DefaultSprintWeeks)}
	if found {
		opts = append(opts, planner.WithState(state))
	}
	store := planner.New(opts...)
	if !found {
		if _, err := stateSvc.SaveState(ctx, store.State()); err != nil {
			return fmt.Errorf("saving initial planner: %w", err)
		}
	}
	detach := stateSvc.Attach(store)
	defer detach()

	log.Debug("planner ready", "db", cfg.DBPath, "week", store.CurrentWeek().WeekStart, "restored", found)

	app := &cli.App{
		Store:     store,
		State:     stateSvc,
		Backups:   backupSvc,
		ExportDir: cfg.ExportDir,
	}

	// Detect interactive terminal for forms and the board.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
