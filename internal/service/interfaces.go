package service

import (
	"context"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/alexanderramin/neurosprint/internal/repository"
)

// StateService persists the planner document and its revision history.
type StateService interface {
	// LoadState returns the stored state; found is false on a fresh database.
	LoadState(ctx context.Context) (state planner.State, found bool, err error)
	SaveState(ctx context.Context, state planner.State) (revision int64, err error)
	// Attach subscribes to store changes and saves every new state. The
	// returned func stops the subscription.
	Attach(store *planner.Store) (detach func())
	History(ctx context.Context, limit int) ([]repository.HistoryEntry, error)
	RestoreRevision(ctx context.Context, store *planner.Store, revision int64) error
}

// BackupService writes and reads backup and export files on disk.
type BackupService interface {
	CreateBackup(ctx context.Context, store *planner.Store) (string, error)
	ListBackups() ([]BackupInfo, error)
	RestoreBackup(ctx context.Context, store *planner.Store, path string) error
	ExportWeek(ctx context.Context, week domain.WeekPlan, dir string) (string, error)
}
