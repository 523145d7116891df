package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/neurosprint/internal/db"
	"github.com/alexanderramin/neurosprint/internal/importer"
	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/alexanderramin/neurosprint/internal/repository"
)

// DefaultHistoryKeep is how many previous revisions are retained per key.
const DefaultHistoryKeep = 50

type stateService struct {
	repo        repository.StateRepo
	uow         db.UnitOfWork
	key         string
	keepHistory int
	observer    UseCaseObserver
}

// NewStateService persists the planner document under key. keepHistory <= 0
// selects DefaultHistoryKeep.
func NewStateService(repo repository.StateRepo, uow db.UnitOfWork, key string, keepHistory int, observers ...UseCaseObserver) StateService {
	if keepHistory <= 0 {
		keepHistory = DefaultHistoryKeep
	}
	return &stateService{
		repo:        repo,
		uow:         uow,
		key:         key,
		keepHistory: keepHistory,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *stateService) LoadState(ctx context.Context) (state planner.State, found bool, err error) {
	startedAt := time.Now()
	fields := map[string]any{"key": s.key}
	defer func() {
		fields["found"] = found
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load_state",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	rec, err := s.repo.Load(ctx, s.key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return planner.State{}, false, nil
		}
		return planner.State{}, false, fmt.Errorf("loading planner state: %w", err)
	}
	fields["revision"] = rec.Revision
	if rec.Checksum != "" && rec.Checksum != db.Checksum(string(rec.Document)) {
		fields["checksum_mismatch"] = true
	}

	state, err = importer.DecodeSnapshot(rec.Document)
	if err != nil {
		return planner.State{}, false, fmt.Errorf("decoding stored planner state: %w", err)
	}
	return state, true, nil
}

func (s *stateService) SaveState(ctx context.Context, state planner.State) (revision int64, err error) {
	startedAt := time.Now()
	fields := map[string]any{"key": s.key, "weeks": len(state.Weeks)}
	defer func() {
		fields["revision"] = revision
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save_state",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	doc, err := importer.EncodeSnapshot(state)
	if err != nil {
		return 0, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteStateRepo(tx)
		rev, err := txRepo.Save(ctx, s.key, doc)
		if err != nil {
			return err
		}
		pruned, err := txRepo.PruneHistory(ctx, s.key, s.keepHistory)
		if err != nil {
			return err
		}
		revision = rev
		fields["pruned"] = pruned
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("saving planner state: %w", err)
	}
	return revision, nil
}

func (s *stateService) Attach(store *planner.Store) func() {
	return store.OnChange(func(state planner.State) {
		// Failures reach the log through the observer.
		_, _ = s.SaveState(context.Background(), state)
	})
}

func (s *stateService) History(ctx context.Context, limit int) ([]repository.HistoryEntry, error) {
	entries, err := s.repo.ListHistory(ctx, s.key, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return entries, nil
}

func (s *stateService) RestoreRevision(ctx context.Context, store *planner.Store, revision int64) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "restore_revision",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"key": s.key, "revision": revision},
		})
	}()

	entry, err := s.repo.GetHistory(ctx, s.key, revision)
	if err != nil {
		return fmt.Errorf("revision %d: %w", revision, err)
	}
	state, err := importer.DecodeSnapshot(entry.Document)
	if err != nil {
		return fmt.Errorf("decoding revision %d: %w", revision, err)
	}
	store.Restore(state)
	return nil
}
