package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/importer"
	"github.com/alexanderramin/neurosprint/internal/planner"
)

const (
	// DefaultMaxBackups is the rotation limit when none is configured.
	DefaultMaxBackups = 10

	BackupFilePrefix = "neurosprint-backup-"
	BackupFileSuffix = ".json"
)

// BackupInfo describes one backup file.
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

type backupManager struct {
	dir      string
	max      int
	now      func() time.Time
	observer UseCaseObserver
}

// NewBackupService keeps full-planner snapshots in dir, rotating down to max.
func NewBackupService(dir string, max int, observers ...UseCaseObserver) BackupService {
	return newBackupManager(dir, max, time.Now, observers...)
}

func newBackupManager(dir string, max int, now func() time.Time, observers ...UseCaseObserver) *backupManager {
	if max <= 0 {
		max = DefaultMaxBackups
	}
	return &backupManager{dir: dir, max: max, now: now, observer: useCaseObserverOrNoop(observers)}
}

func (m *backupManager) CreateBackup(ctx context.Context, store *planner.Store) (path string, err error) {
	startedAt := time.Now()
	defer func() {
		m.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create_backup",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"path": path},
		})
	}()

	data, err := store.ExportAllData()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}
	path, err = m.nextBackupPath()
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		return path, fmt.Errorf("rotating backups: %w", err)
	}
	return path, nil
}

func (m *backupManager) nextBackupPath() (string, error) {
	now := m.now()
	name := func(ts string) string {
		return filepath.Join(m.dir, BackupFilePrefix+ts+BackupFileSuffix)
	}

	path := name(now.Format("20060102-1504"))
	if !exists(path) {
		return path, nil
	}
	ts := now.Format("20060102-150405")
	path = name(ts)
	for counter := 1; exists(path); counter++ {
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = name(fmt.Sprintf("%s-%d", ts, counter))
	}
	return path, nil
}

func (m *backupManager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("reading backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}
		ts, ok := parseBackupTimestamp(name)
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.dir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}
	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseBackupTimestamp reads the time out of a backup file name, ignoring
// any collision counter.
func parseBackupTimestamp(name string) (time.Time, bool) {
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, BackupFilePrefix), BackupFileSuffix)
	parts := strings.Split(stamp, "-")
	if len(parts) < 2 {
		return time.Time{}, false
	}
	stamp = parts[0] + "-" + parts[1]
	for _, layout := range []string{"20060102-150405", "20060102-1504"} {
		if ts, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func (m *backupManager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for _, b := range backups[min(m.max, len(backups)):] {
		if err := os.Remove(b.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", filepath.Base(b.Path), err)
		}
	}
	return nil
}

// RestoreBackup replaces the planner state with the snapshot at path. The
// file is validated in full before anything changes.
func (m *backupManager) RestoreBackup(ctx context.Context, store *planner.Store, path string) (err error) {
	startedAt := time.Now()
	defer func() {
		m.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "restore_backup",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"path": path},
		})
	}()

	state, err := importer.LoadSnapshot(path)
	if err != nil {
		return err
	}
	store.Restore(state)
	return nil
}

// ExportWeek writes the week exchange document to dir as
// neurosprint-<weekStart>.json.
func (m *backupManager) ExportWeek(ctx context.Context, week domain.WeekPlan, dir string) (path string, err error) {
	startedAt := time.Now()
	defer func() {
		m.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export_week",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"week_start": week.WeekStart, "tasks": len(week.Tasks)},
		})
	}()

	data, err := importer.ExportWeek(week)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path = filepath.Join(dir, WeekExportName(week.WeekStart))
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// WeekExportName is the file name used for a week export.
func WeekExportName(weekStart string) string {
	return "neurosprint-" + weekStart + ".json"
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("moving %s into place: %w", filepath.Base(path), err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
