package formatter

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/alexanderramin/neurosprint/internal/repository"
	"github.com/alexanderramin/neurosprint/internal/service"
)

// FormatBackups lists backup files, newest first, numbered from 1.
func FormatBackups(backups []service.BackupInfo, now time.Time) string {
	if len(backups) == 0 {
		return Dim("No backups yet.") + "\n"
	}
	rows := make([][]string, 0, len(backups))
	for i, bk := range backups {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			filepath.Base(bk.Path),
			HumanTimestampFrom(bk.Timestamp, now),
			HumanBytes(bk.Size),
		})
	}
	return RenderTable([]string{"#", "FILE", "CREATED", "SIZE"}, rows)
}

// FormatHistory lists stored revisions of the planner document.
func FormatHistory(entries []repository.HistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No earlier revisions.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Revision),
			HumanTimestampFrom(e.SavedAt.Local(), now),
			HumanBytes(int64(len(e.Document))),
		})
	}
	return RenderTable([]string{"REV", "SAVED", "SIZE"}, rows)
}
