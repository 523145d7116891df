package planner

import (
	"fmt"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/importer"
)

// ImportResult summarises a successful week import.
type ImportResult struct {
	Imported  int
	WeekStart string
	Option    int
}

// ExportCurrentWeek renders the current week as a single-week document.
func (s *Store) ExportCurrentWeek() ([]byte, error) {
	return importer.ExportWeek(s.CurrentWeek())
}

// ExportAllData renders the full-fidelity snapshot of the store.
func (s *Store) ExportAllData() ([]byte, error) {
	return importer.EncodeSnapshot(s.State())
}

// ImportFromJSON validates a single-week document and appends its tasks to
// the current week. Nothing changes unless the whole document is valid.
// Imported tasks get fresh ids, completed=false, and a dense per-day order
// counted within the batch; existing tasks are not renumbered. weekStart and
// option overwrite the current week's values only when present.
func (s *Store) ImportFromJSON(data []byte) (ImportResult, error) {
	doc, err := importer.ParseWeekImport(data)
	if err != nil {
		return ImportResult{}, err
	}
	return s.ImportWeek(doc)
}

// ImportWeek is ImportFromJSON for an already decoded document.
func (s *Store) ImportWeek(doc *importer.WeekImport) (ImportResult, error) {
	if err := importer.ValidateWeekImport(doc).Err(); err != nil {
		return ImportResult{}, err
	}
	tasks, err := importer.ConvertTasks(doc, s.newID)
	if err != nil {
		return ImportResult{}, err
	}

	weekStart := ""
	if doc.WeekStart != "" {
		weekStart, err = domain.NormalizeWeekStart(doc.WeekStart)
		if err != nil {
			return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidWeekStart, err)
		}
	}

	var res ImportResult
	err = s.mutate(func(st *domain.PlannerState) error {
		if weekStart != "" && weekStart != st.CurrentWeek.WeekStart && st.ArchiveIndex(weekStart) >= 0 {
			return fmt.Errorf("%w: %s is already planned, go to that week before importing", ErrWeekConflict, weekStart)
		}
		if weekStart != "" {
			st.CurrentWeek.WeekStart = weekStart
		}
		if doc.Option != nil {
			st.CurrentWeek.StructureOption = *doc.Option
		}
		st.CurrentWeek.Tasks = append(st.CurrentWeek.Tasks, tasks...)
		res = ImportResult{
			Imported:  len(tasks),
			WeekStart: st.CurrentWeek.WeekStart,
			Option:    st.CurrentWeek.StructureOption,
		}
		return nil
	})
	return res, err
}

// ImportAllData replaces the whole store with a decoded snapshot. A
// document that does not parse or validate leaves the store untouched.
func (s *Store) ImportAllData(data []byte) error {
	state, err := importer.DecodeSnapshot(data)
	if err != nil {
		return err
	}
	s.Restore(state)
	return nil
}
