package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/neurosprint/internal/domain"
)

// ConvertTasks turns a validated week document into domain tasks. Each task
// gets a fresh id from newID and completed=false. Order is assigned per day
// as a dense zero-based sequence over this batch only, in document order.
// Call ValidateWeekImport first; ConvertTasks assumes the document is valid.
func ConvertTasks(doc *WeekImport, newID func() string) ([]domain.Task, error) {
	perDay := make(map[domain.Day]int)
	tasks := make([]domain.Task, 0, len(doc.Tasks))

	for i, t := range doc.Tasks {
		day, err := domain.ParseDay(t.Day)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		cat, err := domain.ParseCategory(t.Project)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}

		task := domain.Task{
			ID:       newID(),
			Category: cat,
			Title:    strings.TrimSpace(t.Title),
			Duration: t.Duration,
			Day:      day,
			Order:    perDay[day],
		}
		if t.StartTime != nil && *t.StartTime != "" {
			st := *t.StartTime
			task.StartTime = &st
		}
		perDay[day]++
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func weekToDoc(w domain.WeekPlan) WeekPlanDoc {
	doc := WeekPlanDoc{
		ID:              w.ID,
		WeekStart:       w.WeekStart,
		StructureOption: w.StructureOption,
		Tasks:           make([]TaskDoc, 0, len(w.Tasks)),
		Reflection: ReflectionDoc{
			Done:        notesToDoc(w.Reflection.Done),
			NotDone:     notesToDoc(w.Reflection.NotDone),
			Adjustments: w.Reflection.Adjustments,
			Saved:       w.Reflection.Saved,
		},
	}
	if w.BudgetHours != nil {
		b := *w.BudgetHours
		doc.BudgetHours = &b
	}
	for _, t := range w.Tasks {
		td := TaskDoc{
			ID:        t.ID,
			Project:   string(t.Category),
			Title:     t.Title,
			Duration:  t.Duration,
			Day:       string(t.Day),
			Completed: t.Completed,
			Order:     t.Order,
		}
		if t.StartTime != nil {
			st := *t.StartTime
			td.StartTime = &st
		}
		doc.Tasks = append(doc.Tasks, td)
	}
	return doc
}

func weekFromDoc(prefix string, doc WeekPlanDoc) (domain.WeekPlan, []error) {
	var errs []error

	if doc.WeekStart == "" {
		errs = append(errs, fmt.Errorf("%s.weekStart is required", prefix))
	} else if _, err := domain.ParseDate(doc.WeekStart); err != nil {
		errs = append(errs, fmt.Errorf("%s.weekStart: %v", prefix, err))
	}

	w := domain.WeekPlan{
		ID:              doc.ID,
		WeekStart:       doc.WeekStart,
		StructureOption: doc.StructureOption,
		Tasks:           make([]domain.Task, 0, len(doc.Tasks)),
		Reflection: domain.WeeklyReflection{
			Done:        notesFromDoc(doc.Reflection.Done),
			NotDone:     notesFromDoc(doc.Reflection.NotDone),
			Adjustments: doc.Reflection.Adjustments,
			Saved:       doc.Reflection.Saved,
		},
	}
	if !domain.ValidStructureOption(w.StructureOption) {
		w.StructureOption = domain.MinStructureOption
	}
	if doc.BudgetHours != nil {
		b := *doc.BudgetHours
		w.BudgetHours = &b
	}

	seen := make(map[string]bool, len(doc.Tasks))
	for i, td := range doc.Tasks {
		tp := fmt.Sprintf("%s.tasks[%d]", prefix, i)
		day, err := domain.ParseDay(td.Day)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.day: %v", tp, err))
		}
		cat, err := domain.ParseCategory(td.Project)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.project: %v", tp, err))
		}
		if td.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", tp))
		} else if seen[td.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", tp, td.ID))
		}
		seen[td.ID] = true
		if td.Order < 0 {
			errs = append(errs, fmt.Errorf("%s.order must not be negative", tp))
		}

		t := domain.Task{
			ID:        td.ID,
			Category:  cat,
			Title:     td.Title,
			Duration:  td.Duration,
			Day:       day,
			Completed: td.Completed,
			Order:     td.Order,
		}
		if td.StartTime != nil && *td.StartTime != "" {
			st := *td.StartTime
			t.StartTime = &st
		}
		w.Tasks = append(w.Tasks, t)
	}
	return w, errs
}

func notesToDoc(n domain.CategoryNotes) NotesDoc {
	return NotesDoc{Foundation: n.Foundation, Drive: n.Drive, Joy: n.Joy}
}

func notesFromDoc(n NotesDoc) domain.CategoryNotes {
	return domain.CategoryNotes{Foundation: n.Foundation, Drive: n.Drive, Joy: n.Joy}
}
