package planner

import "github.com/alexanderramin/neurosprint/internal/domain"

// CategoryStats is the planned and done time of one category, next to the
// time the week's structure preset suggests for it.
type CategoryStats struct {
	Category         domain.Category
	Tasks            int
	PlannedMinutes   int
	CompletedMinutes int
	PresetMinutes    int
}

// DayStats is the planned load of one day against its preset.
type DayStats struct {
	Day              domain.Day
	Tasks            int
	PlannedMinutes   int
	CompletedMinutes int
	PresetMinutes    int
}

// WeekStats summarises a week for the header, the board and the month view.
type WeekStats struct {
	WeekStart        string
	TotalTasks       int
	CompletedTasks   int
	PlannedMinutes   int
	CompletedMinutes int
	BudgetMinutes    int
	OverBudget       bool
	Categories       []CategoryStats
	Days             []DayStats
}

// CompletionPercent is the share of completed tasks, rounded to a whole percent.
func (s WeekStats) CompletionPercent() int {
	if s.TotalTasks == 0 {
		return 0
	}
	return (s.CompletedTasks*100 + s.TotalTasks/2) / s.TotalTasks
}

// BudgetRatio is planned time over budget, capped at 1 for progress bars.
func (s WeekStats) BudgetRatio() float64 {
	if s.BudgetMinutes <= 0 {
		return 0
	}
	return min(1, float64(s.PlannedMinutes)/float64(s.BudgetMinutes))
}

// Stats computes the totals of a week.
func Stats(w domain.WeekPlan) WeekStats {
	preset := domain.StructureFor(w.StructureOption)
	out := WeekStats{
		WeekStart:     w.WeekStart,
		BudgetMinutes: w.EffectiveBudgetHours() * 60,
		Categories:    make([]CategoryStats, len(domain.Categories)),
		Days:          make([]DayStats, len(domain.Days)),
	}
	catIdx := make(map[domain.Category]int, len(domain.Categories))
	for i, c := range domain.Categories {
		out.Categories[i].Category = c
		catIdx[c] = i
	}
	for i, d := range domain.Days {
		alloc := preset.Allocation(d)
		out.Days[i] = DayStats{Day: d, PresetMinutes: alloc.Total()}
		for j, c := range domain.Categories {
			out.Categories[j].PresetMinutes += alloc.Minutes(c)
		}
	}

	for _, t := range w.Tasks {
		out.TotalTasks++
		out.PlannedMinutes += t.Duration
		var ds *DayStats
		if i := t.Day.Index(); i >= 0 {
			ds = &out.Days[i]
			ds.Tasks++
			ds.PlannedMinutes += t.Duration
		}

		var cs *CategoryStats
		if i, ok := catIdx[t.Category]; ok {
			cs = &out.Categories[i]
			cs.Tasks++
			cs.PlannedMinutes += t.Duration
		}
		if t.Completed {
			out.CompletedTasks++
			out.CompletedMinutes += t.Duration
			if ds != nil {
				ds.CompletedMinutes += t.Duration
			}
			if cs != nil {
				cs.CompletedMinutes += t.Duration
			}
		}
	}
	out.OverBudget = out.PlannedMinutes > out.BudgetMinutes
	return out
}

// Stats computes the totals of the current week.
func (s *Store) Stats() WeekStats {
	return Stats(s.CurrentWeek())
}
