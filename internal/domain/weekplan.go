package domain

import "sort"

// DefaultBudgetHours is the weekly budget used when a week has none set.
const DefaultBudgetHours = 10

// CategoryNotes holds one free-text note per self-reported category.
// Reflection is not tracked here: writing the report is the reflection.
type CategoryNotes struct {
	Foundation string
	Drive      string
	Joy        string
}

// WeeklyReflection is the end-of-week journal.
type WeeklyReflection struct {
	Done        CategoryNotes
	NotDone     CategoryNotes
	Adjustments string
	Saved       bool
}

// EmptyReflection returns a blank draft reflection.
func EmptyReflection() WeeklyReflection {
	return WeeklyReflection{}
}

// IsEmpty reports whether no text has been written yet.
func (r WeeklyReflection) IsEmpty() bool {
	return r.Done == (CategoryNotes{}) && r.NotDone == (CategoryNotes{}) && r.Adjustments == ""
}

// WeekPlan is the aggregate root for one calendar week. WeekStart is the
// ISO date of its Monday and is the natural key for week lookup.
type WeekPlan struct {
	ID              string
	WeekStart       string
	StructureOption int
	Tasks           []Task
	Reflection      WeeklyReflection
	BudgetHours     *int
}

// NewWeekPlan builds an empty week with a blank reflection.
func NewWeekPlan(id, weekStart string, structureOption int) WeekPlan {
	return WeekPlan{
		ID:              id,
		WeekStart:       weekStart,
		StructureOption: structureOption,
		Tasks:           []Task{},
		Reflection:      EmptyReflection(),
	}
}

// EffectiveBudgetHours returns the week's budget, falling back to the default.
func (w WeekPlan) EffectiveBudgetHours() int {
	if w.BudgetHours != nil && *w.BudgetHours > 0 {
		return *w.BudgetHours
	}
	return DefaultBudgetHours
}

// Clone deep-copies the week so the copy can be handed out safely.
func (w WeekPlan) Clone() WeekPlan {
	c := w
	c.Tasks = make([]Task, len(w.Tasks))
	for i, t := range w.Tasks {
		c.Tasks[i] = t.Clone()
	}
	if w.BudgetHours != nil {
		b := *w.BudgetHours
		c.BudgetHours = &b
	}
	return c
}

// TaskIndex returns the slice index of the task with id, or -1.
func (w WeekPlan) TaskIndex(id string) int {
	for i := range w.Tasks {
		if w.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// CountInDay returns how many tasks currently sit in day.
func (w WeekPlan) CountInDay(day Day) int {
	n := 0
	for _, t := range w.Tasks {
		if t.Day == day {
			n++
		}
	}
	return n
}

// TasksForDay returns copies of the day's tasks sorted by Order.
func (w WeekPlan) TasksForDay(day Day) []Task {
	var out []Task
	for _, t := range w.Tasks {
		if t.Day == day {
			out = append(out, t.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
