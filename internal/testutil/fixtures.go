package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/planner"
)

var testIDCounter atomic.Int64

// SeqIDs returns a generator of readable, unique ids: prefix-1, prefix-2, ...
func SeqIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// FixedClock returns a clock stuck at t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TestMonday is the Monday the default fixtures plan around.
const TestMonday = "2026-10-19"

// NewTestStore builds a store whose clock sits mid-week of TestMonday and
// whose ids are sequential.
func NewTestStore(opts ...planner.Option) *planner.Store {
	base := []planner.Option{
		planner.WithClock(FixedClock(time.Date(2026, 10, 21, 10, 0, 0, 0, time.Local))),
		planner.WithIDGenerator(SeqIDs("id")),
	}
	return planner.New(append(base, opts...)...)
}

// Task options
type TaskOption func(*domain.Task)

func WithDay(d domain.Day) TaskOption {
	return func(t *domain.Task) { t.Day = d }
}

func WithCategory(c domain.Category) TaskOption {
	return func(t *domain.Task) { t.Category = c }
}

func WithDuration(min int) TaskOption {
	return func(t *domain.Task) { t.Duration = min }
}

func WithStartTime(hhmm string) TaskOption {
	return func(t *domain.Task) { t.StartTime = &hhmm }
}

func WithOrder(o int) TaskOption {
	return func(t *domain.Task) { t.Order = o }
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) { t.Completed = true }
}

func NewTestTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:       fmt.Sprintf("task-%d", testIDCounter.Add(1)),
		Category: domain.CategoryDrive,
		Title:    title,
		Duration: 30,
		Day:      domain.Monday,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Week options
type WeekOption func(*domain.WeekPlan)

func WithTasks(tasks ...domain.Task) WeekOption {
	return func(w *domain.WeekPlan) { w.Tasks = append(w.Tasks, tasks...) }
}

func WithStructureOption(o int) WeekOption {
	return func(w *domain.WeekPlan) { w.StructureOption = o }
}

func WithBudgetHours(h int) WeekOption {
	return func(w *domain.WeekPlan) { w.BudgetHours = &h }
}

func WithReflection(r domain.WeeklyReflection) WeekOption {
	return func(w *domain.WeekPlan) { w.Reflection = r }
}

func NewTestWeek(weekStart string, opts ...WeekOption) domain.WeekPlan {
	w := domain.NewWeekPlan(fmt.Sprintf("week-%d", testIDCounter.Add(1)), weekStart, domain.MinStructureOption)
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// NewTestState builds a planner state with current as the current week and
// the given archive.
func NewTestState(current domain.WeekPlan, archive ...domain.WeekPlan) domain.PlannerState {
	return domain.PlannerState{
		CurrentWeek:   current,
		Weeks:         append([]domain.WeekPlan{}, archive...),
		MonthSettings: map[string]domain.MonthSettings{},
	}
}
