package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/alexanderramin/neurosprint/internal/sprint"
)

// resolveTaskID matches input against the current week's task ids: an
// exact id first, then a unique prefix.
func resolveTaskID(store *planner.Store, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}
	week := store.CurrentWeek()

	var matches []string
	for _, t := range week.Tasks {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", planner.ErrTaskNotFound, input)
	case 1:
		return matches[0], nil
	default:
		sort.Strings(matches)
		return "", fmt.Errorf("task ID prefix %q is ambiguous: %s", input, strings.Join(matches, ", "))
	}
}

// endOrder is the order that places a task after everything in day.
func endOrder(w domain.WeekPlan, day domain.Day) int {
	tasks := w.TasksForDay(day)
	if len(tasks) == 0 {
		return 0
	}
	return tasks[len(tasks)-1].Order + 1
}

// classifyWeek places a week in its month's sprint cycle.
func classifyWeek(store *planner.Store, weekStart string) (sprint.Classification, error) {
	rows, err := sprint.Overview(weekStart, 0, 0, store)
	if err != nil {
		return sprint.Classification{}, err
	}
	return rows[0].Classification, nil
}

// monthArg returns args[0] when present, otherwise the current week's month.
func monthArg(store *planner.Store, args []string) (string, error) {
	if len(args) > 0 {
		if _, err := domain.ParseMonthKey(args[0]); err != nil {
			return "", fmt.Errorf("%w: %v", planner.ErrInvalidMonthKey, err)
		}
		return args[0], nil
	}
	return domain.MonthKeyOf(store.CurrentWeek().WeekStart)
}
