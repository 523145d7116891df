package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 21, 9, 30, 0, 0, time.Local)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(opts ...Option) *Store {
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(seqIDs()),
	}
	return New(append(base, opts...)...)
}

func mustAdd(t *testing.T, s *Store, day domain.Day, title string) domain.Task {
	t.Helper()
	task, err := s.AddTask(domain.NewTaskData{
		Category: domain.CategoryDrive,
		Title:    title,
		Duration: 30,
		Day:      day,
	})
	require.NoError(t, err)
	return task
}

// dayIDs returns the ids of day's tasks in display order.
func dayIDs(s *Store, day domain.Day) []string {
	var ids []string
	for _, t := range s.CurrentWeek().TasksForDay(day) {
		ids = append(ids, t.ID)
	}
	return ids
}

func dayOrders(s *Store, day domain.Day) []int {
	var orders []int
	for _, t := range s.CurrentWeek().TasksForDay(day) {
		orders = append(orders, t.Order)
	}
	return orders
}

func requireStrictlyIncreasing(t *testing.T, s *Store) {
	t.Helper()
	for _, d := range domain.Days {
		orders := dayOrders(s, d)
		for i := 1; i < len(orders); i++ {
			require.Less(t, orders[i-1], orders[i], "day %s orders %v", d, orders)
		}
		for _, o := range orders {
			require.GreaterOrEqual(t, o, 0)
		}
	}
}
