package planner

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_AddsIntoOneDayAreDense(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		s := newTestStore()
		n := rng.Intn(20) + 1
		day := domain.Days[rng.Intn(len(domain.Days))]
		for i := 0; i < n; i++ {
			mustAdd(t, s, day, "x")
		}
		orders := dayOrders(s, day)
		require.Len(t, orders, n)
		for i, o := range orders {
			require.Equal(t, i, o)
		}
	}
}

func TestProperty_MoveLandsAtRequestedPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 200; iter++ {
		s := newTestStore()
		for i := 0; i < 12; i++ {
			mustAdd(t, s, domain.Days[rng.Intn(3)], "x")
		}
		tasks := s.CurrentWeek().Tasks
		moved := tasks[rng.Intn(len(tasks))]
		dest := domain.Days[rng.Intn(3)]
		k := rng.Intn(8)

		require.NoError(t, s.MoveTask(moved.ID, dest, k))

		ids := dayIDs(s, dest)
		want := min(k, len(ids)-1)
		assert.Equal(t, moved.ID, ids[want], "iter %d: move to %s@%d", iter, dest, k)
		requireStrictlyIncreasing(t, s)
	}
}

func TestProperty_ReorderWithPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for iter := 0; iter < 100; iter++ {
		s := newTestStore()
		for i := 0; i < rng.Intn(10)+1; i++ {
			mustAdd(t, s, domain.Wednesday, "x")
		}
		ids := dayIDs(s, domain.Wednesday)
		rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

		require.NoError(t, s.ReorderTasksInDay(domain.Wednesday, ids))
		assert.Equal(t, ids, dayIDs(s, domain.Wednesday))
	}
}

// Random mixes of every task operation never produce duplicate or negative
// orders within a day, and every task stays reachable in its day.
func TestProperty_RandomOperationsKeepOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := newTestStore()

	pick := func() string {
		tasks := s.CurrentWeek().Tasks
		if len(tasks) == 0 || rng.Intn(10) == 0 {
			return "missing"
		}
		return tasks[rng.Intn(len(tasks))].ID
	}
	randomDay := func() domain.Day { return domain.Days[rng.Intn(len(domain.Days))] }

	for step := 0; step < 1000; step++ {
		switch rng.Intn(6) {
		case 0, 1:
			mustAdd(t, s, randomDay(), "x")
		case 2:
			_ = s.DeleteTask(pick())
		case 3:
			_ = s.MoveTask(pick(), randomDay(), rng.Intn(10)-1)
		case 4:
			day := randomDay()
			ids := dayIDs(s, day)
			rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
			require.NoError(t, s.ReorderTasksInDay(day, ids))
		case 5:
			_, _ = s.DuplicateTask(pick(), randomDay())
		}
		requireStrictlyIncreasing(t, s)
	}

	total := 0
	for _, d := range domain.Days {
		total += len(dayIDs(s, d))
	}
	assert.Len(t, s.CurrentWeek().Tasks, total)
}
