package sprint

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ThreeWeekSprints(t *testing.T) {
	ms := domain.MonthSettings{SprintWeeks: 3, IntegrationEvery: 1}

	tests := []struct {
		index  int
		kind   Kind
		cycle  int
		sprint int
		week   int
	}{
		{0, KindSprint, 1, 1, 1},
		{1, KindSprint, 1, 1, 2},
		{2, KindSprint, 1, 1, 3},
		{3, KindIntegration, 1, 0, 0},
		{4, KindSprint, 2, 2, 1},
		{7, KindIntegration, 2, 0, 0},
		{-1, KindIntegration, 0, 0, 0},
		{-4, KindSprint, 0, 0, 1},
	}
	for _, tc := range tests {
		c := Classify(tc.index, ms)
		assert.Equal(t, tc.kind, c.Kind, "index %d", tc.index)
		assert.Equal(t, tc.cycle, c.Cycle, "index %d", tc.index)
		assert.Equal(t, tc.sprint, c.Sprint, "index %d", tc.index)
		assert.Equal(t, tc.week, c.WeekInSprint, "index %d", tc.index)
	}
}

func TestClassify_SprintWithinCycleIsOne(t *testing.T) {
	ms := domain.MonthSettings{SprintWeeks: 3, IntegrationEvery: 1}
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1, Classify(i, ms).SprintInCycle)
	}
	assert.Equal(t, 1, Classify(4, ms).SprintInCycle)
}

func TestClassify_SeveralSprintsPerCycle(t *testing.T) {
	ms := domain.MonthSettings{SprintWeeks: 2, IntegrationEvery: 3} // cycle of 7

	var labels []string
	for i := 0; i < 9; i++ {
		labels = append(labels, Label(Classify(i, ms)))
	}
	assert.Equal(t, []string{
		"Sprint 1 · week 1", "Sprint 1 · week 2",
		"Sprint 2 · week 1", "Sprint 2 · week 2",
		"Sprint 3 · week 1", "Sprint 3 · week 2",
		"Integration",
		"Sprint 4 · week 1", "Sprint 4 · week 2",
	}, labels)
}

func TestClassify_NormalisesSettings(t *testing.T) {
	c := Classify(1, domain.MonthSettings{})
	assert.Equal(t, KindIntegration, c.Kind, "zero settings behave like 1/1, a cycle of 2")
}

func TestClassify_IsPure(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		ms := domain.MonthSettings{SprintWeeks: rng.Intn(5) + 1, IntegrationEvery: rng.Intn(4) + 1}
		idx := rng.Intn(200) - 100
		first := Classify(idx, ms)
		assert.Equal(t, first, Classify(idx, ms))

		cycleLen := ms.CycleLength()
		shifted := Classify(idx+cycleLen, ms)
		assert.Equal(t, first.Kind, shifted.Kind)
		assert.Equal(t, first.WeekInSprint, shifted.WeekInSprint)
		assert.Equal(t, first.Cycle+1, shifted.Cycle)
		assert.GreaterOrEqual(t, first.PositionInCycle, 0)
		assert.Less(t, first.PositionInCycle, cycleLen)
	}
}

func TestMonthWeeks(t *testing.T) {
	tests := []struct {
		month string
		want  []string
	}{
		{"2026-10", []string{"2026-10-05", "2026-10-12", "2026-10-19", "2026-10-26"}},
		{"2026-06", []string{"2026-06-01", "2026-06-08", "2026-06-15", "2026-06-22", "2026-06-29"}},
		{"2027-02", []string{"2027-02-01", "2027-02-08", "2027-02-15", "2027-02-22"}},
	}
	for _, tc := range tests {
		t.Run(tc.month, func(t *testing.T) {
			got, err := MonthWeeks(tc.month)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := MonthWeeks("2026/10")
	assert.Error(t, err)
}
