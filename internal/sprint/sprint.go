// Package sprint classifies weeks into sprint and integration weeks. It
// holds no state; the planner's month settings parameterise it.
package sprint

import (
	"fmt"

	"github.com/alexanderramin/neurosprint/internal/domain"
)

// Kind is the type of a week in a cycle.
type Kind string

const (
	KindSprint      Kind = "sprint"
	KindIntegration Kind = "integration"
)

// Classification describes one week's place in the sprint cycle. Sprint
// and WeekInSprint are zero for integration weeks.
type Classification struct {
	Kind            Kind
	Cycle           int // 1-based
	PositionInCycle int // 0-based
	SprintInCycle   int
	Sprint          int // numbered across cycles
	WeekInSprint    int
}

// IsIntegration reports whether the week closes its cycle.
func (c Classification) IsIntegration() bool {
	return c.Kind == KindIntegration
}

// Classify places the week at index (relative to any anchor) in the cycle
// described by settings. Negative indices count back from the anchor.
// The result depends only on its arguments.
func Classify(index int, settings domain.MonthSettings) Classification {
	ms := settings.Normalized()
	cycleLen := ms.CycleLength()

	cycle := floorDiv(index, cycleLen)
	pos := index - cycle*cycleLen

	c := Classification{
		Cycle:           cycle + 1,
		PositionInCycle: pos,
	}
	if pos == cycleLen-1 {
		c.Kind = KindIntegration
		return c
	}
	c.Kind = KindSprint
	c.SprintInCycle = pos/ms.SprintWeeks + 1
	c.WeekInSprint = pos%ms.SprintWeeks + 1
	c.Sprint = cycle*ms.IntegrationEvery + c.SprintInCycle
	return c
}

// Label renders a classification for display.
func Label(c Classification) string {
	if c.IsIntegration() {
		return "Integration"
	}
	return fmt.Sprintf("Sprint %d · week %d", c.Sprint, c.WeekInSprint)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
