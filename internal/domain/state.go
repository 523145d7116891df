package domain

// PlannerState is the whole persisted planner: the week being edited, every
// other week, and the per-month sprint settings. The current week is never
// also present in Weeks while it is current.
type PlannerState struct {
	CurrentWeek   WeekPlan
	Weeks         []WeekPlan
	MonthSettings map[string]MonthSettings
}

// Clone deep-copies the state.
func (s PlannerState) Clone() PlannerState {
	c := PlannerState{
		CurrentWeek:   s.CurrentWeek.Clone(),
		Weeks:         make([]WeekPlan, len(s.Weeks)),
		MonthSettings: make(map[string]MonthSettings, len(s.MonthSettings)),
	}
	for i, w := range s.Weeks {
		c.Weeks[i] = w.Clone()
	}
	for k, v := range s.MonthSettings {
		c.MonthSettings[k] = v
	}
	return c
}

// ArchiveIndex returns the index in Weeks of the plan with weekStart, or -1.
func (s PlannerState) ArchiveIndex(weekStart string) int {
	for i := range s.Weeks {
		if s.Weeks[i].WeekStart == weekStart {
			return i
		}
	}
	return -1
}
