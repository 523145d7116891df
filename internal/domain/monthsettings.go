package domain

// DefaultSprintWeeks is the sprint length used when nothing else is configured.
const DefaultSprintWeeks = 4

// MonthSettings controls how a month's weeks are split into sprints and
// integration weeks.
type MonthSettings struct {
	SprintWeeks      int
	IntegrationEvery int
}

// DefaultMonthSettings returns the settings a month has before anyone edits them.
func DefaultMonthSettings(sprintWeeks int) MonthSettings {
	if sprintWeeks < 1 {
		sprintWeeks = DefaultSprintWeeks
	}
	return MonthSettings{SprintWeeks: sprintWeeks, IntegrationEvery: 1}
}

// Normalized clamps both values to at least 1.
func (m MonthSettings) Normalized() MonthSettings {
	if m.SprintWeeks < 1 {
		m.SprintWeeks = 1
	}
	if m.IntegrationEvery < 1 {
		m.IntegrationEvery = 1
	}
	return m
}

// CycleLength is the number of weeks in one sprint/integration cycle.
func (m MonthSettings) CycleLength() int {
	n := m.Normalized()
	return n.SprintWeeks*n.IntegrationEvery + 1
}

// MonthSettingsPatch carries a partial update; nil fields are kept.
type MonthSettingsPatch struct {
	SprintWeeks      *int
	IntegrationEvery *int
}
