package planner

import (
	"fmt"

	"github.com/alexanderramin/neurosprint/internal/domain"
)

// MonthSettings returns the settings stored for monthKey, or the defaults
// when the month was never edited. Reading never persists the default.
func (s *Store) MonthSettings(monthKey string) (domain.MonthSettings, error) {
	if _, err := domain.ParseMonthKey(monthKey); err != nil {
		return domain.MonthSettings{}, fmt.Errorf("%w: %v", ErrInvalidMonthKey, err)
	}
	var out domain.MonthSettings
	s.read(func(st *domain.PlannerState) {
		out = s.monthSettingsLocked(st, monthKey)
	})
	return out, nil
}

// SetMonthSettings merges patch into the month's settings, creating the
// entry from the defaults if needed.
func (s *Store) SetMonthSettings(monthKey string, patch domain.MonthSettingsPatch) (domain.MonthSettings, error) {
	if _, err := domain.ParseMonthKey(monthKey); err != nil {
		return domain.MonthSettings{}, fmt.Errorf("%w: %v", ErrInvalidMonthKey, err)
	}
	if patch.SprintWeeks != nil && *patch.SprintWeeks < 1 {
		return domain.MonthSettings{}, fmt.Errorf("%w: sprint weeks must be at least 1, got %d", ErrInvalidSettings, *patch.SprintWeeks)
	}
	if patch.IntegrationEvery != nil && *patch.IntegrationEvery < 1 {
		return domain.MonthSettings{}, fmt.Errorf("%w: integration every must be at least 1, got %d", ErrInvalidSettings, *patch.IntegrationEvery)
	}

	var out domain.MonthSettings
	err := s.mutate(func(st *domain.PlannerState) error {
		ms := s.monthSettingsLocked(st, monthKey)
		ms.SprintWeeks = domain.IntFromPtrWithDefault(ms.SprintWeeks, patch.SprintWeeks)
		ms.IntegrationEvery = domain.IntFromPtrWithDefault(ms.IntegrationEvery, patch.IntegrationEvery)
		st.MonthSettings[monthKey] = ms
		out = ms
		return nil
	})
	return out, err
}

// SettingsForWeek returns the settings of the month weekStart falls in.
func (s *Store) SettingsForWeek(weekStart string) (domain.MonthSettings, error) {
	key, err := domain.MonthKeyOf(weekStart)
	if err != nil {
		return domain.MonthSettings{}, fmt.Errorf("%w: %v", ErrInvalidWeekStart, err)
	}
	return s.MonthSettings(key)
}

func (s *Store) monthSettingsLocked(st *domain.PlannerState, monthKey string) domain.MonthSettings {
	if ms, ok := st.MonthSettings[monthKey]; ok {
		return ms
	}
	return domain.DefaultMonthSettings(s.defaultSprintWeeks)
}
