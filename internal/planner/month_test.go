package planner

import (
	"testing"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthSettings_DefaultNotPersisted(t *testing.T) {
	s := newTestStore(WithDefaultSprintWeeks(3))
	calls := 0
	s.OnChange(func(State) { calls++ })

	ms, err := s.MonthSettings("2026-10")
	require.NoError(t, err)
	assert.Equal(t, domain.MonthSettings{SprintWeeks: 3, IntegrationEvery: 1}, ms)
	assert.Empty(t, s.State().MonthSettings)
	assert.Zero(t, calls)
}

func TestSetMonthSettings_MergesPatch(t *testing.T) {
	s := newTestStore()

	ms, err := s.SetMonthSettings("2026-10", domain.MonthSettingsPatch{SprintWeeks: domain.Ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, domain.MonthSettings{SprintWeeks: 2, IntegrationEvery: 1}, ms)

	ms, err = s.SetMonthSettings("2026-10", domain.MonthSettingsPatch{IntegrationEvery: domain.Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, domain.MonthSettings{SprintWeeks: 2, IntegrationEvery: 3}, ms)

	got, err := s.MonthSettings("2026-10")
	require.NoError(t, err)
	assert.Equal(t, ms, got)

	other, err := s.MonthSettings("2026-11")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMonthSettings(domain.DefaultSprintWeeks), other)
}

func TestSetMonthSettings_Rejects(t *testing.T) {
	s := newTestStore()

	_, err := s.SetMonthSettings("October", domain.MonthSettingsPatch{SprintWeeks: domain.Ptr(2)})
	require.ErrorIs(t, err, ErrInvalidMonthKey)

	_, err = s.SetMonthSettings("2026-10", domain.MonthSettingsPatch{SprintWeeks: domain.Ptr(0)})
	require.ErrorIs(t, err, ErrInvalidSettings)

	_, err = s.SetMonthSettings("2026-10", domain.MonthSettingsPatch{IntegrationEvery: domain.Ptr(-1)})
	require.ErrorIs(t, err, ErrInvalidSettings)

	assert.Empty(t, s.State().MonthSettings)
}

func TestSettingsForWeek(t *testing.T) {
	s := newTestStore()
	_, err := s.SetMonthSettings("2026-11", domain.MonthSettingsPatch{SprintWeeks: domain.Ptr(2)})
	require.NoError(t, err)

	ms, err := s.SettingsForWeek("2026-11-30")
	require.NoError(t, err)
	assert.Equal(t, 2, ms.SprintWeeks)
}
