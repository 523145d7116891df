package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStartOf(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local), "2026-10-19"},  // Monday
		{time.Date(2026, 10, 21, 23, 0, 0, 0, time.Local), "2026-10-19"}, // Wednesday
		{time.Date(2026, 10, 25, 12, 0, 0, 0, time.Local), "2026-10-19"}, // Sunday
		{time.Date(2026, 11, 1, 0, 0, 0, 0, time.Local), "2026-10-26"},   // across month
		{time.Date(2027, 1, 2, 0, 0, 0, 0, time.Local), "2026-12-28"},    // across year
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WeekStartOf(tc.in), "in=%s", tc.in)
	}
}

func TestNormalizeWeekStart(t *testing.T) {
	got, err := NormalizeWeekStart("2026-10-23")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", got)

	_, err = NormalizeWeekStart("23/10/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestAddWeeks(t *testing.T) {
	got, err := AddWeeks("2026-12-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2027-01-04", got)

	got, err = AddWeeks("2026-03-02", -1)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-23", got)
}

func TestDateForDay(t *testing.T) {
	got, err := DateForDay("2026-10-19", Sunday)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-25", got)

	_, err = DateForDay("2026-10-19", Day("NOPE"))
	require.Error(t, err)
}

func TestMonthKey(t *testing.T) {
	key, err := MonthKeyOf("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, "2026-10", key)

	first, err := ParseMonthKey("2026-02")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Day())
	assert.Equal(t, time.February, first.Month())

	_, err = ParseMonthKey("2026-13")
	require.Error(t, err)
}
