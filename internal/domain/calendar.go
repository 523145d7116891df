package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseDate parses a YYYY-MM-DD calendar date as a local-midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekStartOf returns the Monday of the week containing t as YYYY-MM-DD.
func WeekStartOf(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday := time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
	return FormatDate(monday)
}

// NormalizeWeekStart snaps any YYYY-MM-DD date to the Monday of its week.
func NormalizeWeekStart(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return WeekStartOf(t), nil
}

// AddWeeks shifts a YYYY-MM-DD date by n weeks. Calendar arithmetic is done
// on the date fields so DST transitions never shift the day.
func AddWeeks(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(time.Date(t.Year(), t.Month(), t.Day()+7*n, 0, 0, 0, 0, t.Location())), nil
}

// DateForDay returns the date of day within the week starting at weekStart.
func DateForDay(weekStart string, day Day) (string, error) {
	t, err := ParseDate(weekStart)
	if err != nil {
		return "", err
	}
	idx := day.Index()
	if idx < 0 {
		return "", fmt.Errorf("unknown day %q", day)
	}
	return FormatDate(time.Date(t.Year(), t.Month(), t.Day()+idx, 0, 0, 0, 0, t.Location())), nil
}

// MonthKeyOf returns the YYYY-MM key of a YYYY-MM-DD date.
func MonthKeyOf(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format(MonthLayout), nil
}

// ParseMonthKey validates a YYYY-MM key and returns the first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q (expected YYYY-MM)", key)
	}
	return t, nil
}
