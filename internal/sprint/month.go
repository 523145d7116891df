package sprint

import (
	"time"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/planner"
)

// WeekSource is the read side the projection needs. *planner.Store
// satisfies it.
type WeekSource interface {
	FindWeek(weekStart string) (domain.WeekPlan, bool)
	MonthSettings(monthKey string) (domain.MonthSettings, error)
}

// Row is one projected week.
type Row struct {
	WeekStart      string
	WeekEnd        string
	MonthKey       string
	Index          int // position within its month
	Classification Classification
	Label          string
	Planned        bool
	Stats          planner.WeekStats
}

// MonthWeeks lists the Mondays that fall in the month, oldest first. Index
// 0 is the month's first Monday, which anchors its cycle.
func MonthWeeks(monthKey string) ([]string, error) {
	first, err := domain.ParseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}
	offset := (8 - int(first.Weekday())) % 7 // days until Monday
	var weeks []string
	for d := time.Date(first.Year(), first.Month(), 1+offset, 0, 0, 0, 0, first.Location()); d.Month() == first.Month(); d = d.AddDate(0, 0, 7) {
		weeks = append(weeks, domain.FormatDate(d))
	}
	return weeks, nil
}

// ProjectMonth classifies every week of the month with that month's settings.
func ProjectMonth(monthKey string, src WeekSource) ([]Row, error) {
	settings, err := src.MonthSettings(monthKey)
	if err != nil {
		return nil, err
	}
	weeks, err := MonthWeeks(monthKey)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(weeks))
	for i, ws := range weeks {
		rows = append(rows, buildRow(ws, monthKey, i, settings, src))
	}
	return rows, nil
}

// Overview is the rolling window around the current week: before weeks
// back and after weeks ahead. Each row is classified within its own month.
func Overview(currentWeekStart string, before, after int, src WeekSource) ([]Row, error) {
	start, err := domain.NormalizeWeekStart(currentWeekStart)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, before+after+1)
	for n := -before; n <= after; n++ {
		ws, err := domain.AddWeeks(start, n)
		if err != nil {
			return nil, err
		}
		monthKey, err := domain.MonthKeyOf(ws)
		if err != nil {
			return nil, err
		}
		settings, err := src.MonthSettings(monthKey)
		if err != nil {
			return nil, err
		}
		t, err := domain.ParseDate(ws)
		if err != nil {
			return nil, err
		}
		rows = append(rows, buildRow(ws, monthKey, (t.Day()-1)/7, settings, src))
	}
	return rows, nil
}

func buildRow(weekStart, monthKey string, index int, settings domain.MonthSettings, src WeekSource) Row {
	c := Classify(index, settings)
	row := Row{
		WeekStart:      weekStart,
		WeekEnd:        weekEnd(weekStart),
		MonthKey:       monthKey,
		Index:          index,
		Classification: c,
		Label:          Label(c),
	}
	if w, ok := src.FindWeek(weekStart); ok {
		row.Planned = true
		row.Stats = planner.Stats(w)
	}
	return row
}

func weekEnd(weekStart string) string {
	end, err := domain.DateForDay(weekStart, domain.Sunday)
	if err != nil {
		return ""
	}
	return end
}
