package domain

import (
	"fmt"
	"regexp"
)

var startTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Task is a single schedulable unit inside a week.
//
// Order is the task's position within its day. Across the tasks of one day
// the values are strictly increasing once sorted; gaps are allowed after a
// delete or a move out of the day. A task appended to a day takes
// max(count, largest order + 1).
type Task struct {
	ID        string
	Category  Category
	Title     string
	Duration  int     // minutes
	StartTime *string // "HH:MM", nil means any time
	Day       Day
	Completed bool
	Order     int
}

// ValidateStartTime checks an optional 24h "HH:MM" value.
func ValidateStartTime(s string) error {
	if !startTimePattern.MatchString(s) {
		return fmt.Errorf("start time %q must be HH:MM (24h)", s)
	}
	return nil
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	c := t
	if t.StartTime != nil {
		st := *t.StartTime
		c.StartTime = &st
	}
	return c
}

// TaskPatch carries the fields UpdateTask may replace. Nil fields are left
// alone. A non-nil StartTime pointing at "" clears the start time.
// Day and order are deliberately absent: moving between days goes
// through MoveTask so ordering stays consistent.
type TaskPatch struct {
	Category  *Category
	Title     *string
	Duration  *int
	StartTime *string
	Completed *bool
}

// Apply writes the non-nil patch fields onto t.
func (p TaskPatch) Apply(t *Task) {
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.StartTime != nil {
		if *p.StartTime == "" {
			t.StartTime = nil
		} else {
			st := *p.StartTime
			t.StartTime = &st
		}
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Category == nil && p.Title == nil && p.Duration == nil &&
		p.StartTime == nil && p.Completed == nil
}

// NewTaskData is the caller-supplied payload for creating a task; the store
// assigns ID and Order.
type NewTaskData struct {
	Category  Category
	Title     string
	Duration  int
	StartTime *string
	Day       Day
	Completed bool
}
