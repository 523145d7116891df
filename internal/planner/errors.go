package planner

import "errors"

var (
	// ErrTaskNotFound is returned by task-id operations when the id is not
	// in the current week. The store is left untouched.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidWeekStart is returned when a navigation target is not a date.
	ErrInvalidWeekStart = errors.New("invalid week start")

	// ErrInvalidMonthKey is returned for month keys that are not YYYY-MM.
	ErrInvalidMonthKey = errors.New("invalid month key")

	// ErrInvalidTask is returned when a task payload would break the week's
	// structure (unknown day or category, malformed start time).
	ErrInvalidTask = errors.New("invalid task")

	// ErrInvalidSettings is returned for out-of-range week or month settings.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrWeekConflict is returned when an import would move the current week
	// onto a week that already exists in the archive.
	ErrWeekConflict = errors.New("week already exists")
)
