package repository

import (
	"time"
)

// parseTime parses a stored RFC3339 timestamp, returning the zero time if
// the value is empty or malformed.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatTime converts a time to the UTC RFC3339 form stored in SQLite.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
