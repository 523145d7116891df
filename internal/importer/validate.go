package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/neurosprint/internal/domain"
)

var (
	// ErrValidation marks a document that parsed but failed field checks.
	ErrValidation = errors.New("import validation failed")

	// ErrMalformed marks a document that is not JSON of the expected shape.
	ErrMalformed = errors.New("malformed document")
)

// ValidationResult collects every problem found in a document.
type ValidationResult struct {
	Errors []error
}

// OK reports whether the document passed validation.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Err folds the collected errors into one error wrapping ErrValidation,
// or returns nil when the document is valid.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	msg := fmt.Sprintf("(%d errors):", len(r.Errors))
	if len(r.Errors) == 1 {
		msg = ":"
	}
	for _, e := range r.Errors {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w %s", ErrValidation, msg)
}

func (r *ValidationResult) addf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Errorf(format, args...))
}

// ParseWeekImport decodes a week document and checks its shape: it must be
// a JSON object whose "tasks" member is present and an array. Field-level
// checks are left to ValidateWeekImport.
func ParseWeekImport(data []byte) (*WeekImport, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document must be a JSON object", ErrMalformed)
	}
	if !isArray(raw["tasks"]) {
		return nil, fmt.Errorf("%w: field \"tasks\" must be an array", ErrValidation)
	}

	var doc WeekImport
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &doc, nil
}

// ValidateWeekImport checks every task entry and the optional header fields.
func ValidateWeekImport(doc *WeekImport) ValidationResult {
	var res ValidationResult
	if doc == nil || doc.Tasks == nil {
		res.addf("field \"tasks\" must be an array")
		return res
	}

	if doc.WeekStart != "" {
		if _, err := domain.ParseDate(doc.WeekStart); err != nil {
			res.addf("weekStart: %v", err)
		}
	}
	if doc.Option != nil && !domain.ValidStructureOption(*doc.Option) {
		res.addf("option: must be between %d and %d, got %d",
			domain.MinStructureOption, domain.MaxStructureOption, *doc.Option)
	}

	for i, t := range doc.Tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if strings.TrimSpace(t.Day) == "" {
			res.addf("%s.day is required", prefix)
		} else if _, err := domain.ParseDay(t.Day); err != nil {
			res.addf("%s.day: %v", prefix, err)
		}

		if strings.TrimSpace(t.Project) == "" {
			res.addf("%s.project is required", prefix)
		} else if _, err := domain.ParseCategory(t.Project); err != nil {
			res.addf("%s.project: %v", prefix, err)
		}

		if strings.TrimSpace(t.Title) == "" {
			res.addf("%s.title is required", prefix)
		}

		switch {
		case t.Duration == 0:
			res.addf("%s.duration is required", prefix)
		case t.Duration < 0:
			res.addf("%s.duration must be positive, got %d", prefix, t.Duration)
		}

		if t.StartTime != nil && *t.StartTime != "" {
			if err := domain.ValidateStartTime(*t.StartTime); err != nil {
				res.addf("%s.startTime: %v", prefix, err)
			}
		}
	}
	return res
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
