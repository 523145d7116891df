package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/neurosprint/internal/domain"
)

// ExportWeek renders the single-week exchange document for plan. The output
// carries no ids and no completion state, so it imports as fresh tasks.
func ExportWeek(plan domain.WeekPlan) ([]byte, error) {
	option := plan.StructureOption
	doc := WeekImport{
		WeekStart: plan.WeekStart,
		Option:    &option,
		Tasks:     make([]TaskImport, 0, len(plan.Tasks)),
	}
	for _, t := range plan.Tasks {
		ti := TaskImport{
			Day:      string(t.Day),
			Project:  string(t.Category),
			Title:    t.Title,
			Duration: t.Duration,
		}
		if t.StartTime != nil {
			st := *t.StartTime
			ti.StartTime = &st
		}
		doc.Tasks = append(doc.Tasks, ti)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding week export: %w", err)
	}
	return data, nil
}

// EncodeSnapshot renders the full planner state.
func EncodeSnapshot(state domain.PlannerState) ([]byte, error) {
	doc := SnapshotDoc{
		Weeks:         make([]WeekPlanDoc, 0, len(state.Weeks)),
		MonthSettings: make(map[string]MonthSettingsDoc, len(state.MonthSettings)),
	}
	current := weekToDoc(state.CurrentWeek)
	doc.CurrentWeek = &current
	for _, w := range state.Weeks {
		doc.Weeks = append(doc.Weeks, weekToDoc(w))
	}
	for k, v := range state.MonthSettings {
		doc.MonthSettings[k] = MonthSettingsDoc{SprintWeeks: v.SprintWeeks, IntegrationEvery: v.IntegrationEvery}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses and validates a full backup. Nothing is returned
// unless the whole document is well formed. A persistence envelope of the
// form {"state": {...}, "version": n} is unwrapped first. If the archive
// holds a copy of the current week, the current week wins and the copy is
// dropped.
func DecodeSnapshot(data []byte) (domain.PlannerState, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.PlannerState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return domain.PlannerState{}, fmt.Errorf("%w: document must be a JSON object", ErrMalformed)
	}
	if _, ok := raw["currentWeek"]; !ok && isObject(raw["state"]) {
		data = raw["state"]
		raw = nil
		if err := json.Unmarshal(data, &raw); err != nil {
			return domain.PlannerState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	if !isObject(raw["currentWeek"]) {
		return domain.PlannerState{}, fmt.Errorf("%w: field \"currentWeek\" must be an object", ErrMalformed)
	}
	if !isArray(raw["weeks"]) {
		return domain.PlannerState{}, fmt.Errorf("%w: field \"weeks\" must be an array", ErrMalformed)
	}

	var doc SnapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.PlannerState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var res ValidationResult
	current, errs := weekFromDoc("currentWeek", *doc.CurrentWeek)
	res.Errors = append(res.Errors, errs...)

	state := domain.PlannerState{
		CurrentWeek:   current,
		Weeks:         make([]domain.WeekPlan, 0, len(doc.Weeks)),
		MonthSettings: make(map[string]domain.MonthSettings, len(doc.MonthSettings)),
	}
	seen := make(map[string]bool, len(doc.Weeks))
	for i, wd := range doc.Weeks {
		w, errs := weekFromDoc(fmt.Sprintf("weeks[%d]", i), wd)
		res.Errors = append(res.Errors, errs...)
		if seen[w.WeekStart] {
			res.addf("weeks[%d].weekStart: duplicate week %q", i, w.WeekStart)
			continue
		}
		seen[w.WeekStart] = true
		if w.WeekStart == current.WeekStart {
			continue
		}
		state.Weeks = append(state.Weeks, w)
	}
	for key, ms := range doc.MonthSettings {
		if _, err := domain.ParseMonthKey(key); err != nil {
			res.addf("monthSettings: %v", err)
			continue
		}
		if ms.SprintWeeks < 1 || ms.IntegrationEvery < 1 {
			res.addf("monthSettings[%s]: sprintWeeks and integrationEvery must be positive", key)
			continue
		}
		state.MonthSettings[key] = domain.MonthSettings{SprintWeeks: ms.SprintWeeks, IntegrationEvery: ms.IntegrationEvery}
	}

	if err := res.Err(); err != nil {
		return domain.PlannerState{}, err
	}
	return state, nil
}

// LoadSnapshot reads and decodes a backup file.
func LoadSnapshot(path string) (domain.PlannerState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.PlannerState{}, fmt.Errorf("reading backup file: %w", err)
	}
	return DecodeSnapshot(data)
}
