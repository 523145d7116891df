package planner

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWeekJSON = `{
  "weekStart": "2026-10-26",
  "option": 2,
  "tasks": [
    {"day": "MON", "project": "F", "title": "Morning walk", "duration": 25, "startTime": "07:00"},
    {"day": "MON", "project": "D", "title": "Edit video", "duration": 50},
    {"day": "ВТ", "project": "Д", "title": "Write script", "duration": 60},
    {"day": "SUN", "project": "R", "title": "Weekly review", "duration": 30}
  ]
}`

func TestImportFromJSON_AppendsWithBatchOrder(t *testing.T) {
	s := newTestStore()
	existing := mustAdd(t, s, domain.Monday, "existing")

	res, err := s.ImportFromJSON([]byte(sampleWeekJSON))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Imported)
	assert.Equal(t, "2026-10-26", res.WeekStart)
	assert.Equal(t, 2, res.Option)

	cur := s.CurrentWeek()
	assert.Equal(t, "2026-10-26", cur.WeekStart)
	assert.Equal(t, 2, cur.StructureOption)
	require.Len(t, cur.Tasks, 5)
	assert.Equal(t, existing, cur.Tasks[0])

	imported := cur.Tasks[1:]
	assert.Equal(t, 0, imported[0].Order)
	assert.Equal(t, 1, imported[1].Order)
	assert.Equal(t, domain.Tuesday, imported[2].Day)
	assert.Equal(t, domain.CategoryDrive, imported[2].Category)
	assert.Equal(t, 0, imported[2].Order)
	for _, task := range imported {
		assert.False(t, task.Completed)
		assert.NotEqual(t, existing.ID, task.ID)
	}
}

func TestImportFromJSON_KeepsHeaderWhenAbsent(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.SetStructureOption(4))

	_, err := s.ImportFromJSON([]byte(`{"tasks":[{"day":"FRI","project":"J","title":"Cinema","duration":120}]}`))
	require.NoError(t, err)

	cur := s.CurrentWeek()
	assert.Equal(t, "2026-10-19", cur.WeekStart)
	assert.Equal(t, 4, cur.StructureOption)
}

func TestImportFromJSON_MissingTitleLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore()
	mustAdd(t, s, domain.Monday, "a")
	before := s.CurrentWeek()
	calls := 0
	s.OnChange(func(State) { calls++ })

	_, err := s.ImportFromJSON([]byte(`{"weekStart":"2026-11-02","tasks":[
		{"day":"MON","project":"F","title":"ok","duration":10},
		{"day":"TUE","project":"D","duration":20}
	]}`))
	require.ErrorIs(t, err, importer.ErrValidation)
	assert.Contains(t, err.Error(), "tasks[1].title is required")
	assert.Equal(t, before, s.CurrentWeek())
	assert.Zero(t, calls)
}

func TestImportFromJSON_ShapeErrors(t *testing.T) {
	s := newTestStore()
	_, err := s.ImportFromJSON([]byte(`{"tasks": "nope"}`))
	require.ErrorIs(t, err, importer.ErrValidation)

	_, err = s.ImportFromJSON([]byte(`{{`))
	require.ErrorIs(t, err, importer.ErrMalformed)
	assert.Empty(t, s.CurrentWeek().Tasks)
}

func TestImportFromJSON_WeekConflict(t *testing.T) {
	s := newTestStore()
	_, err := s.GoToWeek("2026-10-26")
	require.NoError(t, err)
	_, err = s.GoToWeek("2026-10-19")
	require.NoError(t, err)

	_, err = s.ImportFromJSON([]byte(sampleWeekJSON))
	require.ErrorIs(t, err, ErrWeekConflict)
	assert.Equal(t, "2026-10-19", s.CurrentWeek().WeekStart)
	assert.Empty(t, s.CurrentWeek().Tasks)
}

type taskTuple struct {
	Day       domain.Day
	Category  domain.Category
	Title     string
	Duration  int
	StartTime string
}

func tuples(tasks []domain.Task) []taskTuple {
	out := make([]taskTuple, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskTuple{t.Day, t.Category, t.Title, t.Duration, derefStr(t.StartTime)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Title < out[j].Title
	})
	return out
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func TestExportImportWeek_RoundTrip(t *testing.T) {
	src := newTestStore()
	_, err := src.ImportFromJSON([]byte(sampleWeekJSON))
	require.NoError(t, err)
	mustAdd(t, src, domain.Saturday, "extra")
	_, err = src.ToggleTaskComplete(src.CurrentWeek().Tasks[0].ID)
	require.NoError(t, err)

	data, err := src.ExportCurrentWeek()
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	assert.NotContains(t, generic, "id")

	dst := newTestStore()
	_, err = dst.ImportFromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, tuples(src.CurrentWeek().Tasks), tuples(dst.CurrentWeek().Tasks))
	assert.Equal(t, src.CurrentWeek().WeekStart, dst.CurrentWeek().WeekStart)
	assert.Equal(t, src.CurrentWeek().StructureOption, dst.CurrentWeek().StructureOption)
}

func TestExportImportAll_RoundTrip(t *testing.T) {
	src := newTestStore()
	mustAdd(t, src, domain.Monday, "a")
	_, err := src.GoToWeek("2026-10-26")
	require.NoError(t, err)
	mustAdd(t, src, domain.Sunday, "b")
	require.NoError(t, src.SetBudgetHours(7))
	require.NoError(t, src.SaveReflection(domain.WeeklyReflection{Adjustments: "more sleep", Saved: true}))
	_, err = src.SetMonthSettings("2026-10", domain.MonthSettingsPatch{SprintWeeks: domain.Ptr(3)})
	require.NoError(t, err)

	data, err := src.ExportAllData()
	require.NoError(t, err)

	dst := New()
	require.NoError(t, dst.ImportAllData(data))
	assert.Equal(t, src.State(), dst.State())
}

func TestImportAllData_InvalidLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore()
	mustAdd(t, s, domain.Monday, "a")
	before := s.State()

	for _, input := range []string{`nope`, `{"weeks":[]}`, `{"currentWeek":{},"weeks":"x"}`} {
		require.Error(t, s.ImportAllData([]byte(input)), input)
	}
	assert.Equal(t, before, s.State())
}
