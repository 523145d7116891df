package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/alexanderramin/neurosprint/internal/repository"
	"github.com/alexanderramin/neurosprint/internal/service"
	"github.com/alexanderramin/neurosprint/internal/sprint"
	"github.com/alexanderramin/neurosprint/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func sampleWeek() domain.WeekPlan {
	return testutil.NewTestWeek(testutil.TestMonday,
		testutil.WithTasks(
			testutil.NewTestTask("Write outline", testutil.WithDay(domain.Monday), testutil.WithStartTime("09:00"), testutil.WithDuration(45)),
			testutil.NewTestTask("Stretch", testutil.WithDay(domain.Monday), testutil.WithCategory(domain.CategoryFoundation), testutil.WithOrder(1), testutil.WithCompleted()),
			testutil.NewTestTask("Board games", testutil.WithDay(domain.Saturday), testutil.WithCategory(domain.CategoryJoy), testutil.WithDuration(120)),
		),
	)
}

func TestFormatTaskLine(t *testing.T) {
	task := testutil.NewTestTask("Write outline", testutil.WithStartTime("09:00"), testutil.WithDuration(90))
	out := FormatTaskLine(task)

	assert.Contains(t, out, "[D]")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "Write outline")
	assert.Contains(t, out, "(1h 30m)")
	assert.Contains(t, out, "○")
}

func TestFormatWeek(t *testing.T) {
	w := sampleWeek()
	out := FormatWeek(w, sprint.Classify(0, domain.DefaultMonthSettings(4)))

	assert.Contains(t, out, "WEEK OF 2026-10-19")
	assert.Contains(t, out, "Oct 19 – Oct 25, 2026")
	assert.Contains(t, out, "Sprint 1 · week 1")
	assert.Contains(t, out, "Write outline")
	assert.Contains(t, out, "Board games")
	assert.Contains(t, out, "1/3 tasks")
	assert.Less(t, strings.Index(out, "Write outline"), strings.Index(out, "Stretch"), "tasks render in day order")
	assert.Less(t, strings.Index(out, "Stretch"), strings.Index(out, "Board games"))
}

func TestFormatWeek_OverBudget(t *testing.T) {
	w := testutil.NewTestWeek(testutil.TestMonday,
		testutil.WithBudgetHours(1),
		testutil.WithTasks(testutil.NewTestTask("Marathon", testutil.WithDuration(90))),
	)
	out := FormatWeek(w, sprint.Classify(0, domain.DefaultMonthSettings(4)))
	assert.Contains(t, out, "Over budget by 30m")
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(planner.Stats(sampleWeek()))

	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "Joy")
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "1/3 tasks")
}

func TestFormatReflection(t *testing.T) {
	empty := FormatReflection(testutil.TestMonday, domain.EmptyReflection())
	assert.Contains(t, empty, "Nothing written yet.")

	r := domain.WeeklyReflection{
		Done:        domain.CategoryNotes{Drive: "Shipped the draft"},
		Adjustments: "Start earlier",
		Saved:       true,
	}
	out := FormatReflection(testutil.TestMonday, r)
	assert.Contains(t, out, "Shipped the draft")
	assert.Contains(t, out, "Start earlier")
	assert.Contains(t, out, "Saved")
}

func TestFormatMonth(t *testing.T) {
	store := testutil.NewTestStore()
	_, err := store.SetMonthSettings("2026-10", domain.MonthSettingsPatch{SprintWeeks: domain.Ptr(2)})
	if !assert.NoError(t, err) {
		return
	}
	rows, err := sprint.ProjectMonth("2026-10", store)
	if !assert.NoError(t, err) {
		return
	}
	settings, _ := store.MonthSettings("2026-10")
	out := FormatMonth("2026-10", settings, rows, testutil.TestMonday)

	assert.Contains(t, out, "MONTH 2026-10")
	assert.Contains(t, out, "Sprint weeks 2")
	assert.Contains(t, out, "Integration")
	assert.Contains(t, out, "▶")
}

func TestFormatBackupsAndHistory(t *testing.T) {
	now := time.Date(2026, 10, 21, 12, 0, 0, 0, time.Local)
	assert.Contains(t, FormatBackups(nil, now), "No backups yet.")
	assert.Contains(t, FormatHistory(nil, now), "No earlier revisions.")

	out := FormatBackups([]service.BackupInfo{{
		Path:      "/tmp/neurosprint-backup-20261021-1155.json",
		Timestamp: now.Add(-5 * time.Minute),
		Size:      2048,
	}}, now)
	assert.Contains(t, out, "neurosprint-backup-20261021-1155.json")
	assert.Contains(t, out, "5m ago")

	hist := FormatHistory([]repository.HistoryEntry{{Revision: 7, Document: []byte("{}"), SavedAt: now.Add(-2 * time.Hour)}}, now)
	assert.Contains(t, hist, "7")
	assert.Contains(t, hist, "2h ago")
}
