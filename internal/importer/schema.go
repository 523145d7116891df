package importer

import (
	"fmt"
	"os"
)

// WeekImport is the single-week exchange document. It is what an AI
// assistant is asked to produce and what ExportWeek writes.
type WeekImport struct {
	WeekStart string       `json:"weekStart,omitempty"`
	Option    *int         `json:"option,omitempty"`
	Tasks     []TaskImport `json:"tasks"`
}

// TaskImport is one task in a week document. Identity, order, and
// completion are not part of the exchange format.
type TaskImport struct {
	Day       string  `json:"day"`
	Project   string  `json:"project"`
	Title     string  `json:"title"`
	Duration  int     `json:"duration"`
	StartTime *string `json:"startTime,omitempty"`
}

// SnapshotDoc is the full-fidelity backup of the planner.
type SnapshotDoc struct {
	CurrentWeek   *WeekPlanDoc                `json:"currentWeek"`
	Weeks         []WeekPlanDoc               `json:"weeks"`
	MonthSettings map[string]MonthSettingsDoc `json:"monthSettings,omitempty"`
}

// WeekPlanDoc is the wire form of a domain.WeekPlan.
type WeekPlanDoc struct {
	ID              string        `json:"id"`
	WeekStart       string        `json:"weekStart"`
	StructureOption int           `json:"structureOption"`
	Tasks           []TaskDoc     `json:"tasks"`
	Reflection      ReflectionDoc `json:"reflection"`
	BudgetHours     *int          `json:"budgetHours,omitempty"`
}

// TaskDoc is the wire form of a domain.Task.
type TaskDoc struct {
	ID        string  `json:"id"`
	Project   string  `json:"project"`
	Title     string  `json:"title"`
	Duration  int     `json:"duration"`
	StartTime *string `json:"startTime,omitempty"`
	Day       string  `json:"day"`
	Completed bool    `json:"completed"`
	Order     int     `json:"order"`
}

// ReflectionDoc is the wire form of a domain.WeeklyReflection.
type ReflectionDoc struct {
	Done        NotesDoc `json:"done"`
	NotDone     NotesDoc `json:"notDone"`
	Adjustments string   `json:"adjustments"`
	Saved       bool     `json:"saved,omitempty"`
}

type NotesDoc struct {
	Foundation string `json:"foundation"`
	Drive      string `json:"drive"`
	Joy        string `json:"joy"`
}

type MonthSettingsDoc struct {
	SprintWeeks      int `json:"sprintWeeks"`
	IntegrationEvery int `json:"integrationEvery"`
}

// LoadWeekImport reads and parses a week document from disk.
func LoadWeekImport(path string) (*WeekImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return ParseWeekImport(data)
}
