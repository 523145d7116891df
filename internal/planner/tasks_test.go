package planner

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask_AppendsToEndOfDay(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, domain.Monday, "a")
	b := mustAdd(t, s, domain.Monday, "b")
	c := mustAdd(t, s, domain.Tuesday, "c")

	assert.Equal(t, 0, a.Order)
	assert.Equal(t, 1, b.Order)
	assert.Equal(t, 0, c.Order)
	assert.False(t, a.Completed)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddTask_StartTime(t *testing.T) {
	s := newTestStore()
	task, err := s.AddTask(domain.NewTaskData{
		Category: domain.CategoryFoundation, Title: "walk", Duration: 25,
		Day: domain.Wednesday, StartTime: domain.Ptr("07:30"),
	})
	require.NoError(t, err)
	require.NotNil(t, task.StartTime)
	assert.Equal(t, "07:30", *task.StartTime)

	empty, err := s.AddTask(domain.NewTaskData{
		Category: domain.CategoryFoundation, Title: "any time", Duration: 25,
		Day: domain.Wednesday, StartTime: domain.Ptr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, empty.StartTime)
}

func TestAddTask_RejectsStructurallyInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		data domain.NewTaskData
	}{
		{"unknown day", domain.NewTaskData{Category: domain.CategoryJoy, Title: "x", Duration: 5, Day: "XYZ"}},
		{"unknown category", domain.NewTaskData{Category: "Q", Title: "x", Duration: 5, Day: domain.Monday}},
		{"bad start time", domain.NewTaskData{Category: domain.CategoryJoy, Title: "x", Duration: 5, Day: domain.Monday, StartTime: domain.Ptr("7pm")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			_, err := s.AddTask(tc.data)
			require.ErrorIs(t, err, ErrInvalidTask)
			assert.Empty(t, s.CurrentWeek().Tasks)
		})
	}
}

func TestAddTask_AfterDeleteDoesNotCollide(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, domain.Monday, "a")
	mustAdd(t, s, domain.Monday, "b")
	mustAdd(t, s, domain.Monday, "c")
	require.NoError(t, s.DeleteTask(a.ID))

	d := mustAdd(t, s, domain.Monday, "d")
	assert.Equal(t, 3, d.Order)
	requireStrictlyIncreasing(t, s)
}

func TestNextOrder(t *testing.T) {
	task := func(day domain.Day, order int) domain.Task {
		return domain.Task{ID: fmt.Sprintf("%v-%d", day, order), Day: day, Order: order}
	}
	tests := []struct {
		name  string
		tasks []domain.Task
		want  int
	}{
		{"empty day", []domain.Task{task(domain.Tuesday, 4)}, 0},
		{"dense day", []domain.Task{task(domain.Monday, 0), task(domain.Monday, 1)}, 2},
		{"gap keeps largest plus one", []domain.Task{task(domain.Monday, 5), task(domain.Monday, 9)}, 10},
		{"count wins over low orders", []domain.Task{task(domain.Monday, -3), task(domain.Monday, -2)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := domain.WeekPlan{Tasks: tt.tasks}
			assert.Equal(t, tt.want, nextOrder(w, domain.Monday))
		})
	}
}

func TestUpdateTask(t *testing.T) {
	s := newTestStore()
	task, err := s.AddTask(domain.NewTaskData{
		Category: domain.CategoryDrive, Title: "draft", Duration: 50,
		Day: domain.Monday, StartTime: domain.Ptr("09:00"),
	})
	require.NoError(t, err)

	updated, err := s.UpdateTask(task.ID, domain.TaskPatch{
		Title:     domain.Ptr("final draft"),
		Category:  domain.Ptr(domain.CategoryJoy),
		StartTime: domain.Ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "final draft", updated.Title)
	assert.Equal(t, domain.CategoryJoy, updated.Category)
	assert.Equal(t, 50, updated.Duration)
	assert.Nil(t, updated.StartTime)
	assert.Equal(t, domain.Monday, updated.Day)
	assert.Equal(t, 0, updated.Order)
}

func TestUpdateTask_NotFound(t *testing.T) {
	s := newTestStore()
	mustAdd(t, s, domain.Monday, "a")
	before := s.CurrentWeek()

	_, err := s.UpdateTask("nope", domain.TaskPatch{Title: domain.Ptr("x")})
	require.ErrorIs(t, err, ErrTaskNotFound)
	assert.Contains(t, err.Error(), "nope")
	assert.Equal(t, before, s.CurrentWeek())
}

func TestUpdateTask_RejectsInvalidPatch(t *testing.T) {
	s := newTestStore()
	task := mustAdd(t, s, domain.Monday, "a")

	_, err := s.UpdateTask(task.ID, domain.TaskPatch{StartTime: domain.Ptr("24:00")})
	require.ErrorIs(t, err, ErrInvalidTask)
	_, err = s.UpdateTask(task.ID, domain.TaskPatch{Category: domain.Ptr(domain.Category("Z"))})
	require.ErrorIs(t, err, ErrInvalidTask)
}

func TestDeleteTask_LeavesGap(t *testing.T) {
	s := newTestStore()
	mustAdd(t, s, domain.Monday, "a")
	b := mustAdd(t, s, domain.Monday, "b")
	mustAdd(t, s, domain.Monday, "c")

	require.NoError(t, s.DeleteTask(b.ID))
	assert.Equal(t, []int{0, 2}, dayOrders(s, domain.Monday))
}

func TestDeleteTask_UnknownIDLeavesTasksUnchanged(t *testing.T) {
	s := newTestStore()
	mustAdd(t, s, domain.Monday, "a")
	mustAdd(t, s, domain.Tuesday, "b")
	before, err := s.ExportAllData()
	require.NoError(t, err)

	err = s.DeleteTask("missing")
	require.ErrorIs(t, err, ErrTaskNotFound)

	after, err := s.ExportAllData()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMoveTask_AcrossDays(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, domain.Monday, "a")
	b := mustAdd(t, s, domain.Tuesday, "b")
	c := mustAdd(t, s, domain.Tuesday, "c")

	require.NoError(t, s.MoveTask(a.ID, domain.Tuesday, 1))

	assert.Equal(t, []string{b.ID, a.ID, c.ID}, dayIDs(s, domain.Tuesday))
	assert.Equal(t, []int{0, 1, 2}, dayOrders(s, domain.Tuesday))
	assert.Empty(t, dayIDs(s, domain.Monday))
}

func TestMoveTask_SourceDayKeepsGap(t *testing.T) {
	s := newTestStore()
	mustAdd(t, s, domain.Monday, "a")
	b := mustAdd(t, s, domain.Monday, "b")
	mustAdd(t, s, domain.Monday, "c")

	require.NoError(t, s.MoveTask(b.ID, domain.Friday, 0))
	assert.Equal(t, []int{0, 2}, dayOrders(s, domain.Monday))
	assert.Equal(t, []int{0}, dayOrders(s, domain.Friday))
}

func TestMoveTask_WithinDay(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"first to last", 0, 2, []string{"b", "c", "a"}},
		{"last to first", 2, 0, []string{"c", "a", "b"}},
		{"middle down", 1, 2, []string{"a", "c", "b"}},
		{"same place", 1, 1, []string{"a", "b", "c"}},
		{"past end", 0, 10, []string{"b", "c", "a"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			byTitle := map[string]string{}
			for _, title := range []string{"a", "b", "c"} {
				byTitle[mustAdd(t, s, domain.Thursday, title).ID] = title
			}
			id := dayIDs(s, domain.Thursday)[tc.from]

			require.NoError(t, s.MoveTask(id, domain.Thursday, tc.to))

			var got []string
			for _, taskID := range dayIDs(s, domain.Thursday) {
				got = append(got, byTitle[taskID])
			}
			assert.Equal(t, tc.want, got)
			requireStrictlyIncreasing(t, s)
		})
	}
}

func TestMoveTask_NegativeOrderClampsToFront(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, domain.Monday, "a")
	b := mustAdd(t, s, domain.Tuesday, "b")

	require.NoError(t, s.MoveTask(b.ID, domain.Monday, -3))
	assert.Equal(t, []string{b.ID, a.ID}, dayIDs(s, domain.Monday))
}

func TestMoveTask_Errors(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, domain.Monday, "a")

	require.ErrorIs(t, s.MoveTask("missing", domain.Monday, 0), ErrTaskNotFound)
	require.ErrorIs(t, s.MoveTask(a.ID, domain.Day("NOPE"), 0), ErrInvalidTask)
	assert.Equal(t, []string{a.ID}, dayIDs(s, domain.Monday))
}

func TestToggleTaskComplete(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, domain.Monday, "a")

	done, err := s.ToggleTaskComplete(a.ID)
	require.NoError(t, err)
	assert.True(t, done)

	done, err = s.ToggleTaskComplete(a.ID)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 0, s.CurrentWeek().Tasks[0].Order)

	_, err = s.ToggleTaskComplete("missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestReorderTasksInDay_Permutation(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, domain.Saturday, "a")
	b := mustAdd(t, s, domain.Saturday, "b")
	c := mustAdd(t, s, domain.Saturday, "c")
	other := mustAdd(t, s, domain.Sunday, "other")

	want := []string{c.ID, a.ID, b.ID}
	require.NoError(t, s.ReorderTasksInDay(domain.Saturday, want))

	assert.Equal(t, want, dayIDs(s, domain.Saturday))
	assert.Equal(t, []int{0, 1, 2}, dayOrders(s, domain.Saturday))
	assert.Equal(t, []string{other.ID}, dayIDs(s, domain.Sunday))
}

func TestReorderTasksInDay_PartialAndForeignIDs(t *testing.T) {
	s := newTestStore()
	a := mustAdd(t, s, domain.Saturday, "a")
	b := mustAdd(t, s, domain.Saturday, "b")
	c := mustAdd(t, s, domain.Saturday, "c")
	other := mustAdd(t, s, domain.Sunday, "other")

	require.NoError(t, s.ReorderTasksInDay(domain.Saturday, []string{c.ID, other.ID, "ghost", c.ID}))

	assert.Equal(t, []string{c.ID, a.ID, b.ID}, dayIDs(s, domain.Saturday))
	assert.Equal(t, 0, s.CurrentWeek().Tasks[3].Order, "task of another day untouched")
	requireStrictlyIncreasing(t, s)
}

func TestDuplicateTask(t *testing.T) {
	s := newTestStore()
	src, err := s.AddTask(domain.NewTaskData{
		Category: domain.CategoryJoy, Title: "guitar", Duration: 40,
		Day: domain.Monday, StartTime: domain.Ptr("20:00"), Completed: true,
	})
	require.NoError(t, err)
	mustAdd(t, s, domain.Wednesday, "existing")

	dup, err := s.DuplicateTask(src.ID, domain.Wednesday)
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "guitar", dup.Title)
	assert.Equal(t, domain.CategoryJoy, dup.Category)
	assert.Equal(t, 40, dup.Duration)
	require.NotNil(t, dup.StartTime)
	assert.Equal(t, "20:00", *dup.StartTime)
	assert.False(t, dup.Completed)
	assert.Equal(t, domain.Wednesday, dup.Day)
	assert.Equal(t, 1, dup.Order)
	assert.Len(t, s.CurrentWeek().Tasks, 3)

	_, err = s.DuplicateTask("missing", domain.Monday)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
