package planner

import (
	"fmt"

	"github.com/alexanderramin/neurosprint/internal/domain"
)

// AddTask appends a task to the end of its day in the current week. The new
// order is one past the day's largest order, or the number of tasks on the
// day if that is larger, so it is 0 on an empty day and equals the count on
// a dense one. Gaps left by deletes are never refilled.
func (s *Store) AddTask(data domain.NewTaskData) (domain.Task, error) {
	if err := checkTaskShape(data.Category, data.Day, data.StartTime); err != nil {
		return domain.Task{}, err
	}
	id := s.newID()

	var created domain.Task
	err := s.mutate(func(st *domain.PlannerState) error {
		created = newTask(id, data, nextOrder(st.CurrentWeek, data.Day))
		st.CurrentWeek.Tasks = append(st.CurrentWeek.Tasks, created)
		return nil
	})
	return created.Clone(), err
}

// UpdateTask replaces the patched fields of a task. Day and order are not
// patchable; use MoveTask.
func (s *Store) UpdateTask(id string, patch domain.TaskPatch) (domain.Task, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return domain.Task{}, fmt.Errorf("%w: unknown category %q", ErrInvalidTask, *patch.Category)
	}
	if patch.StartTime != nil && *patch.StartTime != "" {
		if err := domain.ValidateStartTime(*patch.StartTime); err != nil {
			return domain.Task{}, fmt.Errorf("%w: %v", ErrInvalidTask, err)
		}
	}

	var updated domain.Task
	err := s.mutate(func(st *domain.PlannerState) error {
		i := st.CurrentWeek.TaskIndex(id)
		if i < 0 {
			return taskNotFound(id)
		}
		patch.Apply(&st.CurrentWeek.Tasks[i])
		updated = st.CurrentWeek.Tasks[i].Clone()
		return nil
	})
	return updated, err
}

// DeleteTask removes a task. Remaining tasks of that day keep their order
// values, so the day may be left with a gap.
func (s *Store) DeleteTask(id string) error {
	return s.mutate(func(st *domain.PlannerState) error {
		i := st.CurrentWeek.TaskIndex(id)
		if i < 0 {
			return taskNotFound(id)
		}
		tasks := st.CurrentWeek.Tasks
		st.CurrentWeek.Tasks = append(tasks[:i:i], tasks[i+1:]...)
		return nil
	})
}

// MoveTask places a task in day at position newOrder. Tasks already in day
// at or after newOrder shift down by one to make room. A negative newOrder
// is treated as 0; a newOrder past the end of the day appends.
//
// A move out of a day leaves a gap in the source day. A move within the
// same day closes the task's old slot first, so the task lands at sorted
// position newOrder.
func (s *Store) MoveTask(id string, day domain.Day, newOrder int) error {
	if !day.Valid() {
		return fmt.Errorf("%w: unknown day %q", ErrInvalidTask, day)
	}
	if newOrder < 0 {
		newOrder = 0
	}

	return s.mutate(func(st *domain.PlannerState) error {
		i := st.CurrentWeek.TaskIndex(id)
		if i < 0 {
			return taskNotFound(id)
		}
		tasks := st.CurrentWeek.Tasks
		moved := tasks[i]
		rest := make([]domain.Task, 0, len(tasks))
		rest = append(rest, tasks[:i]...)
		rest = append(rest, tasks[i+1:]...)

		for j := range rest {
			if rest[j].Day != day {
				continue
			}
			if moved.Day == day && rest[j].Order > moved.Order {
				rest[j].Order--
			}
		}
		for j := range rest {
			if rest[j].Day == day && rest[j].Order >= newOrder {
				rest[j].Order++
			}
		}

		moved.Day = day
		moved.Order = newOrder
		st.CurrentWeek.Tasks = append(rest, moved)
		return nil
	})
}

// ToggleTaskComplete flips a task's completion and returns the new value.
func (s *Store) ToggleTaskComplete(id string) (bool, error) {
	var completed bool
	err := s.mutate(func(st *domain.PlannerState) error {
		i := st.CurrentWeek.TaskIndex(id)
		if i < 0 {
			return taskNotFound(id)
		}
		st.CurrentWeek.Tasks[i].Completed = !st.CurrentWeek.Tasks[i].Completed
		completed = st.CurrentWeek.Tasks[i].Completed
		return nil
	})
	return completed, err
}

// ReorderTasksInDay gives each task of day the index of its id in
// orderedIDs. Ids that are unknown, belong to another day, or repeat are
// skipped. Tasks of day missing from orderedIDs keep their relative order
// and are placed after the listed ones.
func (s *Store) ReorderTasksInDay(day domain.Day, orderedIDs []string) error {
	if !day.Valid() {
		return fmt.Errorf("%w: unknown day %q", ErrInvalidTask, day)
	}

	return s.mutate(func(st *domain.PlannerState) error {
		pos := make(map[string]int, len(orderedIDs))
		for i, id := range orderedIDs {
			if _, dup := pos[id]; !dup {
				pos[id] = i
			}
		}

		var unlisted []string
		for _, t := range st.CurrentWeek.TasksForDay(day) {
			if _, ok := pos[t.ID]; !ok {
				unlisted = append(unlisted, t.ID)
			}
		}
		for j, id := range unlisted {
			pos[id] = len(orderedIDs) + j
		}

		for i := range st.CurrentWeek.Tasks {
			t := &st.CurrentWeek.Tasks[i]
			if t.Day != day {
				continue
			}
			t.Order = pos[t.ID]
		}
		return nil
	})
}

// DuplicateTask copies a task into day, appended at the end and not completed.
func (s *Store) DuplicateTask(id string, day domain.Day) (domain.Task, error) {
	if !day.Valid() {
		return domain.Task{}, fmt.Errorf("%w: unknown day %q", ErrInvalidTask, day)
	}
	newID := s.newID()

	var created domain.Task
	err := s.mutate(func(st *domain.PlannerState) error {
		i := st.CurrentWeek.TaskIndex(id)
		if i < 0 {
			return taskNotFound(id)
		}
		src := st.CurrentWeek.Tasks[i]
		created = newTask(newID, domain.NewTaskData{
			Category:  src.Category,
			Title:     src.Title,
			Duration:  src.Duration,
			StartTime: src.StartTime,
			Day:       day,
		}, nextOrder(st.CurrentWeek, day))
		st.CurrentWeek.Tasks = append(st.CurrentWeek.Tasks, created)
		return nil
	})
	return created.Clone(), err
}

// nextOrder is the order for a task appended to day: the day's task count,
// or one past its highest order when earlier deletes left gaps.
func nextOrder(w domain.WeekPlan, day domain.Day) int {
	count, next := 0, 0
	for _, t := range w.Tasks {
		if t.Day != day {
			continue
		}
		count++
		if t.Order >= next {
			next = t.Order + 1
		}
	}
	return max(count, next)
}

func newTask(id string, data domain.NewTaskData, order int) domain.Task {
	t := domain.Task{
		ID:        id,
		Category:  data.Category,
		Title:     data.Title,
		Duration:  data.Duration,
		Day:       data.Day,
		Completed: data.Completed,
		Order:     order,
	}
	if data.StartTime != nil && *data.StartTime != "" {
		st := *data.StartTime
		t.StartTime = &st
	}
	return t
}

func checkTaskShape(cat domain.Category, day domain.Day, startTime *string) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidTask, cat)
	}
	if !day.Valid() {
		return fmt.Errorf("%w: unknown day %q", ErrInvalidTask, day)
	}
	if startTime != nil && *startTime != "" {
		if err := domain.ValidateStartTime(*startTime); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTask, err)
		}
	}
	return nil
}

func taskNotFound(id string) error {
	return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}
