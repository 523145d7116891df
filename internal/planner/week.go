package planner

import (
	"fmt"

	"github.com/alexanderramin/neurosprint/internal/domain"
)

// SetStructureOption selects one of the preset time-allocation templates.
func (s *Store) SetStructureOption(option int) error {
	if !domain.ValidStructureOption(option) {
		return fmt.Errorf("%w: structure option must be between %d and %d, got %d",
			ErrInvalidSettings, domain.MinStructureOption, domain.MaxStructureOption, option)
	}
	return s.mutate(func(st *domain.PlannerState) error {
		st.CurrentWeek.StructureOption = option
		return nil
	})
}

// SetBudgetHours stores the weekly budget as given. Callers coerce the
// value to at least 1; a non-positive budget reads back as the default.
func (s *Store) SetBudgetHours(hours int) error {
	return s.mutate(func(st *domain.PlannerState) error {
		st.CurrentWeek.BudgetHours = domain.Ptr(hours)
		return nil
	})
}

// SaveReflection replaces the current week's reflection wholesale.
func (s *Store) SaveReflection(r domain.WeeklyReflection) error {
	return s.mutate(func(st *domain.PlannerState) error {
		st.CurrentWeek.Reflection = r
		return nil
	})
}

// ClearCurrentWeek drops every task and blanks the reflection. Identity,
// week start, structure option and budget are kept.
func (s *Store) ClearCurrentWeek() error {
	return s.mutate(func(st *domain.PlannerState) error {
		st.CurrentWeek.Tasks = []domain.Task{}
		st.CurrentWeek.Reflection = domain.EmptyReflection()
		return nil
	})
}

// GoToWeek archives the current week and makes the week containing date
// current. date may be any day of the week; it is snapped to its Monday.
// An archived week is taken out of the archive while it is current; an
// unknown week is created empty and only enters the archive once the user
// navigates away from it.
func (s *Store) GoToWeek(date string) (domain.WeekPlan, error) {
	weekStart, err := domain.NormalizeWeekStart(date)
	if err != nil {
		return domain.WeekPlan{}, fmt.Errorf("%w: %v", ErrInvalidWeekStart, err)
	}
	id := s.newID()

	var current domain.WeekPlan
	err = s.mutate(func(st *domain.PlannerState) error {
		switchTo(st, weekStart, func() domain.WeekPlan {
			return domain.NewWeekPlan(id, weekStart, domain.MinStructureOption)
		})
		current = st.CurrentWeek.Clone()
		return nil
	})
	return current, err
}

// GoToToday navigates to the week containing the store's now.
func (s *Store) GoToToday() (domain.WeekPlan, error) {
	return s.GoToWeek(s.Today())
}

// CreateNewWeek archives the current week and starts the week seven days
// later, carrying over only the structure option. If that week is already
// in the archive it becomes current unchanged.
func (s *Store) CreateNewWeek() (domain.WeekPlan, error) {
	id := s.newID()

	var current domain.WeekPlan
	err := s.mutate(func(st *domain.PlannerState) error {
		next, err := domain.AddWeeks(st.CurrentWeek.WeekStart, 1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidWeekStart, err)
		}
		option := st.CurrentWeek.StructureOption
		switchTo(st, next, func() domain.WeekPlan {
			return domain.NewWeekPlan(id, next, option)
		})
		current = st.CurrentWeek.Clone()
		return nil
	})
	return current, err
}

// switchTo archives the outgoing week (insert or replace by week start) and
// makes weekStart current, pulling it out of the archive or building it.
func switchTo(st *domain.PlannerState, weekStart string, build func() domain.WeekPlan) {
	outgoing := st.CurrentWeek
	if i := st.ArchiveIndex(outgoing.WeekStart); i >= 0 {
		st.Weeks[i] = outgoing
	} else {
		st.Weeks = append(st.Weeks, outgoing)
	}

	if i := st.ArchiveIndex(weekStart); i >= 0 {
		st.CurrentWeek = st.Weeks[i]
		st.Weeks = append(st.Weeks[:i:i], st.Weeks[i+1:]...)
		return
	}
	st.CurrentWeek = build()
}
