package planner

import (
	"sync"
	"time"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/google/uuid"
)

// State is a deep copy of everything the store holds.
type State = domain.PlannerState

// Store owns the current week, the archive of other weeks, and the per-month
// sprint settings. Every exported method is safe for concurrent use and each
// mutation is applied atomically.
type Store struct {
	mu    sync.Mutex
	state domain.PlannerState
	// pending holds snapshots not yet delivered, in mutation order. Guarded by mu.
	pending []State

	// notifyMu serialises observer delivery. It is never taken while mu is
	// held, so observers may read the store.
	notifyMu  sync.Mutex
	observers []observer
	nextObsID int

	now                func() time.Time
	newID              func() string
	defaultSprintWeeks int
}

type observer struct {
	id int
	fn func(State)
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the generator for task and week ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithDefaultSprintWeeks sets the sprint length months start with.
func WithDefaultSprintWeeks(n int) Option {
	return func(s *Store) { s.defaultSprintWeeks = n }
}

// WithState seeds the store with previously persisted state.
func WithState(state State) Option {
	return func(s *Store) { s.state = state.Clone() }
}

// New builds an independent store. Without WithState it starts with an
// empty week for the calendar week containing now.
func New(opts ...Option) *Store {
	s := &Store{
		now:                time.Now,
		newID:              uuid.NewString,
		defaultSprintWeeks: domain.DefaultSprintWeeks,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.state.CurrentWeek.WeekStart == "" {
		s.state.CurrentWeek = domain.NewWeekPlan(s.newID(), domain.WeekStartOf(s.now()), domain.MinStructureOption)
	}
	if s.state.Weeks == nil {
		s.state.Weeks = []domain.WeekPlan{}
	}
	if s.state.MonthSettings == nil {
		s.state.MonthSettings = map[string]domain.MonthSettings{}
	}
	return s
}

// OnChange registers fn to receive a copy of the state after every
// successful mutation. Calls are serialised and arrive in mutation order,
// each before the mutating call returns; under concurrent mutation a
// snapshot may be delivered on another mutating goroutine. fn may read
// from the store but must not mutate it. The returned func
// unregisters fn.
func (s *Store) OnChange(fn func(State)) func() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// mutate applies fn under the store lock. fn must either fully succeed or
// return an error without having touched the state. On success the new
// state is queued and delivered to observers before mutate returns.
func (s *Store) mutate(fn func(st *domain.PlannerState) error) error {
	s.mu.Lock()
	if err := fn(&s.state); err != nil {
		s.mu.Unlock()
		return err
	}
	s.pending = append(s.pending, s.state.Clone())
	s.mu.Unlock()

	s.deliver()
	return nil
}

// deliver drains the pending queue in order. Whichever goroutine holds
// notifyMu delivers every queued snapshot, so once deliver returns the
// caller's own snapshot has been seen by all observers.
func (s *Store) deliver() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.mu.Unlock()
			return
		}
		next := s.pending[0]
		s.pending[0] = State{}
		s.pending = s.pending[1:]
		s.mu.Unlock()

		for _, o := range s.observers {
			o.fn(next)
		}
	}
}

func (s *Store) read(fn func(st *domain.PlannerState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// State returns a deep copy of the whole store.
func (s *Store) State() State {
	var out State
	s.read(func(st *domain.PlannerState) { out = st.Clone() })
	return out
}

// CurrentWeek returns a copy of the week being edited.
func (s *Store) CurrentWeek() domain.WeekPlan {
	var out domain.WeekPlan
	s.read(func(st *domain.PlannerState) { out = st.CurrentWeek.Clone() })
	return out
}

// Weeks returns copies of the archived weeks. The current week is not included.
func (s *Store) Weeks() []domain.WeekPlan {
	var out []domain.WeekPlan
	s.read(func(st *domain.PlannerState) {
		out = make([]domain.WeekPlan, len(st.Weeks))
		for i, w := range st.Weeks {
			out[i] = w.Clone()
		}
	})
	return out
}

// FindWeek looks weekStart up in the current week and then the archive.
func (s *Store) FindWeek(weekStart string) (domain.WeekPlan, bool) {
	var (
		out   domain.WeekPlan
		found bool
	)
	s.read(func(st *domain.PlannerState) {
		if st.CurrentWeek.WeekStart == weekStart {
			out, found = st.CurrentWeek.Clone(), true
			return
		}
		if i := st.ArchiveIndex(weekStart); i >= 0 {
			out, found = st.Weeks[i].Clone(), true
		}
	})
	return out, found
}

// Today returns the Monday of the week containing the store's now.
func (s *Store) Today() string {
	return domain.WeekStartOf(s.now())
}

// Restore replaces the entire state. Nil collections are normalised to
// empty ones and a missing current week is created for today.
func (s *Store) Restore(state State) {
	next := state.Clone()
	if next.CurrentWeek.WeekStart == "" {
		next.CurrentWeek = domain.NewWeekPlan(s.newID(), domain.WeekStartOf(s.now()), domain.MinStructureOption)
	}
	_ = s.mutate(func(st *domain.PlannerState) error {
		*st = next
		return nil
	})
}
