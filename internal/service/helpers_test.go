package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/stretchr/testify/require"
)

const testStateKey = "neurosprint-planner"

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last(name string) (UseCaseEvent, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := len(o.events) - 1; i >= 0; i-- {
		if o.events[i].Name == name {
			return o.events[i], true
		}
	}
	return UseCaseEvent{}, false
}

func addTask(t *testing.T, s *planner.Store, day domain.Day, title string) domain.Task {
	t.Helper()
	task, err := s.AddTask(domain.NewTaskData{
		Category: domain.CategoryFoundation,
		Title:    title,
		Duration: 45,
		Day:      day,
	})
	require.NoError(t, err)
	return task
}
