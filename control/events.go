// control/events.go
// Author: momentics <momentics@gmail.com>
//
// Bounded in-memory history of thread lifecycle transitions.

package control

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-thread/api"
)

// EventLog keeps the most recent transitions, oldest first.
// It implements api.ThreadObserver.
type EventLog struct {
	mu       sync.Mutex
	capacity int
	q        *queue.Queue
}

var _ api.ThreadObserver = (*EventLog)(nil)

// NewEventLog creates a log holding at most capacity transitions.
// A zero capacity records nothing.
func NewEventLog(capacity int) *EventLog {
	if capacity < 0 {
		capacity = 0
	}
	return &EventLog{capacity: capacity, q: queue.New()}
}

// OnTransition implements api.ThreadObserver.
func (l *EventLog) OnTransition(tr api.Transition) {
	if l.capacity == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.q.Add(tr)
	for l.q.Length() > l.capacity {
		l.q.Remove()
	}
}

// Events returns a copy of the retained transitions.
func (l *EventLog) Events() []api.Transition {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]api.Transition, l.q.Length())
	for i := range out {
		out[i] = l.q.Get(i).(api.Transition)
	}
	return out
}

// Len returns the number of retained transitions.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Length()
}
