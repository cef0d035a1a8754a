package control

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/momentics/hioload-thread/api"
)

func TestEventLog_KeepsMostRecent(t *testing.T) {
	l := NewEventLog(2)
	for i := 1; i <= 3; i++ {
		l.OnTransition(api.Transition{ID: api.ThreadID(i), To: api.StateRunning})
	}
	events := l.Events()
	assert.Equal(t, len(events), 2)
	assert.Equal(t, events[0].ID, api.ThreadID(2))
	assert.Equal(t, events[1].ID, api.ThreadID(3))
}

func TestEventLog_ZeroCapacity(t *testing.T) {
	l := NewEventLog(0)
	l.OnTransition(api.Transition{ID: 1})
	assert.Equal(t, l.Len(), 0)
	assert.Equal(t, len(l.Events()), 0)
}
