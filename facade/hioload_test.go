package facade_test

import (
	"sync/atomic"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/poll"

	"github.com/momentics/hioload-thread/api"
	"github.com/momentics/hioload-thread/control"
	"github.com/momentics/hioload-thread/facade"
)

// Full lifecycle through the facade: transitions reach metrics, history and probes.
func TestHioloadThreadFullLifecycle(t *testing.T) {
	h, err := facade.New(nil)
	assert.NilError(t, err)

	th := h.NewThread("worker")
	assert.Equal(t, th.ID(), api.NoThread)

	release := make(chan struct{})
	assert.NilError(t, th.Start(func() { <-release }))
	id := th.ID()
	assert.Assert(t, id != api.NoThread)
	assert.Assert(t, is.Contains(facade.LiveThreads(), id))

	state := h.DebugProbes().DumpState()
	assert.Assert(t, is.Contains(state, "thread.live"))
	assert.Equal(t, state["hardware.concurrency"], facade.HardwareConcurrency())

	close(release)
	assert.NilError(t, th.Join())

	events := h.Events()
	assert.Equal(t, len(events), 2)
	assert.Equal(t, events[0].To, api.StateRunning)
	assert.Equal(t, events[1].To, api.StateJoined)
	assert.Equal(t, events[1].Name, "worker")

	h.HardwareConcurrency()
	samples, err := control.Snapshot(h.Gatherer())
	assert.NilError(t, err)
	got := map[string]float64{}
	for _, s := range samples {
		got[s.Name] = s.Value
	}
	assert.Equal(t, got["hioload_thread_running"], 0.0)
	assert.Equal(t, got["hioload_thread_transitions_total{state=joined}"], 1.0)
	assert.Equal(t, got["hioload_hardware_concurrency"], float64(facade.HardwareConcurrency()))
}

func TestHioloadThread_DetachEventuallyRuns(t *testing.T) {
	h, err := facade.New(control.DefaultConfig())
	assert.NilError(t, err)

	var invoked atomic.Bool
	th := h.NewThread("detached")
	assert.NilError(t, th.Start(func() { invoked.Store(true) }))
	assert.Assert(t, th.ID() != api.NoThread)
	assert.NilError(t, th.Detach())
	assert.Assert(t, !th.Joinable())

	poll.WaitOn(t, func(poll.LogT) poll.Result {
		if invoked.Load() {
			return poll.Success()
		}
		return poll.Continue("detached work not invoked yet")
	}, poll.WithTimeout(5*time.Second), poll.WithDelay(time.Millisecond))
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := control.DefaultConfig()
	cfg.LogFormat = "xml"
	_, err := facade.New(cfg)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestNewThread_Plain(t *testing.T) {
	th := facade.NewThread()
	assert.Equal(t, th.State(), api.StateUnbound)
	assert.ErrorIs(t, th.Detach(), api.ErrNotRunning)
}
