package control

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gotest.tools/v3/assert"

	"github.com/momentics/hioload-thread/api"
)

func TestThreadMetrics_Transitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewThreadMetrics(reg)
	assert.NilError(t, err)

	m.OnTransition(api.Transition{From: api.StateUnbound, To: api.StateRunning})
	m.OnTransition(api.Transition{From: api.StateUnbound, To: api.StateRunning})
	assert.Equal(t, testutil.ToFloat64(m.running), 2.0)

	m.OnTransition(api.Transition{From: api.StateRunning, To: api.StateDetached})
	m.OnTransition(api.Transition{From: api.StateRunning, To: api.StateJoined})
	assert.Equal(t, testutil.ToFloat64(m.running), 0.0)
	assert.Equal(t, testutil.ToFloat64(m.transitions.WithLabelValues("running")), 2.0)
	assert.Equal(t, testutil.ToFloat64(m.transitions.WithLabelValues("detached")), 1.0)
	assert.Equal(t, testutil.ToFloat64(m.transitions.WithLabelValues("joined")), 1.0)
}

func TestThreadMetrics_DoubleRegisterFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewThreadMetrics(reg)
	assert.NilError(t, err)
	_, err = NewThreadMetrics(reg)
	assert.Assert(t, err != nil)
}

func TestSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewThreadMetrics(reg)
	assert.NilError(t, err)
	m.SetHardwareConcurrency(8)
	m.OnTransition(api.Transition{From: api.StateUnbound, To: api.StateRunning})

	samples, err := Snapshot(reg)
	assert.NilError(t, err)
	got := make(map[string]float64, len(samples))
	for _, s := range samples {
		got[s.Name] = s.Value
	}
	assert.Equal(t, got["hioload_hardware_concurrency"], 8.0)
	assert.Equal(t, got["hioload_thread_running"], 1.0)
	assert.Equal(t, got["hioload_thread_transitions_total{state=running}"], 1.0)
}
