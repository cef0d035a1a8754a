// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collectors fed by thread lifecycle transitions.

package control

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-thread/api"
)

// ThreadMetrics counts transitions and tracks running handles.
// It implements api.ThreadObserver.
type ThreadMetrics struct {
	transitions *prometheus.CounterVec
	running     prometheus.Gauge
	hardware    prometheus.Gauge
}

var _ api.ThreadObserver = (*ThreadMetrics)(nil)

// NewThreadMetrics creates the collectors and registers them on reg.
func NewThreadMetrics(reg prometheus.Registerer) (*ThreadMetrics, error) {
	m := &ThreadMetrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hioload",
			Subsystem: "thread",
			Name:      "transitions_total",
			Help:      "Thread handle transitions by target state.",
		}, []string{"state"}),
		running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hioload",
			Subsystem: "thread",
			Name:      "running",
			Help:      "Thread handles currently owning a live OS thread.",
		}),
		hardware: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hioload",
			Name:      "hardware_concurrency",
			Help:      "Threads the platform can run in parallel, 0 if unknown.",
		}),
	}
	for _, c := range []prometheus.Collector{m.transitions, m.running, m.hardware} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// OnTransition implements api.ThreadObserver.
func (m *ThreadMetrics) OnTransition(tr api.Transition) {
	m.transitions.WithLabelValues(tr.To.String()).Inc()
	switch {
	case tr.To == api.StateRunning:
		m.running.Inc()
	case tr.From == api.StateRunning:
		m.running.Dec()
	}
}

// SetHardwareConcurrency records the observed hardware concurrency.
func (m *ThreadMetrics) SetHardwareConcurrency(n int) {
	m.hardware.Set(float64(n))
}

// Sample is one flattened metric value.
type Sample struct {
	Name  string
	Value float64
}

// Snapshot flattens counters and gauges from g into name{labels} samples,
// sorted by name.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range metric.GetLabel() {
				name += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			var v float64
			switch {
			case metric.GetCounter() != nil:
				v = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				v = metric.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, Sample{Name: name, Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
