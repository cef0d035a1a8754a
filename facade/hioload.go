// File: facade/hioload.go
// Unified facade layer for hioload-thread.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// HioloadThread wires the thread lifecycle primitives to the control plane:
// every handle created through the facade reports its transitions to the
// Prometheus collectors and the bounded event history, and the debug probes
// expose live identities and hardware concurrency.

package facade

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/momentics/hioload-thread/api"
	"github.com/momentics/hioload-thread/control"
	"github.com/momentics/hioload-thread/internal/concurrency"
)

// HioloadThread is the main facade type.
type HioloadThread struct {
	config   *control.Config
	registry *prometheus.Registry
	metrics  *control.ThreadMetrics
	events   *control.EventLog
	probes   *control.DebugProbes
}

// New constructs the facade. A nil cfg uses control.DefaultConfig.
func New(cfg *control.Config) (*HioloadThread, error) {
	if cfg == nil {
		cfg = control.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &HioloadThread{
		config:   cfg,
		registry: prometheus.NewRegistry(),
		events:   control.NewEventLog(cfg.EventHistory),
		probes:   control.NewDebugProbes(),
	}
	m, err := control.NewThreadMetrics(h.registry)
	if err != nil {
		return nil, fmt.Errorf("metrics init failure: %w", err)
	}
	h.metrics = m

	h.probes.RegisterProbe("thread.live", func() any {
		return concurrency.LiveThreads()
	})
	h.probes.RegisterProbe("thread.events", func() any {
		return h.events.Len()
	})
	h.probes.RegisterProbe("hardware.concurrency", func() any {
		return HardwareConcurrency()
	})
	control.RegisterPlatformProbes(h.probes)
	return h, nil
}

// NewThread returns an unbound handle reporting to the control plane.
// The configured CPU, if any, is applied to the bound thread.
func (h *HioloadThread) NewThread(name string) api.Thread {
	return concurrency.NewThread(
		concurrency.WithName(name),
		concurrency.WithCPU(h.config.CPU),
		concurrency.WithObserver(h.metrics),
		concurrency.WithObserver(h.events),
	)
}

// HardwareConcurrency returns the cached hardware concurrency and records it
// in the metrics.
func (h *HioloadThread) HardwareConcurrency() int {
	n := HardwareConcurrency()
	h.metrics.SetHardwareConcurrency(n)
	return n
}

// Config returns the configuration the facade was built with.
func (h *HioloadThread) Config() *control.Config { return h.config }

// Gatherer exposes the facade's metrics registry.
func (h *HioloadThread) Gatherer() prometheus.Gatherer { return h.registry }

// Events returns the retained lifecycle transitions.
func (h *HioloadThread) Events() []api.Transition { return h.events.Events() }

// DebugProbes returns the probe registry.
func (h *HioloadThread) DebugProbes() *control.DebugProbes { return h.probes }

// NewThread returns an unbound handle with no control plane attached.
func NewThread() api.Thread {
	return concurrency.NewThread()
}

// HardwareConcurrency returns the number of threads the platform can run in
// parallel, or 0 when it cannot be determined.
func HardwareConcurrency() int {
	return concurrency.HardwareConcurrency()
}

// LiveThreads returns the identities of all running handles.
func LiveThreads() []api.ThreadID {
	return concurrency.LiveThreads()
}

// SetLogger installs the logger used by the thread primitives.
func SetLogger(l *zap.Logger) {
	concurrency.SetLogger(l)
}
