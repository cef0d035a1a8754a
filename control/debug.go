// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Named debug probes and their tabular dump.

package control

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/olekukonko/tablewriter"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts or replaces a named probe.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// Names returns the registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	names := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DumpState evaluates every probe.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// Render writes the probe values as a table sorted by name.
func (dp *DebugProbes) Render(w io.Writer) error {
	state := dp.DumpState()
	names := make([]string, 0, len(state))
	for k := range state {
		names = append(names, k)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(w)
	table.Header("Probe", "Value")
	for _, name := range names {
		if err := table.Append(name, fmt.Sprint(state[name])); err != nil {
			return err
		}
	}
	return table.Render()
}

// RenderSamples writes metric samples as a table.
func RenderSamples(w io.Writer, samples []Sample) error {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	for _, s := range samples {
		if err := table.Append(s.Name, fmt.Sprintf("%g", s.Value)); err != nil {
			return err
		}
	}
	return table.Render()
}
