// File: internal/concurrency/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import "github.com/momentics/hioload-thread/api"

type options struct {
	name      string
	cpu       int // -1 leaves affinity to the OS
	observers []api.ThreadObserver
}

// Option configures a Thread.
type Option func(*options)

// WithName sets the name used in logs and transitions.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithCPU pins the bound OS thread to a logical CPU before work starts.
// A negative value disables pinning.
func WithCPU(cpu int) Option {
	return func(o *options) { o.cpu = cpu }
}

// WithObserver registers an observer for lifecycle transitions.
func WithObserver(obs api.ThreadObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

func defaultOptions() options {
	return options{name: "thread", cpu: -1}
}
