// Package api
// Author: momentics <momentics@gmail.com>
//
// Thread handle contract, identity tokens and lifecycle observation.

package api

import (
	"context"
	"strconv"
	"time"
)

// ThreadID is the native identity of an OS thread.
// NoThread is reported by handles that own no thread.
type ThreadID uint64

// NoThread is the identity of a handle without a live thread.
const NoThread ThreadID = 0

func (id ThreadID) String() string {
	if id == NoThread {
		return "none"
	}
	return strconv.FormatUint(uint64(id), 10)
}

// Work is a unit of execution bound to a thread. It runs exactly once.
type Work func()

// Thread owns at most one OS thread through its lifecycle:
// unbound -> running -> detached | joined.
type Thread interface {
	// ID returns the native thread id while running, NoThread otherwise.
	ID() ThreadID
	// State returns the current binding state.
	State() State
	// Start binds work to a freshly allocated OS thread.
	Start(work Work) error
	// Joinable reports whether the handle still owns a live thread.
	Joinable() bool
	// Detach releases ownership without waiting for work to finish.
	Detach() error
	// Join waits for work to finish and reclaims the thread.
	Join() error
	// JoinContext is Join with an abandonable wait.
	JoinContext(ctx context.Context) error
}

// Transition describes one successful state change of a handle.
type Transition struct {
	Name string
	ID   ThreadID
	From State
	To   State
	At   time.Time
}

// ThreadObserver receives lifecycle transitions.
type ThreadObserver interface {
	OnTransition(tr Transition)
}

// ObserverFunc adapts a function to ThreadObserver.
type ObserverFunc func(tr Transition)

// OnTransition implements ThreadObserver.
func (f ObserverFunc) OnTransition(tr Transition) { f(tr) }
