// File: internal/concurrency/thread.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread owns one OS thread from Start until Detach or Join.

package concurrency

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/momentics/hioload-thread/affinity"
	"github.com/momentics/hioload-thread/api"
)

// Thread is a handle for a single native thread of execution.
// The zero value is not usable; construct with NewThread.
type Thread struct {
	mu        sync.Mutex
	state     api.State
	id        api.ThreadID
	disposing bool // a Join is waiting for work to finish

	finished chan struct{} // closed when work returned
	release  chan struct{} // closed by Detach or Join, lets the thread exit
	exited   chan struct{} // closed when the OS thread is gone

	opts options
}

var _ api.Thread = (*Thread)(nil)

// NewThread returns an unbound handle. No OS resources are allocated.
func NewThread(opts ...Option) *Thread {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Thread{state: api.StateUnbound, opts: o}
}

// ID returns the native id of the bound thread, or api.NoThread when the
// handle is unbound, detached or joined.
func (t *Thread) ID() api.ThreadID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != api.StateRunning {
		return api.NoThread
	}
	return t.id
}

// State returns the current binding state.
func (t *Thread) State() api.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start allocates a new OS thread and runs work on it. It returns once the
// thread has reported its id; whether work has begun is unspecified.
func (t *Thread) Start(work api.Work) error {
	if work == nil {
		return api.NewError(api.ErrCodeInvalidArgument, "thread: nil work").
			WithContext("name", t.opts.name)
	}

	t.mu.Lock()
	if err := api.ValidateTransition(t.state, api.StateRunning); err != nil {
		defer t.mu.Unlock()
		return t.stateError(api.ErrCodeAlreadyBound, "thread: already bound")
	}

	started := make(chan api.ThreadID, 1)
	t.finished = make(chan struct{})
	t.release = make(chan struct{})
	t.exited = make(chan struct{})
	go runBound(t.opts.name, t.opts.cpu, work, started, t.finished, t.release, t.exited)

	t.id = <-started
	t.state = api.StateRunning
	live.add(t.id, t.opts.name)
	id := t.id
	t.mu.Unlock()

	Logger().Debug("thread started", zap.String("name", t.opts.name), zap.Stringer("tid", id))
	t.notify(id, api.StateUnbound, api.StateRunning)
	return nil
}

// Joinable reports whether the handle owns a live thread that no Detach or
// Join has claimed yet.
func (t *Thread) Joinable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == api.StateRunning && !t.disposing
}

// Detach gives up ownership of the thread without waiting. The thread
// finishes its work on its own and is reclaimed by the runtime.
func (t *Thread) Detach() error {
	t.mu.Lock()
	if t.disposing || api.ValidateTransition(t.state, api.StateDetached) != nil {
		defer t.mu.Unlock()
		return t.stateError(api.ErrCodeNotRunning, "thread: detach on a handle that is not running")
	}
	id := t.id
	t.state = api.StateDetached
	t.id = api.NoThread
	close(t.release)
	live.remove(id)
	t.mu.Unlock()

	Logger().Debug("thread detached", zap.String("name", t.opts.name), zap.Stringer("tid", id))
	t.notify(id, api.StateRunning, api.StateDetached)
	return nil
}

// Join blocks until work has returned and the OS thread is reclaimed.
func (t *Thread) Join() error {
	return t.JoinContext(context.Background())
}

// JoinContext is Join with a wait that ends early when ctx is done. Work is
// not interrupted; the handle stays running and may be joined again.
func (t *Thread) JoinContext(ctx context.Context) error {
	t.mu.Lock()
	if t.disposing || api.ValidateTransition(t.state, api.StateJoined) != nil {
		defer t.mu.Unlock()
		return t.stateError(api.ErrCodeNotRunning, "thread: join on a handle that is not running")
	}
	t.disposing = true
	id, finished, release, exited := t.id, t.finished, t.release, t.exited
	t.mu.Unlock()

	select {
	case <-finished:
	case <-ctx.Done():
		t.mu.Lock()
		t.disposing = false
		t.mu.Unlock()
		return ctx.Err()
	}
	close(release)
	<-exited

	t.mu.Lock()
	t.state = api.StateJoined
	t.id = api.NoThread
	t.disposing = false
	live.remove(id)
	t.mu.Unlock()

	Logger().Debug("thread joined", zap.String("name", t.opts.name), zap.Stringer("tid", id))
	t.notify(id, api.StateRunning, api.StateJoined)
	return nil
}

// stateError builds a lifecycle error. Caller holds t.mu.
func (t *Thread) stateError(code api.ErrorCode, msg string) error {
	return api.NewError(code, msg).
		WithContext("name", t.opts.name).
		WithContext("state", t.state.String())
}

func (t *Thread) notify(id api.ThreadID, from, to api.State) {
	if len(t.opts.observers) == 0 {
		return
	}
	tr := api.Transition{Name: t.opts.name, ID: id, From: from, To: to, At: time.Now()}
	for _, obs := range t.opts.observers {
		obs.OnTransition(tr)
	}
}

// runBound is the body of the bound OS thread. The goroutine never unlocks,
// so the runtime terminates the thread when runBound returns. The thread is
// parked after work until released, keeping its id from being recycled while
// a handle still reports it.
func runBound(name string, cpu int, work api.Work, started chan<- api.ThreadID, finished, release, exited chan struct{}) {
	runtime.LockOSThread()
	defer close(exited)

	if cpu >= 0 {
		if err := affinity.SetAffinity(cpu); err != nil {
			Logger().Warn("pin: failed to set thread affinity",
				zap.String("name", name), zap.Int("cpu", cpu), zap.Error(err))
		}
	}
	started <- currentThreadID()

	execute(name, work)
	close(finished)
	<-release
}

// execute runs work, recovering panics so a Join on the handle still returns.
func execute(name string, work api.Work) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("thread work panicked",
				zap.String("name", name), zap.Any("panic", r), zap.Stack("stack"))
		}
	}()
	work()
}
