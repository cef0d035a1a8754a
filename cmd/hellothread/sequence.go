// File: cmd/hellothread/sequence.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/momentics/hioload-thread/api"
	"github.com/momentics/hioload-thread/facade"
)

// report captures what the sequence observed.
type report struct {
	InitialID   api.ThreadID // identity before Start
	RunningID   api.ThreadID // identity after Start
	Concurrency int
	Joinable    bool // joinability after the disposition step
	Joined      bool // whether the conditional join ran
}

// syncWriter serializes writes from the caller and the worker thread.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// runSequence drives one handle through the lifecycle: create, identify,
// start, query concurrency, identify again, detach, then join only if the
// handle is still joinable. With Config.Join set the detach step is skipped.
func runSequence(h *facade.HioloadThread, logger *zap.Logger, out io.Writer) (*report, error) {
	w := &syncWriter{w: out}

	th := h.NewThread("hello")
	r := &report{InitialID: th.ID()}

	if err := th.Start(func() { fmt.Fprintln(w, "Hello Thread") }); err != nil {
		return nil, err
	}
	r.Concurrency = h.HardwareConcurrency()
	r.RunningID = th.ID()
	logger.Debug("thread bound",
		zap.Stringer("before", r.InitialID),
		zap.Stringer("after", r.RunningID),
		zap.Int("hardware_concurrency", r.Concurrency))

	if !h.Config().Join {
		if err := th.Detach(); err != nil {
			return nil, err
		}
	}

	r.Joinable = th.Joinable()
	if r.Joinable {
		if err := th.Join(); err != nil {
			return nil, err
		}
		r.Joined = true
	} else {
		logger.Debug("join skipped, handle not joinable", zap.Stringer("state", th.State()))
	}

	fmt.Fprintf(w, "Hello World%d\n", r.Concurrency)
	return r, nil
}
