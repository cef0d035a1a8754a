//go:build !linux && !windows
// +build !linux,!windows

// File: internal/concurrency/tid_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback identity source for platforms without a portable gettid.

package concurrency

import (
	"sync/atomic"

	"github.com/momentics/hioload-thread/api"
)

var syntheticTID atomic.Uint64

// currentThreadID hands out a fresh process-unique id. It is called once per
// bound thread, so each locked OS thread keeps the id it was given.
func currentThreadID() api.ThreadID {
	return api.ThreadID(syntheticTID.Add(1))
}
