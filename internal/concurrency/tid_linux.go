//go:build linux
// +build linux

// File: internal/concurrency/tid_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-thread/api"
)

// currentThreadID returns gettid(2) of the calling OS thread.
// Only meaningful while the goroutine is locked to its thread.
func currentThreadID() api.ThreadID {
	return api.ThreadID(unix.Gettid())
}
