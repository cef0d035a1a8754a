//go:build windows
// +build windows

// File: internal/concurrency/tid_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-thread/api"
)

// currentThreadID returns GetCurrentThreadId of the calling OS thread.
func currentThreadID() api.ThreadID {
	return api.ThreadID(windows.GetCurrentThreadId())
}
