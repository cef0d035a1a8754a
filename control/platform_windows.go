//go:build windows
// +build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific debug probes.

package control

import (
	"runtime"

	"golang.org/x/sys/windows"
)

// RegisterPlatformProbes registers Windows-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.active_processors", func() any {
		return windows.GetActiveProcessorCount(windows.ALL_PROCESSOR_GROUPS)
	})
	dp.RegisterProbe("platform.pid", func() any {
		return windows.GetCurrentProcessId()
	})
}
