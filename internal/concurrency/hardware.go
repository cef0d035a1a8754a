// File: internal/concurrency/hardware.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Hardware concurrency estimate, computed once per process.

package concurrency

import (
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"
)

var (
	hwOnce        sync.Once
	hwConcurrency int
)

// logicalCPUs is swapped in tests.
var logicalCPUs = func() (int, error) {
	return cpu.Counts(true)
}

// HardwareConcurrency returns the number of threads the platform can run in
// parallel, or 0 when it cannot be determined. The value is stable for the
// lifetime of the process.
func HardwareConcurrency() int {
	hwOnce.Do(func() {
		hwConcurrency = detectConcurrency()
	})
	return hwConcurrency
}

func detectConcurrency() int {
	n, err := logicalCPUs()
	if err != nil || n <= 0 {
		Logger().Debug("logical cpu count unavailable, using runtime.NumCPU",
			zap.Int("reported", n), zap.Error(err))
		n = runtime.NumCPU()
	}
	if n < 0 {
		return 0
	}
	return n
}
