package concurrency

import (
	"errors"
	"runtime"
	"testing"

	"gotest.tools/v3/assert"
)

func TestHardwareConcurrency_Stable(t *testing.T) {
	first := HardwareConcurrency()
	assert.Assert(t, first >= 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, HardwareConcurrency(), first)
	}
}

func TestDetectConcurrency_FallsBackToRuntime(t *testing.T) {
	orig := logicalCPUs
	defer func() { logicalCPUs = orig }()

	logicalCPUs = func() (int, error) { return 0, errors.New("no sysfs") }
	assert.Equal(t, detectConcurrency(), runtime.NumCPU())

	logicalCPUs = func() (int, error) { return 6, nil }
	assert.Equal(t, detectConcurrency(), 6)
}
