//go:build linux

package affinity

import (
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
	"gotest.tools/v3/assert"
)

func TestSetAffinity_PinsCallingThread(t *testing.T) {
	var allowed unix.CPUSet
	assert.NilError(t, unix.SchedGetaffinity(0, &allowed))
	cpu := -1
	for i := 0; i < 1024; i++ {
		if allowed.IsSet(i) {
			cpu = i
			break
		}
	}
	if cpu < 0 {
		t.Skip("no cpu in affinity mask")
	}

	type result struct {
		setErr, getErr error
		got            unix.CPUSet
	}
	ch := make(chan result, 1)
	go func() {
		// Leaving the goroutine locked discards the pinned thread on exit.
		runtime.LockOSThread()
		var r result
		r.setErr = SetAffinity(cpu)
		r.getErr = unix.SchedGetaffinity(0, &r.got)
		ch <- r
	}()
	r := <-ch

	assert.NilError(t, r.setErr)
	assert.NilError(t, r.getErr)
	assert.Equal(t, r.got.Count(), 1)
	assert.Assert(t, r.got.IsSet(cpu))
}
