// File: internal/concurrency/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide set of identities held by running handles.

package concurrency

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/momentics/hioload-thread/api"
)

type liveRegistry struct {
	mu  sync.RWMutex
	ids map[api.ThreadID]string
}

var live = &liveRegistry{ids: make(map[api.ThreadID]string)}

// add records id as owned by a running handle. A duplicate means two running
// handles report the same identity, which must never happen.
func (r *liveRegistry) add(id api.ThreadID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, dup := r.ids[id]; dup {
		Logger().Error("thread identity already owned by a running handle",
			zap.Stringer("tid", id), zap.String("owner", prev), zap.String("name", name))
	}
	r.ids[id] = name
}

func (r *liveRegistry) remove(id api.ThreadID) {
	r.mu.Lock()
	delete(r.ids, id)
	r.mu.Unlock()
}

func (r *liveRegistry) snapshot() []api.ThreadID {
	r.mu.RLock()
	out := make([]api.ThreadID, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	r.mu.RUnlock()
	slices.Sort(out)
	return out
}

// LiveThreads returns the sorted identities of all running handles.
func LiveThreads() []api.ThreadID {
	return live.snapshot()
}
