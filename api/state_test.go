package api

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestValidateTransition(t *testing.T) {
	allowed := [][2]State{
		{StateUnbound, StateRunning},
		{StateRunning, StateDetached},
		{StateRunning, StateJoined},
	}
	for _, tr := range allowed {
		assert.NilError(t, ValidateTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]State{
		{StateUnbound, StateDetached},
		{StateUnbound, StateJoined},
		{StateRunning, StateRunning},
		{StateDetached, StateJoined},
		{StateJoined, StateDetached},
		{StateJoined, StateRunning},
		{StateDetached, StateRunning},
	}
	for _, tr := range denied {
		assert.ErrorContains(t, ValidateTransition(tr[0], tr[1]), "invalid transition")
	}
	assert.ErrorContains(t, ValidateTransition(State(42), StateRunning), "unknown source state")
}

func TestState_Terminal(t *testing.T) {
	assert.Assert(t, !StateUnbound.Terminal())
	assert.Assert(t, !StateRunning.Terminal())
	assert.Assert(t, StateDetached.Terminal())
	assert.Assert(t, StateJoined.Terminal())
	assert.Equal(t, State(42).String(), "unknown")
}
