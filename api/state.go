// Package api
// Author: momentics <momentics@gmail.com>
//
// Thread binding states and the transition table between them.

package api

import "fmt"

// State is the binding state of a thread handle.
type State int

const (
	StateUnbound State = iota
	StateRunning
	StateDetached
	StateJoined
)

func (s State) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateRunning:
		return "running"
	case StateDetached:
		return "detached"
	case StateJoined:
		return "joined"
	default:
		return "unknown"
	}
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateDetached || s == StateJoined
}

// validTransitions maps from-state to allowed to-states.
// Only running has outgoing edges besides the initial bind.
var validTransitions = map[State]map[State]bool{
	StateUnbound: {
		StateRunning: true, // Start
	},
	StateRunning: {
		StateDetached: true, // Detach
		StateJoined:   true, // Join
	},
	StateDetached: {},
	StateJoined:   {},
}

// ValidateTransition checks if a state transition is allowed.
func ValidateTransition(from, to State) error {
	allowed, ok := validTransitions[from]
	if !ok {
		return fmt.Errorf("unknown source state: %d", int(from))
	}
	if !allowed[to] {
		return fmt.Errorf("invalid transition from %s to %s", from, to)
	}
	return nil
}
