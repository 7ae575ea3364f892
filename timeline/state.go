package timeline

import (
	"errors"
	"fmt"
)

// ErrBadTransition indicates a state change not allowed from the current
// state, e.g. Pause while not Running.
var ErrBadTransition = errors.New("timeline: invalid state transition")

// State is the replay state.
type State uint8

const (
	// NotStarted is the state before Start and after Reset.
	NotStarted State = iota
	// Running means automatic replay is active.
	Running
	// Paused keeps the position; Resume continues from it.
	Paused
	// Finished means replay reached the last step.
	Finished
)

var stateNames = [...]string{"not-started", "running", "paused", "finished"}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

func badTransition(from, to State) error {
	return fmt.Errorf("%w: %s -> %s", ErrBadTransition, from, to)
}
