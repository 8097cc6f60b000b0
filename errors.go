package espalier

import (
	"errors"
	"fmt"
)

// ErrNoStates is returned by Build when no state was added.
var ErrNoStates = errors.New("espalier: machine needs at least one state")

// ErrBuilderReused is returned by Build when the builder already produced a
// machine. Each machine must own its state instances exclusively, so a
// builder (and the instances added to it) is single-use.
var ErrBuilderReused = errors.New("espalier: builder already produced a machine")

// DuplicateStateError reports a state type added to a builder twice.
type DuplicateStateError struct {
	StateType string
}

func (e *DuplicateStateError) Error() string {
	return fmt.Sprintf("espalier: state %s declared twice", e.StateType)
}

// UnknownStateError reports a reference to a state type outside the
// machine's declared set, either from a handler declaration at build time or
// from a programmatic transition.
type UnknownStateError struct {
	StateType string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("espalier: state %s is not declared on this machine", e.StateType)
}

// DuplicateHandlerError reports two handler declarations for the same
// (state, event) pair.
type DuplicateHandlerError struct {
	StateType string
	EventType string
}

func (e *DuplicateHandlerError) Error() string {
	return fmt.Sprintf("espalier: state %s declares two handlers for event %s", e.StateType, e.EventType)
}
