package espalier

// StateEvent describes a single lifecycle hook firing.
type StateEvent struct {
	// State is the display name of the state being entered or exited.
	State string
	// Event is the display name of the event that caused the transition, or
	// empty for a programmatic transition.
	Event string
}

// TransitionEvent describes a completed transition.
type TransitionEvent struct {
	From  string
	To    string
	Event string
	// Self is true when the transition re-entered the active state.
	Self bool
}

// DispatchEvent describes a dispatch that resolved to the null directive:
// the active state declared no handler (or an explicit ignore) for the
// event.
type DispatchEvent struct {
	State string
	Event string
}

// LifecycleHooks are optional observability callbacks. They run
// synchronously inside Dispatch, after the corresponding state hook, and
// must not dispatch events or execute directives on the same machine.
type LifecycleHooks struct {
	OnStateEnter func(*StateEvent)
	OnStateExit  func(*StateEvent)
	OnTransition func(*TransitionEvent)
	OnIgnored    func(*DispatchEvent)
}
