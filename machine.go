package espalier

import (
	"log/slog"
	"reflect"
)

// Machine routes events to the handler declared by the currently active
// state and executes the resulting transition. It owns exactly one instance
// of every declared state for its whole lifetime; transitions switch which
// instance is active, they never reconstruct it.
//
// A machine is single-threaded: Dispatch, Transition and Directive.Execute
// must not run concurrently, and must not be re-entered from a hook, action
// or lifecycle callback of the same call (re-entry panics). Callers needing
// concurrent access serialize externally.
type Machine struct {
	states   []State
	index    map[reflect.Type]int
	handlers map[handlerKey]handlerEntry
	topology []TransitionInfo

	active      int
	dispatching bool

	logger *slog.Logger
	hooks  LifecycleHooks
}

type handlerKey struct {
	state reflect.Type
	event reflect.Type
}

type handlerEntry struct {
	target  reflect.Type
	actions []func(State, Event)
	ignore  bool
}

// Option configures a machine at Build time.
type Option func(*Machine)

// WithLogger sets the machine's structured logger. Dispatch traffic (null
// transitions, hook invocations) logs at Debug; the default logger discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// Dispatch routes an event to the active state's handler for the event's
// concrete type and executes the resulting directive. An event the active
// state declares no handler for resolves to the null directive: no state
// change, no hooks. Dispatch has no failure outcome.
func (m *Machine) Dispatch(event Event) {
	release := m.beginDispatch("Dispatch")
	defer release()

	eventName := EventName(event)
	key := handlerKey{state: reflect.TypeOf(m.states[m.active]), event: reflect.TypeOf(event)}
	entry, ok := m.handlers[key]
	if !ok || entry.ignore {
		_ = nullDirective{}.apply(m, eventName)
		if m.hooks.OnIgnored != nil {
			m.hooks.OnIgnored(&DispatchEvent{State: m.currentName(), Event: eventName})
		}
		return
	}

	for _, action := range entry.actions {
		action(m.states[m.active], event)
	}

	// The target type was validated against the declared set in Build, so
	// this cannot fail.
	_ = m.applyTransition(entry.target, eventName)
}

// CurrentState returns the active state instance.
func (m *Machine) CurrentState() State {
	return m.states[m.active]
}

// CurrentStateName returns the display name of the active state, honoring a
// Named override on the instance.
func (m *Machine) CurrentStateName() string {
	return m.currentName()
}

func (m *Machine) currentName() string {
	return StateName(m.states[m.active])
}

// applyTransition is the single transition path: exit hook on the active
// state, swap the active reference, enter hook on the target. A
// self-transition still runs both hooks, exit first.
func (m *Machine) applyTransition(target reflect.Type, event string) error {
	idx, ok := m.index[target]
	if !ok {
		return &UnknownStateError{StateType: typeName(target)}
	}

	from := m.states[m.active]
	fromName := StateName(from)

	if h, ok := from.(ExitHandler); ok {
		h.OnExit()
	}
	m.logger.Debug("state exit", "state", fromName, "event", event)
	if m.hooks.OnStateExit != nil {
		m.hooks.OnStateExit(&StateEvent{State: fromName, Event: event})
	}

	m.active = idx
	to := m.states[idx]
	toName := StateName(to)

	if h, ok := to.(EnterHandler); ok {
		h.OnEnter()
	}
	m.logger.Debug("state enter", "state", toName, "event", event)
	if m.hooks.OnStateEnter != nil {
		m.hooks.OnStateEnter(&StateEvent{State: toName, Event: event})
	}

	if m.hooks.OnTransition != nil {
		m.hooks.OnTransition(&TransitionEvent{
			From:  fromName,
			To:    toName,
			Event: event,
			Self:  target == reflect.TypeOf(from),
		})
	}

	return nil
}

// beginDispatch guards against re-entry from hooks and actions.
func (m *Machine) beginDispatch(op string) func() {
	if m.dispatching {
		panic("espalier: " + op + " re-entered from a hook or action on the same machine")
	}
	m.dispatching = true
	return func() { m.dispatching = false }
}
