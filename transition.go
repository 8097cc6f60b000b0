package espalier

import "reflect"

// Directive is the outcome of handling an event: either a move to a named
// target state or a no-op. The interface is closed; the only values are
// those produced by To and Stay.
type Directive interface {
	// Execute applies the directive to the machine. It fails only when the
	// directive names a state outside the machine's declared set.
	Execute(m *Machine) error

	apply(m *Machine, event string) error
}

// To returns the directive that moves a machine to its instance of state S.
func To[S State]() Directive {
	return transitionTo{target: reflect.TypeOf((*S)(nil)).Elem()}
}

// Stay returns the null directive. Executing it has no observable effect on
// the machine; at most a debug line is logged.
func Stay() Directive {
	return nullDirective{}
}

// Transition programmatically moves the machine to its instance of state S,
// running the exit hook of the active state and the enter hook of S, in that
// order. It returns an error only when S was never declared on m.
func Transition[S State](m *Machine) error {
	return To[S]().Execute(m)
}

type transitionTo struct {
	target reflect.Type
}

func (t transitionTo) Execute(m *Machine) error {
	release := m.beginDispatch("Execute")
	defer release()
	return t.apply(m, "")
}

func (t transitionTo) apply(m *Machine, event string) error {
	return m.applyTransition(t.target, event)
}

type nullDirective struct{}

func (nullDirective) Execute(m *Machine) error {
	release := m.beginDispatch("Execute")
	defer release()
	return nullDirective{}.apply(m, "")
}

func (nullDirective) apply(m *Machine, event string) error {
	m.logger.Debug("null transition", "state", m.currentName(), "event", event)
	return nil
}
