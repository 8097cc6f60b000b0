package espalier

import "reflect"

// State marks a type as a machine state. Concrete states satisfy it by
// embedding StateTag:
//
//	type Closed struct {
//	    espalier.StateTag
//	}
//
// A type without the tag cannot be added to a Builder or named as a
// transition target; the compiler rejects it.
type State interface {
	machineState()
}

// StateTag is embedded by concrete state types to satisfy State.
type StateTag struct{}

func (StateTag) machineState() {}

// Named overrides the display name of a state or event. When absent, the
// name is derived from the concrete type name.
type Named interface {
	Name() string
}

// EnterHandler is implemented by states that want a callback after the
// machine switches to them. The default is a no-op.
type EnterHandler interface {
	OnEnter()
}

// ExitHandler is implemented by states that want a callback before the
// machine switches away from them. The default is a no-op.
type ExitHandler interface {
	OnExit()
}

// StateName returns the display name of a state: Name() when the state
// implements Named, otherwise the concrete type name.
func StateName(s State) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return typeName(reflect.TypeOf(s))
}

// typeName strips pointer indirections so *demo.Closed and demo.Closed both
// read as "Closed".
func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
