package espalier

import "reflect"

// Event marks a type as dispatchable to a Machine. Concrete events satisfy
// it by embedding EventTag:
//
//	type Open struct {
//	    espalier.EventTag
//	}
//
// Events are transient: the machine never retains them beyond the Dispatch
// call that delivered them.
type Event interface {
	machineEvent()
}

// EventTag is embedded by concrete event types to satisfy Event.
type EventTag struct{}

func (EventTag) machineEvent() {}

// EventName returns the display name of an event: Name() when the event
// implements Named, otherwise the concrete type name.
func EventName(e Event) string {
	if n, ok := e.(Named); ok {
		return n.Name()
	}
	return typeName(reflect.TypeOf(e))
}
