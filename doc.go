/*
Package espalier is a typed finite-state-machine dispatch engine built around
a closed set of state types and a closed set of event types.

States and events are plain Go types carrying a marker tag; handlers are
declared per (state type, event type) pair on a Builder and validated once
when the machine is built. Dispatching an event the active state never
declared a handler for is not an error: it resolves to the null directive
and leaves the machine untouched. A machine that builds successfully has no
dispatch-time failure mode.

# Usage

	package main

	import (
		"fmt"

		"github.com/okvist/espalier"
	)

	type Open struct{ espalier.EventTag }
	type Close struct{ espalier.EventTag }

	type DoorClosed struct{ espalier.StateTag }
	type DoorOpen struct{ espalier.StateTag }

	func main() {
		b := espalier.NewBuilder()
		b.Add(&DoorClosed{}, &DoorOpen{})
		espalier.On[*DoorClosed, Open, *DoorOpen](b)
		espalier.On[*DoorOpen, Close, *DoorClosed](b)

		door, err := b.Build()
		if err != nil {
			panic(err)
		}

		door.Dispatch(Open{})
		door.Dispatch(Close{})

		fmt.Println(door.CurrentStateName()) // DoorClosed
	}

# Lifecycle

Transitions run the exit hook of the active state (ExitHandler), switch the
active reference to the pre-built target instance, then run the target's
enter hook (EnterHandler): exit strictly before enter, both exactly once
even on a self-transition. The initial state is the first state added to the
builder and its enter hook does not fire; entry hooks are a consequence of
executed transitions only.

Machines are single-threaded and must not be re-entered from their own hooks
or actions; callers needing concurrent access serialize externally.
*/
package espalier

// Version is the library version, reported by the CLI.
const Version = "0.1.0"
