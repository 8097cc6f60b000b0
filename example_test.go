package espalier_test

import (
	"fmt"

	"github.com/okvist/espalier"
)

type knock struct{ espalier.EventTag }
type shut struct{ espalier.EventTag }

type Closed struct{ espalier.StateTag }
type Open struct{ espalier.StateTag }

// ExampleBuilder declares the canonical two-state door machine and walks it
// through a full open/close cycle.
func ExampleBuilder() {
	b := espalier.NewBuilder()
	b.Add(&Closed{}, &Open{})
	espalier.On[*Closed, knock, *Open](b)
	espalier.On[*Open, shut, *Closed](b)

	door, err := b.Build()
	if err != nil {
		panic(err)
	}

	fmt.Println(door.CurrentStateName())

	door.Dispatch(knock{})
	fmt.Println(door.CurrentStateName())

	door.Dispatch(shut{})
	fmt.Println(door.CurrentStateName())

	// An event nobody handles is silently ignored.
	door.Dispatch(shut{})
	fmt.Println(door.CurrentStateName())

	// Output:
	// Closed
	// Open
	// Closed
	// Closed
}
