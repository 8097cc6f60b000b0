// Package demo ships the machines used by the CLI, the HTTP server and the
// integration tests: a two-state door and a TCP connection lifecycle.
package demo

import (
	"github.com/okvist/espalier"
	"github.com/okvist/espalier/pkg/script"
)

// Door events.
type (
	OpenDoor  struct{ espalier.EventTag }
	CloseDoor struct{ espalier.EventTag }
)

// DoorClosed is the door's initial state.
type DoorClosed struct{ espalier.StateTag }

func (*DoorClosed) Name() string { return "Closed" }

// DoorOpen counts how often the door has been opened.
type DoorOpen struct {
	espalier.StateTag
	Openings int
}

func (*DoorOpen) Name() string { return "Open" }

func (s *DoorOpen) OnEnter() { s.Openings++ }

// NewDoor builds the door machine: Closed answers OpenDoor by opening, Open
// answers CloseDoor by closing.
func NewDoor(opts ...espalier.Option) (*espalier.Machine, error) {
	b := espalier.NewBuilder()
	b.Add(&DoorClosed{}, &DoorOpen{})
	espalier.On[*DoorClosed, OpenDoor, *DoorOpen](b)
	espalier.On[*DoorOpen, CloseDoor, *DoorClosed](b)
	return b.Build(opts...)
}

// DoorEvents returns the door's event names for scripted and HTTP dispatch.
func DoorEvents() *script.Registry {
	reg := script.NewRegistry()
	script.Register[OpenDoor](reg, "open")
	script.Register[CloseDoor](reg, "close")
	return reg
}
