package demo

import (
	"fmt"

	"github.com/okvist/espalier"
	"github.com/okvist/espalier/pkg/script"
)

// Names lists the machines this package can build.
func Names() []string {
	return []string{"door", "tcp"}
}

// New builds the named demo machine together with its event registry.
func New(name string, opts ...espalier.Option) (*espalier.Machine, *script.Registry, error) {
	switch name {
	case "door":
		m, err := NewDoor(opts...)
		return m, DoorEvents(), err
	case "tcp":
		m, err := NewTCP(opts...)
		return m, TCPEvents(), err
	default:
		return nil, nil, fmt.Errorf("unknown machine %q (known: %v)", name, Names())
	}
}
