package demo

import (
	"github.com/okvist/espalier"
	"github.com/okvist/espalier/pkg/script"
)

// TCP segment and user-call events.
type (
	Syn         struct{ espalier.EventTag }
	SynAck      struct{ espalier.EventTag }
	Ack         struct{ espalier.EventTag }
	Fin         struct{ espalier.EventTag }
	FinAck      struct{ espalier.EventTag }
	Rst         struct{ espalier.EventTag }
	Timeout     struct{ espalier.EventTag }
	ActiveOpen  struct{ espalier.EventTag }
	PassiveOpen struct{ espalier.EventTag }
	SendData    struct{ espalier.EventTag }
	CloseConn   struct{ espalier.EventTag }
)

func (CloseConn) Name() string { return "Close" }

// TCP connection states. Display names derive from the type names.
type (
	Closed    struct{ espalier.StateTag }
	Listen    struct{ espalier.StateTag }
	SynRcvd   struct{ espalier.StateTag }
	SynSent   struct{ espalier.StateTag }
	FinWait1  struct{ espalier.StateTag }
	FinWait2  struct{ espalier.StateTag }
	Closing   struct{ espalier.StateTag }
	TimeWait  struct{ espalier.StateTag }
	CloseWait struct{ espalier.StateTag }
	LastAck   struct{ espalier.StateTag }
)

// Established tracks how many times the three-way handshake completed.
type Established struct {
	espalier.StateTag
	Handshakes int
}

func (s *Established) OnEnter() { s.Handshakes++ }

// NewTCP builds the TCP connection machine with the classic state diagram's
// transitions. Closed is initial.
func NewTCP(opts ...espalier.Option) (*espalier.Machine, error) {
	b := espalier.NewBuilder()
	b.Add(
		&Closed{}, &Listen{}, &SynRcvd{}, &SynSent{}, &Established{},
		&FinWait1{}, &FinWait2{}, &Closing{}, &TimeWait{}, &CloseWait{},
		&LastAck{},
	)

	espalier.On[*Closed, PassiveOpen, *Listen](b)
	espalier.On[*Closed, ActiveOpen, *SynSent](b)

	espalier.On[*Listen, SendData, *SynSent](b)
	espalier.On[*Listen, Syn, *SynRcvd](b)

	espalier.On[*SynRcvd, Timeout, *Closed](b)
	espalier.On[*SynRcvd, Rst, *Listen](b)
	espalier.On[*SynRcvd, Ack, *Established](b)
	espalier.On[*SynRcvd, CloseConn, *FinWait1](b)

	espalier.On[*SynSent, CloseConn, *Closed](b)
	espalier.On[*SynSent, Syn, *SynRcvd](b)
	espalier.On[*SynSent, SynAck, *Established](b)

	espalier.On[*Established, Fin, *CloseWait](b)
	espalier.On[*Established, CloseConn, *FinWait1](b)

	espalier.On[*FinWait1, Fin, *Closing](b)
	espalier.On[*FinWait1, Ack, *FinWait2](b)
	espalier.On[*FinWait1, FinAck, *TimeWait](b)

	espalier.On[*FinWait2, Fin, *TimeWait](b)

	espalier.On[*Closing, Ack, *TimeWait](b)

	espalier.On[*TimeWait, Timeout, *Closed](b)

	espalier.On[*CloseWait, CloseConn, *LastAck](b)

	espalier.On[*LastAck, Ack, *Closed](b)

	return b.Build(opts...)
}

// TCPEvents returns the TCP machine's event names for scripted and HTTP
// dispatch.
func TCPEvents() *script.Registry {
	reg := script.NewRegistry()
	script.Register[Syn](reg, "syn")
	script.Register[SynAck](reg, "syn-ack")
	script.Register[Ack](reg, "ack")
	script.Register[Fin](reg, "fin")
	script.Register[FinAck](reg, "fin-ack")
	script.Register[Rst](reg, "rst")
	script.Register[Timeout](reg, "timeout")
	script.Register[ActiveOpen](reg, "active-open")
	script.Register[PassiveOpen](reg, "passive-open")
	script.Register[SendData](reg, "send-data")
	script.Register[CloseConn](reg, "close")
	return reg
}
