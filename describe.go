package espalier

// StateInfo describes one declared state.
type StateInfo struct {
	Name   string
	Active bool
}

// TransitionInfo describes one declared handler. To is empty for explicit
// ignores.
type TransitionInfo struct {
	From   string
	Event  string
	To     string
	Ignore bool
}

// MachineInfo is a snapshot of the machine's declared topology, suitable for
// visualization or inspection surfaces. States appear in declaration order,
// transitions in declaration order.
type MachineInfo struct {
	States      []StateInfo
	Transitions []TransitionInfo
}

// Describe returns the machine's topology with the active state marked.
func (m *Machine) Describe() MachineInfo {
	info := MachineInfo{
		States:      make([]StateInfo, len(m.states)),
		Transitions: make([]TransitionInfo, len(m.topology)),
	}
	for i, s := range m.states {
		info.States[i] = StateInfo{Name: StateName(s), Active: i == m.active}
	}
	copy(info.Transitions, m.topology)
	return info
}
