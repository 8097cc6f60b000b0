package graph_test

import (
	"strings"
	"testing"

	"github.com/okvist/espalier"
	"github.com/okvist/espalier/internal/presentation/graph"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		info     espalier.MachineInfo
		contains []string
	}{
		{
			name: "Initial Arrow",
			info: espalier.MachineInfo{
				States: []espalier.StateInfo{{Name: "Closed"}, {Name: "Open"}},
			},
			contains: []string{
				"stateDiagram-v2",
				"[*] --> Closed",
			},
		},
		{
			name: "Transitions",
			info: espalier.MachineInfo{
				States: []espalier.StateInfo{{Name: "Closed"}, {Name: "Open"}},
				Transitions: []espalier.TransitionInfo{
					{From: "Closed", Event: "open", To: "Open"},
					{From: "Open", Event: "close", To: "Closed"},
				},
			},
			contains: []string{
				"Closed --> Open: open",
				"Open --> Closed: close",
			},
		},
		{
			name: "Active Highlight",
			info: espalier.MachineInfo{
				States: []espalier.StateInfo{{Name: "Closed"}, {Name: "Open", Active: true}},
			},
			contains: []string{
				"classDef active",
				"class Open active",
			},
		},
		{
			name: "Explicit Ignore Self Loop",
			info: espalier.MachineInfo{
				States: []espalier.StateInfo{{Name: "Closed"}},
				Transitions: []espalier.TransitionInfo{
					{From: "Closed", Event: "close", Ignore: true},
				},
			},
			contains: []string{
				"Closed --> Closed: ~~close~~",
			},
		},
		{
			name: "ID Sanitization",
			info: espalier.MachineInfo{
				States: []espalier.StateInfo{{Name: "Fin Wait-1"}},
			},
			contains: []string{
				`state "Fin Wait-1" as Fin_Wait_1`,
				"[*] --> Fin_Wait_1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(tt.info)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}
