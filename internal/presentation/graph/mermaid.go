// Package graph renders machine topologies as Mermaid state diagrams.
package graph

import (
	"fmt"
	"strings"

	"github.com/okvist/espalier"
)

// GenerateMermaid produces a Mermaid stateDiagram-v2 from a machine
// topology. The initial state gets the [*] entry arrow, explicit ignores are
// drawn as self loops with a struck label, and the active state (when the
// snapshot marks one) is highlighted.
func GenerateMermaid(info espalier.MachineInfo) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	for i, state := range info.States {
		safeID := sanitizeMermaidID(state.Name)
		if safeID != state.Name {
			sb.WriteString(fmt.Sprintf("    state \"%s\" as %s\n", state.Name, safeID))
		}
		if i == 0 {
			sb.WriteString(fmt.Sprintf("    [*] --> %s\n", safeID))
		}
	}

	for _, t := range info.Transitions {
		from := sanitizeMermaidID(t.From)
		if t.Ignore {
			sb.WriteString(fmt.Sprintf("    %s --> %s: ~~%s~~\n", from, from, t.Event))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n", from, sanitizeMermaidID(t.To), t.Event))
	}

	for _, state := range info.States {
		if state.Active {
			safeID := sanitizeMermaidID(state.Name)
			sb.WriteString("\n    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
			sb.WriteString(fmt.Sprintf("    class %s active\n", safeID))
			break
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, " ", "_")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
