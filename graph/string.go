package graph

import (
	"fmt"
	"strings"
)

// String renders a debug dump of every state: its items, accepts, and
// transitions. This is the Go equivalent of the reference
// implementation's print_graph, returned as a string rather than printed
// (the "printing" Non-goal excludes a driver program, not String methods —
// see SPEC_FULL.md §9).
func (g *Graph) String() string {
	var b strings.Builder
	for i, st := range g.States {
		fmt.Fprintf(&b, "State %d\n", i)
		for _, e := range st.Exprs {
			fmt.Fprintf(&b, " %s\n", e)
		}
		b.WriteString("accept:\n")
		for _, e := range st.Accept {
			fmt.Fprintf(&b, " %s\n", e)
		}
		b.WriteString("transitions:\n")
		for _, tr := range st.Transitions {
			fmt.Fprintf(&b, " %s -> %d\n", tr.Path, tr.Target)
		}
		b.WriteString("\n")
	}
	return b.String()
}
