package graph

import (
	"github.com/coregx/famdfa/internal/conv"
	"github.com/coregx/famdfa/internal/sparse"
)

// Ambiguity reports that the family ids in IDs can all be matched by the
// same input, witnessed by one concrete example string that reaches a
// state accepting all of them at once.
type Ambiguity struct {
	IDs     []int
	Witness string
}

// Analyse finds every state whose Accept contains more than one family id
// and reconstructs a witness input that reaches it. Purely diagnostic: it
// returns data and never modifies the graph (spec §4.6).
func (g *Graph) Analyse() []Ambiguity {
	var out []Ambiguity
	for i, st := range g.States {
		ids := familyIDs(st.Accept)
		if len(ids) <= 1 {
			continue
		}
		if witness, ok := g.witnessTo(i); ok {
			out = append(out, Ambiguity{IDs: ids, Witness: witness})
		}
	}
	return out
}

// step is one entry of witnessTo's breadth-first worklist: the state
// reached so far, and the bytes collected to reach it in forward order.
type step struct {
	state int
	chars []byte
}

// witnessTo finds a shortest input that drives the graph from state 0 to
// target, one representative byte per edge. Every state is reachable from
// state 0 by construction (subset construction only ever discovers states
// as transition targets from already-reachable ones), so a forward
// breadth-first search from state 0 is equivalent to — and simpler than —
// the reference implementation's reverse walk from target back to state 0
// (see DESIGN.md); internal/sparse tracks the visited set.
func (g *Graph) witnessTo(target int) (string, bool) {
	if target == 0 {
		return "", true
	}
	visited := sparse.NewSparseSet(conv.IntToUint32(len(g.States)))
	visited.Insert(0)
	queue := []step{{state: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, tr := range g.States[cur.state].Transitions {
			c, ok := tr.Path.FirstChar()
			if !ok {
				continue
			}
			chars := append(append([]byte(nil), cur.chars...), byte(c))
			if tr.Target == target {
				return string(chars), true
			}
			targetU32 := conv.IntToUint32(tr.Target)
			if !visited.Contains(targetU32) {
				visited.Insert(targetU32)
				queue = append(queue, step{state: tr.Target, chars: chars})
			}
		}
	}
	return "", false
}
