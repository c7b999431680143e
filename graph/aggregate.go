package graph

import "github.com/coregx/famdfa/ast"

// Aggregate minimises the graph in place. It first normalises every
// state's accept set to one entry per distinct Family id (discarding
// item-set identity, which minimisation does not care about), then merges
// states with identical (accept-id-set, transitions-by-key) pairs until a
// full pass makes no further change. State indices are not preserved
// across Aggregate; Family ids inside Accept are.
func (g *Graph) Aggregate() {
	g.normaliseAccepts()
	for g.mergePass() {
	}
}

// normaliseAccepts deduplicates each state's Accept by Family id, keeping
// the last occurrence, and resets the kept Family's inner AST — cosmetic,
// it only affects String output, but it keeps that output stable across
// repeated minimisation passes (SPEC_FULL.md §10).
func (g *Graph) normaliseAccepts() {
	for _, st := range g.States {
		if len(st.Accept) == 0 {
			continue
		}
		var order []int
		byID := make(map[int]ast.Node, len(st.Accept))
		for _, n := range st.Accept {
			f, ok := n.(ast.Family)
			if !ok {
				continue
			}
			if _, seen := byID[f.ID]; !seen {
				order = append(order, f.ID)
			}
			byID[f.ID] = f.Reset()
		}
		accept := make([]ast.Node, len(order))
		for i, id := range order {
			accept[i] = byID[id]
		}
		st.Accept = accept
	}
}

// mergePass performs one full scan for mergeable state pairs, reports
// whether it merged anything, and re-unifies every state's transitions
// afterward (merging can make previously distinct targets coincide).
func (g *Graph) mergePass() bool {
	changed := false
	for i := 0; i < len(g.States); i++ {
		for j := i + 1; j < len(g.States); j++ {
			if !sameAcceptIDs(g.States[i].Accept, g.States[j].Accept) {
				continue
			}
			if !sameTransitions(g.States[i].Transitions, g.States[j].Transitions) {
				continue
			}
			g.mergeStates(i, j)
			changed = true
			j--
		}
	}
	for _, st := range g.States {
		st.Transitions = unify(st.Transitions)
	}
	return changed
}

// mergeStates folds state j into state i: every transition pointing at j
// is redirected to i, then j is removed by swapping the last state into
// its slot and redirecting that move too (classic swap-and-pop compaction,
// spec §4.5).
func (g *Graph) mergeStates(i, j int) {
	redirect(g.States, j, i)
	last := len(g.States) - 1
	if j != last {
		g.States[j] = g.States[last]
		redirect(g.States, last, j)
	}
	g.States = g.States[:last]
}

func redirect(states []*State, from, to int) {
	for _, st := range states {
		for k := range st.Transitions {
			if st.Transitions[k].Target == from {
				st.Transitions[k].Target = to
			}
		}
	}
}

func sameAcceptIDs(a, b []ast.Node) bool {
	as, bs := familyIDSet(a), familyIDSet(b)
	if len(as) != len(bs) {
		return false
	}
	for id := range as {
		if !bs[id] {
			return false
		}
	}
	return true
}

func familyIDSet(items []ast.Node) map[int]bool {
	out := make(map[int]bool, len(items))
	for _, n := range items {
		if f, ok := n.(ast.Family); ok {
			out[f.ID] = true
		}
	}
	return out
}

// sameTransitions reports whether a and b agree on every key: each path in
// one must have an equal path in the other with the same target, and the
// two sets must be the same size.
func sameTransitions(a, b []Transition) bool {
	if len(a) != len(b) {
		return false
	}
	for _, ta := range a {
		matched := false
		for _, tb := range b {
			if ta.Path.Equal(tb.Path) {
				matched = ta.Target == tb.Target
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
