package graph

import (
	"github.com/coregx/famdfa/ast"
	"github.com/coregx/famdfa/charset"
)

// Compile drives subset-construction passes to a fixed point. Each pass
// processes every state from the previous pass's cursor up to the graph's
// current length, so newly discovered states are only processed by the
// next pass — exactly the reference implementation's compile/_compile
// split. Re-entrant: calling Compile again once the graph has reached a
// fixpoint is a no-op.
//
// If maxState is positive and the graph would need to grow past it,
// Compile stops early and returns a *LimitError wrapping the graph as
// currently built; every state that was fully processed is still
// well-formed.
func (g *Graph) Compile(maxState int) error {
	cursor, last := 0, -1
	for cursor != last && (maxState <= 0 || cursor < maxState) {
		last = cursor
		cursor = g.compilePass(last)
	}
	if maxState > 0 && len(g.States) > maxState {
		return &LimitError{Graph: g, StatesBuilt: len(g.States)}
	}
	return nil
}

// compilePass processes states [start, stop) where stop is the graph's
// length when the pass began; states appended during the pass are left for
// the next one. Returns stop, which becomes the next pass's start.
func (g *Graph) compilePass(start int) int {
	stop := len(g.States)
	for i := start; i < stop; i++ {
		g.compileState(i)
	}
	return stop
}

// candidate is a transition still under construction: a path paired with
// the (possibly not yet merged with anything else) set of AST items it
// leads to. Unlike Transition, Target here is a candidate item-set, not
// yet resolved to a state index.
type candidate struct {
	path  charset.Set
	items []ast.Node
}

// compileState runs one subset-construction step for state i: compute
// can_end, advance every item, accumulate candidate transitions with the
// edge-splitting protocol, resolve candidates to state indices (appending
// new states as needed), and unify same-target transitions.
func (g *Graph) compileState(i int) {
	st := g.States[i]

	canEnd := false
	for _, e := range st.Exprs {
		for _, edge := range e.Advance(false) {
			if edge.Path.IsEpsilon() {
				canEnd = true
				break
			}
		}
		if canEnd {
			break
		}
	}

	var cands []candidate
	for _, e := range st.Exprs {
		for _, edge := range e.Advance(canEnd) {
			if edge.Path.IsEpsilon() {
				st.Accept = addUniqueNode(st.Accept, e)
				continue
			}
			cands = mergeEdge(cands, edge.Path, edge.Next)
		}
	}

	resolved := make([]Transition, 0, len(cands))
	for _, c := range cands {
		resolved = append(resolved, Transition{Path: c.path, Target: g.resolveState(c.items)})
	}
	st.Transitions = unify(resolved)
}

// mergeEdge folds a new (path, item) derivative edge into the candidate
// transitions accumulated so far for one state, preserving the invariant
// that candidate paths are pairwise disjoint. For every existing
// candidate, in order, it splits both paths at their overlap: the part of
// the old path outside the new edge keeps its old target unchanged; the
// overlapping part gets item added to its target item-set; the new path
// shrinks to whatever is left outside the old path. Once the new path is
// fully absorbed, remaining candidates pass through untouched.
func mergeEdge(cands []candidate, path charset.Set, item ast.Node) []candidate {
	out := make([]candidate, 0, len(cands)+1)
	absorbed := false
	for _, c := range cands {
		if absorbed {
			out = append(out, c)
			continue
		}
		onlyNew, onlyOld, both := path.Intersect(c.path)
		if !onlyOld.IsEpsilon() {
			out = append(out, candidate{path: onlyOld, items: c.items})
		}
		if !both.IsEpsilon() {
			merged := addUniqueNode(append([]ast.Node(nil), c.items...), item)
			out = append(out, candidate{path: both, items: merged})
		}
		path = onlyNew
		if path.IsEpsilon() {
			absorbed = true
		}
	}
	if !absorbed && !path.IsEpsilon() {
		out = append(out, candidate{path: path, items: []ast.Node{item}})
	}
	return out
}

// resolveState finds an existing graph state whose item-set equals items
// (set equality under §4.1 positional AST equality) and returns its index,
// or appends a new state for it and returns the new index.
func (g *Graph) resolveState(items []ast.Node) int {
	for i, st := range g.States {
		if itemSetEqual(items, st.Exprs) {
			return i
		}
	}
	idx := len(g.States)
	g.States = append(g.States, &State{Exprs: items})
	return idx
}

// unify coalesces transitions that share a target into one entry keyed by
// the union of their paths, preserving first-seen order among targets.
func unify(transitions []Transition) []Transition {
	var out []Transition
	seen := map[int]bool{}
	for _, t := range transitions {
		if seen[t.Target] {
			continue
		}
		seen[t.Target] = true
		path := t.Path
		for _, other := range transitions {
			if other.Target == t.Target {
				path = path.Union(other.Path)
			}
		}
		out = append(out, Transition{Path: path, Target: t.Target})
	}
	return out
}
