// Package graph implements the subset-construction driver: it turns AST
// items into a deterministic multi-pattern automaton, minimises it, and
// answers ambiguity and match queries over the result.
package graph

import (
	"github.com/coregx/famdfa/ast"
	"github.com/coregx/famdfa/charset"
)

// State is one DFA state: the AST items it represents, its outgoing
// transitions, and the subset of those items that can terminate a match
// here. Transitions is kept as an ordered slice rather than a map so
// iteration order — and therefore the ambiguity analyser's and String's
// output — stays deterministic across runs (spec §5).
type State struct {
	Exprs       []ast.Node
	Transitions []Transition
	Accept      []ast.Node
}

// Transition labels an outgoing edge: Path is non-empty and, within one
// State, pairwise disjoint from every other Transition's Path in that
// State.
type Transition struct {
	Path   charset.Set
	Target int
}

// Graph is a compiled, or still-compiling, multi-pattern DFA.
type Graph struct {
	States []*State
}

// NewGraph seeds a graph with a single initial state whose items are the
// given patterns, each wrapped in a Family carrying its index as id.
func NewGraph(patterns ...ast.Node) *Graph {
	items := make([]ast.Node, len(patterns))
	for i, p := range patterns {
		items[i] = ast.NewFamily(i, p)
	}
	return &Graph{States: []*State{{Exprs: items}}}
}

// familyIDs extracts the Family ids out of a set of AST items, in order,
// skipping any item that (by construction, never happens) isn't a Family.
func familyIDs(items []ast.Node) []int {
	ids := make([]int, 0, len(items))
	for _, n := range items {
		if f, ok := n.(ast.Family); ok {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// addUniqueNode appends item to items unless an AST-equal node is already
// present (spec §4.4's add_unique, used both for accept-set membership and
// for merging item-sets during edge splitting).
func addUniqueNode(items []ast.Node, item ast.Node) []ast.Node {
	for _, other := range items {
		if item.Equal(other) {
			return items
		}
	}
	return append(items, item)
}

// itemSetEqual compares two item sets for set equality under positional
// AST equality (§4.1): each side must have an equal partner in the other,
// order does not matter.
func itemSetEqual(a, b []ast.Node) bool {
	for _, x := range a {
		if !hasEqualPartner(x, b) {
			return false
		}
	}
	for _, y := range b {
		if !hasEqualPartner(y, a) {
			return false
		}
	}
	return true
}

func hasEqualPartner(item ast.Node, items []ast.Node) bool {
	for _, other := range items {
		if item.Equal(other) {
			return true
		}
	}
	return false
}
