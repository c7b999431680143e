package ast

import "fmt"

// Family wraps a pattern's AST with the integer id that names it. Ids
// survive every transformation the graph builder performs (state merging,
// minimisation, renumbering) and are what callers ultimately learn about
// at match time: "pattern 2 and pattern 5 both matched this prefix".
type Family struct {
	ID    int
	Inner Node
}

// NewFamily wraps inner under id.
func NewFamily(id int, inner Node) Family {
	return Family{ID: id, Inner: inner}
}

// Advance implements Node: a pure passthrough that preserves ID on the
// copy.
func (f Family) Advance(canEnd bool) []Edge {
	edges := f.Inner.Advance(canEnd)
	result := make([]Edge, len(edges))
	for i, e := range edges {
		result[i] = Edge{Path: e.Path, Status: e.Status, Next: Family{ID: f.ID, Inner: e.Next}}
	}
	return result
}

// Reset implements Node.
func (f Family) Reset() Node {
	return Family{ID: f.ID, Inner: f.Inner.Reset()}
}

// Equal implements Node: equal iff both the id and the inner AST agree.
func (f Family) Equal(other Node) bool {
	o, ok := other.(Family)
	return ok && f.ID == o.ID && f.Inner.Equal(o.Inner)
}

// String implements Node.
func (f Family) String() string {
	return fmt.Sprintf("%s->%d", f.Inner, f.ID)
}
