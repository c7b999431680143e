package ast

import "strings"

// NoCursor is the Choice.Cursor sentinel meaning "no alternative selected
// yet" — the Go equivalent of the reference implementation's cursor=None.
const NoCursor = -1

// Choice is alternation with no capture semantics. Before any character
// has been consumed by this node, Cursor is NoCursor and Advance fans out
// over every alternative; once one alternative has started matching,
// Cursor pins the derivation to it for the rest of the walk (spec §4.3).
type Choice struct {
	Alts   []Node
	Cursor int
}

// NewChoice constructs an unselected Choice over alts.
func NewChoice(alts ...Node) Choice {
	return Choice{Alts: alts, Cursor: NoCursor}
}

// Advance implements Node.
func (c Choice) Advance(canEnd bool) []Edge {
	if c.Cursor == NoCursor {
		var result []Edge
		for i := range c.Alts {
			next := c
			next.Cursor = i
			result = append(result, next.Advance(canEnd)...)
		}
		return result
	}

	var result []Edge
	for _, e := range c.Alts[c.Cursor].Advance(canEnd) {
		next := c
		alts := make([]Node, len(c.Alts))
		copy(alts, c.Alts)
		alts[c.Cursor] = e.Next
		next.Alts = alts
		result = append(result, Edge{Path: e.Path, Status: e.Status, Next: next})
	}
	return result
}

// Reset implements Node.
func (c Choice) Reset() Node {
	alts := make([]Node, len(c.Alts))
	for i, a := range c.Alts {
		alts[i] = a.Reset()
	}
	return Choice{Alts: alts, Cursor: NoCursor}
}

// Equal implements Node.
func (c Choice) Equal(other Node) bool {
	o, ok := other.(Choice)
	if !ok || c.Cursor != o.Cursor {
		return false
	}
	if c.Cursor == NoCursor {
		return true
	}
	return c.Alts[c.Cursor].Equal(o.Alts[o.Cursor])
}

// String implements Node.
func (c Choice) String() string {
	parts := make([]string, len(c.Alts))
	for i, a := range c.Alts {
		if i == c.Cursor {
			parts[i] = "[" + a.String() + "]"
		} else {
			parts[i] = a.String()
		}
	}
	return "(" + strings.Join(parts, "|") + ")"
}
