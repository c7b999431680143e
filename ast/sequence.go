package ast

import (
	"strings"

	"github.com/coregx/famdfa/charset"
)

// Sequence is concatenation with no capture semantics. Cursor indexes the
// child currently being derived; once a child completes, Cursor advances
// to the next one, and once Cursor reaches len(Children) the sequence
// itself has completed (spec §4.3).
type Sequence struct {
	Children []Node
	Cursor   int
}

// NewSequence constructs a Sequence positioned at its first child.
func NewSequence(children ...Node) Sequence {
	return Sequence{Children: children}
}

// Advance implements Node.
func (s Sequence) Advance(canEnd bool) []Edge {
	if s.Cursor == len(s.Children) {
		return []Edge{{Path: charset.Empty(), Status: HasMatch, Next: s}}
	}

	var result []Edge
	for _, e := range s.Children[s.Cursor].Advance(canEnd) {
		next := s
		children := make([]Node, len(s.Children))
		copy(children, s.Children)
		children[s.Cursor] = e.Next
		next.Children = children
		if e.Status == HasMatch {
			next.Cursor++
		}
		if next.Cursor == len(s.Children) {
			result = append(result, Edge{Path: e.Path, Status: HasMatch, Next: next})
			continue
		}
		if e.Path.IsEpsilon() {
			result = append(result, next.Advance(canEnd)...)
			continue
		}
		result = append(result, Edge{Path: e.Path, Status: NotMatch, Next: next})
	}
	return result
}

// Reset implements Node.
func (s Sequence) Reset() Node {
	children := make([]Node, len(s.Children))
	for i, c := range s.Children {
		children[i] = c.Reset()
	}
	return Sequence{Children: children}
}

// Equal implements Node.
func (s Sequence) Equal(other Node) bool {
	o, ok := other.(Sequence)
	if !ok || s.Cursor != o.Cursor {
		return false
	}
	if s.Cursor == len(s.Children) {
		return true
	}
	return s.Children[s.Cursor].Equal(o.Children[o.Cursor])
}

// String implements Node.
func (s Sequence) String() string {
	parts := make([]string, len(s.Children))
	for i, c := range s.Children {
		if i == s.Cursor {
			parts[i] = "[" + c.String() + "]"
		} else {
			parts[i] = c.String()
		}
	}
	return "(" + strings.Join(parts, "") + ")"
}
