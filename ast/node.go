// Package ast implements the regex abstract syntax tree and its derivative
// operation.
//
// Each Node variant is a plain Go struct used by value: advancing
// never mutates a node in place, it builds and returns new values, sharing
// unchanged substructure by reference through the Node interface. This is
// the "copy, don't mutate" discipline the derivative engine depends on for
// correctness (two DFA states may hold item-sets derived from overlapping
// walks of the same original tree; mutating a shared node would corrupt
// whichever other walk still references it).
//
// The five variants below are closed and known at compile time, so they are
// expressed as a tagged sum dispatched through the Node interface rather
// than as an open class hierarchy — the same style
// coregx-coregex/nfa/nfa.go uses for its Inst union (a fixed set of
// instruction shapes dispatched by a tag field), adapted here to dispatch
// by Go's own type switch instead of an explicit tag byte, since there is
// no wire format to keep compact.
package ast

import "github.com/coregx/famdfa/charset"

// Status reports whether a derivative edge completes a match right now
// (HasMatch) or still requires more input (NotMatch).
type Status bool

const (
	// NotMatch means the edge's target node still needs more input before
	// it can complete a match.
	NotMatch Status = false
	// HasMatch means following this edge completes a match immediately.
	HasMatch Status = true
)

// Edge is one possible one-character (or epsilon) continuation produced by
// Node.Advance: consume the characters in Path (or, if Path is EPSILON, no
// character at all) and land on Next.
type Edge struct {
	Path   charset.Set
	Status Status
	Next   Node
}

// Node is the common interface every AST variant implements.
//
// Advance enumerates every one-step continuation of the node given whether
// the enclosing DFA state could already terminate a match (canEnd) — used
// only by non-greedy Repeat to prefer stopping early. It never mutates the
// receiver.
//
// Reset returns a copy of the node with all derivation-local state
// (cursors, consumed flags, iteration counts) restored to its initial
// value, as if freshly parsed. It is called whenever a completed
// sub-derivation needs to start over for the next iteration of an
// enclosing Repeat or the next reuse of an alternative.
//
// Equal implements the structural-with-state equality rules of spec §4.1:
// it is what lets the subset-construction driver (package graph) recognize
// that two syntactically different derivation walks have reached the same
// DFA state, which is what makes the construction terminate on patterns
// like unbounded Repeat.
type Node interface {
	Advance(canEnd bool) []Edge
	Reset() Node
	Equal(other Node) bool
	String() string
}
