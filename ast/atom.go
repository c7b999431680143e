package ast

import "github.com/coregx/famdfa/charset"

// Atom matches exactly one character drawn from Set. Consumed tracks
// whether that character has already been produced during the current
// derivation walk — once true, the atom contributes no further character
// to the path but still reports a (trivial, epsilon) completed match, so
// that a Sequence or Repeat built from it can tell "I already consumed my
// one character" apart from "I have not run yet".
type Atom struct {
	Set      charset.Set
	Consumed bool
}

// NewAtom constructs a fresh, unconsumed Atom over set.
func NewAtom(set charset.Set) Atom {
	return Atom{Set: set}
}

// Advance implements Node.
func (a Atom) Advance(canEnd bool) []Edge {
	if a.Consumed {
		return []Edge{{Path: charset.Empty(), Status: HasMatch, Next: a}}
	}
	return []Edge{{Path: a.Set, Status: HasMatch, Next: Atom{Set: a.Set, Consumed: true}}}
}

// Reset implements Node.
func (a Atom) Reset() Node {
	return Atom{Set: a.Set}
}

// Equal implements Node. Charset identity is carried by sharing (the same
// Set value), not compared — spec §4.1 only requires the Consumed flags to
// agree.
func (a Atom) Equal(other Node) bool {
	o, ok := other.(Atom)
	return ok && a.Consumed == o.Consumed
}

// String implements Node.
func (a Atom) String() string {
	return a.Set.String()
}
