// Package accel matches pattern families whose entire language is a single
// literal string with an Aho-Corasick automaton, after the "literal engine
// bypass" strategy coregx-coregex's meta package uses for large literal
// alternations (meta/compile.go, meta/find.go). The DFA is not bypassed:
// such families are still compiled into it and walked one byte at a time,
// and the automaton's anchored completions are merged into that result.
package accel

import "github.com/coregx/ahocorasick"

// Completion is one accelerated family's accepted length anchored at
// position 0 of the queried input. It mirrors graph.Completion; the two
// are kept as separate, structurally identical types so that neither
// package has to import the other.
type Completion struct {
	ID     int
	Length int
}

// LiteralAccelerator matches a set of literal-only pattern families with
// one Aho-Corasick automaton per family. Each automaton is built from
// exactly one literal — the family's own — so a match at position 0 is
// unambiguous: its length is exactly that literal's length, with no risk
// of the automaton picking a different, non-longest, overlapping literal.
type LiteralAccelerator struct {
	automata map[int]*ahocorasick.Automaton
}

// Build constructs an accelerator covering every (id, literal) pair, or
// returns nil if patterns is empty. Patterns that are not pure literals
// are the caller's responsibility to exclude; Build does not validate
// that.
func Build(patterns map[int][]byte) (*LiteralAccelerator, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	automata := make(map[int]*ahocorasick.Automaton, len(patterns))
	for id, literal := range patterns {
		if len(literal) == 0 {
			continue
		}
		builder := ahocorasick.NewBuilder()
		builder.AddPattern(literal)
		automaton, err := builder.Build()
		if err != nil {
			return nil, err
		}
		automata[id] = automaton
	}
	if len(automata) == 0 {
		return nil, nil
	}
	return &LiteralAccelerator{automata: automata}, nil
}

// Query reports, for every accelerated family, whether its literal matches
// input anchored at position 0, and if so its length.
func (a *LiteralAccelerator) Query(input []byte) []Completion {
	var out []Completion
	for id, automaton := range a.automata {
		m := automaton.Find(input, 0)
		if m == nil || m.Start != 0 {
			continue
		}
		out = append(out, Completion{ID: id, Length: m.End})
	}
	return out
}
