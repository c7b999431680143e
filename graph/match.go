package graph

// Match describes a successful run: Length is how many bytes of input
// were consumed and IDs lists every family that accepts at that length.
type Match struct {
	Length int
	IDs    []int
}

// Completion is one accelerated literal family's accepted length anchored
// at position 0 of the current input, as reported by an Accelerator.
type Completion struct {
	ID     int
	Length int
}

// Accelerator is the surface Match needs from accel.LiteralAccelerator.
// Declaring it here, rather than importing package accel directly, keeps
// graph ignorant of the ahocorasick dependency; famdfa's top-level API
// wires in an adapter around the *accel.LiteralAccelerator where one was
// built.
type Accelerator interface {
	Query(input []byte) []Completion
}

// Match walks input from state 0 one byte at a time, tracking the longest
// accepting prefix seen, and stops early the moment no transition covers
// the current byte. When accel is non-nil, its anchored literal
// completions are folded into the same longest-match selection, so the
// result is identical to what a pure-DFA graph carrying the same patterns
// would have produced (spec §4.7, SPEC_FULL.md §3).
func (g *Graph) Match(input []byte, accel Accelerator) (Match, bool) {
	var best Match
	found := false

	record := func(length int, ids []int) {
		switch {
		case len(ids) == 0:
			return
		case !found || length > best.Length:
			best = Match{Length: length, IDs: append([]int(nil), ids...)}
			found = true
		case length == best.Length:
			best.IDs = mergeIDs(best.IDs, ids)
		}
	}

	state := 0
	for pos := 0; pos <= len(input); pos++ {
		record(pos, familyIDs(g.States[state].Accept))
		if pos == len(input) {
			break
		}
		next, ok := g.step(state, input[pos])
		if !ok {
			break
		}
		state = next
	}

	if accel != nil {
		for _, c := range accel.Query(input) {
			record(c.Length, []int{c.ID})
		}
	}

	return best, found
}

func (g *Graph) step(state int, c byte) (int, bool) {
	for _, tr := range g.States[state].Transitions {
		if tr.Path.Contains(int(c)) {
			return tr.Target, true
		}
	}
	return 0, false
}

func mergeIDs(existing, add []int) []int {
	for _, id := range add {
		dup := false
		for _, have := range existing {
			if have == id {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, id)
		}
	}
	return existing
}
