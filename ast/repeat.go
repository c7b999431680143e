package ast

import (
	"fmt"

	"github.com/coregx/famdfa/charset"
)

// Unbounded is the sentinel value for Repeat.Max meaning "no upper bound",
// the Go equivalent of the reference implementation's NO_MAX.
const Unbounded = -1

// Repeat matches Inner between Min and Max times (Max may be Unbounded).
// Count is how many complete iterations have occurred in the current
// derivation walk; Dirty is true once the current iteration has started
// producing characters — it is what keeps Repeat from offering its "stop
// here" option mid-iteration, after at least one character of the current
// pass has already been consumed. Greedy controls whether the repeat
// prefers to keep matching or to terminate as soon as it legally can; the
// surface parser (package parser) only ever sets Greedy to true (see
// SPEC_FULL.md §10).
type Repeat struct {
	Inner  Node
	Min    int
	Max    int
	Count  int
	Dirty  bool
	Greedy bool
}

// NewRepeat constructs a fresh Repeat{min,max} over inner, greedy by
// default.
func NewRepeat(inner Node, min, max int) Repeat {
	return Repeat{Inner: inner, Min: min, Max: max, Greedy: true}
}

// Advance implements Node.
func (r Repeat) Advance(canEnd bool) []Edge {
	if !r.Greedy && canEnd {
		return []Edge{{Path: charset.Empty(), Status: HasMatch, Next: r}}
	}

	var result []Edge
	if !r.Dirty && r.Count >= r.Min {
		result = append(result, Edge{Path: charset.Empty(), Status: HasMatch, Next: r})
	}
	if r.Count == r.Max {
		return result
	}

	for _, e := range r.Inner.Advance(canEnd) {
		next := r
		next.Inner = e.Next
		if e.Status == HasMatch {
			next.Inner = next.Inner.Reset()
			next.Count = r.Count + 1
			if next.Count == r.Max {
				result = append(result, Edge{Path: e.Path, Status: HasMatch, Next: next})
				continue
			}
			if e.Path.IsEpsilon() {
				result = append(result, next.Advance(canEnd)...)
				continue
			}
			if next.Count >= r.Min {
				// A completing edge: record it before Dirty is set below,
				// so this snapshot of next is independent of the
				// "still need more" copy appended next.
				result = append(result, Edge{Path: e.Path, Status: HasMatch, Next: next})
			}
		}
		next.Dirty = true
		result = append(result, Edge{Path: e.Path, Status: NotMatch, Next: next})
	}
	return result
}

// Reset implements Node.
func (r Repeat) Reset() Node {
	return Repeat{Inner: r.Inner.Reset(), Min: r.Min, Max: r.Max, Greedy: r.Greedy}
}

// Equal implements Node: the collapsing rule that makes unbounded
// repetition terminate (spec §4.1). Two Repeat nodes over equal inner
// ASTs are equal either because they have performed exactly the same
// number of iterations, or because both have already satisfied their
// minimum and both have no upper bound — in that "can terminate anytime"
// regime, the exact iteration count no longer affects future behaviour, so
// collapsing it is what bounds a*'s DFA state count to a small constant
// rather than one state per iteration count.
func (r Repeat) Equal(other Node) bool {
	o, ok := other.(Repeat)
	if !ok {
		return false
	}
	sameCount := r.Count == o.Count
	bothSaturatedUnbounded := r.Count >= r.Min && o.Count >= o.Min && r.Max == Unbounded && o.Max == Unbounded
	return (sameCount || bothSaturatedUnbounded) && r.Inner.Equal(o.Inner)
}

// String implements Node.
func (r Repeat) String() string {
	max := "inf"
	if r.Max != Unbounded {
		max = fmt.Sprintf("%d", r.Max)
	}
	return fmt.Sprintf("%s{%d,%d,%s}", r.Inner, r.Min, r.Count, max)
}
