package ast

import (
	"testing"

	"github.com/coregx/famdfa/charset"
)

func a() Node { return NewAtom(charset.Char('a')) }
func b() Node { return NewAtom(charset.Char('b')) }

func TestAtomAdvance(t *testing.T) {
	edges := a().Advance(false)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	e := edges[0]
	if e.Status != HasMatch || e.Path.IsEpsilon() {
		t.Fatalf("unconsumed atom must emit a HasMatch edge on its charset, got %+v", e)
	}
	consumed := e.Next
	edges2 := consumed.Advance(false)
	if len(edges2) != 1 || !edges2[0].Path.IsEpsilon() || edges2[0].Status != HasMatch {
		t.Fatalf("consumed atom must emit (EPSILON, HasMatch, self), got %+v", edges2)
	}
}

func TestAtomEquality(t *testing.T) {
	fresh := NewAtom(charset.Char('a'))
	consumed := Atom{Set: charset.Char('a'), Consumed: true}
	if !fresh.Equal(fresh) {
		t.Fatal("atom must equal itself")
	}
	if fresh.Equal(consumed) {
		t.Fatal("consumed and unconsumed atoms must not be equal")
	}
}

func TestRepeatUnboundedCollapses(t *testing.T) {
	// a* after 3 iterations and a* after 5 iterations must compare equal
	// once both have satisfied Min, since Max is unbounded — this is what
	// keeps the DFA for a* finite.
	r3 := Repeat{Inner: a(), Min: 0, Max: Unbounded, Count: 3, Greedy: true}
	r5 := Repeat{Inner: a(), Min: 0, Max: Unbounded, Count: 5, Greedy: true}
	if !r3.Equal(r5) {
		t.Fatal("unbounded repeats past Min must collapse regardless of exact count")
	}
}

func TestRepeatBoundedDoesNotCollapse(t *testing.T) {
	r3 := Repeat{Inner: a(), Min: 0, Max: 5, Count: 3, Greedy: true}
	r4 := Repeat{Inner: a(), Min: 0, Max: 5, Count: 4, Greedy: true}
	if r3.Equal(r4) {
		t.Fatal("bounded repeats with different counts must not collapse")
	}
}

func TestRepeatZeroMinZeroMaxIsEpsilonOnly(t *testing.T) {
	r := NewRepeat(a(), 0, 0)
	edges := r.Advance(false)
	if len(edges) != 1 || !edges[0].Path.IsEpsilon() || edges[0].Status != HasMatch {
		t.Fatalf("{0,0} repeat must behave like EPSILON, got %+v", edges)
	}
}

func TestRepeatStarDoesNotEmitStopHereMidIteration(t *testing.T) {
	r := NewRepeat(a(), 0, Unbounded)
	// Begin consuming the first 'a': find the NotMatch continuation.
	var dirty Repeat
	found := false
	for _, e := range r.Advance(false) {
		if e.Status == NotMatch {
			dirty = e.Next.(Repeat)
			found = true
		}
	}
	if !found {
		t.Fatal("expected a NotMatch continuation while mid-atom")
	}
	if !dirty.Dirty {
		t.Fatal("repeat must be marked dirty mid-iteration")
	}
	for _, e := range dirty.Advance(false) {
		if e.Path.IsEpsilon() {
			t.Fatal("dirty repeat must not offer the 'stop here' option mid-iteration")
		}
	}
}

func TestSequenceAdvancesCursorOnCompletion(t *testing.T) {
	seq := NewSequence(a(), b())
	var consumedA Node
	for _, e := range seq.Advance(false) {
		if e.Status == NotMatch {
			consumedA = e.Next
		}
	}
	if consumedA == nil {
		t.Fatal("expected a NotMatch continuation after consuming 'a'")
	}
	s := consumedA.(Sequence)
	if s.Cursor != 1 {
		t.Fatalf("cursor should have advanced to 1, got %d", s.Cursor)
	}
}

func TestSequencePastEndIsEpsilonMatch(t *testing.T) {
	done := Sequence{Children: []Node{a(), b()}, Cursor: 2}
	edges := done.Advance(false)
	if len(edges) != 1 || !edges[0].Path.IsEpsilon() || edges[0].Status != HasMatch {
		t.Fatalf("sequence past its end must emit (EPSILON, HasMatch, self), got %+v", edges)
	}
}

func TestChoiceFansOutBeforeSelection(t *testing.T) {
	c := NewChoice(a(), b())
	edges := c.Advance(false)
	if len(edges) != 2 {
		t.Fatalf("expected one edge per alternative before a cursor is pinned, got %d", len(edges))
	}
}

func TestChoiceEqualityRequiresSameCursor(t *testing.T) {
	c1 := Choice{Alts: []Node{a(), b()}, Cursor: 0}
	c2 := Choice{Alts: []Node{a(), b()}, Cursor: 1}
	if c1.Equal(c2) {
		t.Fatal("choices pinned to different alternatives must not be equal")
	}
	none1 := NewChoice(a(), b())
	none2 := NewChoice(a(), b())
	if !none1.Equal(none2) {
		t.Fatal("two unselected choices must be equal regardless of alternative content")
	}
}

func TestFamilyPreservesIDThroughAdvance(t *testing.T) {
	f := NewFamily(7, a())
	for _, e := range f.Advance(false) {
		if fam, ok := e.Next.(Family); !ok || fam.ID != 7 {
			t.Fatalf("family id must survive advance, got %+v", e.Next)
		}
	}
}

func TestFamilyEqualityRequiresSameID(t *testing.T) {
	f1 := NewFamily(1, a())
	f2 := NewFamily(2, a())
	if f1.Equal(f2) {
		t.Fatal("families with different ids must not be equal")
	}
}
