// Package famdfa compiles a set of regular expressions into a single
// deterministic automaton and matches byte strings against all of them at
// once, reporting the longest match and every pattern that shares it.
//
// Unlike a backtracking engine, the automaton's per-byte cost does not
// depend on the pattern's structure, so pathological patterns like thirty
// chained optional repeats still run in time linear in the input.
//
// Basic usage:
//
//	g, err := famdfa.Compile(`a+`, `ab`, `(a|b)+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, ok := g.Match([]byte("aab"))
//	if ok {
//	    fmt.Println(m.Length, m.IDs) // 3 [2]
//	}
//
// Custom configuration:
//
//	config := famdfa.DefaultConfig()
//	config.MaxState = 5000
//	g, err := famdfa.CompileWithConfig(config, `(a|b|c)*`)
package famdfa

import (
	"fmt"

	"github.com/coregx/famdfa/accel"
	"github.com/coregx/famdfa/ast"
	"github.com/coregx/famdfa/graph"
	"github.com/coregx/famdfa/parser"
)

// Graph is a compiled, minimised, matchable multi-pattern automaton.
//
// A Graph is safe to use concurrently from multiple goroutines: Match only
// reads the underlying state.
type Graph struct {
	g     *graph.Graph
	lit   *accel.LiteralAccelerator
	texts []string
}

// Match describes a successful run against a Graph: Length is how many
// bytes of input were consumed, and IDs lists the index (in the order
// passed to Compile) of every pattern that accepts at that length.
type Match struct {
	Length int
	IDs    []int
}

// Ambiguity reports that two or more patterns can both match the same
// input up to some point, along with one concrete witness string that
// demonstrates it.
type Ambiguity struct {
	IDs     []int
	Witness string
}

// Compile parses and compiles patterns with DefaultConfig.
//
// Syntax supports literals, \x escapes, . wildcard, [...] character classes
// (with ^ inversion and a-b ranges), (...) groups with | alternation, and
// the quantifiers *, +, ?, {n}, {n,}, {,m}, {n,m}. A bare | outside a group
// is an ordinary literal character, not alternation.
//
// Example:
//
//	g, err := famdfa.Compile(`\d{3}-\d{4}`)
func Compile(patterns ...string) (*Graph, error) {
	return CompileWithConfig(DefaultConfig(), patterns...)
}

// MustCompile compiles patterns and panics if any of them fail.
//
// Useful for patterns known to be valid at compile time.
//
// Example:
//
//	var ids = famdfa.MustCompile(`[a-z]+`, `[0-9]+`)
func MustCompile(patterns ...string) *Graph {
	g, err := Compile(patterns...)
	if err != nil {
		panic(fmt.Sprintf("famdfa: Compile(%q): %v", patterns, err))
	}
	return g
}

// CompileWithConfig compiles patterns with a custom Config.
//
// Example:
//
//	config := famdfa.DefaultConfig()
//	config.EnableLiteralAccel = false
//	g, err := famdfa.CompileWithConfig(config, "(a|b|c)*")
func CompileWithConfig(cfg Config, patterns ...string) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	nodes := make([]ast.Node, len(patterns))
	for i, p := range patterns {
		n, err := parser.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("famdfa: pattern %d (%q): %w", i, p, err)
		}
		nodes[i] = n
	}

	gr := graph.NewGraph(nodes...)
	if err := gr.Compile(cfg.MaxState); err != nil {
		return nil, err
	}
	if cfg.Aggregate {
		gr.Aggregate()
	}

	var lit *accel.LiteralAccelerator
	if cfg.EnableLiteralAccel {
		literals := make(map[int][]byte)
		for i, n := range nodes {
			if text, ok := accel.DetectLiteral(n); ok {
				literals[i] = text
			}
		}
		if len(literals) >= cfg.MinLiteralPatterns {
			built, err := accel.Build(literals)
			if err != nil {
				return nil, err
			}
			lit = built
		}
	}

	return &Graph{g: gr, lit: lit, texts: append([]string(nil), patterns...)}, nil
}

// Match runs the automaton over input, returning the longest accepting
// prefix and the ids of every pattern that reaches it. The second return
// value is false if no pattern matches any prefix of input, including the
// empty one.
func (g *Graph) Match(input []byte) (Match, bool) {
	m, ok := g.g.Match(input, g.accelerator())
	return Match{Length: m.Length, IDs: m.IDs}, ok
}

// accelerator returns g.lit adapted to graph.Accelerator, or nil if no
// literal accelerator was built. This indirection avoids handing
// graph.Match a non-nil interface wrapping a nil *accel.LiteralAccelerator.
func (g *Graph) accelerator() graph.Accelerator {
	if g.lit == nil {
		return nil
	}
	return literalAdapter{lit: g.lit}
}

// literalAdapter converts accel.Completion values to graph.Completion so a
// *accel.LiteralAccelerator can serve as a graph.Accelerator.
type literalAdapter struct{ lit *accel.LiteralAccelerator }

// Query implements graph.Accelerator.
func (a literalAdapter) Query(input []byte) []graph.Completion {
	found := a.lit.Query(input)
	out := make([]graph.Completion, len(found))
	for i, c := range found {
		out[i] = graph.Completion(c)
	}
	return out
}

// Ambiguities reports every pair (or larger group) of patterns that share
// at least one accepting state, each with a witness input that reaches it.
// Purely diagnostic: it never changes how Match behaves.
func (g *Graph) Ambiguities() []Ambiguity {
	found := g.g.Analyse()
	out := make([]Ambiguity, len(found))
	for i, a := range found {
		out[i] = Ambiguity{IDs: a.IDs, Witness: a.Witness}
	}
	return out
}

// String renders a debug dump of every DFA state: useful when diagnosing
// why two patterns were reported ambiguous or why a pattern didn't match
// what was expected.
func (g *Graph) String() string {
	return g.g.String()
}
