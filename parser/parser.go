// Package parser turns the textual regex surface syntax (spec §6) into an
// ast.Node tree. It is a small hand-written recursive-descent parser, the
// idiom this codebase's reference material uses for grammars too small to
// justify a generated lexer/parser pair.
package parser

import (
	"github.com/coregx/famdfa/ast"
	"github.com/coregx/famdfa/charset"
)

// Parse compiles text into an AST. The returned error, when non-nil, is
// always a *SyntaxError.
func Parse(text string) (ast.Node, error) {
	expr, i, err := parseSequence(text, 0, false)
	if err != nil {
		return nil, err
	}
	if i < len(text) {
		return nil, errUnexpected(text, text[i], i)
	}
	return expr, nil
}

// parseExpr parses one alternative of a group: a run of sequence material,
// which may itself contain groups, character classes and quantifiers.
func parseExpr(text string, i int, inChoice bool) (ast.Node, int, error) {
	if i >= len(text) {
		return nil, i, errEOF(text, i)
	}
	return parseSequence(text, i, inChoice)
}

// parseChoice parses the alternatives of a "(" that was already consumed by
// the caller, stopping at the matching ")".
func parseChoice(text string, i int) (ast.Node, int, error) {
	expr, i, err := parseExpr(text, i, true)
	if err != nil {
		return nil, i, err
	}
	exprs := []ast.Node{expr}
	for {
		if i >= len(text) {
			return nil, i, errEOF(text, i)
		}
		c := text[i]
		i++
		switch c {
		case ')':
			if len(exprs) == 1 {
				return exprs[0], i, nil
			}
			return ast.NewChoice(exprs...), i, nil
		case '|':
			var next ast.Node
			next, i, err = parseExpr(text, i, true)
			if err != nil {
				return nil, i, err
			}
			exprs = append(exprs, next)
		default:
			// Unreachable in valid input: parseExpr always returns with i
			// sitting exactly on the ")" or "|" that ends it.
			return nil, i, errUnexpected(text, c, i-1)
		}
	}
}

// parseSequence parses concatenated atoms, groups, classes and quantifiers.
// When inChoice is true, an unescaped "|" ends the sequence (without being
// consumed) rather than being treated as a literal character.
func parseSequence(text string, i int, inChoice bool) (ast.Node, int, error) {
	escaped := false
	var result []ast.Node
	var current ast.Node

	flush := func() {
		if current != nil {
			result = append(result, current)
			current = nil
		}
	}
	finish := func(i int) (ast.Node, int, error) {
		flush()
		if len(result) == 1 {
			return result[0], i, nil
		}
		return ast.NewSequence(result...), i, nil
	}

	for {
		if i >= len(text) {
			return finish(i)
		}
		c := text[i]
		i++
		consumed := false

		if !escaped {
			consumed = true
			switch {
			case c == '\\':
				escaped = true

			case c == '.':
				flush()
				current = ast.NewAtom(charset.Full())

			case c == '[':
				node, ni, err := parseCharset(text, i)
				if err != nil {
					return nil, ni, err
				}
				flush()
				current, i = node, ni

			case c == '(':
				node, ni, err := parseChoice(text, i)
				if err != nil {
					return nil, ni, err
				}
				flush()
				current, i = node, ni

			case c == '*':
				if current == nil {
					return nil, i, errUnquantifiable(text, i-1)
				}
				result = append(result, ast.NewRepeat(current, 0, ast.Unbounded))
				current = nil

			case c == '+':
				if current == nil {
					return nil, i, errUnquantifiable(text, i-1)
				}
				result = append(result, ast.NewRepeat(current, 1, ast.Unbounded))
				current = nil

			case c == '?':
				if current == nil {
					return nil, i, errUnquantifiable(text, i-1)
				}
				result = append(result, ast.NewRepeat(current, 0, 1))
				current = nil

			case c == '{':
				if current == nil {
					return nil, i, errUnquantifiable(text, i-1)
				}
				min, max, ni, err := parseRepeat(text, i)
				if err != nil {
					return nil, ni, err
				}
				result = append(result, ast.NewRepeat(current, min, max))
				current, i = nil, ni

			case c == ')' || (c == '|' && inChoice):
				return finish(i - 1)

			default:
				consumed = false
			}
		}

		if !consumed {
			flush()
			current = ast.NewAtom(charset.Char(int(c)))
			escaped = false
		}
	}
}

// parseCharset parses the body of a "[" that was already consumed by the
// caller, up to and including the matching "]". "^" right after the "["
// inverts the class; "a-b" denotes an inclusive range; a "-" that isn't
// part of a range (first, last, or immediately after a completed range) is
// a literal dash.
func parseCharset(text string, i int) (ast.Node, int, error) {
	inverted := false
	if i >= len(text) {
		return nil, i, errEOF(text, i)
	}
	if text[i] == '^' {
		inverted = true
		i++
	}

	var ranges [][2]int
	hasCurrent := false
	var current byte
	ranged := false
	escaped := false

	// appendPending mirrors the reference parser's nested closure: it either
	// closes out a pending a-b range, stashes a pending single character
	// as its own one-char range, or does nothing, then records the new
	// pending character (or clears it, once a range has been closed).
	appendPending := func(hasChar bool, char byte) {
		if ranged {
			if !hasChar {
				ranges = append(ranges, [2]int{int(current), int(current)}, [2]int{'-', '-'})
			} else {
				ranges = append(ranges, [2]int{int(current), int(char)})
			}
			hasCurrent = false
			return
		}
		if hasCurrent {
			ranges = append(ranges, [2]int{int(current), int(current)})
		}
		hasCurrent, current = hasChar, char
	}

	for {
		if i >= len(text) {
			return nil, i, errEOF(text, i)
		}
		c := text[i]
		i++

		if !escaped {
			if c == ']' {
				appendPending(false, 0)
				set := charset.New(ranges...)
				if inverted {
					set = charset.Invert(set)
				}
				return ast.NewAtom(set), i, nil
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == '-' && !ranged {
				if !hasCurrent {
					hasCurrent, current = true, c
				} else {
					ranged = true
				}
				continue
			}
		}

		appendPending(true, c)
		ranged = false
		escaped = false
	}
}

// parseRepeat parses the body of a "{" that was already consumed by the
// caller, up to and including the matching "}": "n", "n,", ",m" or "n,m".
func parseRepeat(text string, i int) (min, max, ni int, err error) {
	max = ast.Unbounded
	num := 0
	reset := true
	sawComma := false

	for {
		if i >= len(text) {
			return 0, 0, i, errEOF(text, i)
		}
		c := text[i]
		i++
		switch {
		case c >= '0' && c <= '9':
			reset = false
			num = num*10 + int(c-'0')

		case c == ',':
			if sawComma {
				return 0, 0, i, errUnexpected(text, c, i-1)
			}
			min, num, reset, sawComma = num, 0, true, true

		case c == '}':
			if sawComma {
				if reset {
					max = ast.Unbounded
				} else {
					max = num
				}
			} else {
				min, max = num, num
			}
			return min, max, i, nil

		default:
			return 0, 0, i, errUnexpected(text, c, i-1)
		}
	}
}
