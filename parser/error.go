package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per SyntaxErrorKind, so callers can test the kind of
// failure with errors.Is without inspecting SyntaxError's fields directly.
var (
	// ErrUnquantifiable means a quantifier followed nothing quantifiable.
	ErrUnquantifiable = errors.New("preceding token is not quantifiable")
	// ErrUnexpectedChar means a character appeared where the grammar did
	// not allow one.
	ErrUnexpectedChar = errors.New("unexpected token")
	// ErrUnexpectedEnd means the input ran out mid-construct.
	ErrUnexpectedEnd = errors.New("unexpected end of expression")
)

// SyntaxErrorKind distinguishes the three parse error shapes spec §7
// names.
type SyntaxErrorKind int

const (
	// Unquantifiable means a quantifier (*, +, ?, {n,m}) followed nothing
	// quantifiable.
	Unquantifiable SyntaxErrorKind = iota
	// UnexpectedChar means a character appeared where the grammar did not
	// allow one (a bad repeat-count character, a stray ')', ...).
	UnexpectedChar
	// UnexpectedEnd means the input ran out mid-construct (an unclosed
	// group or character class).
	UnexpectedEnd
)

// SyntaxError is the parser's single error type. It carries enough to
// render spec §7's required rendering: the message, the full input, and a
// caret under the offending column.
type SyntaxError struct {
	Kind SyntaxErrorKind
	Text string
	Pos  int
	Char rune // only meaningful when Kind == UnexpectedChar
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s\n%s\n%s^", e.message(), e.Text, strings.Repeat(" ", e.Pos))
}

// Unwrap lets callers use errors.Is(err, parser.ErrUnexpectedEnd) and
// friends instead of switching on Kind directly.
func (e *SyntaxError) Unwrap() error {
	switch e.Kind {
	case Unquantifiable:
		return ErrUnquantifiable
	case UnexpectedChar:
		return ErrUnexpectedChar
	case UnexpectedEnd:
		return ErrUnexpectedEnd
	default:
		return nil
	}
}

func (e *SyntaxError) message() string {
	switch e.Kind {
	case Unquantifiable:
		return "Preceding token is not quantifiable"
	case UnexpectedChar:
		return fmt.Sprintf("Unexpected token: %q", e.Char)
	case UnexpectedEnd:
		return "Unexpected end of expression"
	default:
		return "parse error"
	}
}

func errUnquantifiable(text string, pos int) *SyntaxError {
	return &SyntaxError{Kind: Unquantifiable, Text: text, Pos: pos}
}

func errUnexpected(text string, ch byte, pos int) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedChar, Text: text, Pos: pos, Char: rune(ch)}
}

func errEOF(text string, pos int) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedEnd, Text: text, Pos: pos}
}
