package accel

import "github.com/coregx/famdfa/ast"

// DetectLiteral reports whether node's entire language is a single literal
// string — a bare Atom over one character, or a Sequence of such atoms —
// and if so returns that string. Anything else (Repeat, Choice, a Atom
// over more than one character, ...) is not a candidate for acceleration
// and DetectLiteral returns false.
func DetectLiteral(node ast.Node) ([]byte, bool) {
	switch n := node.(type) {
	case ast.Atom:
		c, ok := n.Set.SoleChar()
		if !ok {
			return nil, false
		}
		return []byte{byte(c)}, true
	case ast.Sequence:
		out := make([]byte, 0, len(n.Children))
		for _, child := range n.Children {
			atom, ok := child.(ast.Atom)
			if !ok {
				return nil, false
			}
			c, ok := atom.Set.SoleChar()
			if !ok {
				return nil, false
			}
			out = append(out, byte(c))
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	default:
		return nil, false
	}
}
