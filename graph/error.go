package graph

import (
	"errors"
	"fmt"
)

// ErrStateLimitExceeded is the sentinel LimitError wraps, so callers can
// test for it with errors.Is without unwrapping the *LimitError itself.
var ErrStateLimitExceeded = errors.New("graph: state limit exceeded")

// LimitError is returned by Compile when the graph grows past the maxState
// bound on its number of states before reaching a fixpoint.
// The partially built Graph is reachable via Graph and is well-formed for
// every state that was fully processed.
type LimitError struct {
	Graph       *Graph
	StatesBuilt int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("graph: state limit reached after building %d states", e.StatesBuilt)
}

// Unwrap lets callers use errors.Is(err, graph.ErrStateLimitExceeded).
func (e *LimitError) Unwrap() error {
	return ErrStateLimitExceeded
}
