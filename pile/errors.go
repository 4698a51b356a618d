package pile

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPile    = errors.New("pile is empty")
	ErrHighMismatch = errors.New("snapshot high card does not match contents")
)

// LookupError reports a card attribute with no entry in the suit index or
// the rank table. Kind is "suit" or "rank".
type LookupError struct {
	Kind  string
	Value byte
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %d", e.Kind, e.Value)
}

// InvariantError is returned by Verify when the suit index or high-card
// cache has drifted from the primary sequence.
type InvariantError string

func (e InvariantError) Error() string { return "pile invariant violated: " + string(e) }
