package turkshead

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is returned by New when the knot cannot be built from
// its arguments.
var ErrInvalidParameters = errors.New("turkshead: invalid parameters")

// InvariantError is the panic value used when a query falls outside the
// range the knot was built for. It signals a bug in the caller or in this
// package, never bad user input.
type InvariantError struct {
	Op    string
	Theta int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("turkshead: %s: theta %d outside known crossings", e.Op, e.Theta)
}
