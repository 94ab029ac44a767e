package automaton

import (
	"errors"
	"fmt"
)

// ErrUninitialized is returned when a scan runs against an automaton that has
// no start state: the zero value, a released automaton, or the leftover of a
// failed compilation.
var ErrUninitialized = errors.New("automaton: no start state")

// ErrIncompleteState is returned by New when a state does not carry exactly one
// transition per alphabet symbol.
type ErrIncompleteState struct {
	State       int
	Transitions int
	Alphabet    int
}

func (e ErrIncompleteState) Error() string {
	return fmt.Sprintf("automaton: state %d has %d transitions, alphabet has %d symbols",
		e.State, e.Transitions, e.Alphabet)
}
