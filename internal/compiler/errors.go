package compiler

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned when compilation is asked for an empty pattern.
var ErrEmptyPattern = errors.New("pattern cannot be empty")

// ErrUnbalancedParen reports a parenthesis mismatch at a zero-based position.
// Unclosed is set when the offending paren is an '(' left open at the end of
// input rather than a ')' without a partner.
type ErrUnbalancedParen struct {
	Pos      int
	Unclosed bool
}

func (e ErrUnbalancedParen) Error() string {
	if e.Unclosed {
		return fmt.Sprintf("unclosed '(' at position %d", e.Pos)
	}
	return fmt.Sprintf("unmatched ')' at position %d", e.Pos)
}

// ErrInvalidOperator is returned when precedence lookup meets a character
// that is not one of the operators '*', '.' or '|'.
type ErrInvalidOperator struct {
	Op byte
}

func (e ErrInvalidOperator) Error() string {
	return fmt.Sprintf("invalid operator %q (valid: *, ., |)", e.Op)
}

// ErrMalformedPostfix is returned when the postfix stream cannot be evaluated
// into exactly one automaton fragment.
type ErrMalformedPostfix struct {
	Reason   string
	Pos      int // index into the postfix stream, -1 when raised at the end
	Operands int // fragments on the operand stack when the error was detected
}

func (e ErrMalformedPostfix) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("malformed postfix: %s (%d operands left)", e.Reason, e.Operands)
	}
	return fmt.Sprintf("malformed postfix at %d: %s (%d operands available)", e.Pos, e.Reason, e.Operands)
}

// ErrStateLimit is returned when subset construction would exceed the
// configured number of DFA states.
type ErrStateLimit struct {
	Limit int
}

func (e ErrStateLimit) Error() string {
	return fmt.Sprintf("DFA state explosion: exceeded %d states", e.Limit)
}
