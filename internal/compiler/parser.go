package compiler

import "strings"

// Token is one element of a pattern: a literal byte or an operator.
// Keeping the two apart lets a literal '.' in a pattern coexist with the
// inserted concatenation operator.
type Token struct {
	Char     byte
	Operator bool
}

// Literal returns a literal token for c.
func Literal(c byte) Token { return Token{Char: c} }

// Operator returns an operator token for c.
func Operator(c byte) Token { return Token{Char: c, Operator: true} }

// Is reports whether t is the operator op.
func (t Token) Is(op byte) bool { return t.Operator && t.Char == op }

func (t Token) String() string { return string(t.Char) }

// Tokens is an ordered token sequence.
type Tokens []Token

// String renders the sequence with operators and literals as plain characters,
// so the augmented form of "ab" prints as "a.b".
func (ts Tokens) String() string {
	var b strings.Builder
	b.Grow(len(ts))
	for _, t := range ts {
		b.WriteByte(t.Char)
	}
	return b.String()
}

// Tokenize classifies every byte of pattern. '*', '|', '(' and ')' are
// operators; everything else, '.' included, is a literal.
func Tokenize(pattern string) Tokens {
	tokens := make(Tokens, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case OpStar, OpUnion, OpLParen, OpRParen:
			tokens = append(tokens, Operator(c))
		default:
			tokens = append(tokens, Literal(c))
		}
	}
	return tokens
}

// CheckBalancedParens scans pattern once with a stack of open parens. It
// fails on the first ')' without a partner, and otherwise on the innermost
// '(' still open at the end of input.
func CheckBalancedParens(pattern string) error {
	var open []int
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case OpLParen:
			open = append(open, i)
		case OpRParen:
			if len(open) == 0 {
				return ErrUnbalancedParen{Pos: i}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return ErrUnbalancedParen{Pos: open[len(open)-1], Unclosed: true}
	}
	return nil
}

// atomEnd reports whether t can end an atom, i.e. a concatenation may follow.
func atomEnd(t Token) bool {
	return !t.Is(OpUnion) && !t.Is(OpLParen)
}

// atomStart reports whether t can begin an atom.
func atomStart(t Token) bool {
	return !t.Is(OpUnion) && !t.Is(OpRParen) && !t.Is(OpStar)
}

// InsertConcatenation validates pattern and returns its token sequence with an
// explicit concatenation operator between every pair of adjacent atoms.
func InsertConcatenation(pattern string) (Tokens, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	if err := CheckBalancedParens(pattern); err != nil {
		return nil, err
	}

	tokens := Tokenize(pattern)
	out := make(Tokens, 0, 2*len(tokens))
	for i, t := range tokens {
		if i > 0 && atomEnd(tokens[i-1]) && atomStart(t) {
			out = append(out, Operator(OpConcat))
		}
		out = append(out, t)
	}
	return out, nil
}

type opInfo struct {
	precedence int
	leftAssoc  bool
}

// lookupOperator returns the precedence entry for op.
func lookupOperator(op byte) (opInfo, error) {
	switch op {
	case OpStar:
		return opInfo{precedence: PrecStar}, nil
	case OpConcat:
		return opInfo{precedence: PrecConcat, leftAssoc: true}, nil
	case OpUnion:
		return opInfo{precedence: PrecUnion, leftAssoc: true}, nil
	default:
		return opInfo{}, ErrInvalidOperator{Op: op}
	}
}

// pendingOp is an operator waiting on the Shunting-Yard stack together with
// its index in the input, for error reporting.
type pendingOp struct {
	tok Token
	pos int
}

// ToPostfix converts an augmented infix token sequence to postfix order with
// the Shunting-Yard algorithm. Parens are consumed, never emitted.
func ToPostfix(tokens Tokens) (Tokens, error) {
	out := make(Tokens, 0, len(tokens))
	var ops []pendingOp

	for i, t := range tokens {
		if !t.Operator {
			out = append(out, t)
			continue
		}
		switch t.Char {
		case OpLParen:
			ops = append(ops, pendingOp{tok: t, pos: i})
		case OpRParen:
			for len(ops) > 0 && !ops[len(ops)-1].tok.Is(OpLParen) {
				out = append(out, ops[len(ops)-1].tok)
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, ErrUnbalancedParen{Pos: i}
			}
			ops = ops[:len(ops)-1]
		default:
			cur, err := lookupOperator(t.Char)
			if err != nil {
				return nil, err
			}
			for len(ops) > 0 && !ops[len(ops)-1].tok.Is(OpLParen) {
				top, err := lookupOperator(ops[len(ops)-1].tok.Char)
				if err != nil {
					return nil, err
				}
				if top.precedence > cur.precedence || (top.precedence == cur.precedence && cur.leftAssoc) {
					out = append(out, ops[len(ops)-1].tok)
					ops = ops[:len(ops)-1]
					continue
				}
				break
			}
			ops = append(ops, pendingOp{tok: t, pos: i})
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.tok.Is(OpLParen) {
			return nil, ErrUnbalancedParen{Pos: top.pos, Unclosed: true}
		}
		out = append(out, top.tok)
		ops = ops[:len(ops)-1]
	}
	return out, nil
}
