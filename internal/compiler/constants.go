package compiler

// Operator characters of the pattern syntax. OpConcat never appears in a
// surface pattern; InsertConcatenation adds it between adjacent atoms.
const (
	OpConcat = '.'
	OpUnion  = '|'
	OpStar   = '*'
	OpLParen = '('
	OpRParen = ')'
)

// Operator precedences used by ToPostfix. Higher binds tighter.
const (
	PrecUnion  = 1
	PrecConcat = 2
	PrecStar   = 3
)

// DefaultMaxStates bounds subset construction when Config.MaxStates is unset.
// The powerset of NFA states can grow exponentially; real patterns stay far
// below this.
const DefaultMaxStates = 10000

// noState marks a fragment endpoint that has been moved out.
const noState = -1
