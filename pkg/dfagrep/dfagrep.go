// Package dfagrep compiles a small regular-expression language (literals,
// concatenation, '|', '*' and parentheses) into a deterministic finite
// automaton and uses it to test or locate matches in text.
package dfagrep

import (
	"fmt"
	"io"

	"github.com/KromDaniel/dfagrep/internal/automaton"
	"github.com/KromDaniel/dfagrep/internal/compiler"
	"github.com/KromDaniel/dfagrep/stream"
)

// Automaton is a compiled pattern. It is immutable and safe for concurrent
// scans until Release is called.
type Automaton = automaton.DFA

// Span is an inclusive [Start, End] byte range of a match.
type Span = automaton.Span

// Errors returned by compilation and scanning. Compile wraps them, so test
// with errors.Is and errors.As.
var (
	ErrEmptyPattern  = compiler.ErrEmptyPattern
	ErrUninitialized = automaton.ErrUninitialized
)

type (
	ErrUnbalancedParen  = compiler.ErrUnbalancedParen
	ErrInvalidOperator  = compiler.ErrInvalidOperator
	ErrMalformedPostfix = compiler.ErrMalformedPostfix
	ErrStateLimit       = compiler.ErrStateLimit
)

// Options configures the compilation process.
type Options struct {
	// Pattern is the expression to compile
	Pattern string

	// Verbose logs every pipeline stage to LogOutput
	Verbose bool

	// LogOutput receives verbose output (default: os.Stderr)
	LogOutput io.Writer

	// MaxStates caps the number of DFA states (0 uses the default of 10000)
	MaxStates int
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return ErrEmptyPattern
	}
	if o.MaxStates < 0 {
		return fmt.Errorf("max states cannot be negative")
	}
	return nil
}

// Compile compiles pattern with default options.
func Compile(pattern string) (*Automaton, error) {
	return CompileWithOptions(Options{Pattern: pattern})
}

// CompileWithOptions runs the full pipeline: concatenation insertion,
// Shunting-Yard conversion to postfix, Thompson NFA construction and subset
// construction. The intermediate NFA is discarded before returning.
func CompileWithOptions(opts Options) (*Automaton, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c := compiler.New(compiler.Config{
		Pattern:   opts.Pattern,
		Verbose:   opts.Verbose,
		MaxStates: opts.MaxStates,
	})
	if opts.LogOutput != nil {
		c.SetLogOutput(opts.LogOutput)
	}

	dfa, err := c.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	return dfa, nil
}

// Accepts reports whether a matches the whole of text.
func Accepts(a *Automaton, text string) (bool, error) {
	return a.Accepts(text)
}

// FindMatches returns, for every start index of text, the shortest match
// beginning there. Spans from different start indices may overlap.
func FindMatches(a *Automaton, text string) ([]Span, error) {
	return a.FindMatches(text)
}

// Release frees the automaton's states. Any scan afterwards fails with
// ErrUninitialized.
func Release(a *Automaton) {
	a.Release()
}

// Matches compiles pattern and reports whether it matches the whole of text.
// An invalid pattern matches nothing. The pattern is recompiled on every call.
func Matches(pattern, text string) bool {
	a, err := Compile(pattern)
	if err != nil {
		return false
	}
	defer a.Release()

	ok, err := a.Accepts(text)
	return err == nil && ok
}

// Filter returns a reader yielding the lines of r that contain at least one
// match of a. Read it to EOF or Close it.
func Filter(r io.Reader, a *Automaton) io.ReadCloser {
	return stream.Filter(r, stream.DefaultConfig(), func(line string) bool {
		spans, err := a.FindMatches(line)
		return err == nil && len(spans) > 0
	})
}
