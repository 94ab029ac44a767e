// Package compiler turns a pattern into a DFA: Shunting-Yard parsing to
// postfix, Thompson construction of an NFA, and subset construction.
package compiler

import (
	"io"

	"github.com/KromDaniel/dfagrep/internal/automaton"
)

// Config holds the configuration for one compilation.
type Config struct {
	Pattern   string
	Verbose   bool // Log each pipeline stage
	MaxStates int  // Max DFA states before failing (0 = DefaultMaxStates)
}

// Compiler runs the pattern pipeline.
type Compiler struct {
	config Config
	logger *Logger
}

// Result carries the DFA together with what the pipeline saw on the way.
type Result struct {
	Augmented Tokens
	Postfix   Tokens
	Alphabet  []byte
	NFAStates int
	DFA       *automaton.DFA
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		logger: NewLogger(config.Verbose),
	}
}

// SetLogOutput redirects verbose output.
func (c *Compiler) SetLogOutput(w io.Writer) {
	c.logger.SetOutput(w)
}

// Compile runs the full pipeline and returns the automaton.
func (c *Compiler) Compile() (*automaton.DFA, error) {
	res, err := c.Run()
	if err != nil {
		return nil, err
	}
	return res.DFA, nil
}

// Run runs the full pipeline. The NFA is released before Run returns; only
// its state count survives in the result.
func (c *Compiler) Run() (*Result, error) {
	pattern := c.config.Pattern

	c.logger.Section("Parse")
	c.logger.Log("Pattern: %s", pattern)
	augmented, err := InsertConcatenation(pattern)
	if err != nil {
		return nil, err
	}
	c.logger.Log("Augmented: %s", augmented)
	postfix, err := ToPostfix(augmented)
	if err != nil {
		return nil, err
	}
	c.logger.Log("Postfix: %s", postfix)

	alphabet := ExtractAlphabet(pattern)
	c.logger.Log("Alphabet: %q", alphabet)

	c.logger.Section("Thompson NFA")
	nfa, err := BuildNFA(postfix)
	if err != nil {
		return nil, err
	}
	nfaStates := nfa.Len()
	c.logger.Log("NFA states: %d (start %d, accept %d)", nfaStates, nfa.Start, nfa.Accept)

	c.logger.Section("Subset Construction")
	dfa, err := BuildDFA(nfa, alphabet, c.config.MaxStates, c.logger)
	nfa.Release()
	if err != nil {
		return nil, err
	}

	return &Result{
		Augmented: augmented,
		Postfix:   postfix,
		Alphabet:  alphabet,
		NFAStates: nfaStates,
		DFA:       dfa,
	}, nil
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*automaton.DFA, error) {
	return New(Config{Pattern: pattern}).Compile()
}
