package dfagrep

import (
	"fmt"

	"github.com/KromDaniel/dfagrep/internal/codegen"
)

// GenerateOptions configures Go source generation.
type GenerateOptions struct {
	// Pattern is the expression to compile
	Pattern string

	// Name is the generated type name (e.g., "Hex" generates "Hex" and "CompiledHex")
	Name string

	// Package is the Go package name for the generated code
	Package string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// TestInputs are baked into a generated _test.go next to OutputFile.
	// No inputs means no test file.
	TestInputs []string

	// MaxStates caps the number of DFA states (0 uses the default of 10000)
	MaxStates int
}

// Validate checks if the options are valid.
func (o GenerateOptions) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if o.MaxStates < 0 {
		return fmt.Errorf("max states cannot be negative")
	}
	return nil
}

// Generate compiles the pattern and writes a standalone table-driven matcher
// for it.
func Generate(opts GenerateOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	a, err := CompileWithOptions(Options{Pattern: opts.Pattern, MaxStates: opts.MaxStates})
	if err != nil {
		return err
	}
	defer a.Release()

	return generate(a, opts)
}

// GenerateFrom writes the matcher for an automaton that is already compiled
// from opts.Pattern. opts.MaxStates is ignored.
func GenerateFrom(a *Automaton, opts GenerateOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return generate(a, opts)
}

func generate(a *Automaton, opts GenerateOptions) error {
	g := codegen.New(codegen.Config{
		Pattern:    opts.Pattern,
		Name:       codegen.UpperFirst(opts.Name),
		Package:    opts.Package,
		OutputFile: opts.OutputFile,
		TestInputs: opts.TestInputs,
	}, a)

	if err := g.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
