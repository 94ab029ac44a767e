// Command dfagrep prints the lines of a file that match a pattern.
//
// Usage:
//
//	dfagrep [flags] <pattern> <file>
//
// Patterns use literals, implicit concatenation, '|', '*' and parentheses.
// Each matching line is printed as "N: line" with the matched regions
// highlighted.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/dfagrep/internal/automaton"
	"github.com/KromDaniel/dfagrep/internal/highlight"
	"github.com/KromDaniel/dfagrep/pkg/dfagrep"
	"github.com/KromDaniel/dfagrep/stream"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dfagrep", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		whole      = fs.Bool("x", false, "Print lines the pattern matches in full, unhighlighted")
		color      = fs.Bool("color", true, "Highlight with ANSI colors (false: [brackets])")
		verbose    = fs.Bool("v", false, "Log every compilation stage to stderr")
		maxStates  = fs.Int("max-states", 0, "Maximum DFA states (0 = default)")
		dump       = fs.Bool("dump", false, "Pretty-print the compiled DFA")
		dotFile    = fs.String("dot", "", "Write the DFA as Graphviz DOT to this file")
		genFile    = fs.String("gen", "", "Write a generated Go matcher to this file")
		name       = fs.String("name", "Pattern", "Type name for -gen")
		pkg        = fs.String("pkg", "main", "Package name for -gen")
		testInputs arrayFlags
	)
	fs.Var(&testInputs, "test-input", "Input for the test file generated with -gen (repeatable)")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: dfagrep [flags] <pattern> <file>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "The file may be omitted when -dump, -dot or -gen is given.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	exporting := *dump || *dotFile != "" || *genFile != ""
	rest := fs.Args()
	if len(rest) != 2 && !(exporting && len(rest) == 1) {
		fs.Usage()
		return 1
	}
	pattern := rest[0]

	a, err := dfagrep.CompileWithOptions(dfagrep.Options{
		Pattern:   pattern,
		Verbose:   *verbose,
		LogOutput: stderr,
		MaxStates: *maxStates,
	})
	if err != nil {
		fmt.Fprintf(stderr, "dfagrep: %v\n", err)
		return 1
	}
	defer dfagrep.Release(a)

	if *dump {
		if err := automaton.Dump(stdout, a, *color); err != nil {
			fmt.Fprintf(stderr, "dfagrep: %v\n", err)
			return 1
		}
	}

	if *dotFile != "" {
		if err := writeDOT(*dotFile, a); err != nil {
			fmt.Fprintf(stderr, "dfagrep: %v\n", err)
			return 1
		}
	}

	if *genFile != "" {
		err := dfagrep.GenerateFrom(a, dfagrep.GenerateOptions{
			Pattern:    pattern,
			Name:       *name,
			Package:    *pkg,
			OutputFile: *genFile,
			TestInputs: testInputs,
		})
		if err != nil {
			fmt.Fprintf(stderr, "dfagrep: %v\n", err)
			return 1
		}
	}

	if len(rest) < 2 {
		return 0
	}

	file, err := os.Open(rest[1])
	if err != nil {
		fmt.Fprintf(stderr, "dfagrep: cannot open input: %v\n", err)
		return 1
	}
	defer file.Close()

	style := highlight.ANSI
	if !*color {
		style = highlight.Brackets
	}
	if err := grep(file, stdout, a, highlight.New(style), *whole); err != nil {
		fmt.Fprintf(stderr, "dfagrep: %v\n", err)
		return 1
	}
	return 0
}

// grep prints every matching line of r to w, prefixed with its line number.
func grep(r io.Reader, w io.Writer, a *dfagrep.Automaton, h *highlight.Highlighter, whole bool) error {
	out := bufio.NewWriter(w)

	var scanErr error
	err := stream.ScanLines(r, stream.DefaultConfig(), func(l stream.Line) bool {
		text := l.Text
		if whole {
			ok, err := a.Accepts(text)
			if err != nil {
				scanErr = err
				return false
			}
			if !ok {
				return true
			}
		} else {
			spans, err := a.FindMatches(text)
			if err != nil {
				scanErr = err
				return false
			}
			if len(spans) == 0 {
				return true
			}
			text = h.Render(text, spans)
		}
		fmt.Fprintf(out, "%d: %s\n", l.Number, text)
		return true
	})
	if err == nil {
		err = scanErr
	}
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	return err
}

func writeDOT(path string, a *dfagrep.Automaton) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := automaton.WriteDOT(f, a); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
