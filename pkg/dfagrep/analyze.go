package dfagrep

import (
	"github.com/KromDaniel/dfagrep/internal/compiler"
)

// AnalysisResult describes the automata a pattern compiles to.
type AnalysisResult = compiler.AnalysisResult

// Analyze compiles pattern and reports the sizes of its NFA and DFA without
// keeping either.
//
// Example:
//
//	result, err := dfagrep.Analyze("(ab|c)*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Postfix)   // "ab.c|*"
//	fmt.Println(result.MatchesEmpty) // true
func Analyze(pattern string) (*AnalysisResult, error) {
	return AnalyzeWithLimit(pattern, compiler.DefaultMaxStates)
}

// AnalyzeWithLimit is Analyze with a custom cap on DFA states.
func AnalyzeWithLimit(pattern string, maxStates int) (*AnalysisResult, error) {
	return compiler.AnalyzePattern(pattern, maxStates)
}
