package compiler

// AnalysisResult describes what compiling a pattern produces, without keeping
// the automaton.
type AnalysisResult struct {
	Pattern         string `json:"pattern"`
	Postfix         string `json:"postfix"`
	Alphabet        string `json:"alphabet"`
	NFAStates       int    `json:"nfa_states"`
	DFAStates       int    `json:"dfa_states"`
	AcceptingStates int    `json:"accepting_states"`
	DeadStates      int    `json:"dead_states"`
	MatchesEmpty    bool   `json:"matches_empty"`
}

// AnalyzePattern compiles pattern and reports the sizes of the intermediate
// automata. It returns an error if the pattern is invalid.
func AnalyzePattern(pattern string, maxStates int) (*AnalysisResult, error) {
	res, err := New(Config{Pattern: pattern, MaxStates: maxStates}).Run()
	if err != nil {
		return nil, err
	}
	dfa := res.DFA
	defer dfa.Release()

	result := &AnalysisResult{
		Pattern:   pattern,
		Postfix:   res.Postfix.String(),
		Alphabet:  string(res.Alphabet),
		NFAStates: res.NFAStates,
		DFAStates: dfa.Len(),
	}
	for id := 0; id < dfa.Len(); id++ {
		if dfa.State(id).Accepting {
			result.AcceptingStates++
		}
		if !dfa.Live(id) {
			result.DeadStates++
		}
	}
	result.MatchesEmpty = dfa.State(dfa.Start()).Accepting
	return result, nil
}
