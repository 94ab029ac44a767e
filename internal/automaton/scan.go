package automaton

// Span is an inclusive byte range [Start, End] of a match within a line.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start + 1 }

// Accepts reports whether the whole of text is in the automaton's language.
// A byte outside the alphabet rejects the input immediately.
func (d *DFA) Accepts(text string) (bool, error) {
	if !d.Initialized() {
		return false, ErrUninitialized
	}
	state := d.start
	for i := 0; i < len(text); i++ {
		next, ok := d.Step(state, text[i])
		if !ok {
			return false, nil
		}
		state = next
	}
	return d.states[state].Accepting, nil
}

// FindMatches walks the automaton from every start index of text and records
// the shortest match beginning there: the walk for index i stops at the first
// j >= i whose state is accepting after consuming text[j], yielding [i, j].
//
// Every start index is tried, so spans from neighbouring indices may overlap.
// Spans are returned in start-index order.
func (d *DFA) FindMatches(text string) ([]Span, error) {
	if !d.Initialized() {
		return nil, ErrUninitialized
	}
	var spans []Span
	for i := 0; i < len(text); i++ {
		state := d.start
		for j := i; j < len(text); j++ {
			next, ok := d.Step(state, text[j])
			if !ok || !d.live[next] {
				break
			}
			state = next
			if d.states[state].Accepting {
				spans = append(spans, Span{Start: i, End: j})
				break
			}
		}
	}
	return spans, nil
}
