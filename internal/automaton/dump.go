package automaton

import (
	"io"

	"github.com/k0kubun/pp/v3"
)

// Summary is a printable view of a DFA.
type Summary struct {
	Alphabet string
	Start    int
	States   []StateSummary
}

// StateSummary is a printable view of one DFA state.
type StateSummary struct {
	ID        int
	Accepting bool
	Live      bool
	NFASet    []int
	Next      map[string]int
}

// Summarize builds a Summary of d.
func Summarize(d *DFA) (Summary, error) {
	if !d.Initialized() {
		return Summary{}, ErrUninitialized
	}
	sum := Summary{
		Alphabet: string(d.alphabet),
		Start:    d.start,
		States:   make([]StateSummary, 0, len(d.states)),
	}
	for _, s := range d.states {
		next := make(map[string]int, len(s.Next))
		for slot, to := range s.Next {
			next[string(d.alphabet[slot])] = to
		}
		sum.States = append(sum.States, StateSummary{
			ID:        s.ID,
			Accepting: s.Accepting,
			Live:      d.live[s.ID],
			NFASet:    append([]int(nil), s.NFASet...),
			Next:      next,
		})
	}
	return sum, nil
}

// Dump pretty-prints the automaton to w.
func Dump(w io.Writer, d *DFA, color bool) error {
	sum, err := Summarize(d)
	if err != nil {
		return err
	}
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(color)
	_, err = printer.Println(sum)
	return err
}
