package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDOT writes a Graphviz rendering of the automaton to w. Edges that share
// a source and target are folded into one edge with a combined label.
func WriteDOT(w io.Writer, d *DFA) error {
	if !d.Initialized() {
		return ErrUninitialized
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph DFA {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for _, s := range d.states {
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		style := ""
		if !d.live[s.ID] {
			style = ", style=dashed"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s%s];\n", s.ID, shape, style)

		labels := make(map[int][]byte)
		var order []int
		for slot, to := range s.Next {
			if _, seen := labels[to]; !seen {
				order = append(order, to)
			}
			labels[to] = append(labels[to], d.alphabet[slot])
		}
		for _, to := range order {
			fmt.Fprintf(bw, "    q%d -> q%d [label=%s];\n", s.ID, to, strconv.Quote(string(labels[to])))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", d.start)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
