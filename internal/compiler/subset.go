package compiler

import (
	"strconv"
	"strings"

	"github.com/KromDaniel/dfagrep/internal/automaton"
	"golang.org/x/exp/slices"
)

// EpsilonClosure returns every state reachable from states over epsilon edges,
// sorted by id. Traversal is breadth-first and visits each state once, which
// keeps it finite on the cycles a Kleene star creates.
func EpsilonClosure(n *NFA, states []int) []int {
	visited := make([]bool, n.Len())
	queue := make([]int, 0, len(states))
	for _, s := range states {
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}
	for head := 0; head < len(queue); head++ {
		for _, to := range n.states[queue[head]].epsilon {
			if !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
		}
	}
	slices.Sort(queue)
	return queue
}

// Move returns the sorted set of states reachable from states over one edge
// labeled symbol.
func Move(n *NFA, states []int, symbol byte) []int {
	var out []int
	for _, s := range states {
		for _, e := range n.states[s].edges {
			if e.symbol == symbol {
				out = append(out, e.to)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// setKey renders a sorted state set as a canonical map key.
func setKey(set []int) string {
	var b strings.Builder
	for i, s := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}

func containsState(set []int, id int) bool {
	_, found := slices.BinarySearch(set, id)
	return found
}

// BuildDFA runs subset construction over n for the given sorted alphabet.
// Every DFA state receives exactly one transition per symbol; a move that
// reaches no NFA state leads to a non-accepting dead state. maxStates <= 0
// selects DefaultMaxStates.
func BuildDFA(n *NFA, alphabet []byte, maxStates int, logger *Logger) (*automaton.DFA, error) {
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	startSet := EpsilonClosure(n, []int{n.Start})
	states := []automaton.State{{
		ID:        0,
		Accepting: containsState(startSet, n.Accept),
		NFASet:    startSet,
	}}
	index := map[string]int{setKey(startSet): 0}
	worklist := []int{0}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		set := states[cur].NFASet

		next := make([]int, len(alphabet))
		for slot, sym := range alphabet {
			target := EpsilonClosure(n, Move(n, set, sym))
			key := setKey(target)
			id, exists := index[key]
			if !exists {
				if len(states) >= maxStates {
					return nil, ErrStateLimit{Limit: maxStates}
				}
				id = len(states)
				states = append(states, automaton.State{
					ID:        id,
					Accepting: containsState(target, n.Accept),
					NFASet:    target,
				})
				index[key] = id
				worklist = append(worklist, id)
				if len(target) == 0 {
					logger.Log("dead state: q%d", id)
				}
			}
			next[slot] = id
		}
		states[cur].Next = next
	}

	logger.Log("DFA states: %d", len(states))
	return automaton.New(alphabet, states, 0)
}
