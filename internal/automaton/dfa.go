// Package automaton holds the deterministic automaton produced by subset
// construction and the scanners that run it over text.
//
// A DFA is immutable once New returns. Accepts and FindMatches only read it,
// so a single DFA may be shared between goroutines. Release is the one
// mutating operation and must not race with scans.
package automaton

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// noSlot marks a byte that is not part of the alphabet.
const noSlot = -1

// State is one deterministic state.
type State struct {
	ID        int
	Accepting bool

	// Next holds the target state for each alphabet symbol, indexed by the
	// symbol's position in the sorted alphabet.
	Next []int

	// NFASet is the sorted, epsilon-closed set of NFA state ids this state
	// stands for. It is the identity key of the state.
	NFASet []int
}

// DFA is a deterministic finite automaton over a byte alphabet.
type DFA struct {
	start    int
	states   []State
	alphabet []byte
	slots    [256]int16
	live     []bool
}

// New assembles a DFA from fully resolved states. alphabet must be sorted and
// free of duplicates; every state must carry len(alphabet) transitions.
// The DFA keeps its own copies of alphabet and states.
func New(alphabet []byte, states []State, start int) (*DFA, error) {
	if start < 0 || start >= len(states) {
		return nil, fmt.Errorf("automaton: start state %d out of range [0,%d)", start, len(states))
	}
	for i := range states {
		if len(states[i].Next) != len(alphabet) {
			return nil, ErrIncompleteState{State: i, Transitions: len(states[i].Next), Alphabet: len(alphabet)}
		}
		for _, to := range states[i].Next {
			if to < 0 || to >= len(states) {
				return nil, fmt.Errorf("automaton: state %d targets unknown state %d", i, to)
			}
		}
	}

	d := &DFA{
		start:    start,
		states:   make([]State, len(states)),
		alphabet: slices.Clone(alphabet),
	}
	for i, s := range states {
		d.states[i] = s.clone()
	}
	for i := range d.slots {
		d.slots[i] = noSlot
	}
	for i, c := range d.alphabet {
		d.slots[c] = int16(i)
	}
	d.live = liveStates(d.states)
	return d, nil
}

// liveStates marks every state from which an accepting state is reachable.
// It iterates to a fixed point over reversed edges.
func liveStates(states []State) []bool {
	live := make([]bool, len(states))
	preds := make([][]int, len(states))
	var queue []int
	for i, s := range states {
		if s.Accepting {
			live[i] = true
			queue = append(queue, i)
		}
		for _, to := range s.Next {
			preds[to] = append(preds[to], i)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range preds[cur] {
			if !live[p] {
				live[p] = true
				queue = append(queue, p)
			}
		}
	}
	return live
}

// Initialized reports whether the automaton has a start state.
func (d *DFA) Initialized() bool {
	return d != nil && d.start >= 0 && d.start < len(d.states)
}

// Start returns the start state id.
func (d *DFA) Start() int { return d.start }

// Len returns the number of states.
func (d *DFA) Len() int {
	if d == nil {
		return 0
	}
	return len(d.states)
}

// clone returns s with its own Next and NFASet.
func (s State) clone() State {
	s.Next = slices.Clone(s.Next)
	s.NFASet = slices.Clone(s.NFASet)
	return s
}

// State returns a copy of state id. It panics if id is out of range.
func (d *DFA) State(id int) State { return d.states[id].clone() }

// Alphabet returns a copy of the sorted alphabet.
func (d *DFA) Alphabet() []byte { return append([]byte(nil), d.alphabet...) }

// Live reports whether an accepting state can still be reached from id.
// Unknown ids, including every id after Release, are not live.
func (d *DFA) Live(id int) bool {
	return d != nil && id >= 0 && id < len(d.live) && d.live[id]
}

// Step follows the transition for c out of state id. ok is false when c lies
// outside the alphabet or id is not a state, which after Release is every id.
func (d *DFA) Step(id int, c byte) (next int, ok bool) {
	if !d.Initialized() || id < 0 || id >= len(d.states) {
		return 0, false
	}
	slot := d.slots[c]
	if slot == noSlot {
		return 0, false
	}
	return d.states[id].Next[slot], true
}

// Release drops the automaton's states. Scans after Release fail with
// ErrUninitialized. Calling Release more than once is harmless.
func (d *DFA) Release() {
	if d == nil {
		return
	}
	d.states = nil
	d.live = nil
	d.alphabet = nil
	for i := range d.slots {
		d.slots[i] = noSlot
	}
	d.start = -1
}
