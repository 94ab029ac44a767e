package compiler

// edge is a labeled NFA transition.
type edge struct {
	symbol byte
	to     int
}

// nfaState is a Thompson NFA state. Targets are indices into the owning
// NFA's state slice; states never point back at their fragment.
type nfaState struct {
	id      int
	edges   []edge
	epsilon []int
}

// NFA is a Thompson automaton with a single start and a single accept state.
// It lives only for the duration of one compilation.
type NFA struct {
	Start  int
	Accept int
	states []nfaState
}

// Len returns the number of states.
func (n *NFA) Len() int { return len(n.states) }

// Epsilon returns the epsilon targets of state id.
func (n *NFA) Epsilon(id int) []int { return n.states[id].epsilon }

// Transitions returns the targets of state id reachable on symbol.
func (n *NFA) Transitions(id int, symbol byte) []int {
	var out []int
	for _, e := range n.states[id].edges {
		if e.symbol == symbol {
			out = append(out, e.to)
		}
	}
	return out
}

// Release drops the state graph once the DFA has been built.
func (n *NFA) Release() {
	n.states = nil
	n.Start, n.Accept = noState, noState
}

// fragment is a partial NFA under construction. It owns the ids in owned.
// Composition moves ownership into the result and leaves the inputs empty;
// a moved-from fragment cannot be composed again.
type fragment struct {
	start, accept int
	owned         []int
}

// take moves the fragment's contents out, leaving it empty.
func (f *fragment) take() (start, accept int, owned []int) {
	if f.owned == nil {
		panic("compiler: NFA fragment used after move")
	}
	start, accept, owned = f.start, f.accept, f.owned
	f.start, f.accept, f.owned = noState, noState, nil
	return start, accept, owned
}

// nfaBuilder owns the state arena and the id counter for one compilation.
type nfaBuilder struct {
	nextID int
	states []nfaState
}

// newState allocates a state with the next id and registers it with the
// fragment under construction.
func (b *nfaBuilder) newState(f *fragment) int {
	id := b.nextID
	b.nextID++
	b.states = append(b.states, nfaState{id: id})
	f.owned = append(f.owned, id)
	return id
}

func (b *nfaBuilder) addEpsilon(from, to int) {
	b.states[from].epsilon = append(b.states[from].epsilon, to)
}

func (b *nfaBuilder) addEdge(from int, symbol byte, to int) {
	b.states[from].edges = append(b.states[from].edges, edge{symbol: symbol, to: to})
}

// literal builds start --sym--> accept.
func (b *nfaBuilder) literal(sym byte) fragment {
	var f fragment
	f.start = b.newState(&f)
	f.accept = b.newState(&f)
	b.addEdge(f.start, sym, f.accept)
	return f
}

// empty builds start --ε--> accept, the fragment of the empty string.
func (b *nfaBuilder) empty() fragment {
	var f fragment
	f.start = b.newState(&f)
	f.accept = b.newState(&f)
	b.addEpsilon(f.start, f.accept)
	return f
}

// concat links left's accept to right's start. Both inputs are consumed.
func (b *nfaBuilder) concat(left, right *fragment) fragment {
	lStart, lAccept, lOwned := left.take()
	rStart, rAccept, rOwned := right.take()
	b.addEpsilon(lAccept, rStart)
	return fragment{start: lStart, accept: rAccept, owned: append(lOwned, rOwned...)}
}

// union branches from a new start into both inputs and joins them in a new
// accept. Both inputs are consumed.
func (b *nfaBuilder) union(left, right *fragment) fragment {
	lStart, lAccept, lOwned := left.take()
	rStart, rAccept, rOwned := right.take()

	var f fragment
	f.start = b.newState(&f)
	f.accept = b.newState(&f)
	b.addEpsilon(f.start, lStart)
	b.addEpsilon(f.start, rStart)
	b.addEpsilon(lAccept, f.accept)
	b.addEpsilon(rAccept, f.accept)
	f.owned = append(append(f.owned, lOwned...), rOwned...)
	return f
}

// star wraps body in a Kleene closure. The repeat edge body.accept -> body.start
// makes the graph cyclic. body is consumed.
func (b *nfaBuilder) star(body *fragment) fragment {
	bStart, bAccept, bOwned := body.take()

	var f fragment
	f.start = b.newState(&f)
	f.accept = b.newState(&f)
	b.addEpsilon(f.start, bStart)
	b.addEpsilon(f.start, f.accept)
	b.addEpsilon(bAccept, bStart)
	b.addEpsilon(bAccept, f.accept)
	f.owned = append(f.owned, bOwned...)
	return f
}

// BuildNFA evaluates a postfix token stream into a Thompson NFA. An empty
// stream, which only an all-parens pattern such as "()" produces, yields the
// automaton of the empty string.
func BuildNFA(postfix Tokens) (*NFA, error) {
	b := &nfaBuilder{}
	var stack []fragment

	pop := func() fragment {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f
	}

	for i, t := range postfix {
		if !t.Operator {
			stack = append(stack, b.literal(t.Char))
			continue
		}
		switch t.Char {
		case OpConcat, OpUnion:
			if len(stack) < 2 {
				return nil, ErrMalformedPostfix{
					Reason:   "binary operator " + t.String() + " needs two operands",
					Pos:      i,
					Operands: len(stack),
				}
			}
			right := pop()
			left := pop()
			if t.Char == OpConcat {
				stack = append(stack, b.concat(&left, &right))
			} else {
				stack = append(stack, b.union(&left, &right))
			}
		case OpStar:
			if len(stack) < 1 {
				return nil, ErrMalformedPostfix{Reason: "'*' needs an operand", Pos: i}
			}
			body := pop()
			stack = append(stack, b.star(&body))
		default:
			return nil, ErrInvalidOperator{Op: t.Char}
		}
	}

	switch len(stack) {
	case 0:
		stack = append(stack, b.empty())
	case 1:
	default:
		return nil, ErrMalformedPostfix{Reason: "more than one fragment remains", Pos: -1, Operands: len(stack)}
	}

	root := pop()
	start, accept, owned := root.take()
	if len(owned) != len(b.states) {
		panic("compiler: NFA states leaked outside the root fragment")
	}
	return &NFA{Start: start, Accept: accept, states: b.states}, nil
}
