package automaton

// configuration is a snapshot of the simulation: current state, current
// stack contents, and the input cursor. Configurations are values; two
// with equal components are the same configuration.
type configuration struct {
	state State
	stack Stack
	index int
}

// visitKey is the comparable form of a configuration, used to
// deduplicate the frontier.
type visitKey struct {
	state State
	stack string
	index int
}

func (c configuration) key() visitKey {
	return visitKey{state: c.state, stack: c.stack.key(), index: c.index}
}

func (c configuration) apply(rule Rule, consumed int) configuration {
	stack := c.stack.Copy()
	stack.Replace(rule.Push)
	return configuration{state: rule.Next, stack: stack, index: c.index + consumed}
}

// Accepts reports whether the automaton accepts the input string. Each
// rune of input is one input symbol; use AcceptsSymbols for multi-rune
// symbols. Rejection is a normal false result, never an error.
//
// An input symbol outside the declared alphabet rejects immediately
// under PolicyReject (the default) and returns an ErrInvalidSymbol-kind
// error under PolicyError. The definition stays usable either way.
func (d *Definition) Accepts(input string) (bool, error) {
	symbols := make([]Symbol, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, Symbol(r))
	}
	return d.AcceptsSymbols(symbols)
}

// AcceptsSymbols is Accepts over an explicit symbol sequence.
func (d *Definition) AcceptsSymbols(input []Symbol) (bool, error) {
	for _, sym := range input {
		if _, ok := d.inputAlphabet[sym]; !ok {
			if d.policy == PolicyError {
				return false, defErr(ErrInvalidSymbol, "", "input symbol %q is not in the input alphabet", sym)
			}
			return false, nil
		}
	}
	return d.search(input), nil
}

// search runs a breadth-first exploration of reachable configurations.
// The visited set holds every configuration ever enqueued, which bounds
// the walk even when epsilon moves form cycles; without it an epsilon
// cycle would loop forever.
func (d *Definition) search(input []Symbol) bool {
	start := configuration{
		state: d.initialState,
		stack: NewStack(d.initialStackSymbol),
	}
	queue := []configuration{start}
	visited := map[visitKey]struct{}{start.key(): {}}

	enqueue := func(next configuration) {
		key := next.key()
		if _, seen := visited[key]; seen {
			return
		}
		visited[key] = struct{}{}
		queue = append(queue, next)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// Acceptance is checked before the stack guard: a configuration
		// that drained its stack at end of input in an accepting state
		// still accepts.
		if current.index == len(input) {
			if _, ok := d.acceptingStates[current.state]; ok {
				return true
			}
		}

		// An empty stack has no valid move; abandon the branch, not the
		// search.
		if current.stack.Len() == 0 {
			continue
		}
		top, _ := current.stack.Top()

		paths := d.transitions[current.state]

		// Epsilon moves: every alternative keyed on the current top is
		// explored, not just the first match.
		for _, alt := range paths[Epsilon] {
			if rule, ok := alt[top]; ok {
				enqueue(current.apply(rule, 0))
			}
		}

		// Consuming moves.
		if current.index < len(input) {
			for _, alt := range paths[input[current.index]] {
				if rule, ok := alt[top]; ok {
					enqueue(current.apply(rule, 1))
				}
			}
		}
	}

	return false
}
