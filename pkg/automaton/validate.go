package automaton

// Validate checks the definition for internal consistency: every state
// and symbol referenced by the transition table, the initial
// configuration, and the accepting set must belong to the declared
// universes. With strict mode enabled it additionally rejects tables
// where a stack symbol enables both an epsilon move and a consuming
// move from the same state.
//
// New runs Validate before returning; Clone runs it again on the copy.
func (d *Definition) Validate() error {
	if len(d.states) == 0 {
		return defErr(ErrMissingState, "", "definition declares no states")
	}

	for state, paths := range d.transitions {
		if err := d.validateTransitions(state, paths); err != nil {
			return err
		}
	}

	if _, ok := d.states[d.initialState]; !ok {
		return defErr(ErrInitialState, "", "initial state %q is not declared", d.initialState)
	}
	if _, ok := d.stackAlphabet[d.initialStackSymbol]; !ok {
		return defErr(ErrMissingSymbol, "", "initial stack symbol %q is not declared", d.initialStackSymbol)
	}
	for state := range d.acceptingStates {
		if _, ok := d.states[state]; !ok {
			return defErr(ErrFinalState, "", "accepting state %q is not declared", state)
		}
	}

	if d.strict {
		return d.validateDeterminism()
	}
	return nil
}

func (d *Definition) validateTransitions(from State, paths map[Symbol][]Alternative) error {
	if err := d.requireState(from); err != nil {
		return err
	}
	for input, alts := range paths {
		if input != Epsilon {
			if _, ok := d.inputAlphabet[input]; !ok {
				return defErr(ErrInvalidSymbol, from, "transition input symbol %q is not in the input alphabet", input)
			}
		}
		for _, alt := range alts {
			for top, rule := range alt {
				if err := d.requireStackSymbol(from, top); err != nil {
					return err
				}
				if err := d.requireState(rule.Next); err != nil {
					return err
				}
				for _, sym := range rule.Push {
					if err := d.requireStackSymbol(from, sym); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// validateDeterminism rejects tables where a stack symbol keyed under an
// epsilon move from some state is also keyed under a consuming move from
// the same state. The search then has at most one applicable move per
// configuration.
func (d *Definition) validateDeterminism() error {
	for from, paths := range d.transitions {
		epsilonAlts, ok := paths[Epsilon]
		if !ok {
			continue
		}
		for _, epsilonAlt := range epsilonAlts {
			for top := range epsilonAlt {
				for input, alts := range paths {
					if input == Epsilon {
						continue
					}
					for _, alt := range alts {
						if _, clash := alt[top]; clash {
							return defErr(ErrNondeterminism, from,
								"stack symbol %q enables both an epsilon move and a move on %q", top, input)
						}
					}
				}
			}
		}
	}
	return nil
}

func (d *Definition) requireState(state State) error {
	if _, ok := d.states[state]; !ok {
		return defErr(ErrInvalidState, state, "state %q does not exist", state)
	}
	return nil
}

func (d *Definition) requireStackSymbol(from State, sym Symbol) error {
	if _, ok := d.stackAlphabet[sym]; !ok {
		return defErr(ErrInvalidSymbol, from, "transition stack symbol %q is not in the stack alphabet", sym)
	}
	return nil
}
