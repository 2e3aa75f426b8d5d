/*
Package pda is a pushdown-automaton engine: it validates formal machine
definitions and decides whether input strings belong to the language
they recognize.

A machine is described by its state set, input and stack alphabets,
transition table, initial state, initial stack symbol, and accepting
states. Construction validates the definition up front; no partially
valid machine is ever returned. Queries explore the configuration space
breadth-first, handling epsilon moves and epsilon cycles, and return a
plain boolean: rejection is a result, not an error.

# Usage

Compile a machine from a YAML document and query it:

	machine, err := pda.FromFile("balanced.yaml")
	if err != nil {
		log.Fatal(err)
	}

	ok, err := machine.Accepts("(())")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)

Or build one programmatically with pkg/automaton:

	machine, err := automaton.New(automaton.Config{
		States:             []automaton.State{"q0"},
		InputAlphabet:      []automaton.Symbol{"a"},
		StackAlphabet:      []automaton.Symbol{"Z"},
		InitialState:       "q0",
		InitialStackSymbol: "Z",
		AcceptingStates:    []automaton.State{"q0"},
	})

Deterministic variants add the strict validation mode
(automaton.WithStrictMode), which rejects tables where a stack symbol
enables both an epsilon move and a consuming move from the same state.

The cmd/pda CLI validates and queries machine files and can serve the
engine over HTTP with machine documents persisted in memory or Redis.
*/
package pda
