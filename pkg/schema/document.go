// Package schema defines the serializable machine-definition document
// and its conversion into a validated automaton.
package schema

import (
	"slices"

	"github.com/horacekj/pda-emulator/pkg/automaton"
)

// Move is one transition outcome: the state to enter and the sequence
// replacing the stack top (last element becomes the new top).
type Move struct {
	Next string   `yaml:"next" json:"next"`
	Push []string `yaml:"push" json:"push"`
}

// Transitions maps state -> input symbol (empty string for epsilon) ->
// list of alternatives, each keyed by the required stack top.
type Transitions map[string]map[string][]map[string]Move

// Document is the on-disk/on-wire form of a machine definition.
type Document struct {
	Name               string      `yaml:"name" json:"name"`
	States             []string    `yaml:"states" json:"states"`
	InputAlphabet      []string    `yaml:"input_alphabet" json:"input_alphabet"`
	StackAlphabet      []string    `yaml:"stack_alphabet" json:"stack_alphabet"`
	InitialState       string      `yaml:"initial_state" json:"initial_state"`
	InitialStackSymbol string      `yaml:"initial_stack_symbol" json:"initial_stack_symbol"`
	AcceptingStates    []string    `yaml:"accepting_states" json:"accepting_states"`
	Deterministic      bool        `yaml:"deterministic,omitempty" json:"deterministic,omitempty"`
	UnknownInput       string      `yaml:"unknown_input,omitempty" json:"unknown_input,omitempty"`
	Transitions        Transitions `yaml:"transitions" json:"transitions"`
}

// Clone returns an independent deep copy of the document.
func (doc *Document) Clone() *Document {
	c := *doc
	c.States = slices.Clone(doc.States)
	c.InputAlphabet = slices.Clone(doc.InputAlphabet)
	c.StackAlphabet = slices.Clone(doc.StackAlphabet)
	c.AcceptingStates = slices.Clone(doc.AcceptingStates)
	c.Transitions = make(Transitions, len(doc.Transitions))
	for state, paths := range doc.Transitions {
		newPaths := make(map[string][]map[string]Move, len(paths))
		for input, alts := range paths {
			newAlts := make([]map[string]Move, len(alts))
			for i, alt := range alts {
				newAlt := make(map[string]Move, len(alt))
				for top, mv := range alt {
					mv.Push = slices.Clone(mv.Push)
					newAlt[top] = mv
				}
				newAlts[i] = newAlt
			}
			newPaths[input] = newAlts
		}
		c.Transitions[state] = newPaths
	}
	return &c
}

// check verifies the fields a buildable document must carry. Referential
// consistency (undeclared states, alphabet membership) is the
// automaton's job; this only catches structurally empty documents.
func (doc *Document) check() error {
	var errs []error
	if doc.Name == "" {
		errs = append(errs, &ValidationError{Key: "name", Reason: "required"})
	}
	if len(doc.States) == 0 {
		errs = append(errs, &ValidationError{Key: "states", Reason: "required"})
	}
	if len(doc.StackAlphabet) == 0 {
		errs = append(errs, &ValidationError{Key: "stack_alphabet", Reason: "required"})
	}
	if doc.InitialState == "" {
		errs = append(errs, &ValidationError{Key: "initial_state", Reason: "required"})
	}
	if doc.InitialStackSymbol == "" {
		errs = append(errs, &ValidationError{Key: "initial_stack_symbol", Reason: "required"})
	}
	switch doc.UnknownInput {
	case "", "reject", "error":
	default:
		errs = append(errs, &ValidationError{Key: "unknown_input", Reason: `must be "reject" or "error"`})
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Build converts the document into a validated automaton definition.
// Construction fails with the automaton's error kinds when the document
// references undeclared states or symbols.
func (doc *Document) Build(opts ...automaton.Option) (*automaton.Definition, error) {
	if err := doc.check(); err != nil {
		return nil, err
	}

	if doc.Deterministic {
		opts = append(opts, automaton.WithStrictMode())
	}
	if doc.UnknownInput == "error" {
		opts = append(opts, automaton.WithInputPolicy(automaton.PolicyError))
	}

	table := make(automaton.TransitionTable, len(doc.Transitions))
	for state, paths := range doc.Transitions {
		newPaths := make(map[automaton.Symbol][]automaton.Alternative, len(paths))
		for input, alts := range paths {
			newAlts := make([]automaton.Alternative, len(alts))
			for i, alt := range alts {
				newAlt := make(automaton.Alternative, len(alt))
				for top, mv := range alt {
					newAlt[automaton.Symbol(top)] = automaton.Rule{
						Next: automaton.State(mv.Next),
						Push: toSymbols(mv.Push),
					}
				}
				newAlts[i] = newAlt
			}
			newPaths[automaton.Symbol(input)] = newAlts
		}
		table[automaton.State(state)] = newPaths
	}

	return automaton.New(automaton.Config{
		States:             toStates(doc.States),
		InputAlphabet:      toSymbols(doc.InputAlphabet),
		StackAlphabet:      toSymbols(doc.StackAlphabet),
		Transitions:        table,
		InitialState:       automaton.State(doc.InitialState),
		InitialStackSymbol: automaton.Symbol(doc.InitialStackSymbol),
		AcceptingStates:    toStates(doc.AcceptingStates),
	}, opts...)
}

func toStates(in []string) []automaton.State {
	out := make([]automaton.State, len(in))
	for i, s := range in {
		out[i] = automaton.State(s)
	}
	return out
}

func toSymbols(in []string) []automaton.Symbol {
	out := make([]automaton.Symbol, len(in))
	for i, s := range in {
		out[i] = automaton.Symbol(s)
	}
	return out
}
