package automaton

import "slices"

// State labels an automaton state. States are opaque; identity is by
// value.
type State string

// Symbol labels an input or stack symbol. The two alphabets are separate
// namespaces; the same symbol may appear in both.
type Symbol string

// Epsilon marks a transition that consumes no input. It is never a
// member of the input alphabet.
const Epsilon Symbol = ""

// Rule is the outcome of a single move: the state to enter and the
// sequence that replaces the stack top (its last element becomes the new
// top; an empty sequence pops).
type Rule struct {
	Next State
	Push []Symbol
}

// Alternative maps the required stack top to the move it enables.
// Multiple alternatives under the same (state, input) pair are the only
// source of nondeterminism.
type Alternative map[Symbol]Rule

// TransitionTable maps (state, input symbol or Epsilon) to the
// alternatives available from that pair.
type TransitionTable map[State]map[Symbol][]Alternative

// InputPolicy decides how Accepts treats input symbols outside the
// declared alphabet.
type InputPolicy int

const (
	// PolicyReject treats an undeclared input symbol as immediate
	// non-acceptance.
	PolicyReject InputPolicy = iota
	// PolicyError surfaces an undeclared input symbol as an
	// ErrInvalidSymbol-kind error.
	PolicyError
)

// Config carries the formal definition parameters for New.
type Config struct {
	States             []State
	InputAlphabet      []Symbol
	StackAlphabet      []Symbol
	Transitions        TransitionTable
	InitialState       State
	InitialStackSymbol Symbol
	AcceptingStates    []State
}

// Definition is a validated pushdown automaton. It is immutable after
// construction and safe to share read-only across concurrent queries.
type Definition struct {
	states             map[State]struct{}
	inputAlphabet      map[Symbol]struct{}
	stackAlphabet      map[Symbol]struct{}
	transitions        TransitionTable
	initialState       State
	initialStackSymbol Symbol
	acceptingStates    map[State]struct{}
	strict             bool
	policy             InputPolicy
}

// Option configures a Definition at construction time.
type Option func(*Definition)

// WithStrictMode enables the deterministic-variant validation: no stack
// symbol may enable both an epsilon move and a consuming move from the
// same state.
func WithStrictMode() Option {
	return func(d *Definition) {
		d.strict = true
	}
}

// WithInputPolicy sets how Accepts handles input symbols outside the
// input alphabet. The default is PolicyReject.
func WithInputPolicy(p InputPolicy) Option {
	return func(d *Definition) {
		d.policy = p
	}
}

// New builds a Definition from the formal parameters and validates it.
// The config is deep-copied; later mutation of cfg cannot affect the
// returned definition. No partially valid definition is ever returned.
func New(cfg Config, opts ...Option) (*Definition, error) {
	d := &Definition{
		states:             toSet(cfg.States),
		inputAlphabet:      toSet(cfg.InputAlphabet),
		stackAlphabet:      toSet(cfg.StackAlphabet),
		transitions:        copyTable(cfg.Transitions),
		initialState:       cfg.InitialState,
		initialStackSymbol: cfg.InitialStackSymbol,
		acceptingStates:    toSet(cfg.AcceptingStates),
	}

	for _, opt := range opts {
		opt(d)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Clone returns an independent deep copy of the definition. Validation
// runs again on the copy; the receiver's prior validation is not
// trusted.
func (d *Definition) Clone() (*Definition, error) {
	opts := []Option{WithInputPolicy(d.policy)}
	if d.strict {
		opts = append(opts, WithStrictMode())
	}
	return New(Config{
		States:             d.States(),
		InputAlphabet:      d.InputAlphabet(),
		StackAlphabet:      d.StackAlphabet(),
		Transitions:        d.Transitions(),
		InitialState:       d.initialState,
		InitialStackSymbol: d.initialStackSymbol,
		AcceptingStates:    d.AcceptingStates(),
	}, opts...)
}

// States returns the declared state set, sorted.
func (d *Definition) States() []State { return toSorted(d.states) }

// InputAlphabet returns the declared input alphabet, sorted.
func (d *Definition) InputAlphabet() []Symbol { return toSorted(d.inputAlphabet) }

// StackAlphabet returns the declared stack alphabet, sorted.
func (d *Definition) StackAlphabet() []Symbol { return toSorted(d.stackAlphabet) }

// AcceptingStates returns the accepting-state set, sorted.
func (d *Definition) AcceptingStates() []State { return toSorted(d.acceptingStates) }

// Transitions returns a deep copy of the transition table.
func (d *Definition) Transitions() TransitionTable { return copyTable(d.transitions) }

// InitialState returns the start state.
func (d *Definition) InitialState() State { return d.initialState }

// InitialStackSymbol returns the symbol the stack holds before the
// first move.
func (d *Definition) InitialStackSymbol() Symbol { return d.initialStackSymbol }

// Strict reports whether the deterministic-variant validation is
// enabled.
func (d *Definition) Strict() bool { return d.strict }

// Policy returns the unknown-input policy used by Accepts.
func (d *Definition) Policy() InputPolicy { return d.policy }

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func toSorted[T State | Symbol](set map[T]struct{}) []T {
	out := make([]T, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	slices.Sort(out)
	return out
}

func copyTable(table TransitionTable) TransitionTable {
	out := make(TransitionTable, len(table))
	for state, paths := range table {
		newPaths := make(map[Symbol][]Alternative, len(paths))
		for input, alts := range paths {
			newAlts := make([]Alternative, len(alts))
			for i, alt := range alts {
				newAlt := make(Alternative, len(alt))
				for top, rule := range alt {
					rule.Push = slices.Clone(rule.Push)
					newAlt[top] = rule
				}
				newAlts[i] = newAlt
			}
			newPaths[input] = newAlts
		}
		out[state] = newPaths
	}
	return out
}
