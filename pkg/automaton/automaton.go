// Package automaton implements a nondeterministic pushdown automaton:
// a validated formal definition plus a breadth-first membership decision
// over its configuration space.
package automaton

// Automaton is the capability contract shared by automaton variants: a
// machine can re-check its own consistency and decide membership for an
// input string. It is a narrow interface implemented independently per
// variant, not a base class.
type Automaton interface {
	Validate() error
	Accepts(input string) (bool, error)
}

var _ Automaton = (*Definition)(nil)
