package automaton

import (
	"errors"
	"fmt"
)

// Error kinds for definition validation and queries. Callers match them
// with errors.Is; the concrete error is usually a *DefinitionError
// wrapping one of these.
var (
	// ErrInvalidState is returned when a transition references a state
	// outside the declared state set.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidSymbol is returned when a symbol falls outside the
	// alphabet it is validated against.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrMissingState is returned when the definition declares no states.
	ErrMissingState = errors.New("missing state")

	// ErrMissingSymbol is returned when the initial stack symbol is not
	// in the stack alphabet.
	ErrMissingSymbol = errors.New("missing symbol")

	// ErrInitialState is returned when the initial state is not declared.
	ErrInitialState = errors.New("invalid initial state")

	// ErrFinalState is returned when an accepting state is not declared.
	ErrFinalState = errors.New("invalid final state")

	// ErrNondeterminism is returned in strict mode when an epsilon move
	// and a consuming move share a stack-symbol key from the same state.
	ErrNondeterminism = errors.New("nondeterministic transition")

	// ErrEmptyStack is returned by Stack.Top on an empty stack.
	ErrEmptyStack = errors.New("empty stack")
)

// DefinitionError reports a single validation failure with the state it
// was found in (empty for definition-level failures).
type DefinitionError struct {
	Kind   error
	State  State
	Detail string
}

func (e *DefinitionError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("state %q: %v: %s", e.State, e.Kind, e.Detail)
}

// Unwrap exposes the error kind so errors.Is matches the sentinels above.
func (e *DefinitionError) Unwrap() error { return e.Kind }

func defErr(kind error, state State, format string, args ...any) error {
	return &DefinitionError{Kind: kind, State: state, Detail: fmt.Sprintf(format, args...)}
}
