package automaton

import (
	"errors"
	"testing"
)

// minimalConfig declares one state and one stack symbol with no moves.
func minimalConfig() Config {
	return Config{
		States:             []State{"q0"},
		InputAlphabet:      []Symbol{"a"},
		StackAlphabet:      []Symbol{"Z"},
		InitialState:       "q0",
		InitialStackSymbol: "Z",
		AcceptingStates:    []State{"q0"},
	}
}

func TestNew_Minimal(t *testing.T) {
	if _, err := New(minimalConfig()); err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
}

func TestNew_NoStates(t *testing.T) {
	cfg := minimalConfig()
	cfg.States = nil
	cfg.AcceptingStates = nil

	_, err := New(cfg)
	if !errors.Is(err, ErrMissingState) {
		t.Fatalf("New() error = %v, want ErrMissingState", err)
	}
}

func TestNew_UndeclaredDestinationState(t *testing.T) {
	cfg := minimalConfig()
	cfg.Transitions = TransitionTable{
		"q0": {
			"a": {{"Z": {Next: "ghost", Push: []Symbol{"Z"}}}},
		},
	}

	_, err := New(cfg)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("New() error = %v, want ErrInvalidState", err)
	}

	var defErr *DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatalf("error should be *DefinitionError, got %T", err)
	}
	if defErr.State != "ghost" {
		t.Errorf("DefinitionError.State = %q, want %q", defErr.State, "ghost")
	}
}

func TestNew_UndeclaredSourceState(t *testing.T) {
	cfg := minimalConfig()
	cfg.Transitions = TransitionTable{
		"ghost": {
			"a": {{"Z": {Next: "q0", Push: []Symbol{"Z"}}}},
		},
	}

	_, err := New(cfg)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("New() error = %v, want ErrInvalidState", err)
	}
}

func TestNew_UndeclaredInputSymbol(t *testing.T) {
	cfg := minimalConfig()
	cfg.Transitions = TransitionTable{
		"q0": {
			"x": {{"Z": {Next: "q0", Push: []Symbol{"Z"}}}},
		},
	}

	_, err := New(cfg)
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("New() error = %v, want ErrInvalidSymbol", err)
	}
}

func TestNew_UndeclaredStackSymbols(t *testing.T) {
	tests := map[string]TransitionTable{
		"lookup key": {
			"q0": {"a": {{"X": {Next: "q0", Push: []Symbol{"Z"}}}}},
		},
		"push sequence": {
			"q0": {"a": {{"Z": {Next: "q0", Push: []Symbol{"Z", "X"}}}}},
		},
	}

	for name, table := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := minimalConfig()
			cfg.Transitions = table
			_, err := New(cfg)
			if !errors.Is(err, ErrInvalidSymbol) {
				t.Fatalf("New() error = %v, want ErrInvalidSymbol", err)
			}
		})
	}
}

func TestNew_UndeclaredInitialState(t *testing.T) {
	cfg := minimalConfig()
	cfg.InitialState = "ghost"

	_, err := New(cfg)
	if !errors.Is(err, ErrInitialState) {
		t.Fatalf("New() error = %v, want ErrInitialState", err)
	}
}

func TestNew_UndeclaredInitialStackSymbol(t *testing.T) {
	cfg := minimalConfig()
	cfg.InitialStackSymbol = "X"

	_, err := New(cfg)
	if !errors.Is(err, ErrMissingSymbol) {
		t.Fatalf("New() error = %v, want ErrMissingSymbol", err)
	}
}

func TestNew_UndeclaredAcceptingState(t *testing.T) {
	cfg := minimalConfig()
	cfg.AcceptingStates = []State{"q0", "ghost"}

	_, err := New(cfg)
	if !errors.Is(err, ErrFinalState) {
		t.Fatalf("New() error = %v, want ErrFinalState", err)
	}
}

// ambiguousConfig keys both an epsilon move and a consuming move on the
// same stack symbol from the same state.
func ambiguousConfig() Config {
	cfg := minimalConfig()
	cfg.States = []State{"q0", "q1"}
	cfg.Transitions = TransitionTable{
		"q0": {
			Epsilon: {{"Z": {Next: "q1", Push: []Symbol{"Z"}}}},
			"a":     {{"Z": {Next: "q0", Push: []Symbol{"Z"}}}},
		},
	}
	return cfg
}

func TestNew_StrictModeRejectsSharedStackKey(t *testing.T) {
	_, err := New(ambiguousConfig(), WithStrictMode())
	if !errors.Is(err, ErrNondeterminism) {
		t.Fatalf("New() error = %v, want ErrNondeterminism", err)
	}
}

func TestNew_NonStrictAllowsSharedStackKey(t *testing.T) {
	if _, err := New(ambiguousConfig()); err != nil {
		t.Fatalf("New() error = %v, want nil without strict mode", err)
	}
}

func TestNew_StrictModeAllowsDisjointStackKeys(t *testing.T) {
	cfg := minimalConfig()
	cfg.States = []State{"q0", "q1"}
	cfg.StackAlphabet = []Symbol{"Z", "P"}
	cfg.Transitions = TransitionTable{
		"q0": {
			Epsilon: {{"P": {Next: "q1", Push: nil}}},
			"a":     {{"Z": {Next: "q0", Push: []Symbol{"Z", "P"}}}},
		},
	}

	if _, err := New(cfg, WithStrictMode()); err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
}
