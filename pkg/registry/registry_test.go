package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horacekj/pda-emulator/pkg/automaton"
	"github.com/horacekj/pda-emulator/pkg/registry"
)

func testMachine(t *testing.T) *automaton.Definition {
	t.Helper()
	d, err := automaton.New(automaton.Config{
		States:             []automaton.State{"q0"},
		InputAlphabet:      []automaton.Symbol{"a"},
		StackAlphabet:      []automaton.Symbol{"Z"},
		InitialState:       "q0",
		InitialStackSymbol: "Z",
		AcceptingStates:    []automaton.State{"q0"},
	})
	require.NoError(t, err)
	return d
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := registry.NewRegistry()
	machine := testMachine(t)

	reg.Register("sample", machine)

	got, err := reg.Lookup("sample")
	require.NoError(t, err)
	assert.Same(t, machine, got)
}

func TestRegistry_LookupMissing(t *testing.T) {
	reg := registry.NewRegistry()
	_, err := reg.Lookup("nope")
	assert.Error(t, err)
}

func TestRegistry_Remove(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("sample", testMachine(t))
	reg.Remove("sample")

	_, err := reg.Lookup("sample")
	assert.Error(t, err)
	assert.Empty(t, reg.Names())
}
