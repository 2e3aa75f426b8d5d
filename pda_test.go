package pda_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pda "github.com/horacekj/pda-emulator"
	"github.com/horacekj/pda-emulator/pkg/automaton"
)

const anbnDoc = `
name: anbn
states: [q0, q1, q2, q3]
input_alphabet: [a, b]
stack_alphabet: [Z, A]
initial_state: q0
initial_stack_symbol: Z
accepting_states: [q0, q3]
transitions:
  q0:
    a:
      - Z: {next: q1, push: [Z, A]}
  q1:
    a:
      - A: {next: q1, push: [A, A]}
    b:
      - A: {next: q2, push: []}
  q2:
    b:
      - A: {next: q2, push: []}
    "":
      - Z: {next: q3, push: [Z]}
`

func TestFromBytes(t *testing.T) {
	machine, err := pda.FromBytes([]byte(anbnDoc))
	require.NoError(t, err)

	for input, want := range map[string]bool{
		"":     true,
		"ab":   true,
		"aabb": true,
		"aab":  false,
		"abab": false,
	} {
		got, err := machine.Accepts(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Accepts(%q)", input)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anbn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(anbnDoc), 0o644))

	machine, err := pda.FromFile(path)
	require.NoError(t, err)

	got, err := machine.Accepts("aaabbb")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := pda.FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFromBytes_StrictOverride(t *testing.T) {
	doc := `
name: ambiguous
states: [q0, q1]
input_alphabet: [a]
stack_alphabet: [Z]
initial_state: q0
initial_stack_symbol: Z
accepting_states: [q0]
transitions:
  q0:
    a:
      - Z: {next: q0, push: [Z]}
    "":
      - Z: {next: q1, push: [Z]}
`
	// Builds fine nondeterministically, fails under strict mode.
	_, err := pda.FromBytes([]byte(doc))
	require.NoError(t, err)

	_, err = pda.FromBytes([]byte(doc), automaton.WithStrictMode())
	require.ErrorIs(t, err, automaton.ErrNondeterminism)
}
