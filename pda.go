package pda

import (
	"github.com/horacekj/pda-emulator/pkg/automaton"
	"github.com/horacekj/pda-emulator/pkg/schema"
)

// Version is the current release of the pda-emulator library.
const Version = "0.1.0"

// FromFile reads a YAML machine document from disk and compiles it into
// a validated automaton.
func FromFile(path string, opts ...automaton.Option) (*automaton.Definition, error) {
	doc, err := schema.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Build(opts...)
}

// FromBytes parses a YAML machine document and compiles it.
func FromBytes(data []byte, opts ...automaton.Option) (*automaton.Definition, error) {
	doc, err := schema.Decode(data)
	if err != nil {
		return nil, err
	}
	return doc.Build(opts...)
}

// FromMap builds a machine from a generic map, as produced by JSON
// decoding or programmatic construction.
func FromMap(m map[string]any, opts ...automaton.Option) (*automaton.Definition, error) {
	doc, err := schema.FromMap(m)
	if err != nil {
		return nil, err
	}
	return doc.Build(opts...)
}
