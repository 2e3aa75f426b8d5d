package schema

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Decode parses a YAML machine document.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse machine document: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeFile parses a YAML machine document from disk.
func DecodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine document: %w", err)
	}
	return Decode(data)
}

// FromMap builds a document from a generic map, as produced by JSON
// decoding or programmatic construction. Field names follow the json
// tags ("input_alphabet", "transitions", ...).
func FromMap(m map[string]any) (*Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("failed to map machine document: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Encode renders the document as YAML.
func (doc *Document) Encode() ([]byte, error) {
	return yaml.Marshal(doc)
}
