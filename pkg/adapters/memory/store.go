// Package memory provides an in-memory machine store.
package memory

import (
	"context"
	"sync"

	"github.com/horacekj/pda-emulator/pkg/ports"
	"github.com/horacekj/pda-emulator/pkg/schema"
)

// Store implements ports.MachineStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*schema.Document
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*schema.Document),
	}
}

// Save persists the document in memory. The document is deep-copied so
// later caller mutation cannot reach the store.
func (s *Store) Save(ctx context.Context, name string, doc *schema.Document) error {
	copied := doc.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load retrieves the document from memory. A copy is returned so the
// caller cannot mutate store contents through the pointer.
func (s *Store) Load(ctx context.Context, name string) (*schema.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[name]
	if !ok {
		return nil, ports.ErrMachineNotFound
	}
	return doc.Clone(), nil
}

// Delete removes the document.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored machine names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}
