// Package registry holds compiled machines by name for hosts that
// compile once and query many times.
package registry

import (
	"fmt"
	"sync"

	"github.com/horacekj/pda-emulator/pkg/automaton"
)

// Registry manages the available machines.
type Registry struct {
	mu       sync.RWMutex
	machines map[string]*automaton.Definition
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		machines: make(map[string]*automaton.Definition),
	}
}

// Register adds a machine to the registry.
// If a machine with the same name exists, it is overwritten.
func (r *Registry) Register(name string, machine *automaton.Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.machines[name] = machine
}

// Lookup returns the machine registered under name.
func (r *Registry) Lookup(name string) (*automaton.Definition, error) {
	r.mu.RLock()
	machine, ok := r.machines[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("machine not registered: %s", name)
	}
	return machine, nil
}

// Remove drops the machine registered under name, if any.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.machines, name)
}

// Names returns the registered machine names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.machines))
	for name := range r.machines {
		names = append(names, name)
	}
	return names
}
