// Package ports defines the driven-side interfaces the engine consumes.
package ports

import (
	"context"
	"errors"

	"github.com/horacekj/pda-emulator/pkg/schema"
)

// ErrMachineNotFound is returned when a machine name cannot be found in
// the store.
var ErrMachineNotFound = errors.New("machine not found")

// MachineStore persists machine documents by name. Implementations must
// be safe for concurrent use.
type MachineStore interface {
	// Save persists the document under the given name, replacing any
	// previous version.
	Save(ctx context.Context, name string, doc *schema.Document) error

	// Load retrieves the document for a given name.
	// Returns ErrMachineNotFound if the machine does not exist.
	Load(ctx context.Context, name string) (*schema.Document, error)

	// Delete removes the document for a given name.
	Delete(ctx context.Context, name string) error

	// List returns the stored machine names.
	List(ctx context.Context) ([]string, error)
}
