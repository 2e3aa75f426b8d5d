package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/horacekj/pda-emulator/pkg/ports"
	"github.com/horacekj/pda-emulator/pkg/schema"
)

func sampleDoc(name string) *schema.Document {
	return &schema.Document{
		Name:               name,
		States:             []string{"q0"},
		InputAlphabet:      []string{"a"},
		StackAlphabet:      []string{"Z"},
		InitialState:       "q0",
		InitialStackSymbol: "Z",
		AcceptingStates:    []string{"q0"},
		Transitions: schema.Transitions{
			"q0": {
				"a": {{"Z": {Next: "q0", Push: []string{"Z"}}}},
			},
		},
	}
}

// RunMachineStoreContract is a reusable suite verifying an adapter
// complies with ports.MachineStore.
func RunMachineStoreContract(t *testing.T, store ports.MachineStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("SaveAndLoad", func(t *testing.T) {
		doc := sampleDoc("contract-save")
		if err := store.Save(ctx, doc.Name, doc); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx, doc.Name)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.Name != doc.Name {
			t.Errorf("loaded name = %q, want %q", loaded.Name, doc.Name)
		}
		if len(loaded.Transitions["q0"]["a"]) != 1 {
			t.Errorf("transitions not preserved: %v", loaded.Transitions)
		}
	})

	t.Run("LoadIsolation", func(t *testing.T) {
		doc := sampleDoc("contract-isolation")
		if err := store.Save(ctx, doc.Name, doc); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx, doc.Name)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		loaded.States[0] = "mutated"

		again, err := store.Load(ctx, doc.Name)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if again.States[0] != "q0" {
			t.Error("store contents mutated through a loaded copy")
		}
	})

	t.Run("LoadNotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "contract-missing")
		if !errors.Is(err, ports.ErrMachineNotFound) {
			t.Fatalf("Load error = %v, want ErrMachineNotFound", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		doc := sampleDoc("contract-delete")
		if err := store.Save(ctx, doc.Name, doc); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := store.Delete(ctx, doc.Name); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Load(ctx, doc.Name); !errors.Is(err, ports.ErrMachineNotFound) {
			t.Fatalf("Load after delete = %v, want ErrMachineNotFound", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		names := []string{"contract-list-a", "contract-list-b"}
		for _, name := range names {
			if err := store.Save(ctx, name, sampleDoc(name)); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
		}

		listed, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}

		lookup := make(map[string]bool)
		for _, name := range listed {
			lookup[name] = true
		}
		for _, name := range names {
			if !lookup[name] {
				t.Errorf("machine %s missing from list", name)
			}
		}
	})
}
