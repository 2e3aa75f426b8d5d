package memory_test

import (
	"testing"

	"github.com/horacekj/pda-emulator/pkg/adapters/memory"
	"github.com/horacekj/pda-emulator/pkg/ports/tests"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	tests.RunMachineStoreContract(t, store)
}
