package memory_test

import (
	"testing"

	"github.com/aretw0/fsnav/pkg/adapters/memory"
	contract "github.com/aretw0/fsnav/pkg/ports/tests"
)

func TestMemoryStorage_Contract(t *testing.T) {
	tree := memory.Tree{
		Dirs: []string{"sub", "empty"},
		Files: map[string]string{
			"a.txt":         "one\ntwo\nthree\n",
			"notes.md":      "# Title\n\nbody",
			"sub/inner.txt": "inner\n",
		},
	}

	storage, err := memory.NewStorage("/r", tree)
	if err != nil {
		t.Fatalf("failed to build storage: %v", err)
	}

	contract.StorageContractTest(t, storage, contract.Fixture{
		Root:  "/r",
		Dirs:  tree.Dirs,
		Files: tree.Files,
	})
}
