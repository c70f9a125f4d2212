package fsnav_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/fsnav"
	"github.com/aretw0/fsnav/pkg/adapters/memory"
	"github.com/aretw0/fsnav/pkg/domain"
)

// ExampleNew_memory demonstrates how to use the Engine with an in-memory tree.
// This is useful for testing, embedded scenarios, or demos that should not touch the disk.
func ExampleNew_memory() {
	storage, err := memory.NewStorage("/r", memory.Tree{
		Dirs: []string{"sub"},
		Files: map[string]string{
			"a.txt": "alpha\nbeta\ngamma\n",
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	engine, err := fsnav.New("/r", fsnav.WithStorage(storage))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	state, err := engine.Start(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, line := range []string{"list", "open sub", "back", "show a.txt", "back", "exit"} {
		res, err := engine.Execute(ctx, state, line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		printActions(res.Actions)
		state = res.State
		if res.Stop {
			break
		}
	}

	// Output:
	// Contents of /r
	// a.txt
	// sub
	// alpha
	// beta
	// gamma
	// error: Cannot go beyond the root directory.
	// Exiting...
}

func printActions(actions []domain.ActionRequest) {
	for _, act := range actions {
		switch act.Type {
		case domain.ActionRenderLine, domain.ActionSystemMessage:
			fmt.Println(act.Payload)
		case domain.ActionRenderLines:
			for line, err := range act.Payload.(domain.LineSource).Lines {
				if err != nil {
					fmt.Println("error:", err)
					break
				}
				fmt.Println(line)
			}
		}
	}
}
