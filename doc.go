/*
Package fsnav is a read-only, session-based file-system navigator.

A session starts at a root directory and accepts a fixed vocabulary of line
commands: list, show <name>, back, open <name>, detail <name> and exit (each
also accepted in all-uppercase). The navigator never modifies the tree and
never lets the current directory leave the root.

# Concept

The engine is a deterministic state machine. A raw line is classified into
an Invocation, and Apply computes the next State plus the output to render.
State is a value threaded by the caller, so the engine itself holds nothing
between commands. Rendering and input belong to the host (see pkg/runner).

# Usage

	eng, err := fsnav.New("/srv/data")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	state, err := eng.Start(ctx)
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Execute(ctx, state, "open reports")
	if err != nil {
		fmt.Println(err) // every failure is recoverable
	}
	state = res.State
*/
package fsnav
