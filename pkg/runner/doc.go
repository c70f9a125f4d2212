/*
Package runner implements the session loop and I/O orchestration for the fsnav navigator.

It acts as the bridge between the navigation state machine (a ports.Navigator)
and the outside world. The runner reads one line at a time, has the navigator
parse and apply it, renders the resulting actions and loops until the exit
command, end of input or cancellation. Every command failure is reported and
the loop continues.

# Key Components

  - Runner: The loop that threads navigation State through each command.
  - IOHandler: Decouples how lines are read and actions rendered (text, JSON).
  - TextHandler: A standard implementation for interactive CLI usage.
  - JSONHandler: NDJSON output for scripted use.
  - SignalManager: Cancels the session context on SIGINT/SIGTERM.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	final, err := r.Run(ctx, engine, state)
*/
package runner
