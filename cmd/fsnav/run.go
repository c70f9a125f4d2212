package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/fsnav/internal/cli"
	"github.com/aretw0/fsnav/internal/presentation/tui"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [dir]",
	Short: "Start a navigation session",
	Long: `Starts an interactive session rooted at dir (default: the current directory).

Commands inside the session:
  list            list the current directory
  show <file>     print a file line by line
  open <dir>      move into a subdirectory
  detail <path>   print type, size and timestamps
  back            move to the parent directory
  exit            end the session`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	return cli.Execute(cmd.Context(), cli.RunOptions{
		Config:      cfg,
		Interactive: tui.IsTerminal(os.Stdin) && tui.IsTerminal(os.Stdout),
		Stdin:       cmd.InOrStdin(),
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	})
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("root", ".", "Directory the session is confined to")
	cmd.Flags().Bool("no-banner", false, "Do not print the startup banner")
	cmd.Flags().Bool("render", false, "Render markdown files shown with show")
	cmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON output)")
	cmd.Flags().String("metrics-file", "", "Write prometheus counters to this file at exit")
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)

	// 'run' is the default if no command is provided.
	addRunFlags(rootCmd)
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = runSession
}
