package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/fsnav"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fsnav",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fsnav version %s\n", fsnav.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
