package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/fsnav/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "fsnav [dir]",
	Short: "fsnav is a read-only, session based file system navigator",
	Long: `fsnav opens an interactive session rooted at a directory.
Inside the session you can list, show, open, detail, go back and exit.
Nothing is ever written to the navigated tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/fsnav/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig resolves the effective configuration: defaults, file and
// environment through config.Load, then the flags the user actually set.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Lookup("root") != nil {
		if flags.Changed("root") {
			cfg.Root, _ = flags.GetString("root")
		} else if len(args) > 0 {
			cfg.Root = args[0]
		}
	}
	if changed(cmd, "no-banner") {
		noBanner, _ := flags.GetBool("no-banner")
		cfg.Banner = !noBanner
	}
	if changed(cmd, "render") {
		cfg.Render, _ = flags.GetBool("render")
	}
	if changed(cmd, "json") {
		cfg.JSON, _ = flags.GetBool("json")
	}
	if changed(cmd, "metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}

	return cfg, cfg.Validate()
}

func changed(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Lookup(name) != nil && cmd.Flags().Changed(name)
}
