// Package cmd provides Cobra CLI commands for dumbwm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbwm/internal/cli"
	"github.com/bnema/dumbwm/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "dumbwm",
		Short: "A tiling window manager core driven by events",
		Long: `dumbwm - the decision core of a tiling window manager.

dumbwm keeps the container tree (monitors, workspaces, splits and windows),
runs window rules, resolves directional focus and computes where every
window goes. The native window system is reached through a small set of
calls: set foreground, reset foreground, move the cursor and apply
placements.

Events come in as native events (window managed, focused, destroyed,
title changed, or a command). Each event ends with exactly one redraw.

Use 'dumbwm replay' to run a recorded scenario, or 'dumbwm run' to feed
newline-delimited JSON events on stdin.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			if rootOpts.LogOutput == nil {
				rootOpts.LogOutput = cmd.ErrOrStderr()
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootOpts.ConfigFile, "config", "c", "", "Config file (default is $XDG_CONFIG_HOME/dumbwm/config.toml)")
	flags.StringVar(&rootOpts.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&rootOpts.LogFormat, "log-format", "", "Log format: console, json")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
