// Package cmd provides Cobra CLI commands for deskclock.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/deskclock/internal/cli"
	"github.com/bnema/deskclock/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	options   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "deskclock",
		Short: "An always-on-top desktop clock",
		Long: `Deskclock - a minimal digital clock that floats above your windows.

The clock is controlled from its system tray icon: open or close it, keep
it on top, make it draggable, or hide it while the pointer hovers it.
Settings live in a YAML (or TOML) file that is written back on every change.

Use 'deskclock run' to start the clock, or explore the subcommands to
inspect and change its settings from the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(options)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&options.ConfigPath, "config", "c", "", "settings file (default $XDG_CONFIG_HOME/deskclock/config.yml)")
	flags.BoolVar(&options.LogFile, "log-file", false, "also write logs to the rotating log file")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		closeApp()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
