package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/bootstrap"
	"github.com/bnema/deskclock/internal/infrastructure/lock"
	"github.com/bnema/deskclock/internal/logging"
)

var (
	runFontPath    string
	runSettleDelay time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the clock overlay",
	Long: `Start the clock overlay and its system tray icon.

The clock needs a system tray (a StatusNotifierItem host) and refuses to
start without one. Only one clock runs at a time.

Examples:
  deskclock run                         # Start with the default settings file
  deskclock run -c ~/clock.toml         # Use another settings file
  deskclock run --font ~/fonts/Mono.ttf # Draw the clock with a specific font`,
	RunE: runOverlay,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runFontPath, "font", "", "TrueType font file for the clock")
	runCmd.Flags().DurationVar(&runSettleDelay, "settle-delay", usecase.DefaultSettleDelay,
		"wait between re-applying window attributes and showing the clock")
}

func runOverlay(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.FromContext(ctx)
	trace := logging.NewStartupTrace(log, processStart)
	trace.Mark("cli_ready")

	err := bootstrap.RunGUI(ctx, bootstrap.GUIOptions{
		ConfigPath:  app.Options.ConfigPath,
		FontPath:    runFontPath,
		SettleDelay: runSettleDelay,
		Paths:       app.Paths,
		Trace:       trace,
	})
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, port.ErrNoHostTraySupport):
		log.Error().Err(err).Msg("deskclock needs a system tray")
	case errors.Is(err, lock.ErrAlreadyRunning):
		log.Error().Err(err).Msg("another clock is running")
	default:
		log.Error().Err(err).Msg("overlay stopped")
	}
	return err
}

// processStart is when the process began, for the startup trace.
var processStart = time.Now()
