// Package bootstrap assembles the overlay process.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/logging"
)

// ParallelInitInput holds the collaborators of the parallel startup phase.
type ParallelInitInput struct {
	Tray         port.TrayProbe
	Fonts        port.FontResolver
	Settings     port.SettingsRepository
	FontOverride string
	Trace        *logging.StartupTrace
}

// ParallelInitResult holds the results of the parallel startup phase.
type ParallelInitResult struct {
	Store    *usecase.SettingsStore
	FontFile string
	Duration time.Duration
}

// RunParallelInit probes the tray, opens the settings store and resolves the
// clock font. None of them touches the window system, so the phase completes
// before any window exists. The font lookup runs alongside the probe; the
// store is only opened once a tray was found, so a desktop without one never
// gets a settings file. The first failure is returned and cancels the others.
func RunParallelInit(ctx context.Context, in ParallelInitInput) (*ParallelInitResult, error) {
	var (
		store    *usecase.SettingsStore
		fontFile string
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	trayFound := make(chan struct{})

	g.Go(func() error {
		if err := in.Tray.Probe(gctx); err != nil {
			return err
		}
		in.Trace.Mark("tray_probed")
		close(trayFound)
		return nil
	})

	g.Go(func() error {
		select {
		case <-trayFound:
		case <-gctx.Done():
			return gctx.Err()
		}
		s, err := usecase.OpenSettingsStore(gctx, in.Settings)
		if err != nil {
			return err
		}
		store = s
		in.Trace.Mark("settings_loaded")
		return nil
	})

	g.Go(func() error {
		path, err := in.Fonts.ResolveFontFile(gctx, in.FontOverride)
		if err != nil {
			return fmt.Errorf("resolve clock font: %w", err)
		}
		fontFile = path
		in.Trace.Mark("font_resolved")
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ParallelInitResult{
		Store:    store,
		FontFile: fontFile,
		Duration: time.Since(start),
	}, nil
}
