package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/infrastructure/config"
	"github.com/bnema/deskclock/internal/infrastructure/filesystem"
	"github.com/bnema/deskclock/internal/infrastructure/fonts"
	"github.com/bnema/deskclock/internal/infrastructure/lock"
	"github.com/bnema/deskclock/internal/infrastructure/sdlhost"
	"github.com/bnema/deskclock/internal/infrastructure/tray"
	"github.com/bnema/deskclock/internal/logging"
	"github.com/bnema/deskclock/internal/ui/dispatcher"
	"github.com/bnema/deskclock/internal/ui/overlay"
)

// GUIOptions configures RunGUI.
type GUIOptions struct {
	// ConfigPath overrides the settings file location.
	ConfigPath string
	// FontPath overrides the clock font file.
	FontPath    string
	SettleDelay time.Duration
	Paths       port.XDGPaths
	Trace       *logging.StartupTrace
}

// OpenRepository returns the settings repository at configPath, or at the
// default location when configPath is empty.
func OpenRepository(paths port.XDGPaths, configPath string) (*config.FileRepository, error) {
	if configPath == "" {
		path, err := paths.SettingsFile()
		if err != nil {
			return nil, fmt.Errorf("resolve settings file: %w", err)
		}
		configPath = path
	}
	return config.NewFileRepository(configPath, filesystem.New()), nil
}

// AcquireLock takes the single-instance lock.
func AcquireLock(paths port.XDGPaths) (*lock.Lock, error) {
	path, err := paths.LockFile()
	if err != nil {
		return nil, fmt.Errorf("resolve lock file: %w", err)
	}
	return lock.Acquire(path)
}

// RunGUI runs the overlay until Quit or ctx cancellation. It must be called
// from the main goroutine with the OS thread locked.
func RunGUI(ctx context.Context, opts GUIOptions) error {
	log := logging.FromContext(ctx)
	trace := opts.Trace

	instance, err := AcquireLock(opts.Paths)
	if err != nil {
		return err
	}
	defer func() { _ = instance.Release() }()
	trace.Mark("lock_acquired")

	repo, err := OpenRepository(opts.Paths, opts.ConfigPath)
	if err != nil {
		return err
	}

	initResult, err := RunParallelInit(ctx, ParallelInitInput{
		Tray:         tray.NewDBusProbe(),
		Fonts:        fonts.NewDetector(),
		Settings:     repo,
		FontOverride: opts.FontPath,
		Trace:        trace,
	})
	if err != nil {
		return err
	}
	store := initResult.Store
	log.Debug().
		Dur("parallel_phase", initResult.Duration).
		Str("settings", store.Path()).
		Str("font_file", initResult.FontFile).
		Msg("startup phase complete")

	if err := sdlhost.Init(); err != nil {
		return err
	}
	defer sdlhost.Quit()
	trace.Mark("sdl_init")

	window := sdlhost.NewWindow(initResult.FontFile)
	defer func() { _ = window.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	commands := tray.NewMenu().Start(logging.WithComponent(ctx, "tray"))
	trace.Mark("tray_ready")

	reload := usecase.NewReloadOverlayUseCase(store, window, opts.SettleDelay)
	d := dispatcher.NewTrayDispatcher(ctx, store, window, reload)
	loop := overlay.NewLoop(overlay.NewController(store, window), d, window, commands)
	loop.OnStarted(trace.Finish)

	return loop.Run(logging.WithComponent(ctx, "overlay"))
}
