// Package cli provides the shared dependencies of the deskclock commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/bootstrap"
	"github.com/bnema/deskclock/internal/cli/styles"
	"github.com/bnema/deskclock/internal/domain/build"
	"github.com/bnema/deskclock/internal/infrastructure/config"
	"github.com/bnema/deskclock/internal/infrastructure/lock"
	"github.com/bnema/deskclock/internal/infrastructure/xdg"
	"github.com/bnema/deskclock/internal/logging"
)

// Options are the global flags shared by every command.
type Options struct {
	ConfigPath string
	LogFile    bool
	Verbose    bool
}

// App holds CLI dependencies.
type App struct {
	Theme     *styles.Theme
	BuildInfo build.Info
	Paths     port.XDGPaths
	Options   Options

	ctx      context.Context
	logClose io.Closer
	instance *lock.Lock
}

// NewApp loads .env, builds the logger and resolves paths.
func NewApp(opts Options) (*App, error) {
	// A missing .env is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	paths := xdg.New()
	logCfg := logging.ConfigFromEnv()
	logCfg.TimeFormat = "15:04:05"
	if opts.Verbose {
		logCfg.Level = zerolog.DebugLevel
	}

	app := &App{
		Theme:   styles.NewTheme(),
		Paths:   paths,
		Options: opts,
	}

	if opts.LogFile {
		dir, err := paths.LogDir()
		if err != nil {
			return nil, fmt.Errorf("resolve log directory: %w", err)
		}
		w, err := logging.NewFileWriter(dir)
		if err != nil {
			return nil, err
		}
		logCfg.File = w
		app.logClose = w
	}

	logger := logging.New(logCfg)
	app.ctx = logging.WithContext(context.Background(), logger)
	return app, nil
}

// Context returns the base context carrying the logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Repository returns the settings repository selected by --config.
func (a *App) Repository() (*config.FileRepository, error) {
	return bootstrap.OpenRepository(a.Paths, a.Options.ConfigPath)
}

// OpenStore opens the settings store. Stores that will be written take the
// single-instance lock first, so the CLI never races a running overlay.
func (a *App) OpenStore(ctx context.Context, writable bool) (*usecase.SettingsStore, error) {
	if writable && a.instance == nil {
		instance, err := bootstrap.AcquireLock(a.Paths)
		if err != nil {
			return nil, err
		}
		a.instance = instance
	}

	repo, err := a.Repository()
	if err != nil {
		return nil, err
	}
	return usecase.OpenSettingsStore(ctx, repo)
}

// Close releases the lock and flushes the log file.
func (a *App) Close() error {
	var errs []error
	if a.instance != nil {
		errs = append(errs, a.instance.Release())
		a.instance = nil
	}
	if a.logClose != nil {
		errs = append(errs, a.logClose.Close())
		a.logClose = nil
	}
	return errors.Join(errs...)
}
