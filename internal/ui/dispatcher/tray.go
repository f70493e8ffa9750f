// Package dispatcher routes menu commands to the settings store and the
// overlay window.
package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/logging"
	"github.com/bnema/deskclock/internal/ui/input"
)

// ErrNoWindow is returned for window commands when no overlay is running.
var ErrNoWindow = errors.New("no overlay window")

// TrayDispatcher routes tray and terminal menu commands.
//
// After every command it checks whether the window attributes changed and,
// when they did and a window is attached, reloads the window.
type TrayDispatcher struct {
	store  *usecase.SettingsStore
	window port.OverlayWindow
	reload *usecase.ReloadOverlayUseCase
	onQuit func()
}

// NewTrayDispatcher creates a dispatcher. window and reload may be nil when
// commands are dispatched without a live overlay; settings are then only
// persisted.
func NewTrayDispatcher(
	ctx context.Context,
	store *usecase.SettingsStore,
	window port.OverlayWindow,
	reload *usecase.ReloadOverlayUseCase,
) *TrayDispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Bool("window", window != nil).Msg("creating tray dispatcher")

	return &TrayDispatcher{
		store:  store,
		window: window,
		reload: reload,
	}
}

// SetOnQuit sets the callback for quit action.
func (d *TrayDispatcher) SetOnQuit(fn func()) {
	d.onQuit = fn
}

// Dispatch executes cmd.
func (d *TrayDispatcher) Dispatch(ctx context.Context, cmd input.Command) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("command", string(cmd)).Msg("dispatching tray command")

	var err error
	switch cmd {
	case input.CommandShow:
		if d.window == nil {
			return fmt.Errorf("%s: %w", cmd.Label(), ErrNoWindow)
		}
		err = d.window.Show(ctx)
	case input.CommandClose:
		if d.window == nil {
			return fmt.Errorf("%s: %w", cmd.Label(), ErrNoWindow)
		}
		err = d.window.Hide(ctx)

	case input.CommandToggleAlwaysShowTop:
		err = d.store.ToggleAlwaysShowTop(ctx)
	case input.CommandToggleDraggable:
		err = d.store.ToggleDraggable(ctx)
	case input.CommandToggleHidable:
		err = d.store.ToggleHidable(ctx)
		// A clock hidden by hover stays hidden otherwise.
		if err == nil && !d.store.Hidable() && d.window != nil {
			d.window.SetClockVisible(true)
		}

	case input.CommandQuit:
		if d.onQuit != nil {
			d.onQuit()
		}
		return nil

	default:
		log.Warn().Str("command", string(cmd)).Msg("unhandled tray command")
		return fmt.Errorf("unhandled command %q", cmd)
	}
	if err != nil {
		return err
	}

	return d.applyPendingReload(ctx)
}

func (d *TrayDispatcher) applyPendingReload(ctx context.Context) error {
	if d.reload == nil || !d.store.ReloadRequired() {
		return nil
	}
	_, err := d.reload.Execute(ctx)
	return err
}
