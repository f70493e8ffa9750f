package overlay

import (
	"context"
	"time"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/logging"
	"github.com/bnema/deskclock/internal/ui/dispatcher"
	"github.com/bnema/deskclock/internal/ui/input"
)

const (
	// ClockInterval is how often the clock text is refreshed.
	ClockInterval = 500 * time.Millisecond
	// PollInterval is how often host window events are drained.
	PollInterval = 16 * time.Millisecond
)

// Loop is the overlay's single event loop. Clock ticks, host window events
// and menu commands are all handled on the goroutine that calls Run, which is
// the only goroutine touching the settings store and the window.
type Loop struct {
	controller *Controller
	dispatcher *dispatcher.TrayDispatcher
	window     port.OverlayWindow
	commands   <-chan input.Command

	clockInterval time.Duration
	pollInterval  time.Duration
	quit          bool
	onStarted     func()
}

// NewLoop wires the loop. Quit requests dispatched through d end Run.
func NewLoop(
	controller *Controller,
	d *dispatcher.TrayDispatcher,
	window port.OverlayWindow,
	commands <-chan input.Command,
) *Loop {
	l := &Loop{
		controller:    controller,
		dispatcher:    d,
		window:        window,
		commands:      commands,
		clockInterval: ClockInterval,
		pollInterval:  PollInterval,
	}
	d.SetOnQuit(func() { l.quit = true })
	return l
}

// OnStarted registers fn to run once the window is first shown.
func (l *Loop) OnStarted(fn func()) {
	l.onStarted = fn
}

// Run opens the window and processes events until Quit, ctx cancellation or
// the first error. Errors are returned as-is; the caller treats them as fatal.
func (l *Loop) Run(ctx context.Context) error {
	defer logging.RecoverPanic(ctx, "overlay loop")
	log := logging.FromContext(ctx)

	if err := l.controller.Start(ctx); err != nil {
		return err
	}
	log.Info().Msg("overlay running")
	if l.onStarted != nil {
		l.onStarted()
	}

	clock := time.NewTicker(l.clockInterval)
	defer clock.Stop()
	poll := time.NewTicker(l.pollInterval)
	defer poll.Stop()

	commands := l.commands
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("overlay loop cancelled")
			return nil

		case cmd, ok := <-commands:
			if !ok {
				// The tray is gone; keep the clock running.
				commands = nil
				continue
			}
			if err := l.dispatcher.Dispatch(ctx, cmd); err != nil {
				return err
			}
			if l.quit {
				log.Info().Msg("quit requested")
				return nil
			}

		case <-clock.C:
			if err := l.controller.Tick(); err != nil {
				return err
			}

		case <-poll.C:
			for _, ev := range l.window.PollEvents() {
				if err := l.controller.HandleEvent(ctx, ev); err != nil {
					return err
				}
			}
		}
	}
}
