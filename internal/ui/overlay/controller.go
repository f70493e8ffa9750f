// Package overlay drives the clock window: clock text, dragging and
// hide-on-hover.
package overlay

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/domain/entity"
	"github.com/bnema/deskclock/internal/logging"
)

// ClockFormat is the layout of the clock text.
const ClockFormat = "15:04"

// Controller reacts to host window events. It must be used from the overlay
// loop goroutine only.
type Controller struct {
	store  *usecase.SettingsStore
	window port.OverlayWindow
	now    func() time.Time

	pressed      bool
	lastX, lastY int
	text         string
}

// NewController creates a controller for window.
func NewController(store *usecase.SettingsStore, window port.OverlayWindow) *Controller {
	return &Controller{
		store:  store,
		window: window,
		now:    time.Now,
	}
}

// Start creates the window from the current settings and shows it.
func (c *Controller) Start(ctx context.Context) error {
	spec := c.store.WindowSpec()
	logging.FromContext(ctx).Debug().
		Stringer("attributes", c.store.Attributes()).
		Stringer("position", spec.Position).
		Stringer("style", spec.Style).
		Msg("opening overlay window")

	if err := c.window.Open(ctx, spec); err != nil {
		return fmt.Errorf("failed to open overlay window: %w", err)
	}
	if err := c.Tick(); err != nil {
		return err
	}
	if err := c.window.Show(ctx); err != nil {
		return fmt.Errorf("failed to show overlay window: %w", err)
	}
	return nil
}

// Tick refreshes the clock text. The window is only touched when the
// displayed minute changes.
func (c *Controller) Tick() error {
	text := c.now().Format(ClockFormat)
	if text == c.text {
		return nil
	}
	if err := c.window.SetText(text); err != nil {
		return fmt.Errorf("failed to render clock text: %w", err)
	}
	c.text = text
	return nil
}

// HandleEvent applies a host window event.
func (c *Controller) HandleEvent(ctx context.Context, ev port.OverlayEvent) error {
	if ev.Kind == port.OverlayCloseRequested {
		return c.window.Hide(ctx)
	}

	// An input-transparent window never sees the pointer.
	if c.store.Attributes().Contains(entity.AttrTransparentForInput) {
		return nil
	}

	switch ev.Kind {
	case port.OverlayPointerPressed:
		c.pressed = true
		c.lastX, c.lastY = ev.X, ev.Y
		c.window.SetDragIndicator(true)

	case port.OverlayPointerMoved:
		if !c.pressed {
			return nil
		}
		dx, dy := ev.X-c.lastX, ev.Y-c.lastY
		c.lastX, c.lastY = ev.X, ev.Y
		if !c.store.Draggable() || (dx == 0 && dy == 0) {
			return nil
		}
		x, y := c.window.Position()
		if err := c.window.Move(x+dx, y+dy); err != nil {
			return fmt.Errorf("failed to move overlay window: %w", err)
		}

	case port.OverlayPointerReleased:
		if !c.pressed {
			return nil
		}
		c.pressed = false
		c.window.SetDragIndicator(false)
		x, y := c.window.Position()
		if err := c.store.SavePosition(ctx, entity.NewPoint(x, y)); err != nil {
			return err
		}
		logging.FromContext(ctx).Debug().Int("x", x).Int("y", y).Msg("overlay position saved")

	case port.OverlayPointerEntered:
		if c.store.Hidable() {
			c.window.SetClockVisible(false)
		}

	case port.OverlayPointerLeft:
		c.window.SetClockVisible(true)
	}
	return nil
}
