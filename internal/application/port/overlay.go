package port

import (
	"context"

	"github.com/bnema/deskclock/internal/domain/entity"
)

// OverlayEventKind identifies a host window event relevant to the overlay.
type OverlayEventKind int

const (
	OverlayPointerPressed OverlayEventKind = iota
	OverlayPointerMoved
	OverlayPointerReleased
	OverlayPointerEntered
	OverlayPointerLeft
	// OverlayCloseRequested is sent when the host asks to close the window.
	OverlayCloseRequested
)

// OverlayEvent is a host event. X and Y are global pointer coordinates.
type OverlayEvent struct {
	Kind OverlayEventKind
	X, Y int
}

// WindowSpec describes the native window to create.
type WindowSpec struct {
	Attributes entity.AttributeMask
	Style      entity.ClockStyle
	Position   entity.Point
}

// OverlayWindow is the host window that renders the clock.
// All methods must be called from the goroutine that runs the overlay loop.
type OverlayWindow interface {
	// Open creates the native window, destroying a previous one first.
	Open(ctx context.Context, spec WindowSpec) error
	Show(ctx context.Context) error
	Hide(ctx context.Context) error
	Move(x, y int) error
	Position() (x, y int)
	SetText(text string) error
	SetClockVisible(visible bool)
	SetDragIndicator(on bool)
	// PollEvents drains pending host events without blocking.
	PollEvents() []OverlayEvent
	Close() error
}
