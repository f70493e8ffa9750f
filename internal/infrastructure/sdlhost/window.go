// Package sdlhost implements the overlay window on SDL2.
//
// Every function in this package must be called from the OS thread that
// called Init.
package sdlhost

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/bnema/deskclock/internal/application/port"
	"github.com/bnema/deskclock/internal/domain/entity"
	"github.com/bnema/deskclock/internal/logging"
)

const (
	windowTitle = "deskclock"
	// sampleText sizes the window so every HH:MM fits.
	sampleText = "00:00"
	padding    = 8
	dashLength = 6
)

var (
	background = sdl.Color{R: 0, G: 0, B: 0, A: 255}
	fallback   = sdl.Color{R: 0xdd, G: 0xdd, B: 0xdd, A: 255}
)

// ErrNotOpen is returned by calls that need a native window before Open.
var ErrNotOpen = errors.New("overlay window is not open")

// Init starts the SDL video and font subsystems.
func Init() error {
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")
	sdl.SetHint(sdl.HINT_MOUSE_FOCUS_CLICKTHROUGH, "1")

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to initialize TTF: %w", err)
	}
	return nil
}

// Quit shuts SDL down.
func Quit() {
	ttf.Quit()
	sdl.Quit()
}

// Window is an SDL2 implementation of port.OverlayWindow.
type Window struct {
	fontPath string
	log      zerolog.Logger

	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font
	windowID uint32

	color         sdl.Color
	text          string
	clockVisible  bool
	dragIndicator bool
	shown         bool
}

// NewWindow creates an unopened window rendering text with the TrueType font
// at fontPath.
func NewWindow(fontPath string) *Window {
	return &Window{
		fontPath:     fontPath,
		log:          zerolog.Nop(),
		color:        fallback,
		clockVisible: true,
	}
}

// Open implements port.OverlayWindow. An existing native window is destroyed
// first; text and visibility carry over to the new one.
func (w *Window) Open(ctx context.Context, spec port.WindowSpec) error {
	log := logging.FromContext(ctx)
	w.log = *log

	w.destroy()

	if err := w.loadStyle(ctx, spec.Style); err != nil {
		return err
	}
	width, height, err := w.size()
	if err != nil {
		return err
	}

	var x, y int32 = sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED
	if px, py, ok := spec.Position.Coords(); ok {
		x, y = int32(px), int32(py)
	}

	flags := WindowFlags(spec.Attributes)
	window, err := sdl.CreateWindow(windowTitle, x, y, width, height, flags)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	w.window = window

	if w.windowID, err = window.GetID(); err != nil {
		w.destroy()
		return fmt.Errorf("failed to get window id: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		log.Debug().Err(err).Msg("hardware renderer unavailable, using software")
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			w.destroy()
			return fmt.Errorf("failed to create renderer: %w", err)
		}
	}
	w.renderer = renderer
	_ = renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	w.shown = false
	log.Debug().
		Uint32("sdl_flags", flags).
		Int32("width", width).
		Int32("height", height).
		Msg("sdl window created")
	return nil
}

// loadStyle opens the font at the style's size and resolves its colour. An
// unknown colour falls back to the default one.
func (w *Window) loadStyle(ctx context.Context, style entity.ClockStyle) error {
	font, err := ttf.OpenFont(w.fontPath, style.Size)
	if err != nil {
		return fmt.Errorf("failed to open font %s: %w", w.fontPath, err)
	}
	if w.font != nil {
		w.font.Close()
	}
	w.font = font

	color, err := ParseColor(style.Color)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("using default clock colour")
		color = fallback
	}
	w.color = color
	return nil
}

func (w *Window) size() (width, height int32, err error) {
	tw, th, err := w.font.SizeUTF8(sampleText)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to measure clock text: %w", err)
	}
	return int32(tw + 2*padding), int32(th + 2*padding), nil
}

// Show implements port.OverlayWindow.
func (w *Window) Show(_ context.Context) error {
	if w.window == nil {
		return ErrNotOpen
	}
	w.window.Show()
	w.window.Raise()
	w.shown = true
	return w.redraw()
}

// Hide implements port.OverlayWindow.
func (w *Window) Hide(_ context.Context) error {
	if w.window == nil {
		return ErrNotOpen
	}
	w.window.Hide()
	w.shown = false
	return nil
}

// Move implements port.OverlayWindow.
func (w *Window) Move(x, y int) error {
	if w.window == nil {
		return ErrNotOpen
	}
	w.window.SetPosition(int32(x), int32(y))
	return nil
}

// Position implements port.OverlayWindow.
func (w *Window) Position() (x, y int) {
	if w.window == nil {
		return 0, 0
	}
	wx, wy := w.window.GetPosition()
	return int(wx), int(wy)
}

// SetText implements port.OverlayWindow.
func (w *Window) SetText(text string) error {
	w.text = text
	return w.redraw()
}

// SetClockVisible implements port.OverlayWindow.
func (w *Window) SetClockVisible(visible bool) {
	w.clockVisible = visible
	w.logRedraw("clock visibility", w.redraw())
}

// SetDragIndicator implements port.OverlayWindow.
func (w *Window) SetDragIndicator(on bool) {
	w.dragIndicator = on
	w.logRedraw("drag indicator", w.redraw())
}

// logRedraw reports a failed redraw from a call that cannot return it.
func (w *Window) logRedraw(what string, err error) {
	if err != nil {
		w.log.Debug().Err(err).Str("after", what).Msg("overlay redraw failed")
	}
}

func (w *Window) redraw() error {
	if w.renderer == nil || !w.shown {
		return nil
	}

	r := w.renderer
	_ = r.SetDrawColor(background.R, background.G, background.B, background.A)
	if err := r.Clear(); err != nil {
		return fmt.Errorf("failed to clear window: %w", err)
	}

	if w.clockVisible && w.text != "" {
		if err := w.drawText(); err != nil {
			return err
		}
	}
	if w.dragIndicator {
		w.drawDashedBorder()
	}

	r.Present()
	return nil
}

func (w *Window) drawText() error {
	surface, err := w.font.RenderUTF8Blended(w.text, w.color)
	if err != nil {
		return fmt.Errorf("failed to render clock text: %w", err)
	}
	defer surface.Free()

	texture, err := w.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return fmt.Errorf("failed to create clock texture: %w", err)
	}
	defer texture.Destroy()

	_, _, tw, th, err := texture.Query()
	if err != nil {
		return err
	}
	dst := sdl.Rect{X: padding, Y: padding, W: tw, H: th}
	return w.renderer.Copy(texture, nil, &dst)
}

func (w *Window) drawDashedBorder() {
	width, height := w.window.GetSize()
	r := w.renderer
	_ = r.SetDrawColor(w.color.R, w.color.G, w.color.B, w.color.A)

	for x := int32(0); x < width; x += 2 * dashLength {
		end := min(x+dashLength, width-1)
		_ = r.DrawLine(x, 0, end, 0)
		_ = r.DrawLine(x, height-1, end, height-1)
	}
	for y := int32(0); y < height; y += 2 * dashLength {
		end := min(y+dashLength, height-1)
		_ = r.DrawLine(0, y, 0, end)
		_ = r.DrawLine(width-1, y, width-1, end)
	}
}

// PollEvents implements port.OverlayWindow. Pointer coordinates are global.
func (w *Window) PollEvents() []port.OverlayEvent {
	var events []port.OverlayEvent
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := w.translate(event); ok {
			events = append(events, ev)
		}
	}
	return events
}

func (w *Window) translate(event sdl.Event) (port.OverlayEvent, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.WindowID != w.windowID || e.Button != sdl.BUTTON_LEFT {
			return port.OverlayEvent{}, false
		}
		kind := port.OverlayPointerReleased
		if e.Type == sdl.MOUSEBUTTONDOWN {
			kind = port.OverlayPointerPressed
		}
		return globalPointerEvent(kind), true

	case *sdl.MouseMotionEvent:
		if e.WindowID != w.windowID {
			return port.OverlayEvent{}, false
		}
		return globalPointerEvent(port.OverlayPointerMoved), true

	case *sdl.WindowEvent:
		if e.WindowID != w.windowID {
			return port.OverlayEvent{}, false
		}
		switch e.Event {
		case sdl.WINDOWEVENT_ENTER:
			return port.OverlayEvent{Kind: port.OverlayPointerEntered}, true
		case sdl.WINDOWEVENT_LEAVE:
			return port.OverlayEvent{Kind: port.OverlayPointerLeft}, true
		case sdl.WINDOWEVENT_CLOSE:
			return port.OverlayEvent{Kind: port.OverlayCloseRequested}, true
		case sdl.WINDOWEVENT_EXPOSED:
			w.logRedraw("expose", w.redraw())
		}

	case *sdl.QuitEvent:
		return port.OverlayEvent{Kind: port.OverlayCloseRequested}, true
	}
	return port.OverlayEvent{}, false
}

func globalPointerEvent(kind port.OverlayEventKind) port.OverlayEvent {
	x, y, _ := sdl.GetGlobalMouseState()
	return port.OverlayEvent{Kind: kind, X: int(x), Y: int(y)}
}

// Close implements port.OverlayWindow.
func (w *Window) Close() error {
	w.destroy()
	if w.font != nil {
		w.font.Close()
		w.font = nil
	}
	return nil
}

func (w *Window) destroy() {
	if w.renderer != nil {
		_ = w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		_ = w.window.Destroy()
		w.window = nil
	}
	w.windowID = 0
	w.shown = false
}

var _ port.OverlayWindow = (*Window)(nil)
