package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/bnema/deskclock/internal/domain/entity"
)

// WindowFlags maps the overlay attribute mask to SDL window flags. Windows are
// always created hidden and shown explicitly.
//
// SDL has no input pass-through flag, so AttrTransparentForInput maps to
// nothing here; the overlay controller drops pointer events instead.
func WindowFlags(mask entity.AttributeMask) uint32 {
	var flags uint32 = sdl.WINDOW_HIDDEN
	if mask.Has(entity.AttrFrameless) {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if mask.Has(entity.AttrNoTaskbarEntry) {
		flags |= sdl.WINDOW_SKIP_TASKBAR | sdl.WINDOW_UTILITY
	}
	if mask.Has(entity.AttrStaysOnTop) {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}
	return flags
}
