package sdlhost

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/veandco/go-sdl2/sdl"
)

// namedColors covers the colour names people actually put in the settings
// file. Anything else must be #rgb or #rrggbb.
var namedColors = map[string]string{
	"white":     "#ffffff",
	"black":     "#000000",
	"red":       "#ff0000",
	"green":     "#008000",
	"lime":      "#00ff00",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"orange":    "#ffa500",
	"gray":      "#808080",
	"grey":      "#808080",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"silver":    "#c0c0c0",
}

// ParseColor converts a settings colour into an opaque SDL colour.
func ParseColor(s string) (sdl.Color, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[value]; ok {
		value = hex
	}

	c, err := colorful.Hex(value)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("unsupported colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return sdl.Color{R: r, G: g, B: b, A: 255}, nil
}
