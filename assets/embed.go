// Package assets holds files embedded into the deskclock binary.
package assets

import _ "embed"

// IconPNG is the clock icon shown in the tray and installed for the
// desktop entry.
//
//go:embed icon.png
var IconPNG []byte
