package port

import (
	"context"
	"errors"
)

// ErrNoFont is returned when no usable TrueType font file can be found.
var ErrNoFont = errors.New("no TrueType font found")

// FontResolver finds the font file the clock is rendered with.
type FontResolver interface {
	// ResolveFontFile returns override when it names a readable file, else
	// the file of the first installed family of the clock fallback chain.
	ResolveFontFile(ctx context.Context, override string) (string, error)
}
