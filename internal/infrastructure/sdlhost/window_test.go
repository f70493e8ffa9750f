package sdlhost

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWindow_LogRedrawReportsFailure(t *testing.T) {
	var buf bytes.Buffer
	w := NewWindow("/fonts/DejaVuSans.ttf")
	w.log = zerolog.New(&buf).Level(zerolog.DebugLevel)

	w.logRedraw("drag indicator", errors.New("renderer lost"))

	assert.Contains(t, buf.String(), "overlay redraw failed")
	assert.Contains(t, buf.String(), "renderer lost")
	assert.Contains(t, buf.String(), `"after":"drag indicator"`)
}

func TestWindow_LogRedrawSilentOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	w := NewWindow("/fonts/DejaVuSans.ttf")
	w.log = zerolog.New(&buf).Level(zerolog.DebugLevel)

	w.logRedraw("clock visibility", nil)

	assert.Empty(t, buf.String())
}

func TestWindow_TogglesWithoutNativeWindow(t *testing.T) {
	var buf bytes.Buffer
	w := NewWindow("/fonts/DejaVuSans.ttf")
	w.log = zerolog.New(&buf).Level(zerolog.DebugLevel)

	w.SetClockVisible(false)
	w.SetDragIndicator(true)

	assert.False(t, w.clockVisible)
	assert.True(t, w.dragIndicator)
	assert.Empty(t, buf.String())
}
