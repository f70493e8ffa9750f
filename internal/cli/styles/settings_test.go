package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/deskclock/internal/cli/styles"
	"github.com/bnema/deskclock/internal/domain/entity"
)

func testTheme() *styles.Theme {
	return styles.NewTheme()
}

func TestRenderSettings_Defaults(t *testing.T) {
	r := styles.NewSettingsRenderer(testTheme())

	out := r.RenderSettings("/home/me/.config/deskclock/config.yml", entity.DefaultSettings())

	assert.Contains(t, out, "/home/me/.config/deskclock/config.yml")
	assert.Contains(t, out, "Draggable")
	assert.Contains(t, out, "window manager default")
	assert.Contains(t, out, "100px #dddddd")
}

func TestRenderSettings_Position(t *testing.T) {
	s, err := entity.RestoreSettings(entity.SettingsFields{
		Draggable:  true,
		Position:   entity.NewPoint(120, -40),
		ClockStyle: entity.DefaultClockStyle(),
	})
	require.NoError(t, err)

	out := styles.NewSettingsRenderer(testTheme()).RenderSettings("config.yml", s)

	assert.Contains(t, out, "120, -40")
	assert.NotContains(t, out, "window manager default")
}

func TestRenderChange_Error(t *testing.T) {
	r := styles.NewSettingsRenderer(testTheme())

	out := r.RenderChange("config.yml", nil, errors.New("missing fontColor"))

	assert.Contains(t, out, "missing fontColor")
}

func TestCheckbox(t *testing.T) {
	assert.Equal(t, styles.IconCheckboxChecked, styles.Checkbox(true))
	assert.Equal(t, styles.IconCheckboxEmpty, styles.Checkbox(false))
}
