package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrayMenu_Order(t *testing.T) {
	var labels []string
	for _, item := range TrayMenu() {
		if item.Separator() {
			labels = append(labels, "---")
			continue
		}
		labels = append(labels, item.Command.Label())
	}

	assert.Equal(t, []string{
		"Open Clock",
		"Close Clock",
		"---",
		"Toggle Always Show Top",
		"Toggle Draggable",
		"Toggle Hide On Hover",
		"---",
		"Quit",
	}, labels)
}

func TestParseCommand(t *testing.T) {
	c, err := ParseCommand("toggle_draggable")
	require.NoError(t, err)
	assert.Equal(t, CommandToggleDraggable, c)

	_, err = ParseCommand("toggle_everything")
	assert.Error(t, err)
}

func TestCommand_LabelFallback(t *testing.T) {
	assert.Equal(t, "something", Command("something").Label())
}
