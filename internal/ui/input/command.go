// Package input defines the commands the overlay accepts from its menus.
package input

import "fmt"

// Command is a user request coming from the tray or terminal menu.
type Command string

const (
	CommandShow                Command = "show"
	CommandClose               Command = "close"
	CommandToggleAlwaysShowTop Command = "toggle_always_show_top"
	CommandToggleDraggable     Command = "toggle_draggable"
	CommandToggleHidable       Command = "toggle_hidable"
	CommandQuit                Command = "quit"
)

var commandLabels = map[Command]string{
	CommandShow:                "Open Clock",
	CommandClose:               "Close Clock",
	CommandToggleAlwaysShowTop: "Toggle Always Show Top",
	CommandToggleDraggable:     "Toggle Draggable",
	CommandToggleHidable:       "Toggle Hide On Hover",
	CommandQuit:                "Quit",
}

// Label returns the menu text for c.
func (c Command) Label() string {
	if label, ok := commandLabels[c]; ok {
		return label
	}
	return string(c)
}

// MenuItem is one row of a command menu. A zero Command marks a separator.
type MenuItem struct {
	Command Command
}

// Separator reports whether the item is a separator.
func (m MenuItem) Separator() bool {
	return m.Command == ""
}

// TrayMenu returns the tray menu in display order.
func TrayMenu() []MenuItem {
	return []MenuItem{
		{Command: CommandShow},
		{Command: CommandClose},
		{},
		{Command: CommandToggleAlwaysShowTop},
		{Command: CommandToggleDraggable},
		{Command: CommandToggleHidable},
		{},
		{Command: CommandQuit},
	}
}

// ParseCommand returns the command named s.
func ParseCommand(s string) (Command, error) {
	c := Command(s)
	if _, ok := commandLabels[c]; !ok {
		return "", fmt.Errorf("unknown command %q", s)
	}
	return c, nil
}
