// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/deskclock/internal/cli/styles"
	"github.com/bnema/deskclock/internal/ui/dispatcher"
	"github.com/bnema/deskclock/internal/ui/input"
)

// CommandDispatcher executes menu commands.
type CommandDispatcher interface {
	Dispatch(ctx context.Context, cmd input.Command) error
}

// SettingsState exposes the toggle states shown next to menu entries.
type SettingsState interface {
	Draggable() bool
	Hidable() bool
	AlwaysShowTop() bool
}

// MenuModel is a terminal rendition of the tray menu for desktops without a
// system tray. Window commands are listed but report that no clock is open.
type MenuModel struct {
	help help.Model
	keys menuKeyMap

	items       []input.MenuItem
	selectedIdx int
	status      string
	err         error
	quitting    bool

	ctx        context.Context
	dispatcher CommandDispatcher
	state      SettingsState
	theme      *styles.Theme
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewMenuModel creates the terminal menu. The tray's separators are dropped.
func NewMenuModel(ctx context.Context, theme *styles.Theme, d CommandDispatcher, state SettingsState) MenuModel {
	var items []input.MenuItem
	for _, item := range input.TrayMenu() {
		if !item.Separator() {
			items = append(items, item)
		}
	}

	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc

	return MenuModel{
		help:       h,
		keys:       defaultMenuKeyMap(),
		items:      items,
		ctx:        ctx,
		dispatcher: d,
		state:      state,
		theme:      theme,
	}
}

type dispatchedMsg struct {
	cmd input.Command
	err error
}

// Init implements tea.Model.
func (MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case dispatchedMsg:
		return m.handleDispatched(msg)
	}
	return m, nil
}

func (m MenuModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.items)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m, m.dispatch(m.items[m.selectedIdx].Command)
	}
	return m, nil
}

// dispatch runs cmd inside the update loop so store access stays on one
// goroutine.
func (m MenuModel) dispatch(cmd input.Command) tea.Cmd {
	err := m.dispatcher.Dispatch(m.ctx, cmd)
	return func() tea.Msg {
		return dispatchedMsg{cmd: cmd, err: err}
	}
}

func (m MenuModel) handleDispatched(msg dispatchedMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch {
	case msg.err == nil && msg.cmd == input.CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case msg.err == nil:
		m.status = msg.cmd.Label() + " done"
	case errors.Is(msg.err, dispatcher.ErrNoWindow):
		m.status = "The clock is not running in this terminal"
	default:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

// Err returns the error that ended the menu, if any.
func (m MenuModel) Err() error {
	return m.err
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting && m.err == nil {
		return ""
	}
	t := m.theme

	var sb strings.Builder
	sb.WriteString(t.BoxHeader.Render(fmt.Sprintf("%s deskclock", styles.IconClock)))
	sb.WriteString("\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%s %s", m.marker(item.Command), item.Command.Label())
		if i == m.selectedIdx {
			sb.WriteString(t.ListItemSelected.Render(styles.IconCursor + " " + line))
		} else {
			sb.WriteString(t.ListItem.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	switch {
	case m.err != nil:
		sb.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)))
		sb.WriteString("\n")
	case m.status != "":
		sb.WriteString(t.Subtle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// marker returns the checkbox for toggles and a blank for the rest.
func (m MenuModel) marker(cmd input.Command) string {
	switch cmd {
	case input.CommandToggleAlwaysShowTop:
		return styles.Checkbox(m.state.AlwaysShowTop())
	case input.CommandToggleDraggable:
		return styles.Checkbox(m.state.Draggable())
	case input.CommandToggleHidable:
		return styles.Checkbox(m.state.Hidable())
	}
	return " "
}
