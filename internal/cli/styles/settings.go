package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/deskclock/internal/domain/entity"
)

// SettingsRenderer renders the overlay settings with styled output.
type SettingsRenderer struct {
	theme *Theme
}

// NewSettingsRenderer creates a new settings renderer with the given theme.
func NewSettingsRenderer(theme *Theme) *SettingsRenderer {
	return &SettingsRenderer{theme: theme}
}

// RenderSettings renders the settings stored at path.
func (r *SettingsRenderer) RenderSettings(path string, s *entity.Settings) string {
	t := r.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	labelStyle := t.Subtle.Width(16)

	row := func(icon, label, value string) string {
		return fmt.Sprintf("  %s %s %s\n", iconStyle.Render(icon), labelStyle.Render(label), value)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Settings %s\n\n", iconStyle.Render(IconConfig), t.Subtle.Render(path)))
	sb.WriteString(row(Checkbox(s.Draggable()), "Draggable", r.renderBool(s.Draggable())))
	sb.WriteString(row(Checkbox(s.Hidable()), "Hide on hover", r.renderBool(s.Hidable())))
	sb.WriteString(row(Checkbox(s.AlwaysShowTop()), "Always on top", r.renderBool(s.AlwaysShowTop())))
	sb.WriteString(row(IconMove, "Position", r.renderPosition(s.Position())))
	sb.WriteString(row(IconFont, "Clock", r.renderStyle(s.ClockStyle())))
	sb.WriteString(row(IconInfo, "Attributes", r.renderAttributes(s)))
	return sb.String()
}

func (r *SettingsRenderer) renderBool(on bool) string {
	if on {
		return r.theme.Badge.Render("on")
	}
	return r.theme.BadgeMuted.Render("off")
}

func (r *SettingsRenderer) renderPosition(p entity.Point) string {
	x, y, ok := p.Coords()
	if !ok {
		return r.theme.Subtle.Render("window manager default")
	}
	return r.theme.Normal.Render(fmt.Sprintf("%d, %d", x, y))
}

func (r *SettingsRenderer) renderStyle(style entity.ClockStyle) string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Color)).Render("12:34")
	return fmt.Sprintf("%s %s", swatch, r.theme.Subtle.Render(style.String()))
}

func (r *SettingsRenderer) renderAttributes(s *entity.Settings) string {
	return fmt.Sprintf("%s %s",
		r.theme.Normal.Render(s.Attributes().String()),
		r.theme.Subtle.Render(fmt.Sprintf("(mask 0x%02x)", uint32(s.WindowAttributes()))),
	)
}

// RenderUpdated renders the confirmation of a settings change.
func (r *SettingsRenderer) RenderUpdated(what string, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(what),
		r.theme.Subtle.Render(path),
	)
}

// RenderReloadHint renders the note that the change applies on next start.
func (r *SettingsRenderer) RenderReloadHint() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf("  %s %s\n",
		iconStyle.Render(IconInfo),
		r.theme.Subtle.Render("Window attributes changed; they apply the next time the clock starts."),
	)
}

// RenderChange renders one settings file change seen by settings watch.
func (r *SettingsRenderer) RenderChange(path string, s *entity.Settings, err error) string {
	if err != nil {
		return r.RenderError(err)
	}
	return r.RenderSettings(path, s)
}

// RenderError renders an error message.
func (r *SettingsRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Settings error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderLocked renders the message shown while the overlay holds the lock.
func (r *SettingsRenderer) RenderLocked(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"\n  %s %v\n  %s\n",
		iconStyle.Render(IconLock),
		err,
		r.theme.Subtle.Render("Use the tray menu, or quit the clock first."),
	)
}
