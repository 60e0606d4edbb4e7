package components

import (
	"strings"

	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// a short summary on the right.
func RenderStatusBar(width int, hints, summary string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints
	right := ""
	if summary != "" {
		right = summary + " "
	}

	// Hints give way to the summary on narrow terminals
	if room := width - lipgloss.Width(right) - 1; lipgloss.Width(left) > room {
		left = lipgloss.NewStyle().MaxWidth(max(room, 0)).Render(left)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
