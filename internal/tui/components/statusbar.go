package components

import (
	"strings"

	"github.com/aptscout/prorate/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom key-hint bar with an optional
// right-aligned note.
func RenderStatusBar(width int, hints []string, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + strings.Join(hints, "  ")
	if right != "" {
		right += " "
	}

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
