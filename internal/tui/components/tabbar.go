package components

import (
	"fmt"
	"strings"

	"github.com/aptscout/prorate/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Pages are the calculator screens in order.
var Pages = []string{"Lease", "Free Months", "Budget Plan"}

// RenderPageBar renders the page breadcrumb with the active page
// highlighted. Pages after the active one are dimmed.
func RenderPageBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	todoStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	sepStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, len(Pages))
	for i, name := range Pages {
		label := fmt.Sprintf("%d %s", i+1, name)
		switch {
		case i == activeIdx:
			parts[i] = activeStyle.Render(label)
		case i < activeIdx:
			parts[i] = doneStyle.Render(label)
		default:
			parts[i] = todoStyle.Render(label)
		}
	}
	return " " + strings.Join(parts, sepStyle.Render(" › "))
}
