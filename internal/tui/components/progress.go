package components

import (
	"fmt"

	"github.com/aptscout/prorate/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepProgress renders "Step 2 of 6" followed by a solid progress bar.
func StepProgress(index, total, barWidth int) string {
	t := theme.Active
	if total <= 0 {
		return ""
	}

	pct := float64(index+1) / float64(total)
	pct = max(0, min(1, pct))

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(max(4, barWidth)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceHover)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	return labelStyle.Render(fmt.Sprintf("Step %d of %d", index+1, total)) + " " +
		bar.ViewAs(pct) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
