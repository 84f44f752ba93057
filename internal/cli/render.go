package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors (locator gold on charcoal)
var (
	ColorBg        = lipgloss.Color("#1A1A1A")
	ColorSurface   = lipgloss.Color("#2F2F2F")
	ColorBorder    = lipgloss.Color("#3A3A3A")
	ColorTextDim   = lipgloss.Color("#6B7280")
	ColorTextMuted = lipgloss.Color("#9CA3AF")
	ColorText      = lipgloss.Color("#FFFFFF")
	ColorAccent    = lipgloss.Color("#B69D74")
	ColorGreen     = lipgloss.Color("#4ADE80")
	ColorRed       = lipgloss.Color("#F87171")
	ColorGray      = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	saveStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	useStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	freeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorAccent)

	paidStyle = lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorGray)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil

	// CellStyle overrides the style of a data cell; nil renders every cell plain.
	CellStyle func(col int, cell string) lipgloss.Style
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			style := valueStyle
			if t.CellStyle != nil {
				style = t.CellStyle(i, cell)
			}
			b.WriteString(style.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// LedgerCellStyle colors the Save / Use column of a ledger table.
func LedgerCellStyle(col int, cell string) lipgloss.Style {
	if col != 3 {
		return valueStyle
	}
	if strings.HasPrefix(cell, "- ") {
		return useStyle
	}
	return saveStyle
}

// RenderMonthStrip draws one cell per lease month, highlighting free months.
func RenderMonthStrip(term int, isFree func(month int) bool) string {
	if term <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("  ")
	for m := 1; m <= term; m++ {
		cell := fmt.Sprintf(" %2d ", m)
		if isFree(m) {
			b.WriteString(freeStyle.Render(cell))
		} else {
			b.WriteString(paidStyle.Render(cell))
		}
		if m%12 == 0 && m < term {
			b.WriteString("\n  ")
		}
	}
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(freeStyle.Render(" free "))
	b.WriteString(" ")
	b.WriteString(paidStyle.Render(" full rent "))
	b.WriteString("\n")
	return b.String()
}

// RenderKeyValue renders an aligned label/value line for headline figures.
func RenderKeyValue(label, value string) string {
	return fmt.Sprintf("  %s %s\n", mutedStyle.Render(fmt.Sprintf("%-26s", label)), headerStyle.Render(value))
}
