// Package theme defines color themes for the prorate terminal UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Focused input, cursor cell
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Focus borders and headline cards
	TextDim      lipgloss.Color // Hints, disabled buttons
	TextMuted    lipgloss.Color // Labels, metadata
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Free months, selected options, titles
	AccentBright lipgloss.Color
	Paid         lipgloss.Color // Full-rent month cells
	Save         lipgloss.Color // Money set aside
	Use          lipgloss.Color // Money drawn from savings
	Warn         lipgloss.Color
}

// Active is the currently selected theme.
var Active = LocatorGold

// LocatorGold is the default theme: brand gold on charcoal.
var LocatorGold = Theme{
	Name:         "locator-gold",
	Background:   lipgloss.Color("#1A1A1A"),
	Surface:      lipgloss.Color("#111827"),
	SurfaceHover: lipgloss.Color("#374151"),
	Border:       lipgloss.Color("#3A3A3A"),
	BorderAccent: lipgloss.Color("#B69D74"),
	TextDim:      lipgloss.Color("#6B7280"),
	TextMuted:    lipgloss.Color("#9CA3AF"),
	TextPrimary:  lipgloss.Color("#FFFFFF"),
	Accent:       lipgloss.Color("#B69D74"),
	AccentBright: lipgloss.Color("#D4BC93"),
	Paid:         lipgloss.Color("#6B7280"),
	Save:         lipgloss.Color("#4ADE80"),
	Use:          lipgloss.Color("#F87171"),
	Warn:         lipgloss.Color("#FBBF24"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Paid:         lipgloss.Color("#575653"),
	Save:         lipgloss.Color("#879A39"),
	Use:          lipgloss.Color("#D14D41"),
	Warn:         lipgloss.Color("#D0A215"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	SurfaceHover: lipgloss.Color("#343A52"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentBright: lipgloss.Color("#A9C1FF"),
	Paid:         lipgloss.Color("#414868"),
	Save:         lipgloss.Color("#9ECE6A"),
	Use:          lipgloss.Color("#F7768E"),
	Warn:         lipgloss.Color("#E0AF68"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("3"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("3"),
	AccentBright: lipgloss.Color("11"),
	Paid:         lipgloss.Color("8"),
	Save:         lipgloss.Color("2"),
	Use:          lipgloss.Color("1"),
	Warn:         lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{LocatorGold, FlexokiDark, TokyoNight, Terminal}

// Names lists the theme names in order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to LocatorGold.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return LocatorGold
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
