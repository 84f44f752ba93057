package cmd

import (
	"errors"
	"fmt"

	"github.com/aptscout/prorate/internal/config"
	"github.com/aptscout/prorate/internal/tui"
	"github.com/aptscout/prorate/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Launch the interactive budget calculator",
	RunE:  runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	useTheme(cfg)

	// Missing rent is fine here; the first page asks for it.
	params, err := leaseParams(cfg)
	if err != nil && !errors.Is(err, errRentRequired) {
		return err
	}

	app := tui.NewApp(tui.Defaults{
		LeaseMonths: params.LeaseTermMonths,
		Rent:        params.BaseMonthlyRent,
		FreeMonths:  params.FreeMonths,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// useTheme applies the configured theme and forces TrueColor so background
// styling always produces ANSI codes.
func useTheme(cfg config.Config) {
	theme.SetActive(config.GetTheme(cfg))
	lipgloss.SetColorProfile(termenv.TrueColor)
}
