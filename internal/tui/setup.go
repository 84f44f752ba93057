package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aptscout/prorate/internal/config"
	"github.com/aptscout/prorate/internal/report"
	"github.com/aptscout/prorate/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues are the answers bound to the setup form.
type SetupValues struct {
	LeaseMonths string
	Rent        string
	Theme       string
	Format      string
	Addr        string
	Market      string
}

// NewSetupValues prefills the form from cfg.
func NewSetupValues(cfg config.Config) *SetupValues {
	v := &SetupValues{
		LeaseMonths: strconv.Itoa(cfg.General.DefaultLeaseMonths),
		Theme:       cfg.Appearance.Theme,
		Format:      cfg.Export.DefaultFormat,
		Addr:        cfg.Server.Addr,
		Market:      cfg.Lead.Market,
	}
	if cfg.General.DefaultRent != nil {
		v.Rent = strconv.FormatFloat(*cfg.General.DefaultRent, 'f', -1, 64)
	}
	return v
}

// NewSetupForm builds the configuration form. Each theme option is a
// preview of itself once chosen.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOpts[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to prorate").
				Description("Set calculator defaults. Run `prorate setup` anytime to change them."),
			huh.NewInput().
				Title("Default lease term (months)").
				Value(&v.LeaseMonths).
				Validate(validateLeaseMonths),
			huh.NewInput().
				Title("Default base monthly rent").
				Description("Leave blank to always ask").
				Value(&v.Rent).
				Validate(validateRent),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewSelect[string]().
				Title("Default export format").
				Options(huh.NewOptions(report.Formats()...)...).
				Value(&v.Format),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("API listen address").
				Value(&v.Addr),
			huh.NewInput().
				Title("Market").
				Description("City shown in the lead wizard").
				Value(&v.Market),
		),
	).WithTheme(huh.ThemeCharm())
}

func validateLeaseMonths(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 || n > maxLeaseMonths {
		return fmt.Errorf("enter a lease term between 1 and %d months", maxLeaseMonths)
	}
	return nil
}

func validateRent(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, _, err := parseLeaseInputs(s, "1"); err != nil {
		return errors.New("enter a positive dollar amount")
	}
	return nil
}

// Apply copies the answers onto cfg. Values are assumed validated.
func (v *SetupValues) Apply(cfg *config.Config) {
	if n, err := strconv.Atoi(strings.TrimSpace(v.LeaseMonths)); err == nil && n > 0 {
		cfg.General.DefaultLeaseMonths = n
	}
	cfg.General.DefaultRent = nil
	if strings.TrimSpace(v.Rent) != "" {
		if rent, _, err := parseLeaseInputs(v.Rent, "1"); err == nil {
			cfg.General.DefaultRent = &rent
		}
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	}
	if v.Format != "" {
		cfg.Export.DefaultFormat = v.Format
	}
	if addr := strings.TrimSpace(v.Addr); addr != "" {
		cfg.Server.Addr = addr
	}
	cfg.Lead.Market = strings.TrimSpace(v.Market)
}
