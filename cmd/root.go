package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aptscout/prorate/internal/config"
	"github.com/aptscout/prorate/internal/proration"

	"github.com/spf13/cobra"
)

var (
	flagLease int
	flagRent  string
	flagFree  string
	flagQuiet bool
)

var errRentRequired = errors.New("--rent is required (or set a default with `prorate setup`)")

var rootCmd = &cobra.Command{
	Use:   "prorate",
	Short: "Self-proration budget calculator",
	Long: "Plan a steady monthly rent budget across a lease with free months:\n" +
		"how much to set aside each month, and how much to start with.",
	RunE:         runPlan,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagLease, "lease", "l", 0, "Lease term in months (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagRent, "rent", "r", "", "Base monthly rent, e.g. 2350 or $2,350")
	rootCmd.PersistentFlags().StringVarP(&flagFree, "free", "f", "", "Free months, e.g. 1,2 or 11-12")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig reads the config file, falling back to defaults with a warning.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
	}
	return cfg
}

// leaseParams resolves the plan inputs from flags, then config.
// Malformed values are errors; non-positive ones pass through so the
// engine can report an empty plan. When only the rent is missing the
// returned params are still filled in alongside errRentRequired.
func leaseParams(cfg config.Config) (proration.Params, error) {
	term := flagLease
	if term == 0 {
		term = cfg.General.DefaultLeaseMonths
	}
	if term > proration.MaxLeaseMonths {
		return proration.Params{}, fmt.Errorf("--lease: %w", proration.ErrLeaseTooLong)
	}

	free, err := proration.ParseMonths(flagFree)
	if err != nil {
		return proration.Params{}, fmt.Errorf("--free: %w", err)
	}

	params := proration.Params{LeaseTermMonths: term, FreeMonths: free}
	switch {
	case strings.TrimSpace(flagRent) != "":
		rent, err := parseRent(flagRent)
		if err != nil {
			return proration.Params{}, err
		}
		params.BaseMonthlyRent = rent
	case cfg.General.DefaultRent != nil:
		params.BaseMonthlyRent = *cfg.General.DefaultRent
	default:
		return params, errRentRequired
	}
	return params, nil
}

// parseRent accepts plain numbers and dollar-formatted amounts.
func parseRent(s string) (float64, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("--rent: %q is not a dollar amount", s)
	}
	return v, nil
}
