// Package cmd implements the prorate CLI commands.
package cmd

import (
	"fmt"

	"github.com/aptscout/prorate/internal/cli"
	"github.com/aptscout/prorate/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default lease:  %s\n", cli.FormatMonths(cfg.General.DefaultLeaseMonths))
	if cfg.General.DefaultRent != nil {
		fmt.Printf("    Default rent:   %s\n", cli.FormatMoney(*cfg.General.DefaultRent))
	} else {
		fmt.Println("    Default rent:   not set")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", config.GetTheme(cfg))
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:          %s\n", config.GetServerAddr(cfg))
	fmt.Printf("    Shutdown timeout: %ds\n", cfg.Server.ShutdownTimeout)
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Default format: %s\n", cfg.Export.DefaultFormat)
	if cfg.Export.Dir != "" {
		fmt.Printf("    Directory:      %s\n", cfg.Export.Dir)
	}
	fmt.Println()

	fmt.Println("  [Lead]")
	if cfg.Lead.Market != "" {
		fmt.Printf("    Market: %s\n", cfg.Lead.Market)
	} else {
		fmt.Println("    Market: not set")
	}
	fmt.Println()

	fmt.Println("  Run `prorate setup` to reconfigure.")
	return nil
}
