package cmd

import (
	"fmt"
	"strings"

	"github.com/aptscout/prorate/internal/cli"
	"github.com/aptscout/prorate/internal/scenario"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <scenarios.yaml>",
	Short: "Compare budget plans for several leases",
	Long: "Plan every lease in a YAML scenario file:\n\n" +
		"  scenarios:\n" +
		"    - name: year with last two free\n" +
		"      lease_months: 12\n" +
		"      base_rent: 2000\n" +
		"      free_months: [11, 12]",
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	f, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	results := scenario.Run(f)

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		p := res.Plan
		free := p.Params.FreeMonths.Within(res.Scenario.LeaseMonths).String()
		if free == "" {
			free = "none"
		}
		row := []string{
			res.Scenario.Name,
			cli.FormatMonths(res.Scenario.LeaseMonths),
			cli.FormatMoney(res.Scenario.BaseRent),
			free,
		}
		if p.Empty() {
			row = append(row, "-", "-", "-")
		} else {
			row = append(row,
				cli.FormatMoney(p.SteadyTarget),
				cli.FormatMoney(p.Seed),
				cli.FormatMoney(p.FinalBalance()),
			)
		}
		rows = append(rows, row)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIOS  %d leases", len(results))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Lease", "Rent", "Free", "Monthly", "Start With", "Left Over"},
		Rows:    rows,
	}))

	if !flagQuiet {
		var names []string
		for _, res := range results {
			if res.Plan.Empty() {
				names = append(names, res.Scenario.Name)
			}
		}
		if len(names) > 0 {
			fmt.Printf("\n  No free months, no plan: %s\n", strings.Join(names, ", "))
		}
	}
	fmt.Println()
	return nil
}
