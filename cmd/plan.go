package cmd

import (
	"fmt"

	"github.com/aptscout/prorate/internal/cli"
	"github.com/aptscout/prorate/internal/proration"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the monthly budget plan for a lease",
	Example: "  prorate plan --lease 12 --rent 2000 --free 11,12\n" +
		"  prorate -l 14 -r '$2,350' -f 1-2",
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	params, err := leaseParams(loadConfig())
	if err != nil {
		return err
	}

	plan := proration.BuildLedger(params)
	if plan.Empty() {
		fmt.Println("\n  No plan to show.")
		if params.LeaseTermMonths > 0 && params.BaseMonthlyRent > 0 {
			fmt.Println("  Pick at least one free month inside the lease with --free.")
		} else {
			fmt.Println("  Lease term and rent must both be positive.")
		}
		return nil
	}

	printPlan(plan)
	return nil
}

func printPlan(plan proration.Plan) {
	p := plan.Params

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET PLAN  %s at %s",
		cli.FormatMonths(p.LeaseTermMonths), cli.FormatMoney(p.BaseMonthlyRent))))
	fmt.Println()

	fmt.Print(cli.RenderKeyValue("Set aside each month", cli.FormatMoney(plan.SteadyTarget)))
	fmt.Print(cli.RenderKeyValue("Start with", cli.FormatMoney(plan.Seed)))
	fmt.Print(cli.RenderKeyValue("Left at lease end", cli.FormatMoney(plan.FinalBalance())))
	fmt.Print(cli.RenderKeyValue("Rent owed over lease", cli.FormatMoney(plan.TotalRentDue())))
	fmt.Print(cli.RenderKeyValue("Free months", fmt.Sprintf("%s (%s of the lease, %d paid)",
		p.FreeMonths.Within(p.LeaseTermMonths), cli.FormatPercent(float64(plan.FreeCount())/float64(p.LeaseTermMonths)),
		plan.PaidMonths())))
	fmt.Println()

	fmt.Print(cli.RenderMonthStrip(p.LeaseTermMonths, p.FreeMonths.Contains))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Ledger  %s free", cli.FormatMonths(plan.FreeCount())),
		Headers:   cli.LedgerHeaders,
		Rows:      cli.LedgerRows(plan),
		CellStyle: cli.LedgerCellStyle,
	}))

	balances := make([]float64, len(plan.Ledger))
	for i, e := range plan.Ledger {
		balances[i] = e.Balance
	}
	fmt.Println()
	fmt.Printf("  Balance  %s\n", cli.RenderSparkline(balances))
	fmt.Println()
}
