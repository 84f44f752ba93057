// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aptscout/prorate/internal/proration"

	"github.com/dustin/go-humanize"
)

// FormatMoney formats a dollar amount rounded to whole dollars, half away
// from zero. e.g., 1666.5 -> "$1,667", -333 -> "-$333"
func FormatMoney(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + FormatNumber(-n)
	}
	return "$" + FormatNumber(n)
}

// FormatSignedMoney always carries a sign. e.g., 1667 -> "+$1,667"
func FormatSignedMoney(v float64) string {
	if math.Round(v) < 0 {
		return FormatMoney(v)
	}
	return "+" + FormatMoney(v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatMonths pluralizes a month count. e.g., 1 -> "1 month"
func FormatMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}

// FormatAction describes a ledger delta the way the budget plan reads:
// money set aside on free months, money drawn on full-rent months.
func FormatAction(e proration.LedgerEntry) string {
	switch {
	case e.Month == 0:
		return "Deposit " + FormatMoney(e.Delta)
	case e.IsFree:
		return "+ Save " + FormatMoney(e.Delta)
	default:
		return "- Use " + FormatMoney(math.Abs(e.Delta))
	}
}

// LedgerRows turns a plan into table rows:
// Month, Rent Due, Prorated, Save / Use, Balance.
func LedgerRows(p proration.Plan) [][]string {
	rows := make([][]string, 0, len(p.Ledger)+1)
	for _, e := range p.Ledger {
		month := strconv.Itoa(e.Month)
		target := FormatMoney(p.SteadyTarget)
		if e.Month == 0 {
			month = "Start"
			target = "-"
		}
		rows = append(rows, []string{
			month,
			FormatMoney(e.RentDue),
			target,
			FormatAction(e),
			FormatMoney(e.Balance),
		})
	}
	return rows
}

// LedgerHeaders are the column titles matching LedgerRows.
var LedgerHeaders = []string{"Month", "Rent Due", "Prorated", "Save / Use", "Balance"}
