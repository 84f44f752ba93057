package report

import (
	"fmt"
	"io"
	"time"

	"github.com/aptscout/prorate/internal/cli"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

func init() {
	Register("xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", true, writeXLSX)
	Register("pdf", "application/pdf", true, writePDF)
}

type summaryLine struct {
	label string
	value interface{}
	text  string
}

func summaryLines(r Report) []summaryLine {
	p := r.Plan
	return []summaryLine{
		{"Lease Term (months)", p.Params.LeaseTermMonths, fmt.Sprintf("%d", p.Params.LeaseTermMonths)},
		{"Base Monthly Rent", p.Params.BaseMonthlyRent, cli.FormatMoney(p.Params.BaseMonthlyRent)},
		{"Free Months", p.Params.FreeMonths.Within(p.Params.LeaseTermMonths).String(), p.Params.FreeMonths.Within(p.Params.LeaseTermMonths).String()},
		{"Monthly Prorated Rent", p.SteadyTarget, cli.FormatMoney(p.SteadyTarget)},
		{"Initial Savings Required", p.Seed, cli.FormatMoney(p.Seed)},
		{"Ending Balance", p.FinalBalance(), cli.FormatMoney(p.FinalBalance())},
	}
}

// writeXLSX produces a workbook with a summary sheet and a ledger sheet.
func writeXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	summarySheet := "summary"
	ledgerSheet := "ledger"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(ledgerSheet); err != nil {
		return fmt.Errorf("adding ledger sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	dollars, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return err
	}

	_ = f.SetCellValue(summarySheet, "A1", r.Title)
	_ = f.SetCellStyle(summarySheet, "A1", "A1", bold)
	_ = f.SetCellValue(summarySheet, "A2", "Generated")
	_ = f.SetCellValue(summarySheet, "B2", r.GeneratedAt.UTC().Format(time.RFC3339))
	for i, line := range summaryLines(r) {
		row := i + 4
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), line.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), line.value)
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 26)
	_ = f.SetColWidth(summarySheet, "B", "B", 22)

	headers := []string{"Month", "Free", "Rent Due", "Prorated", "Save / Use", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(ledgerSheet, cell, h)
	}
	_ = f.SetCellStyle(ledgerSheet, "A1", "F1", bold)

	for i, e := range r.Plan.Ledger {
		row := i + 2
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", row), e.Month)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", row), e.IsFree)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", row), e.RentDue)
		if e.Month != 0 {
			_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", row), r.Plan.SteadyTarget)
		}
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("E%d", row), e.Delta)
		_ = f.SetCellValue(ledgerSheet, fmt.Sprintf("F%d", row), e.Balance)
	}
	if n := len(r.Plan.Ledger); n > 0 {
		_ = f.SetCellStyle(ledgerSheet, "C2", fmt.Sprintf("F%d", n+1), dollars)
	}
	_ = f.SetColWidth(ledgerSheet, "A", "F", 14)

	return f.Write(w)
}

// writePDF renders a one-page statement of the plan.
func writePDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, r.Title)
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", r.GeneratedAt.UTC().Format(time.RFC3339)))
	pdf.Ln(8)

	for _, line := range summaryLines(r) {
		pdf.CellFormat(60, 6, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, line.text, "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	if r.Plan.Empty() {
		pdf.Cell(0, 6, "No plan to show: choose at least one free month.")
	} else {
		widths := []float64{20, 30, 30, 45, 35}
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(182, 157, 116)
		for i, h := range cli.LedgerHeaders {
			pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 10)
		for _, row := range cli.LedgerRows(r.Plan) {
			for i, cell := range row {
				align := "R"
				if i == 0 {
					align = "C"
				}
				pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	return pdf.Output(w)
}
