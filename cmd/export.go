package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aptscout/prorate/internal/proration"
	"github.com/aptscout/prorate/internal/report"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the budget plan as JSON, YAML, CSV, XLSX or PDF",
	Example: "  prorate export -l 12 -r 2000 -f 11,12 --format csv\n" +
		"  prorate export -l 12 -r 2000 -f 11,12 --format xlsx --out plan.xlsx",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "", "Export format: "+strings.Join(report.Formats(), ", ")+" (default from config)")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	format := strings.ToLower(strings.TrimSpace(flagExportFormat))
	if format == "" {
		format = cfg.Export.DefaultFormat
	}
	if report.ContentType(format) == "" {
		return fmt.Errorf("unknown export format %q (have %v)", format, report.Formats())
	}

	params, err := leaseParams(cfg)
	if err != nil {
		return err
	}
	plan := proration.BuildLedger(params)
	if plan.Empty() && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  No plan to show; writing an empty ledger\n")
	}
	r := report.New(plan, time.Now())

	if flagExportOut == "" {
		if report.IsBinary(format) && isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("%s output is binary; pass --out or redirect stdout", format)
		}
		return writeReport(os.Stdout, format, r)
	}

	path := flagExportOut
	if !filepath.IsAbs(path) && cfg.Export.Dir != "" {
		path = filepath.Join(cfg.Export.Dir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := writeReport(f, format, r); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s plan to %s\n", format, path)
	}
	return nil
}

func writeReport(w io.Writer, format string, r report.Report) error {
	bw := bufio.NewWriter(w)
	if err := report.Write(format, bw, r); err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	return bw.Flush()
}
