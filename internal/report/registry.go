// Package report writes budget plans to files: JSON, YAML, CSV, XLSX and PDF.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/aptscout/prorate/internal/proration"
)

// Report is a plan plus the metadata printed alongside it.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Plan        proration.Plan
}

// New wraps a plan with a default title.
func New(plan proration.Plan, now time.Time) Report {
	return Report{
		Title:       "Proration Budget Plan",
		GeneratedAt: now,
		Plan:        plan,
	}
}

// WriterFunc renders a report in one format.
type WriterFunc func(w io.Writer, r Report) error

type format struct {
	write       WriterFunc
	contentType string
	binary      bool
}

var formats = map[string]format{}

// Register adds a format. Writer files call this from init; last wins.
func Register(name, contentType string, binary bool, fn WriterFunc) {
	formats[name] = format{write: fn, contentType: contentType, binary: binary}
}

// Write renders r in the named format.
func Write(name string, w io.Writer, r Report) error {
	f, ok := formats[name]
	if !ok {
		return fmt.Errorf("unknown export format %q (have %v)", name, Formats())
	}
	return f.write(w, r)
}

// Formats lists registered format names in order.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ContentType returns the MIME type for a format, or "" if unknown.
func ContentType(name string) string {
	return formats[name].contentType
}

// IsBinary reports whether a format should not be written to a terminal.
func IsBinary(name string) bool {
	return formats[name].binary
}

// document is the shape shared by the structured text formats.
type document struct {
	Title        string                  `json:"title" yaml:"title"`
	GeneratedAt  string                  `json:"generated_at" yaml:"generated_at"`
	LeaseMonths  int                     `json:"lease_months" yaml:"lease_months"`
	BaseRent     float64                 `json:"base_rent" yaml:"base_rent"`
	FreeMonths   []int                   `json:"free_months" yaml:"free_months"`
	SteadyTarget float64                 `json:"steady_target" yaml:"steady_target"`
	Seed         float64                 `json:"seed" yaml:"seed"`
	FinalBalance float64                 `json:"final_balance" yaml:"final_balance"`
	Ledger       []proration.LedgerEntry `json:"ledger" yaml:"ledger"`
}

func newDocument(r Report) document {
	p := r.Plan
	return document{
		Title:        r.Title,
		GeneratedAt:  r.GeneratedAt.UTC().Format(time.RFC3339),
		LeaseMonths:  p.Params.LeaseTermMonths,
		BaseRent:     p.Params.BaseMonthlyRent,
		FreeMonths:   p.Params.FreeMonths.Within(p.Params.LeaseTermMonths).Sorted(),
		SteadyTarget: p.SteadyTarget,
		Seed:         p.Seed,
		FinalBalance: p.FinalBalance(),
		Ledger:       p.Ledger,
	}
}
