package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

func init() {
	Register("json", "application/json", false, writeJSON)
	Register("yaml", "application/yaml", false, writeYAML)
	Register("csv", "text/csv", false, writeCSV)
}

func writeJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(r))
}

func writeYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(r)); err != nil {
		return err
	}
	return enc.Close()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"month", "is_free", "rent_due", "steady_target", "delta", "balance"}); err != nil {
		return err
	}
	for _, e := range r.Plan.Ledger {
		target := money(r.Plan.SteadyTarget)
		if e.Month == 0 {
			target = ""
		}
		rec := []string{
			strconv.Itoa(e.Month),
			strconv.FormatBool(e.IsFree),
			money(e.RentDue),
			target,
			money(e.Delta),
			money(e.Balance),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
