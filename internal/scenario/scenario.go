// Package scenario loads named lease scenarios from YAML for batch planning.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aptscout/prorate/internal/proration"

	"gopkg.in/yaml.v3"
)

var ErrNoScenarios = errors.New("scenario file defines no scenarios")

// Scenario is one lease to plan.
type Scenario struct {
	Name        string  `yaml:"name"`
	LeaseMonths int     `yaml:"lease_months"`
	BaseRent    float64 `yaml:"base_rent"`
	FreeMonths  []int   `yaml:"free_months"`
}

// File is the top-level document.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Params converts the scenario to engine input.
func (s Scenario) Params() proration.Params {
	return proration.Params{
		LeaseTermMonths: s.LeaseMonths,
		BaseMonthlyRent: s.BaseRent,
		FreeMonths:      proration.NewMonthSet(s.FreeMonths...),
	}
}

// Result pairs a scenario with its computed plan.
type Result struct {
	Scenario Scenario
	Plan     proration.Plan
}

// Load reads and validates a scenario file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading scenarios: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario YAML. Every scenario must have a
// name; term, rent and free months are checked the way the calculator
// checks typed input.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing scenarios: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return File{}, ErrNoScenarios
	}

	seen := make(map[string]bool, len(f.Scenarios))
	for i, s := range f.Scenarios {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return File{}, fmt.Errorf("scenario %d: missing name", i+1)
		}
		if seen[name] {
			return File{}, fmt.Errorf("scenario %q: duplicate name", name)
		}
		seen[name] = true
		if err := s.Params().Validate(); err != nil {
			return File{}, fmt.Errorf("scenario %q: %w", name, err)
		}
	}
	return f, nil
}

// Run plans every scenario in file order.
func Run(f File) []Result {
	results := make([]Result, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		results = append(results, Result{Scenario: s, Plan: proration.BuildLedger(s.Params())})
	}
	return results
}
