package lead

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Budget slider bounds.
const (
	MinBudget  = 1400
	MaxBudget  = 2400
	BudgetStep = 100
)

// ErrBadBudget is returned when a budget string carries no digits.
var ErrBadBudget = errors.New("budget must contain a number")

// BudgetRange is an inclusive monthly budget window.
type BudgetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ParseBudget reads the first amount in s, so "$2,350" parses as 2350 and
// a range label such as "1,400-2,400" as its lower bound 1400.
func ParseBudget(s string) (int, error) {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadBudget, s)
	}
	var digits strings.Builder
	for _, r := range s[start:] {
		if isDigit(r) {
			digits.WriteRune(r)
		} else if r != ',' {
			break
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadBudget, s)
	}
	return n, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// ClampBudgetRange orders the bounds and clamps them to the slider limits.
func ClampBudgetRange(lo, hi int) BudgetRange {
	return BudgetRange{
		Min: max(MinBudget, min(lo, hi)),
		Max: min(MaxBudget, max(lo, hi)),
	}
}

// SnapBudget rounds n to the nearest slider step inside the limits.
func SnapBudget(n int) int {
	snapped := (n + BudgetStep/2) / BudgetStep * BudgetStep
	return max(MinBudget, min(MaxBudget, snapped))
}

// FormatBudgetRange renders a range as "1,400-2,400".
func FormatBudgetRange(r BudgetRange) string {
	return humanize.Comma(int64(r.Min)) + "-" + humanize.Comma(int64(r.Max))
}

// FormatBudget renders a preset as "$2,300".
func FormatBudget(n int) string {
	return "$" + humanize.Comma(int64(n))
}
