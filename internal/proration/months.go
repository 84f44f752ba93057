package proration

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrBadMonthList is returned by ParseMonths for malformed input.
var ErrBadMonthList = errors.New("invalid month list")

// MonthSet is a set of 1-based lease months.
type MonthSet map[int]struct{}

// NewMonthSet builds a set from the given months. Duplicates collapse.
func NewMonthSet(months ...int) MonthSet {
	s := make(MonthSet, len(months))
	for _, m := range months {
		s[m] = struct{}{}
	}
	return s
}

// Contains reports whether m is in the set.
func (s MonthSet) Contains(m int) bool {
	_, ok := s[m]
	return ok
}

// Toggle adds m if absent, removes it otherwise.
func (s MonthSet) Toggle(m int) {
	if s.Contains(m) {
		delete(s, m)
		return
	}
	s[m] = struct{}{}
}

// Sorted returns the months in ascending order.
func (s MonthSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}

// Within returns the subset of months in [1, term].
func (s MonthSet) Within(term int) MonthSet {
	out := make(MonthSet, len(s))
	for m := range s {
		if m >= 1 && m <= term {
			out[m] = struct{}{}
		}
	}
	return out
}

// String renders the set as a compact list, e.g. "1-2,11".
func (s MonthSet) String() string {
	months := s.Sorted()
	if len(months) == 0 {
		return ""
	}

	var parts []string
	start, prev := months[0], months[0]
	flush := func() {
		if start == prev {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for _, m := range months[1:] {
		if m == prev+1 {
			prev = m
			continue
		}
		flush()
		start, prev = m, m
	}
	flush()
	return strings.Join(parts, ",")
}

// ParseMonths parses a comma-separated list of months and ranges
// such as "1,2" or "1-2, 11-12". An empty string yields an empty set.
func ParseMonths(s string) (MonthSet, error) {
	set := MonthSet{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(field, "-")
		if !isRange {
			m, err := parseMonth(field)
			if err != nil {
				return nil, err
			}
			set[m] = struct{}{}
			continue
		}

		from, err := parseMonth(lo)
		if err != nil {
			return nil, err
		}
		to, err := parseMonth(hi)
		if err != nil {
			return nil, err
		}
		if to < from {
			return nil, fmt.Errorf("%w: range %q runs backwards", ErrBadMonthList, field)
		}
		for m := from; m <= to; m++ {
			set[m] = struct{}{}
		}
	}
	return set, nil
}

func parseMonth(s string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a month number", ErrBadMonthList, s)
	}
	if m < 1 {
		return 0, fmt.Errorf("%w: month %d must be at least 1", ErrBadMonthList, m)
	}
	if m > MaxLeaseMonths {
		return 0, fmt.Errorf("%w: month %d is past %d", ErrBadMonthList, m, MaxLeaseMonths)
	}
	return m, nil
}
