package lead

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// MoveInWindow is how far ahead a move-in date may be.
const MoveInWindow = 365 * 24 * time.Hour

var (
	ErrBadMoveInDate     = errors.New("invalid move-in date")
	ErrMoveInOutOfWindow = errors.New("move-in date outside the next 365 days")
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "01/02/2006"}

// MoveInRange is the window a renter could move in. To is zero for a
// single date.
type MoveInRange struct {
	From time.Time
	To   time.Time
}

// ParseMoveIn parses "from" or "from|to". Each date may be ISO
// (2006-01-02), RFC 3339, or US (01/02/2006).
func ParseMoveIn(s string) (MoveInRange, error) {
	from, to, hasTo := strings.Cut(strings.TrimSpace(s), "|")

	var r MoveInRange
	var err error
	if r.From, err = parseDate(from); err != nil {
		return MoveInRange{}, err
	}
	if hasTo && strings.TrimSpace(to) != "" {
		if r.To, err = parseDate(to); err != nil {
			return MoveInRange{}, err
		}
		if r.To.Before(r.From) {
			return MoveInRange{}, fmt.Errorf("%w: %s ends before it starts", ErrBadMoveInDate, s)
		}
	}
	return r, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadMoveInDate, s)
}

// IsZero reports whether no date was chosen.
func (r MoveInRange) IsZero() bool {
	return r.From.IsZero()
}

// Check verifies that both ends fall between today and 365 days out.
// Dates compare by calendar day, so a date parsed as UTC is still "today"
// in a zone behind UTC.
func (r MoveInRange) Check(now time.Time) error {
	if r.IsZero() {
		return fmt.Errorf("%w: no date chosen", ErrBadMoveInDate)
	}
	today := calendarDay(now)
	latest := today.Add(MoveInWindow)

	for _, d := range []time.Time{r.From, r.To} {
		if d.IsZero() {
			continue
		}
		day := calendarDay(d)
		if day.Before(today) || day.After(latest) {
			return fmt.Errorf("%w: %s", ErrMoveInOutOfWindow, d.Format("2006-01-02"))
		}
	}
	return nil
}

// calendarDay keeps only the date of t, as UTC midnight.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// String renders "MM/DD/YYYY" or "MM/DD/YYYY - MM/DD/YYYY".
func (r MoveInRange) String() string {
	if r.IsZero() {
		return ""
	}
	if r.To.IsZero() {
		return r.From.Format("01/02/2006")
	}
	return r.From.Format("01/02/2006") + " - " + r.To.Format("01/02/2006")
}

// MarshalJSON encodes the range as [start, end] ISO dates.
func (r MoveInRange) MarshalJSON() ([]byte, error) {
	pair := [2]string{}
	if !r.From.IsZero() {
		pair[0] = r.From.Format("2006-01-02")
	}
	if !r.To.IsZero() {
		pair[1] = r.To.Format("2006-01-02")
	}
	return json.Marshal(pair)
}

// UnmarshalJSON accepts the [start, end] pair written by MarshalJSON.
func (r *MoveInRange) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: %v", ErrBadMoveInDate, err)
	}
	*r = MoveInRange{}
	if len(pair) == 0 || pair[0] == "" {
		return nil
	}
	s := pair[0]
	if len(pair) > 1 && pair[1] != "" {
		s += "|" + pair[1]
	}
	parsed, err := ParseMoveIn(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
