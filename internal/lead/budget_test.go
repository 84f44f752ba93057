package lead

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2350", 2350},
		{"$2,350", 2350},
		{" 1800/mo", 1800},
		{"1,400-2,400", 1400},
		{"$1,400 - $2,400", 1400},
		{"about 2,000 or 2,100", 2000},
	}
	for _, tt := range tests {
		got, err := ParseBudget(tt.in)
		if err != nil {
			t.Fatalf("ParseBudget(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseBudget(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if _, err := ParseBudget("call me"); !errors.Is(err, ErrBadBudget) {
		t.Fatalf("ParseBudget without digits error = %v, want ErrBadBudget", err)
	}
}

func TestClampBudgetRange(t *testing.T) {
	tests := []struct {
		lo, hi int
		want   BudgetRange
	}{
		{1600, 2000, BudgetRange{1600, 2000}},
		{2000, 1600, BudgetRange{1600, 2000}},
		{900, 5000, BudgetRange{1400, 2400}},
	}
	for _, tt := range tests {
		if got := ClampBudgetRange(tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampBudgetRange(%d, %d) = %+v, want %+v", tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestSnapBudget(t *testing.T) {
	for in, want := range map[int]int{1449: 1400, 1450: 1500, 999: 1400, 9000: 2400} {
		if got := SnapBudget(in); got != want {
			t.Errorf("SnapBudget(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFormatBudget(t *testing.T) {
	if got := FormatBudgetRange(BudgetRange{1400, 2400}); got != "1,400-2,400" {
		t.Errorf("FormatBudgetRange = %q", got)
	}
	if got := FormatBudget(2300); got != "$2,300" {
		t.Errorf("FormatBudget = %q", got)
	}
}

func TestParseMoveIn(t *testing.T) {
	r, err := ParseMoveIn("2026-11-01|2026-11-30")
	if err != nil {
		t.Fatalf("ParseMoveIn: %v", err)
	}
	if got := r.String(); got != "11/01/2026 - 11/30/2026" {
		t.Errorf("String() = %q", got)
	}

	single, err := ParseMoveIn("12/15/2026")
	if err != nil {
		t.Fatalf("ParseMoveIn single: %v", err)
	}
	if got := single.String(); got != "12/15/2026" {
		t.Errorf("String() = %q", got)
	}

	for _, bad := range []string{"", "soon", "2026-11-30|2026-11-01", "2026-11-01|later"} {
		if _, err := ParseMoveIn(bad); !errors.Is(err, ErrBadMoveInDate) {
			t.Errorf("ParseMoveIn(%q) error = %v, want ErrBadMoveInDate", bad, err)
		}
	}
}

func TestMoveInCheck(t *testing.T) {
	now := time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		r    MoveInRange
		want error
	}{
		{"today", MoveInRange{From: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)}, nil},
		{"range inside", MoveInRange{From: now.AddDate(0, 1, 0), To: now.AddDate(0, 2, 0)}, nil},
		{"yesterday", MoveInRange{From: now.AddDate(0, 0, -1)}, ErrMoveInOutOfWindow},
		{"end too far", MoveInRange{From: now.AddDate(0, 1, 0), To: now.AddDate(1, 1, 0)}, ErrMoveInOutOfWindow},
		{"unset", MoveInRange{}, ErrBadMoveInDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.r.Check(now); !errors.Is(err, tt.want) {
				t.Fatalf("Check() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMoveInCheck_TodayBehindUTC(t *testing.T) {
	atlanta := time.FixedZone("EDT", -4*60*60)
	now := time.Date(2026, 10, 19, 21, 30, 0, 0, atlanta)

	r, err := ParseMoveIn("2026-10-19")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Check(now); err != nil {
		t.Fatalf("today's date rejected in a zone behind UTC: %v", err)
	}

	r, err = ParseMoveIn("10/18/2026")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Check(now); !errors.Is(err, ErrMoveInOutOfWindow) {
		t.Fatalf("yesterday: Check() = %v, want ErrMoveInOutOfWindow", err)
	}
}

func TestMoveInJSON(t *testing.T) {
	r, _ := ParseMoveIn("2026-11-01|2026-11-30")
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["2026-11-01","2026-11-30"]` {
		t.Fatalf("MarshalJSON = %s", data)
	}

	var back MoveInRange
	if err := json.Unmarshal([]byte(`["2026-12-01",""]`), &back); err != nil {
		t.Fatal(err)
	}
	if back.String() != "12/01/2026" {
		t.Fatalf("UnmarshalJSON single = %q", back.String())
	}
}
