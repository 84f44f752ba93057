package proration

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func monthDeltas(p Plan) []float64 {
	var out []float64
	for _, e := range p.Ledger {
		if e.Month == 0 {
			continue
		}
		out = append(out, e.Delta)
	}
	return out
}

func TestSteadyTarget(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want float64
	}{
		{"two free of twelve", Params{12, 2000, NewMonthSet(1, 2)}, 1667},
		{"no free months", Params{12, 2000, NewMonthSet()}, 2000},
		{"all free", Params{3, 1500, NewMonthSet(1, 2, 3)}, 0},
		{"zero term", Params{0, 2000, NewMonthSet(1)}, 0},
		{"zero rent", Params{12, 0, NewMonthSet(1)}, 0},
		{"half rounds away from zero", Params{2, 1001, NewMonthSet(1)}, 501},
		{"out-of-range months ignored", Params{12, 2000, NewMonthSet(1, 2, 13, 40)}, 1667},
		{"fourteen month lease", Params{14, 2350, NewMonthSet(1, 2)}, 2014},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SteadyTarget(tt.p); got != tt.want {
				t.Fatalf("SteadyTarget = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildLedger_FreeMonthsUpFront(t *testing.T) {
	plan := BuildLedger(Params{12, 2000, NewMonthSet(1, 2)})

	if plan.SteadyTarget != 1667 {
		t.Fatalf("SteadyTarget = %v, want 1667", plan.SteadyTarget)
	}
	if plan.Seed != 0 {
		t.Fatalf("Seed = %v, want 0", plan.Seed)
	}
	if len(plan.Ledger) != 12 {
		t.Fatalf("len(Ledger) = %d, want 12", len(plan.Ledger))
	}
	for i, e := range plan.Ledger {
		month := i + 1
		if e.Month != month {
			t.Fatalf("entry %d Month = %d, want %d", i, e.Month, month)
		}
		wantDelta := -333.0
		if month <= 2 {
			wantDelta = 1667
		}
		if e.Delta != wantDelta {
			t.Errorf("month %d Delta = %v, want %v", month, e.Delta, wantDelta)
		}
	}
	if plan.Ledger[1].Balance != 3334 {
		t.Errorf("balance after month 2 = %v, want 3334", plan.Ledger[1].Balance)
	}
	if got := plan.FinalBalance(); got != 4 {
		t.Errorf("FinalBalance = %v, want 4 (rounding residual)", got)
	}
}

func TestBuildLedger_FreeMonthsLate(t *testing.T) {
	plan := BuildLedger(Params{12, 2000, NewMonthSet(11, 12)})

	if plan.Seed != 3330 {
		t.Fatalf("Seed = %v, want 3330", plan.Seed)
	}
	if len(plan.Ledger) != 13 {
		t.Fatalf("len(Ledger) = %d, want 13", len(plan.Ledger))
	}

	seedRow := plan.Ledger[0]
	if seedRow.Month != 0 || seedRow.Delta != 3330 || seedRow.Balance != 3330 || seedRow.IsFree || seedRow.RentDue != 0 {
		t.Fatalf("seed row = %+v", seedRow)
	}
	if got := plan.Ledger[10].Balance; got != 0 {
		t.Errorf("balance after month 10 = %v, want 0", got)
	}
	if got := plan.FinalBalance(); got != 3334 {
		t.Errorf("FinalBalance = %v, want 3334", got)
	}
}

func TestBuildLedger_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"zero term", Params{0, 2000, NewMonthSet(1)}},
		{"negative term", Params{-3, 2000, NewMonthSet(1)}},
		{"zero rent", Params{12, 0, NewMonthSet(1)}},
		{"negative rent", Params{12, -5, NewMonthSet(1)}},
		{"no free months", Params{12, 2000, NewMonthSet()}},
		{"nil free months", Params{12, 2000, nil}},
		{"only out-of-range free months", Params{6, 2000, NewMonthSet(7, 9)}},
		{"NaN rent", Params{12, math.NaN(), NewMonthSet(1)}},
		{"infinite rent", Params{12, math.Inf(1), NewMonthSet(1)}},
		{"negative infinite rent", Params{12, math.Inf(-1), NewMonthSet(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildLedger(tt.p)
			if !plan.Empty() {
				t.Fatalf("Ledger = %v, want empty", plan.Ledger)
			}
			if plan.Ledger == nil {
				t.Fatal("Ledger is nil, want empty slice")
			}
			if plan.Seed != 0 {
				t.Fatalf("Seed = %v, want 0", plan.Seed)
			}
			if got := SteadyTarget(tt.p); math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("SteadyTarget = %v, want finite", got)
			}
		})
	}
}

func TestBuildLedger_NoFreeMonthsReportsBaseRent(t *testing.T) {
	plan := BuildLedger(Params{12, 2000, NewMonthSet()})
	if plan.SteadyTarget != 2000 {
		t.Fatalf("SteadyTarget = %v, want 2000", plan.SteadyTarget)
	}
	for _, e := range plan.Ledger {
		if e.Delta != 0 || e.Balance != 0 {
			t.Fatalf("unexpected non-zero entry %+v", e)
		}
	}
}

func TestBuildLedger_AllFree(t *testing.T) {
	plan := BuildLedger(Params{4, 1800, NewMonthSet(1, 2, 3, 4)})
	if plan.SteadyTarget != 0 || plan.Seed != 0 {
		t.Fatalf("target=%v seed=%v, want 0/0", plan.SteadyTarget, plan.Seed)
	}
	if len(plan.Ledger) != 4 {
		t.Fatalf("len(Ledger) = %d, want 4", len(plan.Ledger))
	}
	for _, e := range plan.Ledger {
		if !e.IsFree || e.RentDue != 0 || e.Delta != 0 || e.Balance != 0 {
			t.Fatalf("unexpected entry %+v", e)
		}
	}
}

var propertyCases = []Params{
	{12, 2000, NewMonthSet(1, 2)},
	{12, 2000, NewMonthSet(11, 12)},
	{12, 2000, NewMonthSet(6)},
	{14, 2350, NewMonthSet(1, 2)},
	{14, 2350, NewMonthSet(7, 14)},
	{13, 1875, NewMonthSet(3, 9, 13)},
	{18, 3199, NewMonthSet(18)},
	{24, 2725.5, NewMonthSet(12, 13, 24)},
	{1, 900, NewMonthSet(1)},
	{6, 1450, NewMonthSet(2, 4, 6)},
	{36, 4100, NewMonthSet(30, 31, 32, 33)},
}

func TestBuildLedger_BalanceNeverNegative(t *testing.T) {
	for _, p := range propertyCases {
		plan := BuildLedger(p)
		for _, e := range plan.Ledger {
			if e.Balance < 0 {
				t.Errorf("%+v: month %d balance %v < 0", p, e.Month, e.Balance)
			}
		}
	}
}

func TestBuildLedger_SeedIsMinimal(t *testing.T) {
	for _, p := range propertyCases {
		plan := BuildLedger(p)
		if plan.Seed <= 0 {
			continue
		}
		balance := plan.Seed - 1
		dipped := false
		for _, d := range monthDeltas(plan) {
			balance += d
			if balance < 0 {
				dipped = true
				break
			}
		}
		if !dipped {
			t.Errorf("%+v: seed %v is not minimal", p, plan.Seed)
		}
	}
}

func TestBuildLedger_BalanceIsSeedPlusDeltas(t *testing.T) {
	for _, p := range propertyCases {
		plan := BuildLedger(p)
		running := plan.Seed
		for _, e := range plan.Ledger {
			if e.Month == 0 {
				continue
			}
			running += e.Delta
			if diff := running - e.Balance; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("%+v: month %d balance %v, want %v", p, e.Month, e.Balance, running)
			}
		}
	}
}

func TestBuildLedger_Length(t *testing.T) {
	for _, p := range propertyCases {
		plan := BuildLedger(p)
		want := p.LeaseTermMonths
		if plan.Seed > 0 {
			want++
		}
		if len(plan.Ledger) != want {
			t.Errorf("%+v: len(Ledger) = %d, want %d", p, len(plan.Ledger), want)
		}
	}
}

func TestBuildLedger_RentDueTotal(t *testing.T) {
	for _, p := range propertyCases {
		plan := BuildLedger(p)
		want := p.BaseMonthlyRent * float64(plan.PaidMonths())
		if got := plan.TotalRentDue(); got != want {
			t.Errorf("%+v: TotalRentDue = %v, want %v", p, got, want)
		}
	}
}

func TestBuildLedger_Idempotent(t *testing.T) {
	for _, p := range propertyCases {
		a, b := BuildLedger(p), BuildLedger(p)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%+v: results differ between calls", p)
		}
	}
}

func TestBuildLedger_SelectionOrderIrrelevant(t *testing.T) {
	a := BuildLedger(Params{12, 2000, NewMonthSet(11, 3, 7)})
	b := BuildLedger(Params{12, 2000, NewMonthSet(7, 11, 3, 3)})
	if !reflect.DeepEqual(a.Ledger, b.Ledger) || a.Seed != b.Seed {
		t.Fatal("free-month order changed the ledger")
	}
}

func TestBuildLedger_RoundingDriftWithinTerm(t *testing.T) {
	for _, p := range propertyCases {
		plan := BuildLedger(p)
		if plan.Empty() {
			continue
		}
		drift := plan.FinalBalance() - plan.Seed
		if drift < 0 {
			drift = -drift
		}
		if drift > float64(p.LeaseTermMonths) {
			t.Errorf("%+v: drift %v exceeds lease term", p, drift)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"ok", Params{12, 2000, NewMonthSet(1)}, nil},
		{"term", Params{0, 2000, nil}, ErrInvalidLeaseTerm},
		{"rent", Params{12, 0, nil}, ErrInvalidRent},
		{"NaN rent", Params{12, math.NaN(), nil}, ErrInvalidRent},
		{"infinite rent", Params{12, math.Inf(1), nil}, ErrInvalidRent},
		{"term past max", Params{MaxLeaseMonths + 1, 2000, nil}, ErrLeaseTooLong},
		{"term at max", Params{MaxLeaseMonths, 2000, NewMonthSet(MaxLeaseMonths)}, nil},
		{"month past term", Params{12, 2000, NewMonthSet(13)}, ErrFreeMonthOutOfRange},
		{"month zero", Params{12, 2000, NewMonthSet(0)}, ErrFreeMonthOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
