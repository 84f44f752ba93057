// Package proration computes self-prorated rent budgets: the steady monthly
// amount a tenant sets aside across a lease with free months, the up-front
// reserve needed so savings never run dry, and the month-by-month ledger.
package proration

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLeaseTerm    = errors.New("lease term must be a positive number of months")
	ErrInvalidRent         = errors.New("base rent must be a positive finite amount")
	ErrLeaseTooLong        = fmt.Errorf("lease term must be at most %d months", MaxLeaseMonths)
	ErrFreeMonthOutOfRange = errors.New("free month outside the lease term")
)

// MaxLeaseMonths bounds the term and month numbers accepted from user input.
// The engine itself does not enforce it.
const MaxLeaseMonths = 600

// Params are the lease inputs to the simulation.
type Params struct {
	LeaseTermMonths int
	BaseMonthlyRent float64
	FreeMonths      MonthSet
}

// Validate reports the first problem with p. The engine itself never
// rejects input; surfaces that want to refuse bad input call this first.
func (p Params) Validate() error {
	if p.LeaseTermMonths <= 0 {
		return ErrInvalidLeaseTerm
	}
	if p.LeaseTermMonths > MaxLeaseMonths {
		return ErrLeaseTooLong
	}
	if !validRent(p.BaseMonthlyRent) {
		return ErrInvalidRent
	}
	for _, m := range p.FreeMonths.Sorted() {
		if m < 1 || m > p.LeaseTermMonths {
			return fmt.Errorf("%w: month %d of %d", ErrFreeMonthOutOfRange, m, p.LeaseTermMonths)
		}
	}
	return nil
}

// LedgerEntry is one row of the savings plan. Month 0 is the initial seed deposit.
type LedgerEntry struct {
	Month   int     `json:"month" yaml:"month"`
	IsFree  bool    `json:"is_free" yaml:"is_free"`
	RentDue float64 `json:"rent_due" yaml:"rent_due"`
	Delta   float64 `json:"delta" yaml:"delta"`
	Balance float64 `json:"balance" yaml:"balance"`
}

// Plan is the result of BuildLedger.
type Plan struct {
	Params       Params        `json:"-" yaml:"-"`
	SteadyTarget float64       `json:"steady_target" yaml:"steady_target"`
	Seed         float64       `json:"seed" yaml:"seed"`
	Ledger       []LedgerEntry `json:"ledger" yaml:"ledger"`
}

// Empty reports whether there is no plan to show.
func (p Plan) Empty() bool {
	return len(p.Ledger) == 0
}

// FinalBalance is the reserve left after the last lease month.
func (p Plan) FinalBalance() float64 {
	if len(p.Ledger) == 0 {
		return 0
	}
	return p.Ledger[len(p.Ledger)-1].Balance
}

// TotalRentDue sums the rent actually owed over the lease.
func (p Plan) TotalRentDue() float64 {
	total := decimal.Zero
	for _, e := range p.Ledger {
		total = total.Add(decimal.NewFromFloat(e.RentDue))
	}
	return total.InexactFloat64()
}

// FreeCount is the number of distinct free months inside the lease.
func (p Plan) FreeCount() int {
	return len(p.Params.FreeMonths.Within(p.Params.LeaseTermMonths))
}

// PaidMonths is the number of full-rent months in the lease.
func (p Plan) PaidMonths() int {
	if p.Params.LeaseTermMonths <= 0 {
		return 0
	}
	return p.Params.LeaseTermMonths - p.FreeCount()
}

// SteadyTarget returns the constant monthly budget that spreads the rent
// actually owed evenly across every month of the lease, rounded half away
// from zero. It is 0 for non-positive or non-finite inputs and for an
// all-free lease.
func SteadyTarget(p Params) float64 {
	return steadyTarget(p).InexactFloat64()
}

// validRent reports whether rent is positive and finite.
func validRent(rent float64) bool {
	return rent > 0 && !math.IsInf(rent, 0)
}

func steadyTarget(p Params) decimal.Decimal {
	if p.LeaseTermMonths <= 0 || !validRent(p.BaseMonthlyRent) {
		return decimal.Zero
	}
	paid := p.LeaseTermMonths - len(p.FreeMonths.Within(p.LeaseTermMonths))
	if paid <= 0 {
		return decimal.Zero
	}
	rent := decimal.NewFromFloat(p.BaseMonthlyRent)
	return rent.
		Mul(decimal.NewFromInt(int64(paid))).
		Div(decimal.NewFromInt(int64(p.LeaseTermMonths))).
		Round(0)
}

// BuildLedger simulates the lease month by month. The seed is the smallest
// reserve that keeps the running balance non-negative in every month. A
// non-positive term, a non-positive or non-finite rent, or no free month
// inside the lease yields a plan with an empty ledger and a zero seed.
func BuildLedger(p Params) Plan {
	target := steadyTarget(p)
	plan := Plan{
		Params:       p,
		SteadyTarget: target.InexactFloat64(),
		Ledger:       []LedgerEntry{},
	}
	if p.LeaseTermMonths <= 0 || !validRent(p.BaseMonthlyRent) {
		return plan
	}
	free := p.FreeMonths.Within(p.LeaseTermMonths)
	if len(free) == 0 {
		return plan
	}

	rent := decimal.NewFromFloat(p.BaseMonthlyRent)
	shortfall := rent.Sub(target)

	// The target is rounded once and reused verbatim; any drift it
	// introduces is carried into the balances unchanged.
	deltas := make([]decimal.Decimal, p.LeaseTermMonths+1)
	for m := 1; m <= p.LeaseTermMonths; m++ {
		if free.Contains(m) {
			deltas[m] = target
		} else {
			deltas[m] = shortfall.Neg()
		}
	}

	seed := minimumSeed(deltas[1:])
	plan.Seed = seed.InexactFloat64()

	entries := make([]LedgerEntry, 0, p.LeaseTermMonths+1)
	if seed.IsPositive() {
		entries = append(entries, LedgerEntry{
			Month:   0,
			Delta:   plan.Seed,
			Balance: plan.Seed,
		})
	}

	balance := seed
	for m := 1; m <= p.LeaseTermMonths; m++ {
		balance = balance.Add(deltas[m])
		entry := LedgerEntry{
			Month:   m,
			IsFree:  free.Contains(m),
			Delta:   deltas[m].InexactFloat64(),
			Balance: balance.InexactFloat64(),
		}
		if !entry.IsFree {
			entry.RentDue = p.BaseMonthlyRent
		}
		entries = append(entries, entry)
	}
	plan.Ledger = entries
	return plan
}

// minimumSeed sweeps the prefix sums once and returns the negated minimum,
// or zero when the running total never dips below zero.
func minimumSeed(deltas []decimal.Decimal) decimal.Decimal {
	running, lowest := decimal.Zero, decimal.Zero
	for _, d := range deltas {
		running = running.Add(d)
		if running.LessThan(lowest) {
			lowest = running
		}
	}
	return lowest.Neg()
}
