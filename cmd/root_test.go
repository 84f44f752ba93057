package cmd

import (
	"errors"
	"testing"

	"github.com/aptscout/prorate/internal/config"
	"github.com/aptscout/prorate/internal/proration"
)

func withFlags(t *testing.T, lease int, rent, free string) {
	t.Helper()
	oldLease, oldRent, oldFree := flagLease, flagRent, flagFree
	flagLease, flagRent, flagFree = lease, rent, free
	t.Cleanup(func() { flagLease, flagRent, flagFree = oldLease, oldRent, oldFree })
}

func TestLeaseParams_FlagsOverrideConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	defRent := 1800.0
	cfg.General.DefaultRent = &defRent

	withFlags(t, 14, "$2,350", "1-2")
	p, err := leaseParams(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.LeaseTermMonths != 14 || p.BaseMonthlyRent != 2350 || !p.FreeMonths.Contains(2) {
		t.Fatalf("params = %+v", p)
	}

	withFlags(t, 0, "", "")
	p, err = leaseParams(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.LeaseTermMonths != 12 || p.BaseMonthlyRent != 1800 {
		t.Fatalf("config defaults not used: %+v", p)
	}
}

func TestLeaseParams_Errors(t *testing.T) {
	cfg := config.DefaultConfig()

	withFlags(t, 12, "", "11,12")
	p, err := leaseParams(cfg)
	if !errors.Is(err, errRentRequired) {
		t.Fatalf("err = %v, want errRentRequired", err)
	}
	if p.LeaseTermMonths != 12 || len(p.FreeMonths) != 2 {
		t.Fatalf("partial params lost: %+v", p)
	}

	withFlags(t, 12, "two grand", "")
	if _, err := leaseParams(cfg); err == nil {
		t.Fatal("expected error for non-numeric rent")
	}

	for _, rent := range []string{"NaN", "Inf", "-inf"} {
		withFlags(t, 12, rent, "1")
		if _, err := leaseParams(cfg); err == nil {
			t.Fatalf("expected error for rent %q", rent)
		}
	}

	withFlags(t, proration.MaxLeaseMonths+1, "2000", "1")
	if _, err := leaseParams(cfg); !errors.Is(err, proration.ErrLeaseTooLong) {
		t.Fatalf("err = %v, want ErrLeaseTooLong", err)
	}

	withFlags(t, 12, "2000", "1,x")
	if _, err := leaseParams(cfg); err == nil {
		t.Fatal("expected error for bad month list")
	}
}

func TestLeaseParams_NonPositivePassesThrough(t *testing.T) {
	withFlags(t, -3, "2000", "1")
	p, err := leaseParams(config.DefaultConfig())
	if err != nil {
		t.Fatalf("non-positive term should not be a flag error: %v", err)
	}
	if !proration.BuildLedger(p).Empty() {
		t.Fatal("expected empty plan")
	}
}
