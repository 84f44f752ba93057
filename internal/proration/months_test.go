package proration

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestParseMonths(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", []int{}},
		{"1,2", []int{1, 2}},
		{" 2 , 1 ,2", []int{1, 2}},
		{"1-3,11-12", []int{1, 2, 3, 11, 12}},
		{"5-5", []int{5}},
	}
	for _, tt := range tests {
		set, err := ParseMonths(tt.in)
		if err != nil {
			t.Fatalf("ParseMonths(%q) error: %v", tt.in, err)
		}
		if got := set.Sorted(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseMonths(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMonths_Errors(t *testing.T) {
	for _, in := range []string{"x", "0", "3-1", "1-", "-2", "1,,b", "601", "1-20000000"} {
		if _, err := ParseMonths(in); !errors.Is(err, ErrBadMonthList) {
			t.Errorf("ParseMonths(%q) error = %v, want ErrBadMonthList", in, err)
		}
	}
}

func TestParseMonths_UpToMax(t *testing.T) {
	set, err := ParseMonths(fmt.Sprintf("%d-%d", MaxLeaseMonths-1, MaxLeaseMonths))
	if err != nil || len(set) != 2 {
		t.Fatalf("ParseMonths at the bound = %v, %v", set.Sorted(), err)
	}
}

func TestMonthSetString(t *testing.T) {
	tests := []struct {
		set  MonthSet
		want string
	}{
		{NewMonthSet(), ""},
		{NewMonthSet(4), "4"},
		{NewMonthSet(2, 1, 11, 12, 7), "1-2,7,11-12"},
	}
	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMonthSetToggle(t *testing.T) {
	s := NewMonthSet(3)
	s.Toggle(3)
	s.Toggle(5)
	if s.Contains(3) || !s.Contains(5) {
		t.Fatalf("after toggles set = %v", s.Sorted())
	}
}

func TestMonthSetWithin(t *testing.T) {
	got := NewMonthSet(0, 1, 6, 7).Within(6).Sorted()
	if !reflect.DeepEqual(got, []int{1, 6}) {
		t.Fatalf("Within(6) = %v, want [1 6]", got)
	}
}
