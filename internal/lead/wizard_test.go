package lead

import (
	"errors"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

var testNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func completeRecordPatch() Patch {
	return Patch{
		Sizes:            []Size{SizeOneBed},
		Budget:           ptr("2300"),
		MoveIn:           &MoveInRange{From: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)},
		Amenities:        []string{"fitness", "parking"},
		CreditStatus:     ptr("Good 600-700"),
		BackgroundIssues: []string{"None"},
		EmploymentStatus: ptr("W-2 Employee"),
		Name:             ptr("Jordan Avery"),
		Email:            ptr("jordan@example.com"),
		Phone:            ptr("(404) 555-0134"),
	}
}

func TestWizard_StepsAdvanceAndClamp(t *testing.T) {
	w := NewWizard()
	if w.Current() != StepSize || !w.IsFirst() {
		t.Fatalf("start step = %s, want size", w.Current())
	}

	w.Back()
	if w.Index() != 0 {
		t.Fatalf("Back on first step moved cursor to %d", w.Index())
	}

	for i := 1; i < len(Steps); i++ {
		w.Next(Patch{})
		if w.Current() != Steps[i] {
			t.Fatalf("after %d nexts step = %s, want %s", i, w.Current(), Steps[i])
		}
	}
	if !w.IsLast() {
		t.Fatal("expected to be on last step")
	}

	w.Next(Patch{})
	if w.Current() != StepContact {
		t.Fatalf("Next on last step moved to %s", w.Current())
	}

	w.Back()
	if w.Current() != StepCredit {
		t.Fatalf("Back from contact = %s, want credit", w.Current())
	}
}

func TestWizard_Progress(t *testing.T) {
	w := NewWizard()
	if got, want := w.Progress(), 1.0/6; got != want {
		t.Fatalf("Progress = %v, want %v", got, want)
	}
	for range Steps {
		w.Next(Patch{})
	}
	if got := w.Progress(); got != 1 {
		t.Fatalf("Progress on last step = %v, want 1", got)
	}
}

func TestWizard_MergeKeepsEarlierAnswers(t *testing.T) {
	w := NewWizard()
	w.Next(Patch{Sizes: []Size{SizeStudio}})
	w.Next(Patch{Budget: ptr("1800")})
	w.Update(Patch{Name: ptr("Sam")})
	w.Back()
	w.Next(Patch{})

	r := w.Record()
	if len(r.Sizes) != 1 || r.Sizes[0] != SizeStudio {
		t.Errorf("Sizes = %v, want [STUDIO]", r.Sizes)
	}
	if r.Budget != "1800" {
		t.Errorf("Budget = %q, want 1800", r.Budget)
	}
	if r.Name != "Sam" {
		t.Errorf("Name = %q, want Sam", r.Name)
	}
}

func TestRecordApply_EmptySliceClears(t *testing.T) {
	var r Record
	r.Apply(Patch{Amenities: []string{"sauna"}})
	r.Apply(Patch{Amenities: []string{}})
	if len(r.Amenities) != 0 {
		t.Fatalf("Amenities = %v, want cleared", r.Amenities)
	}
}

func TestWizard_Submit(t *testing.T) {
	w := NewWizard()
	w.Update(completeRecordPatch())

	if _, err := w.Submit(testNow); !errors.Is(err, ErrNotOnLastStep) {
		t.Fatalf("Submit before contact step error = %v, want ErrNotOnLastStep", err)
	}

	for !w.IsLast() {
		w.Next(Patch{})
	}
	rec, err := w.Submit(testNow)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Email != "jordan@example.com" || !w.Submitted() {
		t.Fatalf("unexpected record %+v", rec)
	}

	if _, err := w.Submit(testNow); !errors.Is(err, ErrAlreadySent) {
		t.Fatalf("second Submit error = %v, want ErrAlreadySent", err)
	}
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
		want  error
	}{
		{"no size", Patch{Sizes: []Size{}}, ErrMissingSize},
		{"no budget", Patch{Budget: ptr("")}, ErrBadBudget},
		{"past move-in", Patch{MoveIn: &MoveInRange{From: testNow.AddDate(0, 0, -2)}}, ErrMoveInOutOfWindow},
		{"unknown amenity", Patch{Amenities: []string{"helipad"}}, ErrUnknownAmenity},
		{"no name", Patch{Name: ptr("  ")}, ErrMissingName},
		{"bad email", Patch{Email: ptr("jordan-at-example")}, ErrBadEmail},
		{"short phone", Patch{Phone: ptr("555-0134")}, ErrBadPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			r.Apply(completeRecordPatch())
			r.Apply(tt.patch)
			if err := r.Validate(testNow); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSelectSize(t *testing.T) {
	tests := []struct {
		name        string
		current     []Size
		pick        Size
		want        []Size
		wantAdvance bool
	}{
		{"large from empty advances", nil, SizeTwoBed, []Size{SizeTwoBed}, true},
		{"large replaces selection", []Size{SizeStudio}, SizeThreePlus, []Size{SizeThreePlus}, false},
		{"small from empty", nil, SizeStudio, []Size{SizeStudio}, false},
		{"both small advances", []Size{SizeStudio}, SizeOneBed, []Size{SizeStudio, SizeOneBed}, true},
		{"small drops large", []Size{SizeTwoBed}, SizeOneBed, []Size{SizeOneBed}, false},
		{"toggle off", []Size{SizeStudio, SizeOneBed}, SizeStudio, []Size{SizeOneBed}, false},
		{"toggle last off", []Size{SizeStudio}, SizeStudio, []Size{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, advance := SelectSize(tt.current, tt.pick)
			if len(got) != len(tt.want) {
				t.Fatalf("SelectSize = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("SelectSize = %v, want %v", got, tt.want)
				}
			}
			if advance != tt.wantAdvance {
				t.Fatalf("advance = %v, want %v", advance, tt.wantAdvance)
			}
		})
	}
}

func TestPresetBudgets(t *testing.T) {
	got := PresetBudgets([]Size{SizeOneBed, SizeStudio})
	want := []int{1400, 1600, 1800, 2000, 2200, 2300, 2400, 2600, 3000}
	if len(got) != len(want) {
		t.Fatalf("PresetBudgets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PresetBudgets = %v, want %v", got, want)
		}
	}

	if got := PresetBudgets([]Size{SizeThreePlus}); got[0] != 3000 || got[5] != 5000 {
		t.Fatalf("3+ presets = %v", got)
	}
	if got := PresetBudgets(nil); got != nil {
		t.Fatalf("PresetBudgets(nil) = %v, want nil", got)
	}
}
