// Package lead models the apartment-search lead-capture wizard: a fixed
// sequence of steps that each merge their answers into one record.
package lead

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Step identifies one screen of the wizard.
type Step string

const (
	StepSize      Step = "size"
	StepBudget    Step = "budget"
	StepMoveIn    Step = "moveIn"
	StepAmenities Step = "amenities"
	StepCredit    Step = "credit"
	StepContact   Step = "contact"
)

// Steps is the wizard order.
var Steps = []Step{StepSize, StepBudget, StepMoveIn, StepAmenities, StepCredit, StepContact}

// Title is the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepSize:
		return "What size apartment are you looking for?"
	case StepBudget:
		return "What's your monthly budget?"
	case StepMoveIn:
		return "When do you want to move in?"
	case StepAmenities:
		return "Which amenities matter to you?"
	case StepCredit:
		return "How do your credit & background look?"
	case StepContact:
		return "How can we reach you?"
	}
	return string(s)
}

var (
	ErrNotOnLastStep  = errors.New("wizard is not on the contact step")
	ErrAlreadySent    = errors.New("lead already submitted")
	ErrMissingSize    = errors.New("choose at least one apartment size")
	ErrMissingName    = errors.New("name is required")
	ErrBadEmail       = errors.New("a valid email address is required")
	ErrBadPhone       = errors.New("a phone number with at least 10 digits is required")
	ErrUnknownAmenity = errors.New("unknown amenity")
)

// Record is everything the wizard collects.
type Record struct {
	Sizes            []Size      `json:"size"`
	Budget           string      `json:"budget"`
	MoveIn           MoveInRange `json:"move_in_date"`
	Amenities        []string    `json:"amenities"`
	CreditStatus     string      `json:"credit_status"`
	BackgroundIssues []string    `json:"background_issues"`
	EmploymentStatus string      `json:"employment_status"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	AdditionalInfo   string      `json:"additional_info"`
	EmailDeals       bool        `json:"email_deals"`
}

// Patch carries the fields a step changed. Nil fields are left alone.
type Patch struct {
	Sizes            []Size
	Budget           *string
	MoveIn           *MoveInRange
	Amenities        []string
	CreditStatus     *string
	BackgroundIssues []string
	EmploymentStatus *string
	Name             *string
	Email            *string
	Phone            *string
	AdditionalInfo   *string
	EmailDeals       *bool
}

// Apply merges p into r.
func (r *Record) Apply(p Patch) {
	if p.Sizes != nil {
		r.Sizes = append([]Size(nil), p.Sizes...)
	}
	if p.Budget != nil {
		r.Budget = *p.Budget
	}
	if p.MoveIn != nil {
		r.MoveIn = *p.MoveIn
	}
	if p.Amenities != nil {
		r.Amenities = append([]string(nil), p.Amenities...)
	}
	if p.CreditStatus != nil {
		r.CreditStatus = *p.CreditStatus
	}
	if p.BackgroundIssues != nil {
		r.BackgroundIssues = append([]string(nil), p.BackgroundIssues...)
	}
	if p.EmploymentStatus != nil {
		r.EmploymentStatus = *p.EmploymentStatus
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.AdditionalInfo != nil {
		r.AdditionalInfo = *p.AdditionalInfo
	}
	if p.EmailDeals != nil {
		r.EmailDeals = *p.EmailDeals
	}
}

// Validate checks the record is complete enough to hand to a locator.
func (r Record) Validate(now time.Time) error {
	if len(r.Sizes) == 0 {
		return ErrMissingSize
	}
	if _, err := ParseBudget(r.Budget); err != nil {
		return err
	}
	if err := r.MoveIn.Check(now); err != nil {
		return err
	}
	for _, id := range r.Amenities {
		if _, ok := AmenityByID(id); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAmenity, id)
		}
	}
	return ValidateContact(r.Name, r.Email, r.Phone)
}

// ValidateContact checks the required contact fields.
func ValidateContact(name, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingName
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePhone(phone)
}

// ValidateEmail checks that email parses as a single address.
func ValidateEmail(email string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return fmt.Errorf("%w: %q", ErrBadEmail, email)
	}
	return nil
}

// ValidatePhone requires at least 10 digits, ignoring punctuation.
func ValidatePhone(phone string) error {
	digits := 0
	for _, c := range phone {
		if c >= '0' && c <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return fmt.Errorf("%w: %q", ErrBadPhone, phone)
	}
	return nil
}

// Wizard walks the steps in order with a cursor.
type Wizard struct {
	cursor    int
	record    Record
	submitted bool
}

// NewWizard starts a wizard on the first step.
func NewWizard() *Wizard {
	return &Wizard{}
}

// Current returns the active step.
func (w *Wizard) Current() Step { return Steps[w.cursor] }

// Index is the zero-based position of the active step.
func (w *Wizard) Index() int { return w.cursor }

// IsFirst reports whether Back would be a no-op.
func (w *Wizard) IsFirst() bool { return w.cursor == 0 }

// IsLast reports whether the active step is the contact step.
func (w *Wizard) IsLast() bool { return w.cursor == len(Steps)-1 }

// Record returns a copy of the answers so far.
func (w *Wizard) Record() Record { return w.record }

// Progress is the completed fraction shown in the progress bar, counting the
// active step as done.
func (w *Wizard) Progress() float64 {
	return float64(w.cursor+1) / float64(len(Steps))
}

// Update merges answers without moving.
func (w *Wizard) Update(p Patch) {
	w.record.Apply(p)
}

// Next merges answers and advances, staying put on the last step.
func (w *Wizard) Next(p Patch) {
	w.record.Apply(p)
	if w.cursor < len(Steps)-1 {
		w.cursor++
	}
}

// Back retreats one step, staying put on the first.
func (w *Wizard) Back() {
	if w.cursor > 0 {
		w.cursor--
	}
}

// Submit validates and finalizes the record. It is only allowed from the
// contact step, and only once.
func (w *Wizard) Submit(now time.Time) (Record, error) {
	if w.submitted {
		return Record{}, ErrAlreadySent
	}
	if !w.IsLast() {
		return Record{}, ErrNotOnLastStep
	}
	if err := w.record.Validate(now); err != nil {
		return Record{}, err
	}
	w.submitted = true
	return w.record, nil
}

// Submitted reports whether Submit succeeded.
func (w *Wizard) Submitted() bool { return w.submitted }
