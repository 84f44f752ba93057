package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aptscout/prorate/internal/lead"
	"github.com/aptscout/prorate/internal/tui/components"
	"github.com/aptscout/prorate/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const flexibleBudget = -1

var errSizeConflict = errors.New("2 BED and 3+ BEDS can't be combined with other sizes")

// leadValues are the form-bound answers. They outlive each step's form so
// going back shows what was entered.
type leadValues struct {
	sizes      []lead.Size
	budget     int
	moveFrom   string
	moveTo     string
	amenities  []string
	credit     string
	background []string
	employment string
	name       string
	email      string
	phone      string
	info       string
	emailDeals bool
}

// LeadModel walks the lead wizard one huh form per step.
type LeadModel struct {
	wiz  *lead.Wizard
	vals *leadValues
	form *huh.Form
	now  func() time.Time

	market string
	width  int

	submitted bool
	aborted   bool
	result    lead.Record
	err       error
}

// NewLeadModel starts the wizard on the size step. market is shown in the
// header; now is the clock used to check move-in dates.
func NewLeadModel(market string, now func() time.Time) LeadModel {
	if now == nil {
		now = time.Now
	}
	m := LeadModel{
		wiz:    lead.NewWizard(),
		vals:   &leadValues{emailDeals: true},
		now:    now,
		market: market,
	}
	m.form = m.buildForm()
	return m
}

// Result returns the submitted record and whether the wizard finished.
func (m LeadModel) Result() (lead.Record, bool) {
	return m.result, m.submitted
}

// Aborted reports whether the user quit before submitting.
func (m LeadModel) Aborted() bool { return m.aborted }

// Init implements tea.Model.
func (m LeadModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model.
func (m LeadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.form = m.form.WithWidth(min(msg.Width, maxViewWidth))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "esc":
			if m.wiz.IsFirst() {
				m.aborted = true
				return m, tea.Quit
			}
			m.wiz.Back()
			m.err = nil
			m.form = m.buildForm()
			return m, m.form.Init()
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.completeStep()
	case huh.StateAborted:
		m.aborted = true
		return m, tea.Quit
	}
	return m, cmd
}

// completeStep merges the finished form into the wizard and moves on, or
// submits from the contact step.
func (m LeadModel) completeStep() (tea.Model, tea.Cmd) {
	patch := patchFor(m.wiz.Current(), m.vals)

	if !m.wiz.IsLast() {
		m.wiz.Next(patch)
		m.err = nil
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	m.wiz.Update(patch)
	rec, err := m.wiz.Submit(m.now())
	if err != nil {
		m.err = err
		m.form = m.buildForm()
		return m, m.form.Init()
	}
	m.result = rec
	m.submitted = true
	return m, tea.Quit
}

// patchFor converts the bound values of one step into a wizard patch.
func patchFor(step lead.Step, v *leadValues) lead.Patch {
	switch step {
	case lead.StepSize:
		return lead.Patch{Sizes: nonNil(v.sizes)}
	case lead.StepBudget:
		budget := budgetLabel(v.budget)
		return lead.Patch{Budget: &budget}
	case lead.StepMoveIn:
		r, err := lead.ParseMoveIn(v.moveFrom + "|" + v.moveTo)
		if err != nil {
			return lead.Patch{}
		}
		return lead.Patch{MoveIn: &r}
	case lead.StepAmenities:
		return lead.Patch{Amenities: nonNil(v.amenities)}
	case lead.StepCredit:
		return lead.Patch{
			CreditStatus:     &v.credit,
			BackgroundIssues: nonNil(v.background),
			EmploymentStatus: &v.employment,
		}
	case lead.StepContact:
		return lead.Patch{
			Name:           &v.name,
			Email:          &v.email,
			Phone:          &v.phone,
			AdditionalInfo: &v.info,
			EmailDeals:     &v.emailDeals,
		}
	}
	return lead.Patch{}
}

// nonNil turns a nil selection into an empty one so the patch clears the
// field instead of leaving it alone.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func budgetLabel(n int) string {
	if n == flexibleBudget {
		return lead.FormatBudgetRange(lead.ClampBudgetRange(lead.MinBudget, lead.MaxBudget))
	}
	return lead.FormatBudget(n)
}

// validateSizes applies the size rules in selection order: the result must
// keep every chosen size.
func validateSizes(sizes []lead.Size) error {
	if len(sizes) == 0 {
		return lead.ErrMissingSize
	}
	var picked []lead.Size
	for _, s := range sizes {
		picked, _ = lead.SelectSize(picked, s)
	}
	if len(picked) != len(sizes) {
		return errSizeConflict
	}
	return nil
}

func budgetOptions(sizes []lead.Size) []huh.Option[int] {
	presets := lead.PresetBudgets(sizes)
	opts := make([]huh.Option[int], 0, len(presets)+1)
	for _, n := range presets {
		opts = append(opts, huh.NewOption(lead.FormatBudget(n), n))
	}
	return append(opts, huh.NewOption("Flexible ("+budgetLabel(flexibleBudget)+")", flexibleBudget))
}

func stringOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(v, v)
	}
	return opts
}

func (m LeadModel) validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	r, err := lead.ParseMoveIn(s)
	if err != nil {
		return err
	}
	return r.Check(m.now())
}

// buildForm creates the form for the current step.
func (m LeadModel) buildForm() *huh.Form {
	v := m.vals
	step := m.wiz.Current()

	var fields []huh.Field
	switch step {
	case lead.StepSize:
		opts := make([]huh.Option[lead.Size], len(lead.Sizes))
		for i, s := range lead.Sizes {
			opts[i] = huh.NewOption(string(s), s)
		}
		fields = append(fields, huh.NewMultiSelect[lead.Size]().
			Title(step.Title()).
			Description("STUDIO and 1 BED can be combined").
			Options(opts...).
			Validate(validateSizes).
			Value(&v.sizes))

	case lead.StepBudget:
		if v.budget == 0 {
			v.budget = flexibleBudget
		}
		fields = append(fields, huh.NewSelect[int]().
			Title(step.Title()).
			Options(budgetOptions(m.wiz.Record().Sizes)...).
			Value(&v.budget))

	case lead.StepMoveIn:
		fields = append(fields,
			huh.NewInput().
				Title(step.Title()).
				Description("Earliest move-in date (YYYY-MM-DD or MM/DD/YYYY)").
				Value(&v.moveFrom).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return lead.ErrBadMoveInDate
					}
					return m.validateDate(s)
				}),
			huh.NewInput().
				Title("Latest move-in date").
				Description("Optional").
				Value(&v.moveTo).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := lead.ParseMoveIn(v.moveFrom + "|" + s); err != nil {
						return err
					}
					return m.validateDate(s)
				}),
		)

	case lead.StepAmenities:
		opts := make([]huh.Option[string], len(lead.Amenities))
		for i, a := range lead.Amenities {
			opts[i] = huh.NewOption(a.Icon+" "+a.Name+" - "+a.Description, a.ID)
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title(step.Title()).
			Options(opts...).
			Value(&v.amenities))

	case lead.StepCredit:
		fields = append(fields,
			huh.NewSelect[string]().
				Title(step.Title()).
				Options(stringOptions(lead.CreditBands)...).
				Value(&v.credit),
			huh.NewMultiSelect[string]().
				Title("Anything in your background we should know about?").
				Options(stringOptions(lead.BackgroundIssues)...).
				Value(&v.background),
			huh.NewSelect[string]().
				Title("Employment").
				Options(stringOptions(lead.EmploymentStatuses)...).
				Value(&v.employment),
		)

	case lead.StepContact:
		fields = append(fields,
			huh.NewInput().
				Title(step.Title()).
				Description("Full name").
				Value(&v.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return lead.ErrMissingName
					}
					return nil
				}),
			huh.NewInput().
				Title("Email").
				Value(&v.email).
				Validate(lead.ValidateEmail),
			huh.NewInput().
				Title("Phone").
				Value(&v.phone).
				Validate(lead.ValidatePhone),
			huh.NewText().
				Title("Anything else we should know?").
				Value(&v.info),
			huh.NewConfirm().
				Title("Email me exclusive deals").
				Affirmative("Yes").
				Negative("No").
				Value(&v.emailDeals),
		)
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(true)
	if m.width > 0 {
		form = form.WithWidth(min(m.width, maxViewWidth))
	}
	return form
}

// View implements tea.Model.
func (m LeadModel) View() string {
	t := theme.Active
	w := min(max(m.width, 60), maxViewWidth)

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).
		Render(" Find your apartment")
	if m.market != "" {
		title += lipgloss.NewStyle().Foreground(t.TextMuted).Render(" in " + m.market)
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n ")
	b.WriteString(components.StepProgress(m.wiz.Index(), len(lead.Steps), w/2))
	b.WriteString("\n\n")
	if m.submitted {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Save).
			Render(fmt.Sprintf(" Thanks %s, a locator will reach out soon.", m.result.Name)))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.form.View())
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Warn).Render(" " + m.err.Error()))
	}
	b.WriteString("\n")

	hints := []string{"[enter]next", "[esc]back", "[ctrl+c]quit"}
	if m.wiz.IsFirst() {
		hints[1] = "[esc]quit"
	}
	b.WriteString(components.RenderStatusBar(w, hints, string(m.wiz.Current())))
	return b.String()
}
