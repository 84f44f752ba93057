// Package tui provides the interactive Bubble Tea calculator and lead
// wizard for prorate.
package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aptscout/prorate/internal/cli"
	"github.com/aptscout/prorate/internal/proration"
	"github.com/aptscout/prorate/internal/tui/components"
	"github.com/aptscout/prorate/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type page int

const (
	pageLease page = iota
	pageMonths
	pagePlan
)

const (
	fieldRent = iota
	fieldTerm
	fieldCount
)

const (
	maxLeaseMonths = 120
	monthGridCols  = 6
	maxViewWidth   = 100
	planChartRows  = 6
)

var (
	errRentRequired = errors.New("enter the base monthly rent as a positive number")
	errTermRequired = errors.New("enter the lease term as a whole number of months")
	errTermTooLong  = fmt.Errorf("lease term must be at most %d months", maxLeaseMonths)
	errNoFreeMonths = errors.New("choose at least one free month to build a plan")
)

// Defaults seed the calculator inputs.
type Defaults struct {
	LeaseMonths int
	Rent        float64
	FreeMonths  proration.MonthSet
}

// App is the root Bubble Tea model for the three-page calculator.
type App struct {
	page   page
	inputs [fieldCount]textinput.Model
	focus  int

	term   int
	rent   float64
	free   proration.MonthSet
	cursor int // selected month on the months page, 1-based
	plan   proration.Plan

	ledgerOffset int
	err          error

	width  int
	height int
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 12
	ti.Width = 20
	ti.Prompt = "> "
	return ti
}

// NewApp creates the calculator on the lease page, prefilled from d.
func NewApp(d Defaults) App {
	a := App{
		free:   proration.MonthSet{},
		cursor: 1,
	}
	a.inputs[fieldRent] = newInput("e.g. 2350")
	a.inputs[fieldTerm] = newInput("e.g. 14")
	if d.Rent > 0 {
		a.inputs[fieldRent].SetValue(strconv.FormatFloat(d.Rent, 'f', -1, 64))
	}
	if d.LeaseMonths > 0 {
		a.inputs[fieldTerm].SetValue(strconv.Itoa(d.LeaseMonths))
	}
	for m := range d.FreeMonths {
		a.free[m] = struct{}{}
	}
	a.inputs[fieldRent].Focus()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Plan is the last plan shown on the plan page.
func (a App) Plan() proration.Plan { return a.plan }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.page {
		case pageLease:
			return a.updateLease(msg)
		case pageMonths:
			return a.updateMonths(msg)
		case pagePlan:
			return a.updatePlan(msg)
		}
	}

	if a.page == pageLease {
		var cmd tea.Cmd
		a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) setFocus(field int) (App, tea.Cmd) {
	a.focus = (field + fieldCount) % fieldCount
	for i := range a.inputs {
		a.inputs[i].Blur()
	}
	return a, a.inputs[a.focus].Focus()
}

func (a App) updateLease(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, tea.Quit
	case "tab", "down":
		next, cmd := a.setFocus(a.focus + 1)
		return next, cmd
	case "shift+tab", "up":
		next, cmd := a.setFocus(a.focus - 1)
		return next, cmd
	case "enter":
		if a.focus == fieldRent {
			next, cmd := a.setFocus(fieldTerm)
			return next, cmd
		}
		rent, term, err := parseLeaseInputs(a.inputs[fieldRent].Value(), a.inputs[fieldTerm].Value())
		if err != nil {
			a.err = err
			return a, nil
		}
		a.rent, a.term, a.err = rent, term, nil
		a.free = a.free.Within(term)
		a.cursor = min(max(1, a.cursor), term)
		a.page = pageMonths
		return a, nil
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	a.err = nil
	return a, cmd
}

// parseLeaseInputs reads the rent and term fields. "$2,350" is accepted as rent.
func parseLeaseInputs(rentRaw, termRaw string) (float64, int, error) {
	rentRaw = strings.NewReplacer("$", "", ",", "", " ", "").Replace(rentRaw)
	rent, err := strconv.ParseFloat(rentRaw, 64)
	if err != nil || !(rent > 0) || math.IsInf(rent, 0) {
		return 0, 0, errRentRequired
	}
	term, err := strconv.Atoi(strings.TrimSpace(termRaw))
	if err != nil || term <= 0 {
		return 0, 0, errTermRequired
	}
	if term > maxLeaseMonths {
		return 0, 0, errTermTooLong
	}
	return rent, term, nil
}

func (a App) params() proration.Params {
	return proration.Params{
		LeaseTermMonths: a.term,
		BaseMonthlyRent: a.rent,
		FreeMonths:      a.free,
	}
}

func (a App) updateMonths(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "left", "h":
		a.cursor = max(1, a.cursor-1)
	case "right", "l":
		a.cursor = min(a.term, a.cursor+1)
	case "up", "k":
		if a.cursor-monthGridCols >= 1 {
			a.cursor -= monthGridCols
		}
	case "down", "j":
		if a.cursor+monthGridCols <= a.term {
			a.cursor += monthGridCols
		}
	case " ", "space", "x":
		a.free.Toggle(a.cursor)
		a.err = nil
	case "enter", "v":
		if len(a.free.Within(a.term)) == 0 {
			a.err = errNoFreeMonths
			return a, nil
		}
		a.plan = proration.BuildLedger(a.params())
		a.ledgerOffset = 0
		a.err = nil
		a.page = pagePlan
	case "esc", "b":
		a.page = pageLease
		a.err = nil
		next, cmd := a.setFocus(fieldRent)
		return next, cmd
	case "r":
		return a.reset()
	}
	return a, nil
}

func (a App) updatePlan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "down", "j":
		if a.ledgerOffset < len(a.plan.Ledger)-a.ledgerRows() {
			a.ledgerOffset++
		}
	case "up", "k":
		if a.ledgerOffset > 0 {
			a.ledgerOffset--
		}
	case "esc", "b":
		a.page = pageMonths
	case "r":
		return a.reset()
	}
	return a, nil
}

// reset clears every input and returns to the lease page.
func (a App) reset() (tea.Model, tea.Cmd) {
	fresh := NewApp(Defaults{})
	fresh.width, fresh.height = a.width, a.height
	return fresh, textinput.Blink
}

// ledgerRows is how many ledger lines fit on the plan page.
func (a App) ledgerRows() int {
	if a.height <= 0 {
		return len(a.plan.Ledger)
	}
	// headline cards, strip, chart, headers and status bar
	overhead := 8 + 3 + planChartRows + 2 + 6
	return max(3, a.height-overhead)
}

func (a App) viewWidth() int {
	w := a.width
	if w <= 0 {
		w = 80
	}
	return min(w, maxViewWidth)
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active
	w := a.viewWidth()

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).
		Render(" Proration Budgeting Calculator")

	var body string
	var hints []string
	switch a.page {
	case pageLease:
		body = a.viewLease(w)
		hints = []string{"[tab]next field", "[enter]continue", "[esc]quit"}
	case pageMonths:
		body = a.viewMonths(w)
		hints = []string{"[arrows]move", "[space]toggle", "[enter]view plan", "[b]back", "[r]reset"}
	case pagePlan:
		body = a.viewPlan(w)
		hints = []string{"[j/k]scroll", "[b]back", "[r]reset", "[q]uit"}
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(components.RenderPageBar(int(a.page)))
	b.WriteString("\n\n")
	b.WriteString(body)
	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Warn).Render(" " + a.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(components.RenderStatusBar(w, hints, ""))
	return b.String()
}

func (a App) viewLease(w int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	label := lipgloss.NewStyle().Foreground(t.TextPrimary)

	intro := muted.Render("If you can afford the monthly prorated rent but not the full base rent every month,\n" +
		"this spreads your rent evenly across the lease. Save during free months, draw on\n" +
		"savings during full-rent months.")

	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n\n")
	b.WriteString(label.Render("Base Monthly Rent ($)"))
	b.WriteString("\n")
	b.WriteString(a.inputs[fieldRent].View())
	b.WriteString("\n\n")
	b.WriteString(label.Render("Lease Term (months)"))
	b.WriteString("\n")
	b.WriteString(a.inputs[fieldTerm].View())

	return components.ContentCard("Your Lease", b.String(), w)
}

func (a App) viewMonths(w int) string {
	t := theme.Active
	freeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Accent).Bold(true)
	paidStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.SurfaceHover)
	cursorStyle := lipgloss.NewStyle().Underline(true).Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).
		Render("Select which months are free within your lease:"))
	b.WriteString("\n\n")
	for m := 1; m <= a.term; m++ {
		cell := fmt.Sprintf("  %3d  ", m)
		style := paidStyle
		if a.free.Contains(m) {
			style = freeStyle
		}
		if m == a.cursor {
			style = style.Inherit(cursorStyle)
		}
		b.WriteString(style.Render(cell))
		if m%monthGridCols == 0 || m == a.term {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	if target := proration.SteadyTarget(a.params()); len(a.free.Within(a.term)) > 0 && target > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("Estimated Prorated Rent: "))
		b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(cli.FormatMoney(target)))
	}

	return components.ContentCard(
		fmt.Sprintf("%s at %s", cli.FormatMonths(a.term), cli.FormatMoney(a.rent)),
		b.String(), w)
}

func (a App) viewPlan(w int) string {
	p := a.plan
	if p.Empty() {
		return components.ContentCard("Budget Plan", "No plan to show.", w)
	}

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Monthly Prorated Rent", Value: cli.FormatMoney(p.SteadyTarget), Note: "estimate"},
		{Label: "Initial Savings Needed", Value: cli.FormatMoney(p.Seed)},
		{Label: "Free Months", Value: p.Params.FreeMonths.Within(p.Params.LeaseTermMonths).String(),
			Note: cli.FormatMonths(p.FreeCount()) + " of " + cli.FormatMonths(p.Params.LeaseTermMonths)},
	}, w)

	strip := a.viewStrip()

	balances := make([]float64, len(p.Ledger))
	labels := make([]string, len(p.Ledger))
	for i, e := range p.Ledger {
		balances[i] = e.Balance
		labels[i] = strconv.Itoa(e.Month)
	}
	chart := components.BalanceChart(balances, labels, components.CardInnerWidth(w), planChartRows)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")
	b.WriteString(strip)
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Savings Balance", chart, w))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Your Monthly Budget Plan", a.viewLedger(), w))

	return b.String()
}

func (a App) viewStrip() string {
	t := theme.Active
	freeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Accent).Bold(true)
	paidStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Paid)

	var b strings.Builder
	b.WriteString(" ")
	for m := 1; m <= a.plan.Params.LeaseTermMonths; m++ {
		cell := fmt.Sprintf("%3d", m)
		if a.plan.Params.FreeMonths.Contains(m) {
			b.WriteString(freeStyle.Render(cell))
		} else {
			b.WriteString(paidStyle.Render(cell))
		}
	}
	return b.String()
}

func (a App) viewLedger() string {
	t := theme.Active
	header := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	plain := lipgloss.NewStyle().Foreground(t.TextPrimary)
	save := lipgloss.NewStyle().Foreground(t.Save)
	use := lipgloss.NewStyle().Foreground(t.Use)

	widths := []int{6, 10, 10, 16, 10}
	row := func(cells []string, style func(col int) lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style(i).Render(fmt.Sprintf("%*s", widths[i], c))
		}
		return strings.Join(parts, "  ")
	}

	rows := cli.LedgerRows(a.plan)
	end := min(len(rows), a.ledgerOffset+a.ledgerRows())

	var b strings.Builder
	b.WriteString(row(cli.LedgerHeaders, func(int) lipgloss.Style { return header }))
	for i := a.ledgerOffset; i < end; i++ {
		entry := a.plan.Ledger[i]
		b.WriteString("\n")
		b.WriteString(row(rows[i], func(col int) lipgloss.Style {
			if col != 3 {
				return plain
			}
			if entry.Delta < 0 {
				return use
			}
			return save
		}))
	}
	if end < len(rows) || a.ledgerOffset > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
			Render(fmt.Sprintf("rows %d-%d of %d", a.ledgerOffset+1, end, len(rows))))
	}
	return b.String()
}
