package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/astroveda/internal/cli/formatter"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/onboarding"
	"github.com/alexanderramin/astroveda/internal/payment"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type checkoutDoneMsg struct {
	tier domain.Tier
	err  error
}

type finalizedMsg struct {
	profile domain.UserProfile
	err     error
}

// onboardModel hosts one huh form per onboarding step. Completing a form
// applies its value and calls Next; Esc calls Back.
type onboardModel struct {
	ctx     context.Context
	app     *App
	machine *onboarding.Machine
	form    *huh.Form

	// Form-bound values for the current step.
	value string
	focus domain.LifeFocus
	tier  domain.Tier

	width   int
	paying  bool
	notice  string
	profile *domain.UserProfile
	quit    bool
}

func newOnboardModel(ctx context.Context, app *App) *onboardModel {
	m := &onboardModel{
		ctx:     ctx,
		app:     app,
		machine: onboarding.New(),
		tier:    domain.TierBasic,
		width:   60,
	}
	m.form = m.buildForm()
	return m
}

func (m *onboardModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *onboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(msg.Width, 72)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEsc:
			if m.paying {
				return m, nil
			}
			return m, m.back()
		}
	case checkoutDoneMsg:
		return m, m.onCheckout(msg)
	case finalizedMsg:
		if msg.err != nil {
			m.notice = "Could not save your chart: " + msg.err.Error()
			return m, nil
		}
		m.profile = &msg.profile
		return m, tea.Quit
	}

	if m.paying || m.machine.Step() == onboarding.Complete {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m, tea.Batch(cmd, m.submit())
	}
	return m, cmd
}

// submit applies the completed form's value to the machine and advances.
// At the payment gate it starts checkout instead.
func (m *onboardModel) submit() tea.Cmd {
	step := m.machine.Step()
	if step == onboarding.PaymentGate {
		m.paying = true
		m.notice = ""
		return m.checkoutCmd(m.tier)
	}

	m.apply(step)
	if err := m.machine.Next(); err != nil {
		m.notice = describeStepError(err)
		m.form = m.buildForm()
		return m.form.Init()
	}
	m.notice = ""
	m.form = m.buildForm()
	return m.form.Init()
}

func (m *onboardModel) back() tea.Cmd {
	if err := m.machine.Back(); err != nil {
		return nil
	}
	m.notice = ""
	m.form = m.buildForm()
	return m.form.Init()
}

func (m *onboardModel) apply(step onboarding.Step) {
	switch step {
	case onboarding.NameEntry:
		m.machine.SetName(m.value)
	case onboarding.FocusSelection:
		m.machine.SetFocus(m.focus)
	case onboarding.DateEntry:
		m.machine.SetDateOfBirth(m.value)
	case onboarding.TimeEntry:
		m.machine.SetTimeOfBirth(m.value)
	case onboarding.PlaceEntry:
		m.machine.SetPlaceOfBirth(m.value)
	}
}

func (m *onboardModel) checkoutCmd(tier domain.Tier) tea.Cmd {
	ctx, app := m.ctx, m.app
	return func() tea.Msg {
		paid, err := checkout(ctx, app, tier)
		return checkoutDoneMsg{tier: paid, err: err}
	}
}

// onCheckout finishes the flow after a verified payment. A failed or
// cancelled checkout leaves the machine at the payment gate.
func (m *onboardModel) onCheckout(msg checkoutDoneMsg) tea.Cmd {
	m.paying = false
	if msg.err != nil {
		m.notice = describeCheckoutError(msg.err)
		m.form = m.buildForm()
		return m.form.Init()
	}

	profile, err := m.machine.Finish(msg.tier)
	if err != nil {
		m.notice = describeStepError(err)
		return nil
	}
	ctx, session := m.ctx, m.app.Session
	return func() tea.Msg {
		return finalizedMsg{profile: profile, err: session.Finalize(ctx, profile)}
	}
}

// buildForm creates the form for the current step, prefilled with what the
// machine already holds so Back keeps earlier answers.
func (m *onboardModel) buildForm() *huh.Form {
	data := m.machine.BirthData()
	var field huh.Field

	switch m.machine.Step() {
	case onboarding.NameEntry:
		m.value = data.Name
		field = huh.NewInput().
			Title("What is your name?").
			Placeholder("Full name").
			Value(&m.value)
	case onboarding.FocusSelection:
		m.focus = m.machine.Focus()
		field = huh.NewSelect[domain.LifeFocus]().
			Title("What do you want clarity on?").
			Options(huh.NewOptions(domain.LifeFocuses...)...).
			Value(&m.focus)
	case onboarding.DateEntry:
		m.value = data.DateOfBirth
		field = huh.NewInput().
			Title("Date of birth").
			Placeholder("YYYY-MM-DD").
			Value(&m.value)
	case onboarding.TimeEntry:
		m.value = data.TimeOfBirth
		field = huh.NewInput().
			Title("Time of birth").
			Description("24-hour clock, as on your birth certificate.").
			Placeholder("HH:MM").
			Value(&m.value)
	case onboarding.PlaceEntry:
		m.value = data.PlaceOfBirth
		field = huh.NewInput().
			Title("Place of birth").
			Placeholder("City, State").
			Value(&m.value)
	default:
		field = huh.NewSelect[domain.Tier]().
			Title("Choose your reading").
			Options(planOptions()...).
			Value(&m.tier)
	}

	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(astrovedaHuhTheme()).
		WithShowHelp(false).
		WithWidth(m.width)
}

func planOptions() []huh.Option[domain.Tier] {
	plans := payment.Plans()
	opts := make([]huh.Option[domain.Tier], 0, len(plans))
	for _, p := range plans {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%-8s %-4s %s", p.Name, p.Display(), p.Description), p.Tier))
	}
	return opts
}

func describeStepError(err error) string {
	var ve *onboarding.ValidationError
	if errors.As(err, &ve) {
		return fieldLabels[ve.Field] + " " + ve.Reason + "."
	}
	return err.Error()
}

var fieldLabels = map[string]string{
	"name":    "Name",
	"context": "Life focus",
	"dob":     "Date of birth",
	"tob":     "Time of birth",
	"pob":     "Place of birth",
	"tier":    "Plan",
}

func (m *onboardModel) View() string {
	var b strings.Builder
	step := m.machine.Step()

	b.WriteString(formatter.StyleGold.Render("✦ ASTROVEDA") + "  " + formatter.Dim("Your cosmic blueprint") + "\n\n")
	b.WriteString(formatter.RenderProgress(float64(step.Progress())/100, 24))
	if step < onboarding.PaymentGate {
		b.WriteString(formatter.Dim(fmt.Sprintf("  step %d of 5", int(step)+1)))
	}
	b.WriteString("\n\n")

	switch {
	case m.paying:
		b.WriteString(formatter.StylePurple.Render("Processing payment…") + "\n")
	case step == onboarding.Complete:
		b.WriteString(formatter.StyleGreen.Render("Payment verified. Preparing your chart…") + "\n")
	default:
		b.WriteString(m.form.View() + "\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + formatter.StyleRed.Render(m.notice) + "\n")
	}
	b.WriteString("\n" + formatter.Dim("enter continue · esc back · ctrl+c quit"))
	return b.String()
}
