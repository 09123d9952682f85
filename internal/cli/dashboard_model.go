package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/astroveda/internal/cli/formatter"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type readingMsg struct {
	prediction *domain.Prediction
	err        error
}

type simulationMsg struct {
	result *domain.SimulationResult
	err    error
}

type chartResetMsg struct{ err error }

type dashboardKeys struct {
	Retry    key.Binding
	Simulate key.Binding
	Submit   key.Binding
	Blur     key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Simulate: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "simulate a decision")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Blur:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset chart")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Rows taken by the header, simulator and help line around the viewport.
const dashboardChrome = 12

// dashboardModel shows the reading for the session's plan and hosts the
// decision simulator.
type dashboardModel struct {
	ctx     context.Context
	app     *App
	profile domain.UserProfile
	keys    dashboardKeys

	spinner  spinner.Model
	viewport viewport.Model
	input    textarea.Model
	width    int

	loading    bool
	prediction *domain.Prediction
	readingErr error

	simulating bool
	simulation *domain.SimulationResult
	simErr     error

	chartReset bool
}

func newDashboardModel(ctx context.Context, app *App, profile domain.UserProfile) *dashboardModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)

	ta := textarea.New()
	ta.Placeholder = "Should I switch jobs this year?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetHeight(2)
	ta.SetWidth(60)

	m := &dashboardModel{
		ctx:      ctx,
		app:      app,
		profile:  profile,
		keys:     newDashboardKeys(),
		spinner:  sp,
		viewport: viewport.New(80, 24-dashboardChrome),
		input:    ta,
		width:    80,
	}
	m.refresh()
	return m
}

func (m *dashboardModel) Init() tea.Cmd {
	if !m.app.Gate.Allowed() {
		return nil
	}
	return m.startReading()
}

// spin starts the spinner unless a reading or simulation already keeps it
// ticking. Each extra Tick would start a second chain and double its speed.
func (m *dashboardModel) spin() tea.Cmd {
	if m.loading || m.simulating {
		return nil
	}
	return m.spinner.Tick
}

func (m *dashboardModel) startReading() tea.Cmd {
	tick := m.spin()
	m.loading = true
	m.readingErr = nil
	m.refresh()

	ctx, app, profile := m.ctx, m.app, m.profile
	fetch := func() tea.Msg {
		readings, err := app.readings()
		if err != nil {
			return readingMsg{err: err}
		}
		p, err := readings.Reading(ctx, profile)
		return readingMsg{prediction: p, err: err}
	}
	return tea.Batch(tick, fetch)
}

func (m *dashboardModel) startSimulation() tea.Cmd {
	decision := strings.TrimSpace(m.input.Value())
	tick := m.spin()
	m.simulating = true
	m.simErr = nil
	m.input.Blur()

	ctx, app, profile := m.ctx, m.app, m.profile
	run := func() tea.Msg {
		readings, err := app.readings()
		if err != nil {
			return simulationMsg{err: err}
		}
		r, err := readings.Simulate(ctx, profile, decision)
		return simulationMsg{result: r, err: err}
	}
	return tea.Batch(tick, run)
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(3, msg.Height-dashboardChrome)
		m.input.SetWidth(min(msg.Width-4, 76))
		m.refresh()
		return m, nil

	case readingMsg:
		m.loading = false
		m.prediction, m.readingErr = msg.prediction, msg.err
		m.refresh()
		return m, nil

	case simulationMsg:
		m.simulating = false
		m.simulation, m.simErr = msg.result, msg.err
		return m, nil

	case chartResetMsg:
		if msg.err != nil {
			m.readingErr = msg.err
			m.refresh()
			return m, nil
		}
		m.chartReset = true
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.loading && !m.simulating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading {
			m.refresh()
		}
		return m, cmd

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *dashboardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Blur):
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.startSimulation()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Retry):
		if m.loading || !m.app.Gate.Allowed() {
			return m, nil
		}
		return m, m.startReading()
	case key.Matches(msg, m.keys.Simulate):
		if m.simulating {
			return m, nil
		}
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Reset):
		ctx, session := m.ctx, m.app.Session
		return m, func() tea.Msg {
			return chartResetMsg{err: session.Reset(ctx, false)}
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the reading into the viewport.
func (m *dashboardModel) refresh() {
	m.viewport.SetContent(m.readingView())
}

func (m *dashboardModel) readingView() string {
	wrap := max(20, min(m.width-2, 78))
	switch {
	case !m.app.Gate.Allowed(), errors.Is(m.readingErr, service.ErrPlanRequired):
		return formatter.Dim("No plan yet. Run `astroveda onboard` and choose Basic or Premium to unlock your reading.")
	case m.loading:
		return m.spinner.View() + " " + formatter.Dim("Reading your chart…")
	case errors.Is(m.readingErr, errReadingsDisabled):
		return formatter.StyleYellow.Render(m.readingErr.Error())
	case m.readingErr != nil:
		return formatter.StyleRed.Render("The stars are clouded right now.") + "\n" +
			formatter.Dim(formatter.Wrap(m.readingErr.Error(), wrap)) + "\n\n" +
			formatter.Dim("Press r to try again.")
	case m.prediction == nil:
		return formatter.Dim("No reading yet. Press r to fetch one.")
	}
	return formatter.FormatPrediction(m.prediction, m.app.Gate.Plan(), wrap)
}

func (m *dashboardModel) simulatorView() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Decision simulator") + "\n")
	switch {
	case m.simulating:
		b.WriteString(m.spinner.View() + " " + formatter.Dim("Weighing both paths…") + "\n")
	case m.simErr != nil:
		b.WriteString(formatter.StyleRed.Render("Simulation failed: ") + formatter.Dim(m.simErr.Error()) + "\n")
	case m.simulation != nil && !m.input.Focused():
		b.WriteString(formatter.FormatSimulation(m.simulation, max(20, min(m.width-2, 78))))
	}
	if m.input.Focused() {
		b.WriteString(m.input.View() + "\n")
	}
	return b.String()
}

func (m *dashboardModel) helpView() string {
	bindings := []key.Binding{m.keys.Simulate, m.keys.Retry, m.keys.Reset, m.keys.Quit}
	if m.input.Focused() {
		bindings = []key.Binding{m.keys.Submit, m.keys.Blur}
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return formatter.Dim(strings.Join(parts, " · "))
}

func (m *dashboardModel) View() string {
	id := identityOf(m.profile)
	header := formatter.StyleGold.Render("✦ ASTROVEDA") + "  " +
		formatter.Bold(m.profile.Name) + formatter.Dim(" · "+id.Lagna+" Lagna · "+id.Dasha) + "  " +
		formatter.FocusBadge(m.profile.Focus)

	return strings.Join([]string{
		header,
		"",
		m.viewport.View(),
		"",
		m.simulatorView(),
		m.helpView(),
	}, "\n")
}
