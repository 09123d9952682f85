package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/onboarding"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillTo submits valid answers until the model reaches step.
func fillTo(t *testing.T, m *onboardModel, step onboarding.Step) {
	t.Helper()
	answers := map[onboarding.Step]func(){
		onboarding.NameEntry:      func() { m.value = "Aarav" },
		onboarding.FocusSelection: func() { m.focus = domain.FocusFinance },
		onboarding.DateEntry:      func() { m.value = "1994-03-12" },
		onboarding.TimeEntry:      func() { m.value = "06:45" },
		onboarding.PlaceEntry:     func() { m.value = "Pune" },
	}
	for m.machine.Step() < step {
		answers[m.machine.Step()]()
		m.submit()
		require.Empty(t, m.notice)
	}
}

// runCmd executes cmd and delivers its message, returning the follow-up.
func runCmd(t *testing.T, m *onboardModel, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := m.Update(cmd())
	return next
}

func TestOnboardModel_WalksAllSteps(t *testing.T) {
	app, _ := testApp(t)
	m := newOnboardModel(context.Background(), app)
	assert.Contains(t, m.View(), "step 1 of 5")

	fillTo(t, m, onboarding.PaymentGate)
	assert.Equal(t, onboarding.PaymentGate, m.machine.Step())
	assert.Contains(t, m.View(), "100%")

	m.tier = domain.TierPremium
	checkoutCmd := m.submit()
	assert.True(t, m.paying)
	assert.Contains(t, m.View(), "Processing payment")

	finalize := runCmd(t, m, checkoutCmd)
	assert.Equal(t, onboarding.Complete, m.machine.Step())
	assert.Equal(t, domain.TierPremium, app.Gate.Plan())

	quit := runCmd(t, m, finalize)
	require.NotNil(t, m.profile)
	assert.Equal(t, "Aarav", m.profile.Name)
	assert.Equal(t, domain.FocusFinance, m.profile.Focus)
	assert.IsType(t, tea.QuitMsg{}, quit())

	stored, err := app.Session.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, m.profile.ID, stored.ID)
}

func TestOnboardModel_InvalidValueStaysOnStep(t *testing.T) {
	app, _ := testApp(t)
	m := newOnboardModel(context.Background(), app)
	fillTo(t, m, onboarding.DateEntry)

	m.value = "12-03-1994"
	m.submit()
	assert.Equal(t, onboarding.DateEntry, m.machine.Step())
	assert.Equal(t, "Date of birth must be YYYY-MM-DD.", m.notice)
	assert.Contains(t, m.View(), "Date of birth must be YYYY-MM-DD.")

	m.value = "1994-03-12"
	m.submit()
	assert.Equal(t, onboarding.TimeEntry, m.machine.Step())
	assert.Empty(t, m.notice)
}

func TestOnboardModel_BlankNameRejected(t *testing.T) {
	app, _ := testApp(t)
	m := newOnboardModel(context.Background(), app)
	m.value = "   "
	m.submit()
	assert.Equal(t, onboarding.NameEntry, m.machine.Step())
	assert.Equal(t, "Name is required.", m.notice)
}

func TestOnboardModel_EscGoesBackAndKeepsAnswers(t *testing.T) {
	app, _ := testApp(t)
	m := newOnboardModel(context.Background(), app)
	fillTo(t, m, onboarding.TimeEntry)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, onboarding.DateEntry, m.machine.Step())
	assert.Equal(t, "1994-03-12", m.value, "form is prefilled with the earlier answer")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, onboarding.FocusSelection, m.machine.Step())
	assert.Equal(t, domain.FocusFinance, m.focus)
}

func TestOnboardModel_EscAtFirstStepDoesNothing(t *testing.T) {
	app, _ := testApp(t)
	m := newOnboardModel(context.Background(), app)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, onboarding.NameEntry, m.machine.Step())
}

func TestOnboardModel_CancelledCheckoutStaysAtGate(t *testing.T) {
	app, _ := testApp(t)
	app.Checkout = cancelledCheckout{}
	m := newOnboardModel(context.Background(), app)
	fillTo(t, m, onboarding.PaymentGate)

	runCmd(t, m, m.submit())
	assert.False(t, m.paying)
	assert.Equal(t, onboarding.PaymentGate, m.machine.Step())
	assert.Contains(t, m.notice, "cancelled")
	assert.Equal(t, domain.PlanNone, app.Gate.Plan())
	assert.Nil(t, m.profile)
}

func TestOnboardModel_EscIgnoredWhilePaying(t *testing.T) {
	app, _ := testApp(t)
	m := newOnboardModel(context.Background(), app)
	fillTo(t, m, onboarding.PaymentGate)
	m.submit()

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, onboarding.PaymentGate, m.machine.Step())
	assert.True(t, m.paying)
}

func TestOnboardModel_CtrlCQuits(t *testing.T) {
	app, _ := testApp(t)
	m := newOnboardModel(context.Background(), app)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quit)
}

func TestPlanOptionsListBothTiers(t *testing.T) {
	opts := planOptions()
	require.Len(t, opts, 2)
	assert.Equal(t, domain.TierBasic, opts[0].Value)
	assert.Contains(t, opts[0].Key, "₹10")
	assert.Equal(t, domain.TierPremium, opts[1].Value)
	assert.Contains(t, opts[1].Key, "₹99")
}
