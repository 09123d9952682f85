// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and returned Cmds are run and fed back until
// nothing is left. Cmds that block longer than the driver's timeout, such
// as spinner ticks and cursor blinks, are dropped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// MaxDrainDepth bounds how many chained Cmds one Send may run.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates instant Cmds (fake services, message
// factories) from timer-driven ones. Spinner ticks fire after 80ms+.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg comes out of a Cmd.
	Quitting bool

	// Seen records the type of every message delivered to Update.
	Seen []string

	cmdTimeout time.Duration
}

type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.deliver(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout raises the per-Cmd budget for models whose Cmds do real
// I/O, such as a request to an httptest server.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg and drains whatever it triggers.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.drain(d.deliver(msg), 0)
}

func (d *Driver) PressKey(r rune) { d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}) }
func (d *Driver) PressEnter()     { d.Send(tea.KeyMsg{Type: tea.KeyEnter}) }
func (d *Driver) PressEsc()       { d.Send(tea.KeyMsg{Type: tea.KeyEsc}) }
func (d *Driver) PressCtrlC()     { d.Send(tea.KeyMsg{Type: tea.KeyCtrlC}) }
func (d *Driver) PressDown()      { d.Send(tea.KeyMsg{Type: tea.KeyDown}) }
func (d *Driver) PressUp()        { d.Send(tea.KeyMsg{Type: tea.KeyUp}) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

// RequireView fails the test unless the view contains every fragment.
func (d *Driver) RequireView(fragments ...string) {
	d.T.Helper()
	view := d.View()
	for _, f := range fragments {
		require.Contains(d.T, view, f)
	}
}

func (d *Driver) deliver(msg tea.Msg) tea.Cmd {
	d.Seen = append(d.Seen, fmt.Sprintf("%T", msg))
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := d.run(cmd)
	switch m := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range m {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.deliver(m)
	default:
		if isTimerMsg(msg) {
			return
		}
		d.drain(d.deliver(msg), depth+1)
	}
}

// run executes cmd, giving up after the driver's timeout.
func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.cmdTimeout):
		return nil
	}
}

// isTimerMsg matches the unexported blink and tick messages of the bubbles
// cursor and spinner, which would otherwise schedule themselves forever.
func isTimerMsg(msg tea.Msg) bool {
	t := strings.ToLower(fmt.Sprintf("%T", msg))
	return strings.Contains(t, "blink") || strings.HasSuffix(t, "spinner.tickmsg")
}
