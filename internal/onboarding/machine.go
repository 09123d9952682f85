package onboarding

import (
	"strings"
	"time"

	"github.com/alexanderramin/astroveda/internal/astro"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/google/uuid"
)

// Machine holds the in-progress profile and the current step. It is owned
// by a single flow and is not safe for concurrent use.
type Machine struct {
	step    Step
	data    domain.BirthData
	focus   domain.LifeFocus
	profile *domain.UserProfile

	now   func() time.Time
	newID func() string
}

// New starts a flow at NameEntry with the default life focus selected.
func New() *Machine {
	return &Machine{
		step:  NameEntry,
		focus: domain.DefaultLifeFocus,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Step returns the current step.
func (m *Machine) Step() Step { return m.step }

// BirthData returns the fields entered so far.
func (m *Machine) BirthData() domain.BirthData { return m.data }

// Focus returns the selected life focus.
func (m *Machine) Focus() domain.LifeFocus { return m.focus }

func (m *Machine) SetName(v string)            { m.data.Name = v }
func (m *Machine) SetFocus(f domain.LifeFocus) { m.focus = f }
func (m *Machine) SetDateOfBirth(v string)     { m.data.DateOfBirth = v }
func (m *Machine) SetTimeOfBirth(v string)     { m.data.TimeOfBirth = v }
func (m *Machine) SetPlaceOfBirth(v string)    { m.data.PlaceOfBirth = v }

// Next advances one step once the current step's field is valid. From
// PaymentGate the only way forward is Finish.
func (m *Machine) Next() error {
	to, ok := target(m.step, EventNext)
	if !ok {
		return transitionError(m.step, EventNext)
	}
	if err := m.validate(m.step); err != nil {
		return err
	}
	m.step = to
	return nil
}

// Back returns to the previous step. Entered values are kept.
func (m *Machine) Back() error {
	to, ok := target(m.step, EventBack)
	if !ok {
		return transitionError(m.step, EventBack)
	}
	m.step = to
	return nil
}

// Finish moves PaymentGate to Complete once the checkout reports a tier.
// It derives the identity and returns the finalized profile.
func (m *Machine) Finish(tier domain.Tier) (domain.UserProfile, error) {
	to, ok := target(m.step, EventPaid)
	if !ok {
		return domain.UserProfile{}, transitionError(m.step, EventPaid)
	}
	if !tier.Valid() {
		return domain.UserProfile{}, &ValidationError{Step: m.step, Field: "tier", Reason: "must be basic or premium"}
	}

	data := domain.BirthData{
		Name:         strings.TrimSpace(m.data.Name),
		DateOfBirth:  strings.TrimSpace(m.data.DateOfBirth),
		TimeOfBirth:  strings.TrimSpace(m.data.TimeOfBirth),
		PlaceOfBirth: strings.TrimSpace(m.data.PlaceOfBirth),
	}
	identity := astro.DeriveIdentity(data)
	m.profile = &domain.UserProfile{
		ID:        m.newID(),
		BirthData: data,
		Focus:     m.focus,
		Identity:  &identity,
		CreatedAt: m.now().UTC(),
	}
	m.step = to
	return *m.profile, nil
}

// Profile returns the finalized profile once the flow is Complete.
func (m *Machine) Profile() (domain.UserProfile, bool) {
	if m.profile == nil {
		return domain.UserProfile{}, false
	}
	return *m.profile, true
}

// Reset discards everything entered and returns to NameEntry.
func (m *Machine) Reset() {
	m.step = NameEntry
	m.data = domain.BirthData{}
	m.focus = domain.DefaultLifeFocus
	m.profile = nil
}

func (m *Machine) validate(s Step) error {
	switch s {
	case NameEntry:
		return required(s, "name", m.data.Name)
	case FocusSelection:
		if !m.focus.Valid() {
			return &ValidationError{Step: s, Field: "context", Reason: "is not a known life focus"}
		}
	case DateEntry:
		return formatted(s, "dob", m.data.DateOfBirth, domain.DateLayout, "YYYY-MM-DD")
	case TimeEntry:
		return formatted(s, "tob", m.data.TimeOfBirth, domain.TimeLayout, "HH:MM")
	case PlaceEntry:
		return required(s, "pob", m.data.PlaceOfBirth)
	}
	return nil
}

func required(s Step, field, v string) error {
	if strings.TrimSpace(v) == "" {
		return &ValidationError{Step: s, Field: field, Reason: "is required"}
	}
	return nil
}

func formatted(s Step, field, v, layout, human string) error {
	if err := required(s, field, v); err != nil {
		return err
	}
	if _, err := time.Parse(layout, strings.TrimSpace(v)); err != nil {
		return &ValidationError{Step: s, Field: field, Reason: "must be " + human}
	}
	return nil
}
