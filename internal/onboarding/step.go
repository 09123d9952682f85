// Package onboarding implements the step-by-step collection of birth data
// as an explicit finite-state machine.
package onboarding

// Step is a state of the onboarding flow.
type Step int

const (
	NameEntry Step = iota
	FocusSelection
	DateEntry
	TimeEntry
	PlaceEntry
	PaymentGate
	Complete
)

var stepNames = map[Step]string{
	NameEntry:      "NameEntry",
	FocusSelection: "FocusSelection",
	DateEntry:      "DateEntry",
	TimeEntry:      "TimeEntry",
	PlaceEntry:     "PlaceEntry",
	PaymentGate:    "PaymentGate",
	Complete:       "Complete",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Event drives a transition between steps.
type Event string

const (
	EventNext Event = "next"
	EventBack Event = "back"
	EventPaid Event = "paid"
)

// transitions is the complete transition table. A (step, event) pair that
// is not listed is rejected. PlaceEntry has no edge to Complete, and
// Complete has no outgoing edges; only Reset leaves it.
var transitions = map[Step]map[Event]Step{
	NameEntry:      {EventNext: FocusSelection},
	FocusSelection: {EventNext: DateEntry, EventBack: NameEntry},
	DateEntry:      {EventNext: TimeEntry, EventBack: FocusSelection},
	TimeEntry:      {EventNext: PlaceEntry, EventBack: DateEntry},
	PlaceEntry:     {EventNext: PaymentGate, EventBack: TimeEntry},
	PaymentGate:    {EventPaid: Complete, EventBack: PlaceEntry},
	Complete:       {},
}

// target looks up the destination of e from s.
func target(s Step, e Event) (Step, bool) {
	to, ok := transitions[s][e]
	return to, ok
}

// dataSteps is the number of steps that collect a field.
const dataSteps = 5

// Progress returns the completion percentage shown above the form: the
// 1-based step over five, and 100 from PaymentGate on.
func (s Step) Progress() int {
	if s >= PaymentGate {
		return 100
	}
	return (int(s) + 1) * 100 / dataSteps
}
