package domain

import (
	"strings"
	"time"
)

// Layouts accepted for the birth date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// LifeFocus is the area of life the user wants clarity on.
type LifeFocus string

const (
	FocusCareer          LifeFocus = "Career"
	FocusRelationships   LifeFocus = "Relationships"
	FocusEmotionalHealth LifeFocus = "Emotional Health"
	FocusFinance         LifeFocus = "Finance"
	FocusBigDecision     LifeFocus = "Big Decision"
)

// DefaultLifeFocus is preselected when onboarding starts.
const DefaultLifeFocus = FocusEmotionalHealth

// LifeFocuses lists every focus in display order.
var LifeFocuses = []LifeFocus{
	FocusCareer,
	FocusRelationships,
	FocusEmotionalHealth,
	FocusFinance,
	FocusBigDecision,
}

// Valid reports whether f is one of the known focus categories.
func (f LifeFocus) Valid() bool {
	for _, known := range LifeFocuses {
		if f == known {
			return true
		}
	}
	return false
}

// BirthData is collected field by field during onboarding.
type BirthData struct {
	Name         string `json:"name"`
	DateOfBirth  string `json:"dob"`
	TimeOfBirth  string `json:"tob"`
	PlaceOfBirth string `json:"pob"`
}

// Complete reports whether all four fields are non-blank.
func (b BirthData) Complete() bool {
	return strings.TrimSpace(b.Name) != "" &&
		strings.TrimSpace(b.DateOfBirth) != "" &&
		strings.TrimSpace(b.TimeOfBirth) != "" &&
		strings.TrimSpace(b.PlaceOfBirth) != ""
}

// UserProfile is the finalized result of onboarding.
type UserProfile struct {
	ID string `json:"id"`
	BirthData
	Focus     LifeFocus      `json:"context"`
	Identity  *AstroIdentity `json:"astroIdentity,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Key identifies the profile for request deduplication. Falls back to the
// birth data when the profile has not been assigned an ID.
func (p UserProfile) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return strings.Join([]string{p.Name, p.DateOfBirth, p.TimeOfBirth, p.PlaceOfBirth, string(p.Focus)}, "|")
}
