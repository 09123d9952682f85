// Package formatter renders astroveda output for the terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired palette, with gold reserved for premium.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorGold   = lipgloss.Color("#d79921")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleGold   = lipgloss.NewStyle().Foreground(ColorGold).Bold(true)
)

// TierBadge returns a colored plan indicator such as "★ PREMIUM".
func TierBadge(plan domain.PaymentPlan) string {
	switch plan {
	case domain.TierPremium:
		return StyleGold.Render("★ PREMIUM")
	case domain.TierBasic:
		return StyleGreen.Render("● BASIC")
	default:
		return StyleDim.Render("○ NO PLAN")
	}
}

// FocusBadge renders the life focus in purple. Empty means the default focus.
func FocusBadge(f domain.LifeFocus) string {
	if f == "" {
		f = domain.DefaultLifeFocus
	}
	return StylePurple.Render(string(f))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
