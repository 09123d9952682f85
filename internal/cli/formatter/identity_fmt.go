package formatter

import (
	"strings"

	"github.com/alexanderramin/astroveda/internal/domain"
)

// FormatIdentity renders the birth chart summary card for a profile.
func FormatIdentity(p domain.UserProfile, id domain.AstroIdentity) string {
	var b strings.Builder

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "Seeker"
	}
	b.WriteString(StyleGold.Render("✦ "+name) + "  " + FocusBadge(p.Focus) + "\n\n")

	b.WriteString(Field("Lagna", StyleBold.Render(id.Lagna)) + "\n")
	b.WriteString(Field("Rashi", StyleBold.Render(id.Rashi)) + "\n")
	b.WriteString(Field("Nakshatra", StyleBold.Render(id.Nakshatra)) + "\n")
	b.WriteString(Field("Dasha", StyleBlue.Render(id.Dasha)) + "\n")

	if len(id.Strengths) > 0 {
		b.WriteString("\n" + Dim("Core strengths") + "\n")
		b.WriteString(Bullets(id.Strengths, "•", StyleGreen))
	}

	if p.DateOfBirth != "" {
		b.WriteString("\n" + Dim("Born "+p.DateOfBirth+" "+p.TimeOfBirth+" in "+p.PlaceOfBirth))
	}
	return RenderBox("Your Chart", strings.TrimRight(b.String(), "\n"))
}
