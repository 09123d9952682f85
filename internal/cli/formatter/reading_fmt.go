package formatter

import (
	"strings"

	"github.com/alexanderramin/astroveda/internal/domain"
)

const meterWidth = 20

// FormatPrediction renders a reading in the order it was written:
// conclusion, reassurance, reason, action, then timing.
func FormatPrediction(p *domain.Prediction, plan domain.PaymentPlan, width int) string {
	if p == nil {
		return ""
	}
	wrap := func(s string) string { return Wrap(s, width) }

	var b strings.Builder
	b.WriteString(TierBadge(plan) + "\n\n")
	b.WriteString(StyleGold.Render(wrap(p.Headline)) + "\n\n")
	b.WriteString(StyleFg.Render(wrap(p.Reassurance)) + "\n\n")

	b.WriteString(Header("Why this is happening") + "\n")
	b.WriteString(wrap(p.Interpretation) + "\n")
	if p.AstrologyLogic != "" {
		b.WriteString(Dim(wrap(p.AstrologyLogic)) + "\n")
	}

	b.WriteString("\n" + Header("What to do") + "\n")
	b.WriteString(Bullets(p.ActionsDo, "✓", StyleGreen))
	if len(p.ActionsAvoid) > 0 {
		b.WriteString("\n" + Header("What to avoid") + "\n")
		b.WriteString(Bullets(p.ActionsAvoid, "✗", StyleRed))
	}

	b.WriteString("\n" + Header("Timing") + "\n")
	b.WriteString(wrap(p.Timing) + "\n")

	if p.OneSmallStep != "" {
		b.WriteString("\n" + StylePurple.Render("One small step: ") + wrap(p.OneSmallStep) + "\n")
	}
	return b.String()
}

// FormatSimulation renders both paths and the risk/growth meters.
func FormatSimulation(r *domain.SimulationResult, width int) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleBlue.Render("A · Act now") + "\n")
	b.WriteString(Wrap(r.OptionA, width) + "\n\n")
	b.WriteString(StyleYellow.Render("B · Wait") + "\n")
	b.WriteString(Wrap(r.OptionB, width) + "\n\n")
	b.WriteString(RenderMeter("Risk", r.RiskFactor, meterWidth, StyleRed) + "\n")
	b.WriteString(RenderMeter("Growth", r.GrowthFactor, meterWidth, StyleGreen) + "\n")
	if r.Explanation != "" {
		b.WriteString("\n" + Dim(Wrap(r.Explanation, width)) + "\n")
	}
	return b.String()
}
