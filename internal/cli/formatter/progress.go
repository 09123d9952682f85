package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored by percentage: green >=66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar(pct, width)), pct*100)
}

// RenderMeter renders a labelled bar for a 0-100 percentage in a fixed
// style, e.g. "Risk      ██████░░░░  60%".
func RenderMeter(label string, percent int, width int, style lipgloss.Style) string {
	pct := clamp01(float64(percent) / 100)
	return fmt.Sprintf("%-8s %s %3d%%", label, style.Render(bar(pct, width)), percent)
}

func bar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
