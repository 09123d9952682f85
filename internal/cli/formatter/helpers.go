package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns "Today", "Yesterday", or a date like "Sep 30, 2022".
func HumanDate(t time.Time) string {
	return HumanDateFrom(t, time.Now())
}

// HumanDateFrom is HumanDate relative to now.
func HumanDateFrom(t, now time.Time) string {
	t = t.In(now.Location())
	y, m, d := t.Date()
	if ny, nm, nd := now.Date(); y == ny && m == nm && d == nd {
		return "Today"
	}
	if py, pm, pd := now.AddDate(0, 0, -1).Date(); y == py && m == pm && d == pd {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp formats t as "Sep 30, 2022 14:05", or "Today 14:05".
func HumanTimestamp(t, now time.Time) string {
	return HumanDateFrom(t, now) + " " + t.In(now.Location()).Format("15:04")
}

// Field renders a "Label:  value" line with the label dimmed and padded.
func Field(label, value string) string {
	return fmt.Sprintf("%s %s", StyleDim.Render(fmt.Sprintf("%-11s", label+":")), value)
}

// Bullets renders items as an indented list with a colored marker.
func Bullets(items []string, marker string, style lipgloss.Style) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "  %s %s\n", style.Render(marker), item)
	}
	return b.String()
}

// Wrap soft-wraps text to width columns. Width <= 0 leaves it unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
