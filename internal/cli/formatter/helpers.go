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
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatDate renders a date pointer, or a dimmed placeholder when nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return StyleFg.Render(t.Format("2006-01-02"))
}

// FormatDaysRemaining renders a signed day count as "3d left", "today" or
// "5d late".
func FormatDaysRemaining(days *int) string {
	if days == nil {
		return Dim("--")
	}
	switch {
	case *days < 0:
		return StyleRed.Render(fmt.Sprintf("%dd late", -*days))
	case *days == 0:
		return StyleYellow.Render("today")
	default:
		return StyleFg.Render(fmt.Sprintf("%dd left", *days))
	}
}
