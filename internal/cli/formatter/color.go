package formatter

import (
	"fmt"
	"strings"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
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
)

// UrgencyStyle returns the style carrying an urgency category's color.
// Overdue and the near-term buckets burn red, attention is yellow, the
// comfortable buckets stay calm.
func UrgencyStyle(cat domain.UrgencyCategory) lipgloss.Style {
	switch cat {
	case domain.UrgencyOverdue:
		return StyleRed
	case domain.UrgencyDueToday, domain.UrgencyDueIn1Day:
		return StyleRed
	case domain.UrgencyDueIn2Days, domain.UrgencyDueIn3Days, domain.UrgencyAttention:
		return StyleYellow
	case domain.UrgencyOK:
		return StyleGreen
	case domain.UrgencyCompleted:
		return StyleBlue
	default:
		return StyleDim
	}
}

// UrgencyLabel returns a colored indicator such as "● OVERDUE".
func UrgencyLabel(cat domain.UrgencyCategory) string {
	text := strings.ToUpper(strings.ReplaceAll(string(cat), "_", " "))
	return UrgencyStyle(cat).Render("● " + text)
}

// StatusPill renders a task status as a colored label.
func StatusPill(st domain.TaskStatus) string {
	switch st {
	case domain.TaskDone:
		return StyleGreen.Render("done")
	case domain.TaskInProgress:
		return StyleYellow.Render("in progress")
	case domain.TaskBacklog:
		return StyleDim.Render("backlog")
	default:
		return StyleFg.Render("to do")
	}
}

// KRStatusPill renders a key result status as a colored label.
func KRStatusPill(st domain.KRStatus) string {
	switch st {
	case domain.KRDone:
		return StyleGreen.Render("done")
	case domain.KRInProgress:
		return StyleYellow.Render("in progress")
	default:
		return StyleFg.Render("to do")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
