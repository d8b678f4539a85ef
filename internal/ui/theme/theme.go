package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, slate and indigo with semantic accents
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#22D3EE") // Cyan
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	Highlight = lipgloss.Color("#FACC15") // Yellow, selected buttons
	Info      = lipgloss.Color("#3B82F6") // Blue
	Purple    = lipgloss.Color("#A855F7")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// CategoryColor returns the badge colour for an interview category.
// General is green, Security red, Protocols purple, everything else blue.
func CategoryColor(category string) color.Color {
	switch category {
	case "General":
		return Success
	case "Security":
		return Error
	case "Protocols":
		return Purple
	default:
		return Info
	}
}

// CategoryBadge renders "[category]" in the category's colour.
func CategoryBadge(category string) string {
	return lipgloss.NewStyle().
		Foreground(CategoryColor(category)).
		Bold(true).
		Render("[" + category + "]")
}
