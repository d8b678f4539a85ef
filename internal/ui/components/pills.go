package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/ui/theme"
)

// Pills renders a row of selectable labels, wrapping onto extra lines when
// they do not fit in width.
func Pills(labels []string, selected string, width int) string {
	active := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Background(theme.BgCard).
		Padding(0, 1)

	var lines []string
	var line string
	for _, l := range labels {
		style := inactive
		if l == selected {
			style = active
		}
		pill := style.Render(l)
		if line != "" && lipgloss.Width(line)+1+lipgloss.Width(pill) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += pill
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
