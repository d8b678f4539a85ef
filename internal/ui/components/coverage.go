package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/ui/theme"
)

// CoverageBar renders a labelled bar showing how many of total items have
// been seen, followed by "done/total".
func CoverageBar(label string, done, total, width int) string {
	var frac float64
	if total > 0 {
		frac = float64(done) / float64(total)
	}
	frac = min(max(frac, 0), 1)

	var head string
	if label != "" {
		head = lipgloss.NewStyle().Foreground(theme.Text).Width(16).Render(label) + " "
	}
	tail := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %d/%d", done, total))

	barWidth := width - lipgloss.Width(head) - lipgloss.Width(tail)
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(float64(barWidth) * frac)

	bar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	return head + bar + tail
}
