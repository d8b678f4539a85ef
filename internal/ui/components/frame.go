package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/ui/theme"
)

// Inner width bounds for framed content. Boxes stacked inside a frame use
// the same width so their borders line up.
const (
	minContentWidth = 20
	maxContentWidth = 64
)

// ContentWidth is the inner width for content inside a Frame of the given
// outer width.
func ContentWidth(frameWidth int) int {
	pad := frameStyle.GetHorizontalFrameSize() + 4
	return min(max(frameWidth-pad, minContentWidth), maxContentWidth)
}

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(theme.Primary).
	Align(lipgloss.Center, lipgloss.Center)

// Frame draws content centred inside a double border filling width x height.
func Frame(content string, width, height int) string {
	return frameStyle.
		Width(max(width-frameStyle.GetHorizontalBorderSize(), 0)).
		Height(max(height-frameStyle.GetVerticalBorderSize(), 0)).
		Render(content)
}
