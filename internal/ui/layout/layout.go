// Package layout draws the application chrome: the header and footer bars
// around the active screen, and the fallback shown when the terminal is
// too small.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/ui/theme"
)

// Smallest usable terminal, and the size below which screens switch to
// their compact rendering.
const (
	MinWidth  = 80
	MinHeight = 24

	compactWidth  = 100
	compactHeight = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Fits reports whether the terminal is large enough to draw the app.
func Fits(width, height int) bool {
	return width >= MinWidth && height >= MinHeight
}

// Compact reports whether screens should use their condensed layout.
func Compact(width, height int) bool {
	return width < compactWidth || height < compactHeight
}

// Truncate cuts s to at most width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// TooSmall fills the terminal with a resize request.
func TooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small!\n\nNetPrep needs at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height))
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 1)

// inner is the text width available inside a bar of the given width.
func inner(width int) int {
	return max(width-barStyle.GetHorizontalFrameSize(), 0)
}

// Header renders the top bar: the app name, the screen title centered and
// an optional status on the right.
func Header(title, status string, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("NetPrep")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	w := inner(width)
	side := max((w-lipgloss.Width(mid))/2, lipgloss.Width(brand)+1)
	line := lipgloss.PlaceHorizontal(side, lipgloss.Left, brand) + mid
	line += lipgloss.PlaceHorizontal(max(w-lipgloss.Width(line), lipgloss.Width(right)), lipgloss.Right, right)

	return barStyle.Width(width).Render(line)
}

// Footer renders the key hints. When they do not fit, descriptions are
// dropped from the right until they do.
func Footer(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	render := func(full int) string {
		parts := make([]string, len(hints))
		for i, h := range hints {
			parts[i] = key.Render(h.Key)
			if i < full {
				parts[i] += " " + desc.Render(h.Description)
			}
		}
		return strings.Join(parts, "   ")
	}

	w := inner(width)
	full := len(hints)
	line := render(full)
	for full > 0 && lipgloss.Width(line) > w {
		full--
		line = render(full)
	}
	return barStyle.Width(width).Render(line)
}

// Compose stacks header, body and footer, sizing the body to the height
// left between the bars.
func Compose(header, body, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// BodyHeight is the height Compose will give the body.
func BodyHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}
