package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/router"
	"github.com/abhisek/netprep/internal/screen"
	"github.com/abhisek/netprep/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const tagline = "Ace your computer networking interview"

const routerArt = `  ╭───────────╮
  │ ┌───────┐ │
  │ │ ● ● ● │ │
  │ └───┬───┘ │
  │  ┌──┴──┐  │
  │  ▣     ▣  │
  │           │
  ╰───────────╯`

// signal frames blink on either side of the router
var signalFrames = []string{"·", "•", "●"}

type tickMsg time.Time

// WelcomeScreen shows a short splash, then replaces itself with the screen
// produced by its factory on the first key press.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Swap(w.next())
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(routerArt)

	if w.elapsed >= phase1End {
		sig := signalFrames[w.tickCount%len(signalFrames)]
		left := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sig + " " + sig)
		right := lipgloss.NewStyle().Foreground(theme.Success).Render(sig + " " + sig)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 5 {
			lines[5] = left + " " + lines[5] + " " + right
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
