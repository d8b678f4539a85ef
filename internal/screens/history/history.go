package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/screen"
	"github.com/abhisek/netprep/internal/store"
	"github.com/abhisek/netprep/internal/ui/components"
	"github.com/abhisek/netprep/internal/ui/layout"
	"github.com/abhisek/netprep/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Reveals  []store.RevealCount
	Err      error
}

// HistoryScreen displays past sessions and answer coverage per category.
type HistoryScreen struct {
	eventRepo store.EventRepo
	totals    map[string]int // questions per category in the bank
	order     []string
	sessions  []store.SessionSummaryRecord
	reveals   map[string]store.RevealCount
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. questions supplies the per-category
// totals the coverage bars are measured against.
func New(eventRepo store.EventRepo, questions []interview.Question) *HistoryScreen {
	totals := make(map[string]int)
	for _, q := range questions {
		totals[string(q.Category)]++
	}
	cats := interview.Categories(questions)
	return &HistoryScreen{
		eventRepo: eventRepo,
		totals:    totals,
		order:     cats[1:],
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		reveals, err := repo.RevealCounts(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions, Reveals: reveals}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.reveals = make(map[string]store.RevealCount, len(msg.Reveals))
			for _, rc := range msg.Reveals {
				s.reveals[rc.Category] = rc
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	cw := components.ContentWidth(width)
	section := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(width, section.Render("Answers reviewed")))
	b.WriteString("\n")
	for _, cat := range s.order {
		rc := s.reveals[cat]
		b.WriteString(center(width, components.CoverageBar(cat, rc.Questions, s.totals[cat], cw)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(width, section.Render("Sessions")))
	b.WriteString("\n")

	if len(s.sessions) == 0 {
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No sessions yet. Start studying!")))
		return b.String()
	}

	for i, sess := range s.sessions {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "> "
		}
		b.WriteString(center(width, style.Render(prefix+sessionLine(sess))))
		b.WriteString("\n")

		if s.expanded[i] {
			dim := lipgloss.NewStyle().Foreground(theme.TextDim)
			b.WriteString(center(width, dim.Render("    Session "+sess.SessionID)))
			b.WriteString("\n")
			b.WriteString(center(width, dim.Render("    Started "+sess.StartedAt.Local().Format(time.Kitchen)+", "+endedText(sess))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func sessionLine(sess store.SessionSummaryRecord) string {
	date := sess.StartedAt.Local().Format("Jan 02, 2006")
	d := sess.Duration()
	duration := fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
	if sess.EndedAt.IsZero() {
		duration = "--:--"
	}

	var activity string
	switch sess.Mode {
	case store.ModeStudy:
		activity = plural(sess.StudyViews, "topic viewed", "topics viewed")
	default:
		activity = plural(sess.Reveals, "answer revealed", "answers revealed")
	}

	return fmt.Sprintf("%s  %-9s  %s  %s", date, modeLabel(sess.Mode), duration, activity)
}

func modeLabel(mode string) string {
	switch mode {
	case store.ModeStudy:
		return "Study"
	case store.ModeInterview:
		return "Interview"
	default:
		return mode
	}
}

func endedText(sess store.SessionSummaryRecord) string {
	if sess.EndedAt.IsZero() {
		return "not ended"
	}
	return "ended " + sess.EndedAt.Local().Format(time.Kitchen)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
