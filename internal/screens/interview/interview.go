// Package interview is the Q&A explorer screen: search, category pills and
// a single-open accordion of interview questions.
package interview

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	qa "github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/screen"
	"github.com/abhisek/netprep/internal/session"
	"github.com/abhisek/netprep/internal/store"
	"github.com/abhisek/netprep/internal/tutor"
	"github.com/abhisek/netprep/internal/ui/components"
	"github.com/abhisek/netprep/internal/ui/layout"
)

type explanationMsg struct {
	id  int
	exp *tutor.Explanation
	err error
}

// InterviewScreen implements screen.Screen for interview mode.
type InterviewScreen struct {
	explorer *qa.Explorer
	search   components.SearchInput
	tracker  *session.Tracker
	tutor    *tutor.Service
	log      *zap.Logger

	cursor int // index into explorer.Visible()

	pending      map[int]bool
	explanations map[int]*tutor.Explanation
	explainErrs  map[int]string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.Leaver = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen over questions. repo and tut may be nil.
func New(questions []qa.Question, repo store.EventRepo, tut *tutor.Service, log *zap.Logger) *InterviewScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &InterviewScreen{
		explorer:     qa.NewExplorer(questions),
		search:       components.NewSearchInput("Search questions..."),
		tracker:      session.New(repo, store.ModeInterview, log),
		tutor:        tut,
		log:          log,
		pending:      make(map[int]bool),
		explanations: make(map[int]*tutor.Explanation),
		explainErrs:  make(map[int]string),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	return tea.Batch(s.search.Init(), s.startSession())
}

func (s *InterviewScreen) Title() string {
	return "Interview Prep"
}

func (s *InterviewScreen) Status() string {
	return fmt.Sprintf("%d/%d shown", len(s.explorer.Visible()), len(s.explorer.Questions()))
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Type", Description: "Search"},
		{Key: "Tab", Description: "Category"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Answer"},
	}
	if s.tutor.Available() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+E", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Leave records the end of the interview session.
func (s *InterviewScreen) Leave() tea.Cmd {
	tr := s.tracker
	return func() tea.Msg {
		_ = tr.End(context.Background())
		return nil
	}
}

func (s *InterviewScreen) startSession() tea.Cmd {
	tr := s.tracker
	return func() tea.Msg {
		_ = tr.Start(context.Background())
		return nil
	}
}

// Explorer exposes the underlying explorer state.
func (s *InterviewScreen) Explorer() *qa.Explorer {
	return s.explorer
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		delete(s.pending, msg.id)
		if msg.err != nil {
			s.explainErrs[msg.id] = explainErrorText(msg.err)
			return s, nil
		}
		s.explanations[msg.id] = msg.exp
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Pastes and cursor blinks also reach the search box.
	return s, s.updateSearch(msg)
}

func (s *InterviewScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.explorer.NextCategory()
		s.clampCursor()
		return s, nil
	case "shift+tab":
		s.explorer.PrevCategory()
		s.clampCursor()
		return s, nil
	case "up":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down":
		if s.cursor < len(s.explorer.Visible())-1 {
			s.cursor++
		}
		return s, nil
	case "pgup":
		s.cursor = max(s.cursor-pageStep, 0)
		return s, nil
	case "pgdown":
		s.cursor = max(min(s.cursor+pageStep, len(s.explorer.Visible())-1), 0)
		return s, nil
	case "enter":
		return s, s.toggleCurrent()
	case "ctrl+e":
		return s, s.explainCurrent()
	}

	return s, s.updateSearch(msg)
}

// updateSearch feeds msg to the search box and refilters when the text
// changed.
func (s *InterviewScreen) updateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var changed bool
	s.search, cmd, changed = s.search.Update(msg)
	if changed {
		s.explorer.SetSearch(s.search.Value())
		s.cursor = 0
	}
	return cmd
}

const pageStep = 5

func (s *InterviewScreen) clampCursor() {
	n := len(s.explorer.Visible())
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *InterviewScreen) current() (qa.Question, bool) {
	vis := s.explorer.Visible()
	if s.cursor < 0 || s.cursor >= len(vis) {
		return qa.Question{}, false
	}
	return vis[s.cursor], true
}

func (s *InterviewScreen) toggleCurrent() tea.Cmd {
	q, ok := s.current()
	if !ok {
		return nil
	}
	s.explorer.Toggle(q.ID)
	if !s.explorer.Disclosure().IsExpanded(q.ID) {
		return nil
	}
	tr := s.tracker
	return func() tea.Msg {
		_ = tr.Revealed(context.Background(), q)
		return nil
	}
}

func (s *InterviewScreen) explainCurrent() tea.Cmd {
	q, ok := s.current()
	if !ok || !s.explorer.Disclosure().IsExpanded(q.ID) {
		return nil
	}
	if s.pending[q.ID] || s.explanations[q.ID] != nil {
		return nil
	}
	if !s.tutor.Available() {
		s.explainErrs[q.ID] = explainErrorText(tutor.ErrUnavailable)
		return nil
	}
	delete(s.explainErrs, q.ID)
	s.pending[q.ID] = true
	tut := s.tutor
	return func() tea.Msg {
		exp, err := tut.Explain(context.Background(), q)
		return explanationMsg{id: q.ID, exp: exp, err: err}
	}
}

func explainErrorText(err error) string {
	if errors.Is(err, tutor.ErrUnavailable) {
		return "Tutor unavailable. Set an LLM API key to enable explanations."
	}
	return "Tutor request failed: " + err.Error()
}
