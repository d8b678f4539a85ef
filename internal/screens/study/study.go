// Package study is the study-mode screen: a topic sidebar and a scrollable
// content pane for the selected sub-topic.
package study

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/netprep/internal/screen"
	"github.com/abhisek/netprep/internal/session"
	"github.com/abhisek/netprep/internal/store"
	"github.com/abhisek/netprep/internal/study"
	"github.com/abhisek/netprep/internal/ui/layout"
)

// StudyScreen implements screen.Screen for study mode.
type StudyScreen struct {
	nav     *study.Navigator
	pos     study.Position
	ok      bool // false when the topic tree has no sub-topics
	scroll  int
	tracker *session.Tracker
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.Leaver = (*StudyScreen)(nil)
var _ screen.StatusProvider = (*StudyScreen)(nil)

// New creates a StudyScreen positioned on the first sub-topic. repo may be nil.
func New(topics []study.Topic, repo store.EventRepo, log *zap.Logger) *StudyScreen {
	nav := study.NewNavigator(topics)
	pos, ok := nav.First()
	return &StudyScreen{
		nav:     nav,
		pos:     pos,
		ok:      ok,
		tracker: session.New(repo, store.ModeStudy, log),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	tr := s.tracker
	start := func() tea.Msg {
		_ = tr.Start(context.Background())
		return nil
	}
	return tea.Sequence(start, s.recordView())
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) Status() string {
	if !s.ok {
		return ""
	}
	return fmt.Sprintf("%d/%d", s.nav.Ordinal(s.pos), s.nav.Len())
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Sub-topic"},
		{Key: "Tab", Description: "Next topic"},
		{Key: "n/p", Description: "Next/Prev"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

// Leave records the end of the study session.
func (s *StudyScreen) Leave() tea.Cmd {
	tr := s.tracker
	return func() tea.Msg {
		_ = tr.End(context.Background())
		return nil
	}
}

// Position returns the selected sub-topic.
func (s *StudyScreen) Position() study.Position {
	return s.pos
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.ok {
		return s, nil
	}

	switch kmsg.String() {
	case "down", "n":
		return s, s.move(s.nav.Next(s.pos))
	case "up", "p":
		return s, s.move(s.nav.Prev(s.pos))
	case "tab":
		return s, s.move(s.topicStart(s.pos.Topic + 1))
	case "shift+tab":
		return s, s.move(s.topicStart(s.pos.Topic - 1))
	case "pgdown", "space", "j":
		s.scroll += scrollStep
	case "pgup", "k":
		s.scroll = max(s.scroll-scrollStep, 0)
	case "home", "g":
		s.scroll = 0
	}
	return s, nil
}

const scrollStep = 5

// topicStart returns the first sub-topic of the topic at index ti, skipping
// topics without sub-topics in the direction of travel.
func (s *StudyScreen) topicStart(ti int) (study.Position, bool) {
	topics := s.nav.Topics()
	step := 1
	if ti < s.pos.Topic {
		step = -1
	}
	for ; ti >= 0 && ti < len(topics); ti += step {
		if len(topics[ti].SubTopics) > 0 {
			return study.Position{Topic: ti}, true
		}
	}
	return s.pos, false
}

func (s *StudyScreen) move(p study.Position, moved bool) tea.Cmd {
	if !moved || p == s.pos {
		return nil
	}
	s.pos = p
	s.scroll = 0
	return s.recordView()
}

func (s *StudyScreen) recordView() tea.Cmd {
	t, sub, ok := s.nav.At(s.pos)
	if !ok {
		return nil
	}
	tr := s.tracker
	return func() tea.Msg {
		_ = tr.StudyViewed(context.Background(), t.ID, sub.ID)
		return nil
	}
}
