package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/netprep/internal/bank"
	"github.com/abhisek/netprep/internal/router"
	"github.com/abhisek/netprep/internal/screen"
	"github.com/abhisek/netprep/internal/screens/history"
	interviewscreen "github.com/abhisek/netprep/internal/screens/interview"
	studyscreen "github.com/abhisek/netprep/internal/screens/study"
	"github.com/abhisek/netprep/internal/store"
	"github.com/abhisek/netprep/internal/tutor"
	"github.com/abhisek/netprep/internal/ui/components"
	"github.com/abhisek/netprep/internal/ui/layout"
)

// Deps are the services the home menu hands to the screens it opens.
// EventRepo and Tutor may be nil.
type Deps struct {
	Bank      *bank.Bank
	EventRepo store.EventRepo
	Tutor     *tutor.Service
	Log       *zap.Logger
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps          Deps
	menu          components.Menu
	questionCount int
	topicCount    int
	subTopicCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// Menu labels.
const (
	LabelStudy     = "STUDY"
	LabelInterview = "INTERVIEW PREP"
	LabelHistory   = "HISTORY"
	LabelExit      = "EXIT"
)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:          deps,
		questionCount: len(deps.Bank.Questions),
		topicCount:    len(deps.Bank.Topics),
	}
	for _, t := range deps.Bank.Topics {
		h.subTopicCount += len(t.SubTopics)
	}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.Open(build()) }
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: LabelStudy, Hint: "Read through networking topics", Action: push(func() screen.Screen {
			return studyscreen.New(deps.Bank.Topics, deps.EventRepo, deps.Log)
		})},
		{Label: LabelInterview, Hint: "Practice interview questions", Action: push(func() screen.Screen {
			return interviewscreen.New(deps.Bank.Questions, deps.EventRepo, deps.Tutor, deps.Log)
		})},
		{Label: LabelHistory, Hint: "Review past sessions", Disabled: deps.EventRepo == nil, Action: push(func() screen.Screen {
			return history.New(deps.EventRepo, deps.Bank.Questions)
		})},
		{Label: LabelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes the header and footer bars
	compact := layout.Compact(width, height+6)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.questionCount, h.topicCount, h.subTopicCount, cw, compact))
	sections = append(sections, h.menu.View(buttonWidth, compact))
	if !h.deps.Tutor.Available() {
		sections = append(sections, renderLLMBanner(cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
