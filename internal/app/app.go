package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/netprep/internal/router"
	"github.com/abhisek/netprep/internal/screen"
	"github.com/abhisek/netprep/internal/screens/home"
	"github.com/abhisek/netprep/internal/screens/welcome"
	"github.com/abhisek/netprep/internal/ui/layout"
)

// Options are the dependencies of the TUI.
type Options = home.Deps

// AppModel is the root Bubble Tea model.
type AppModel struct {
	screens *router.Stack
	log     *zap.Logger
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	splash := welcome.New(func() screen.Screen {
		return home.New(opts)
	})
	return AppModel{
		screens: router.New(splash),
		log:     opts.Log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.screens.Top().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			if leave := m.screens.Unwind(); leave != nil {
				return m, tea.Sequence(leave, tea.Quit)
			}
			return m, tea.Quit
		case "esc":
			return m, m.screens.Update(router.BackMsg{})
		}
	}

	return m, m.screens.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.frame())
	return v
}

// frame renders the full terminal contents for the current size.
func (m AppModel) frame() string {
	if !layout.Fits(m.width, m.height) {
		return layout.TooSmall(m.width, m.height)
	}

	active := m.screens.Top()
	title, status := active.Title(), ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.Header(title, status, m.width)
	footer := layout.Footer(m.footerHints(active), m.width)

	content := m.screens.View(m.width, layout.BodyHeight(header, footer, m.height))
	return layout.Compose(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.screens.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		m.log.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
