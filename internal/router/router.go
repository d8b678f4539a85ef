// Package router keeps the stack of screens. Screens ask for navigation by
// returning the commands below; the stack runs Init on screens it shows and
// Leave on screens it drops.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/netprep/internal/screen"
)

// OpenMsg pushes Screen on top of the stack.
type OpenMsg struct{ Screen screen.Screen }

// BackMsg drops the top screen unless it is the root.
type BackMsg struct{}

// SwapMsg replaces the top screen with Screen.
type SwapMsg struct{ Screen screen.Screen }

// Open returns a command that pushes s.
func Open(s screen.Screen) tea.Cmd { return func() tea.Msg { return OpenMsg{Screen: s} } }

// Back returns a command that drops the top screen.
func Back() tea.Cmd { return func() tea.Msg { return BackMsg{} } }

// Swap returns a command that replaces the top screen with s.
func Swap(s screen.Screen) tea.Cmd { return func() tea.Msg { return SwapMsg{Screen: s} } }

// Stack is the screen stack. The bottom screen is never dropped.
type Stack struct {
	screens []screen.Screen
}

// New returns a stack holding root. root.Init is left to the caller.
func New(root screen.Screen) *Stack {
	return &Stack{screens: []screen.Screen{root}}
}

// Top returns the visible screen.
func (s *Stack) Top() screen.Screen {
	return s.screens[len(s.screens)-1]
}

// Depth returns the number of stacked screens.
func (s *Stack) Depth() int {
	return len(s.screens)
}

func (s *Stack) open(next screen.Screen) tea.Cmd {
	s.screens = append(s.screens, next)
	return next.Init()
}

func (s *Stack) back() tea.Cmd {
	if len(s.screens) == 1 {
		return nil
	}
	leave := leaveCmd(s.Top())
	s.screens = s.screens[:len(s.screens)-1]
	return leave
}

func (s *Stack) swap(next screen.Screen) tea.Cmd {
	leave := leaveCmd(s.Top())
	s.screens[len(s.screens)-1] = next
	return tea.Batch(leave, next.Init())
}

// Unwind runs Leave for every stacked screen, top first, without changing
// the stack. Used before quitting.
func (s *Stack) Unwind() tea.Cmd {
	var cmds []tea.Cmd
	for i := len(s.screens) - 1; i >= 0; i-- {
		if c := leaveCmd(s.screens[i]); c != nil {
			cmds = append(cmds, c)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Sequence(cmds...)
}

func leaveCmd(scr screen.Screen) tea.Cmd {
	if l, ok := scr.(screen.Leaver); ok {
		return l.Leave()
	}
	return nil
}

// Update applies navigation messages and forwards everything else to the
// top screen.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case OpenMsg:
		return s.open(msg.Screen)
	case BackMsg:
		return s.back()
	case SwapMsg:
		return s.swap(msg.Screen)
	}

	next, cmd := s.Top().Update(msg)
	s.screens[len(s.screens)-1] = next
	return cmd
}

// View renders the top screen.
func (s *Stack) View(width, height int) string {
	return s.Top().View(width, height)
}
