package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as an always-focused search box.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a focused search box.
func NewSearchInput(placeholder string) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 0
	ti.Focus()
	return SearchInput{Model: ti}
}

// Init returns the initial command.
func (s SearchInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update forwards msg to the text input and reports whether the value changed.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd, bool) {
	before := s.Model.Value()
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd, s.Model.Value() != before
}

// View renders the search box inside a rounded border of the given width.
func (s SearchInput) View(width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(width).
		Padding(0, 1).
		Render(s.Model.View())
}

// Value returns the current query.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// SetValue replaces the current query.
func (s *SearchInput) SetValue(v string) {
	s.Model.SetValue(v)
}
