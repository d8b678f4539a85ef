package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Disabled items are drawn dimmed and
// skipped by the cursor.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions. The cursor wraps around, and the
// digits 1-9 run the matching item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.step(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// step moves the cursor dir places to the next enabled item, wrapping at
// either end. It leaves the cursor alone when every item is disabled.
func (m *Menu) step(dir int) {
	n := len(m.Items)
	for i := 1; i <= n; i++ {
		j := ((m.Selected+dir*i)%n + n) % n
		if !m.Items[j].Disabled {
			m.Selected = j
			return
		}
	}
}

func (m Menu) run(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch s := key.String(); s {
	case "up", "k", "shift+tab":
		m.step(-1)
	case "down", "j", "tab":
		m.step(1)
	case "enter", "space":
		return m, m.run(m.Selected)
	default:
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(m.Items) && !m.Items[n-1].Disabled {
			m.Selected = n - 1
			return m, m.run(m.Selected)
		}
	}
	return m, nil
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

// View renders the menu. Full mode draws a button per item with the hint
// of the selected item underneath; compact mode draws one line per item.
func (m Menu) View(width int, compact bool) string {
	if compact {
		return m.lines()
	}
	rows := make([]string, 0, len(m.Items)+1)
	for i, item := range m.Items {
		rows = append(rows, button(item, i == m.Selected, width))
	}
	if m.Selected < len(m.Items) {
		if hint := m.Items[m.Selected].Hint; hint != "" {
			rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(hint))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m Menu) lines() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := strconv.Itoa(i+1) + ". " + item.Label
		switch {
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label))
		case i == m.Selected:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" ▸ " + label))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func button(item MenuItem, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case item.Disabled:
		return style.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(item.Label)
	case selected:
		return style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Highlight).
			BorderForeground(theme.Highlight).
			Render("▸ " + item.Label)
	default:
		return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(item.Label)
	}
}
