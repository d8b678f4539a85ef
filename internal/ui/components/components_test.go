package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func TestMenuNavigation(t *testing.T) {
	var chosen string
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			chosen = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "STUDY", Action: pick("STUDY")},
		{Label: "DISABLED", Disabled: true},
		{Label: "EXIT", Action: pick("EXIT")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("down should skip disabled item, selected = %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if chosen != "EXIT" {
		t.Errorf("enter ran %q, want EXIT", chosen)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("down from the last item should wrap, selected = %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("up from the first item should wrap, selected = %d", m.Selected)
	}

	got := m.Labels()
	if len(got) != 3 || got[0] != "STUDY" {
		t.Errorf("Labels() = %v", got)
	}
}

func TestMenuDigitShortcut(t *testing.T) {
	var chosen string
	m := NewMenu([]MenuItem{
		{Label: "A", Action: func() tea.Cmd { chosen = "A"; return nil }},
		{Label: "B", Disabled: true, Action: func() tea.Cmd { chosen = "B"; return nil }},
		{Label: "C", Action: func() tea.Cmd { chosen = "C"; return nil }},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if chosen != "C" || m.Selected != 2 {
		t.Errorf("3 ran %q with selected %d", chosen, m.Selected)
	}

	chosen = ""
	m, _ = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if chosen != "" || m.Selected != 2 {
		t.Errorf("disabled item must not run, ran %q", chosen)
	}

	m.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	if chosen != "" {
		t.Errorf("out of range digit ran %q", chosen)
	}
}

func TestNewMenu_SkipsLeadingDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "X", Disabled: true}, {Label: "Y"}})
	if m.Selected != 1 {
		t.Errorf("selected = %d, want 1", m.Selected)
	}
	all := NewMenu([]MenuItem{{Label: "X", Disabled: true}})
	if all.Selected != 0 {
		t.Errorf("all-disabled menu selected = %d, want 0", all.Selected)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "STUDY", Hint: "Read topics"}, {Label: "EXIT"}})

	full := m.View(24, false)
	if !strings.Contains(full, "STUDY") || !strings.Contains(full, "Read topics") {
		t.Errorf("full view missing label or hint: %q", full)
	}
	compact := m.View(24, true)
	if !strings.Contains(compact, "1. STUDY") || !strings.Contains(compact, "2. EXIT") || strings.Contains(compact, "Read topics") {
		t.Errorf("compact view = %q", compact)
	}
}

func TestContentWidth(t *testing.T) {
	if got := ContentWidth(200); got != maxContentWidth {
		t.Errorf("ContentWidth(200) = %d", got)
	}
	if got := ContentWidth(10); got != minContentWidth {
		t.Errorf("ContentWidth(10) = %d", got)
	}
	if got := ContentWidth(50); got != 44 {
		t.Errorf("ContentWidth(50) = %d, want 44", got)
	}
}

func TestPills_Wraps(t *testing.T) {
	labels := []string{"All", "General", "OSI/TCP", "IP/Addressing", "Routing", "Web"}
	wide := Pills(labels, "All", 200)
	if lipgloss.Height(wide) != 1 {
		t.Errorf("expected one line at width 200, got %d", lipgloss.Height(wide))
	}
	narrow := Pills(labels, "All", 24)
	if lipgloss.Height(narrow) < 2 {
		t.Errorf("expected wrapping at width 24, got %d lines", lipgloss.Height(narrow))
	}
	for _, l := range labels {
		if !strings.Contains(narrow, l) {
			t.Errorf("missing pill %q", l)
		}
	}
}

func TestSearchInput_ReportsChange(t *testing.T) {
	s := NewSearchInput("Search")
	s, _, changed := s.Update(tea.KeyPressMsg{Code: 'v', Text: "v"})
	if !changed || s.Value() != "v" {
		t.Errorf("typing should change value, got %q changed=%v", s.Value(), changed)
	}
	_, _, changed = s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if changed {
		t.Error("arrow key should not change value")
	}
}

func TestSearchInput_NoLengthCap(t *testing.T) {
	long := strings.Repeat("routing ", 20)
	s := NewSearchInput("Search")
	s, _, changed := s.Update(tea.PasteMsg{Content: long})
	if !changed || s.Value() != long {
		t.Errorf("pasted %d chars, box holds %d", len(long), len(s.Value()))
	}
}

func TestCoverageBar(t *testing.T) {
	bar := CoverageBar("Security", 3, 6, 60)
	if !strings.Contains(bar, "Security") || !strings.Contains(bar, "3/6") {
		t.Errorf("unexpected bar %q", bar)
	}
	if w := lipgloss.Width(bar); w != 60 {
		t.Errorf("bar width = %d, want 60", w)
	}
	over := CoverageBar("", 9, 6, 30)
	if w := lipgloss.Width(over); w != 30 {
		t.Errorf("overfull bar width = %d, want 30", w)
	}
	if empty := CoverageBar("", 0, 0, 30); !strings.Contains(empty, "0/0") {
		t.Errorf("empty bar should show 0/0, got %q", empty)
	}
}
