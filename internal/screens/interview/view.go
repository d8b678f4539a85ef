package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qa "github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/tutor"
	"github.com/abhisek/netprep/internal/ui/components"
	"github.com/abhisek/netprep/internal/ui/layout"
	"github.com/abhisek/netprep/internal/ui/theme"
)

const (
	chevronCollapsed = "▸"
	chevronExpanded  = "▾"
)

func (s *InterviewScreen) View(width, height int) string {
	inner := max(width-4, 20)

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Interview Preparation")
	subtitle := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d Frequently Asked Computer Network Questions", len(s.explorer.Questions())))

	top := lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		s.search.View(inner-4),
		components.Pills(s.explorer.Categories(), s.explorer.Filter().Category, inner),
		"",
	)

	listHeight := max(height-lipgloss.Height(top), 1)
	list := s.renderList(inner, listHeight)

	return lipgloss.NewStyle().Padding(0, 2).Render(top + "\n" + list)
}

func (s *InterviewScreen) renderList(width, height int) string {
	visible := s.explorer.Visible()
	if len(visible) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("\n" + qa.EmptyMessage)
	}

	var lines []string
	focusStart, focusEnd := 0, 0
	for i, q := range visible {
		if i == s.cursor {
			focusStart = len(lines)
		}
		lines = append(lines, s.renderRow(q, i == s.cursor, width))
		if s.explorer.Disclosure().IsExpanded(q.ID) {
			lines = append(lines, s.renderAnswer(q, width)...)
		}
		if i == s.cursor {
			focusEnd = len(lines)
		}
	}

	return strings.Join(window(lines, focusStart, focusEnd, height), "\n")
}

func (s *InterviewScreen) renderRow(q qa.Question, selected bool, width int) string {
	chevron := chevronCollapsed
	if s.explorer.Disclosure().IsExpanded(q.ID) {
		chevron = chevronExpanded
	}

	prefix := "  "
	textStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = lipgloss.NewStyle().Foreground(theme.Highlight).Render("▌ ")
		textStyle = textStyle.Bold(true)
	}

	id := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("#%d", q.ID))
	badge := theme.CategoryBadge(string(q.Category))
	head := prefix + id + " " + badge + " "
	tail := " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(chevron)

	room := width - lipgloss.Width(head) - lipgloss.Width(tail)
	return head + textStyle.Render(layout.Truncate(q.Question, room)) + tail
}

func (s *InterviewScreen) renderAnswer(q qa.Question, width int) []string {
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(theme.CategoryColor(string(q.Category))).
		PaddingLeft(1).
		MarginLeft(4).
		Width(width - 6)

	parts := []string{q.Answer}

	switch {
	case s.pending[q.ID]:
		parts = append(parts, "", theme.Hint.Render("Asking the tutor..."))
	case s.explanations[q.ID] != nil:
		parts = append(parts, "", renderExplanation(s.explanations[q.ID]))
	case s.explainErrs[q.ID] != "":
		parts = append(parts, "", lipgloss.NewStyle().Foreground(theme.Error).Render(s.explainErrs[q.ID]))
	}

	return strings.Split(body.Render(strings.Join(parts, "\n")), "\n")
}

func renderExplanation(e *tutor.Explanation) string {
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	b.WriteString(label.Render("Tutor") + "\n")
	b.WriteString(e.Summary + "\n")
	for _, p := range e.KeyPoints {
		b.WriteString("• " + p + "\n")
	}
	if e.Example != "" {
		b.WriteString(label.Render("Example: ") + e.Example + "\n")
	}
	if e.FollowUp != "" {
		b.WriteString(label.Render("Follow-up: ") + e.FollowUp)
	}
	return strings.TrimRight(b.String(), "\n")
}

// window returns at most height lines of lines, scrolled so that the range
// [focusStart, focusEnd) is visible, or at least its start when it is taller
// than height.
func window(lines []string, focusStart, focusEnd, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := 0
	if focusEnd > height {
		start = focusEnd - height
	}
	if focusStart < start {
		start = focusStart
	}
	end := min(start+height, len(lines))
	return lines[start:end]
}
