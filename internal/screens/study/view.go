package study

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/netprep/internal/study"
	"github.com/abhisek/netprep/internal/ui/layout"
	"github.com/abhisek/netprep/internal/ui/theme"
)

const sidebarWidth = 30

func (s *StudyScreen) View(width, height int) string {
	if !s.ok {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\nNo study material available.")
	}

	sidebar := s.renderSidebar(height)
	contentWidth := max(width-sidebarWidth-3, 20)
	content := s.renderContent(contentWidth, height)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)
}

func (s *StudyScreen) renderSidebar(height int) string {
	var lines []string
	focus := 0
	for ti, t := range s.nav.Topics() {
		header := t.Title
		if t.Icon != "" {
			header = t.Icon + " " + header
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
			Render(layout.Truncate(strings.ToUpper(header), sidebarWidth-2)))

		for si, sub := range t.SubTopics {
			title := layout.Truncate(sub.Title, sidebarWidth-4)
			if ti == s.pos.Topic && si == s.pos.Sub {
				focus = len(lines)
				lines = append(lines, lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render("▸ "+title))
			} else {
				lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("  "+title))
			}
		}
		lines = append(lines, "")
	}

	lines = scrollTo(lines, focus, height-2)

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(strings.Join(lines, "\n"))
}

func (s *StudyScreen) renderContent(width, height int) string {
	t, sub, _ := s.nav.At(s.pos)

	crumb := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Title)
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(sub.Title)
	header := crumb + "\n" + title + "\n"

	body := strings.Split(RenderContent(sub.Content, width), "\n")
	room := max(height-lipgloss.Height(header)-1, 1)

	maxScroll := max(len(body)-room, 0)
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := min(s.scroll+room, len(body))
	visible := body[s.scroll:end]

	return header + "\n" + strings.Join(visible, "\n")
}

// RenderContent renders sub-topic content to styled text of the given width.
func RenderContent(content string, width int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	para := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
	bullet := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 2)
	callout := lipgloss.NewStyle().
		Foreground(theme.Text).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(theme.Accent).
		PaddingLeft(1).
		Width(width - 2)

	var out []string
	for _, b := range study.ParseContent(content) {
		switch b.Kind {
		case study.BlockHeading:
			out = append(out, heading.Render(b.Text))
		case study.BlockBullet:
			marker := lipgloss.NewStyle().Foreground(theme.Primary).Render("• ")
			lines := strings.Split(bullet.Render(b.Text), "\n")
			for i, l := range lines {
				if i == 0 {
					lines[i] = marker + l
				} else {
					lines[i] = "  " + l
				}
			}
			out = append(out, strings.Join(lines, "\n"))
		case study.BlockCallout:
			out = append(out, callout.Render(b.Text))
		case study.BlockTable:
			out = append(out, renderTable(b.Rows))
		case study.BlockDiagram:
			out = append(out, renderDiagram(b, width))
		case study.BlockBlank:
			out = append(out, "")
		default:
			out = append(out, para.Render(b.Text))
		}
	}
	return strings.Join(out, "\n")
}

func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	headerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(rows[0]...).
		Rows(rows[1:]...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// renderDiagram draws a diagram line for line, without wrapping. Lines wider
// than the pane are cut rather than reflowed.
func renderDiagram(b study.Block, width int) string {
	art := lipgloss.NewStyle().Foreground(theme.Primary)
	lines := make([]string, 0, len(b.Lines)+1)
	for _, l := range b.Lines {
		lines = append(lines, art.Render(layout.Truncate(l, width)))
	}
	if b.Text != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(b.Text))
	}
	return strings.Join(lines, "\n")
}

// scrollTo returns at most height lines of lines with line focus visible.
func scrollTo(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := 0
	if focus >= height {
		start = focus - height + 1
	}
	return lines[start:min(start+height, len(lines))]
}
