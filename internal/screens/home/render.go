package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/ui/theme"
)

const titleFull = `┌┐┌┌─┐┌┬┐┌─┐┬─┐┌─┐┌─┐
│││├┤  │ ├─┘├┬┘├┤ ├─┘
┘└┘└─┘ ┴ ┴  ┴└─└─┘┴  `

const titleCompact = "N · E · T · P · R · E · P"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the content bank size in a bordered box.
func renderStatsBar(questions, topics, subTopics, cw int, compact bool) string {
	qStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	tStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			qStyle.Render(fmt.Sprintf("?%d", questions)),
			tStyle.Render(fmt.Sprintf("§%d/%d", topics, subTopics)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			qStyle.Render(fmt.Sprintf("%d QUESTIONS", questions)),
			tStyle.Render(fmt.Sprintf("%d TOPICS · %d LESSONS", topics, subTopics)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderLLMBanner renders a notice when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to enable tutor explanations (see netprep --help)")
}
