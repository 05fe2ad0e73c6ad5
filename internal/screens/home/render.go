package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/ui/theme"
)

// Block-letter title.
const titleFull = `███████╗██╗      █████╗ ███╗   ██╗
██╔════╝██║     ██╔══██╗████╗  ██║
█████╗  ██║     ███████║██╔██╗ ██║
██╔══╝  ██║     ██╔══██║██║╚██╗██║
███████╗███████╗██║  ██║██║ ╚████║
╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝`

const titleCompact = "É · L · A · N"

const greeting = "Salut ! Continuez votre voyage vers la maîtrise du français."

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art) + "\n" + theme.Hint.Render(greeting))
}

// renderStatsBar renders the progress summary in a double-bordered box.
func renderStatsBar(level progress.Level, words, marked, cw int) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	wordStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	markedStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		levelStyle.Render("NIVEAU "+string(level)),
		wordStyle.Render(fmt.Sprintf("%d MOTS", words)),
		markedStyle.Render(fmt.Sprintf("%d À RENFORCER", marked)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderLevels renders the level picker; the current level is highlighted.
func renderLevels(current progress.Level, cw int) string {
	selected := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		Padding(0, 1)
	normal := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 1)

	parts := make([]string, len(progress.Levels))
	for i, l := range progress.Levels {
		if l == current {
			parts[i] = selected.Render(string(l))
		} else {
			parts[i] = normal.Render(string(l))
		}
	}

	row := theme.Hint.Render("◀ ") + strings.Join(parts, " ") + theme.Hint.Render(" ▶")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("OBJECTIF") + "\n" + row)
}

// renderLLMBanner renders a warning when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Configurez une clé API pour générer du contenu (voir elan --help)")
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(m Mood, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(Mascot(m))
}

// renderMenuBox renders the menu in a rounded box at content width.
func renderMenuBox(menu string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(strings.TrimRight(menu, "\n"))
}
