// Package history lists finished exams, newest first.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/router"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/store"
	"github.com/abhisek/elan/internal/ui/components"
	"github.com/abhisek/elan/internal/ui/layout"
	"github.com/abhisek/elan/internal/ui/theme"
)

const pageSize = 50

type loadedMsg struct {
	results []store.ExamResult
	err     error
}

// band is a score range with its verdict and colour.
type band struct {
	min   float64
	label string
	color color.Color
}

// bands are ordered from best to worst; the last one catches everything.
var bands = []band{
	{0.9, "excellent", theme.Highlight},
	{0.7, "très bien", theme.Success},
	{0.5, "passable", theme.Secondary},
	{0, "à revoir", theme.Accent},
}

func bandFor(score, total int) band {
	f := components.Fraction(score, total)
	for _, b := range bands {
		if f >= b.min {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Screen shows one row per exam attempt. Enter toggles a row's details.
type Screen struct {
	repo     screen.ExamHistory
	results  []store.ExamResult
	selected int
	open     map[int]bool
	loaded   bool
	err      error
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.BackHandler     = (*Screen)(nil)
)

func New(repo screen.ExamHistory) *Screen {
	return &Screen{repo: repo, open: map[int]bool{}}
}

func (s *Screen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		rs, err := repo.QueryExamResults(context.Background(), store.QueryOpts{Limit: pageSize})
		return loadedMsg{results: rs, err: err}
	}
}

func (s *Screen) Title() string { return "Historique" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Détails"},
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Esc", Description: "Retour"},
	}
}

// HandlesBack makes Esc pop this screen rather than return home.
func (s *Screen) HandlesBack() bool { return true }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.results, s.err, s.loaded = msg.results, msg.err, true
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			s.selected = max(s.selected-1, 0)
		case "down", "j":
			s.selected = max(min(s.selected+1, len(s.results)-1), 0)
		case "enter":
			s.open[s.selected] = !s.open[s.selected]
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	switch {
	case s.err != nil:
		return notice(width, lipgloss.NewStyle().Foreground(theme.Error), "Erreur : "+s.err.Error())
	case !s.loaded:
		return notice(width, lipgloss.NewStyle().Foreground(theme.TextDim), "Chargement de l'historique...")
	case len(s.results) == 0:
		return notice(width, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
			"Aucun examen terminé. Lancez un examen rapide !")
	}

	lines := []string{""}
	for i, r := range s.results {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, s.row(i, r)))
		if s.open[i] {
			b := bandFor(r.Score, r.Total)
			detail := fmt.Sprintf("    tentative %s · %s", r.AttemptID, b.label)
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(b.color).Render(detail)))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) row(i int, r store.ExamResult) string {
	cursor, style := "  ", lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		cursor, style = "> ", style.Foreground(theme.Primary).Bold(true)
	}
	text := fmt.Sprintf("%s%s  %-2s  %2d / %-2d", cursor,
		r.CreatedAt.Local().Format("02 Jan 2006 15:04"), r.Level, r.Score, r.Total)
	return style.Render(text) + "  " + components.Progress("", components.Fraction(r.Score, r.Total), 24, true)
}

func notice(width int, style lipgloss.Style, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render("\n\n" + text)
}
