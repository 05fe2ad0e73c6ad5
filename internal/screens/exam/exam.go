package exam

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/modules"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/ui/components"
	"github.com/abhisek/elan/internal/ui/layout"
	"github.com/abhisek/elan/internal/ui/theme"
)

// ExamScreen runs a multiple-choice quiz for the current level and ends on
// a score summary.
type ExamScreen struct {
	deps   screen.Deps
	ctrl   *modules.Exam
	spin   components.Spinner
	choice components.MultiChoice
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.Closer = (*ExamScreen)(nil)

// New creates a new ExamScreen.
func New(deps screen.Deps) *ExamScreen {
	return &ExamScreen{
		deps: deps,
		ctrl: modules.NewExam(deps.Content, deps.Progress, deps.Exams, deps.Logger()),
		spin: components.NewSpinner(),
	}
}

func (s *ExamScreen) Init() tea.Cmd {
	return tea.Batch(screen.Fetch(s.ctrl.Load(s.deps.Context())), s.spin.Tick())
}

func (s *ExamScreen) restart() tea.Cmd {
	return tea.Batch(screen.Fetch(s.ctrl.Restart(s.deps.Context())), s.spin.Tick())
}

// Close cancels a fetch in flight.
func (s *ExamScreen) Close() {
	s.ctrl.Stop()
}

func (s *ExamScreen) Title() string {
	if lvl := s.ctrl.Level(); lvl != "" {
		return "Examen · " + string(lvl)
	}
	return "Examen"
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.ctrl.Loading():
		return []layout.KeyHint{{Key: "Esc", Description: "Accueil"}}
	case s.ctrl.Finished(), len(s.ctrl.Questions()) == 0:
		return []layout.KeyHint{
			{Key: "R", Description: "Recommencer"},
			{Key: "Esc", Description: "Accueil"},
		}
	case s.ctrl.Answered():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Question suivante"},
			{Key: "Esc", Description: "Accueil"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choisir"},
		{Key: "A-D", Description: "Répondre"},
		{Key: "Enter", Description: "Valider"},
		{Key: "Esc", Description: "Accueil"},
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case modules.Loaded[[]content.ExamQuestion]:
		if s.ctrl.Apply(msg) {
			s.resetChoice()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.ctrl.Loading() {
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.ctrl.Loading() {
		return s, nil
	}
	if s.ctrl.Finished() || len(s.ctrl.Questions()) == 0 {
		if msg.String() == "r" {
			return s, s.restart()
		}
		return s, nil
	}
	if s.ctrl.Answered() {
		if msg.String() == "enter" || msg.String() == "n" {
			if s.ctrl.Next(s.deps.Context()) {
				s.resetChoice()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if i, ok := s.choice.Chosen(); ok {
		s.ctrl.Select(i)
	}
	return s, cmd
}

func (s *ExamScreen) resetChoice() {
	q, ok := s.ctrl.Current()
	if !ok {
		s.choice = components.MultiChoice{}
		return
	}
	s.choice = components.NewMultiChoice(q.Question, q.Options, q.AnswerIndex)
}

func (s *ExamScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch {
	case s.ctrl.Loading():
		body = s.spin.View("de l'examen", cw)
	case len(s.ctrl.Questions()) == 0:
		body = components.Empty("Impossible de préparer l'examen.\nAppuyez sur R pour réessayer.", cw)
	case s.ctrl.Finished():
		body = s.renderSummary(cw)
	default:
		body = s.renderQuestion(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *ExamScreen) renderQuestion(cw int) string {
	q, _ := s.ctrl.Current()

	var b strings.Builder
	b.WriteString(components.Progress(
		fmt.Sprintf("Question %d / %d", s.ctrl.Index()+1, s.ctrl.Total()),
		components.Fraction(s.ctrl.Index(), s.ctrl.Total()), cw, false))
	b.WriteString("\n\n")
	b.WriteString(layout.Wrap(s.choice.View(), cw))

	if s.ctrl.Answered() {
		verdict := theme.Correct.Render("Correct !")
		if s.ctrl.Choice() != q.AnswerIndex {
			verdict = theme.Incorrect.Render("Incorrect.") + " " +
				theme.Body.Render("Réponse : "+q.Options[q.AnswerIndex])
		}
		b.WriteString("\n")
		b.WriteString(verdict)
		b.WriteString("\n\n")
		b.WriteString(components.Section("Explication", layout.Wrap(theme.Gloss.Render(q.Explanation), cw)))
	}

	return components.Card(b.String(), cw)
}

func (s *ExamScreen) renderSummary(cw int) string {
	score, total := s.ctrl.Score(), s.ctrl.Total()

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 4).Render("Examen terminé"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw - 4).
		Align(lipgloss.Center).
		Foreground(theme.Highlight).
		Bold(true).
		Render(fmt.Sprintf("%d / %d", score, total)))
	b.WriteString("\n\n")
	b.WriteString(components.Progress("", components.Fraction(score, total), cw-4, true))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(cw - 4).Render(verdict(score, total)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw - 4).Align(lipgloss.Center).
		Render(components.PanelButton("Recommencer (R)", true, 24)))

	return components.Card(b.String(), cw)
}

func verdict(score, total int) string {
	f := components.Fraction(score, total)
	switch {
	case f >= 0.9:
		return "Excellent travail !"
	case f >= 0.7:
		return "Très bien, continuez comme ça."
	case f >= 0.5:
		return "Pas mal. Révisez les points difficiles."
	default:
		return "Courage ! Reprenez la grammaire de ce niveau."
	}
}
