package dictation

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/modules"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/ui/components"
	"github.com/abhisek/elan/internal/ui/layout"
	"github.com/abhisek/elan/internal/ui/theme"
)

// clearWrongMsg ends the wrong-answer flash raised by mismatch Seq.
type clearWrongMsg struct {
	Seq int
}

// DictationScreen drills the words marked for reinforcement: the learner
// hears a word and types it.
type DictationScreen struct {
	deps    screen.Deps
	ctrl    *modules.Dictation
	input   components.TextInput
	praised bool
}

var _ screen.Screen = (*DictationScreen)(nil)
var _ screen.KeyHintProvider = (*DictationScreen)(nil)

// New creates a new DictationScreen.
func New(deps screen.Deps) *DictationScreen {
	return &DictationScreen{
		deps:  deps,
		ctrl:  modules.NewDictation(deps.Progress),
		input: components.NewTextInput("Tapez ce que vous entendez...", 64),
	}
}

func (s *DictationScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), s.speakCurrent())
}

func (s *DictationScreen) Title() string {
	return "Dictée"
}

func (s *DictationScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.Empty() {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Vue suivante"},
			{Key: "Esc", Description: "Accueil"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Vérifier"},
		{Key: "Ctrl+R", Description: "Réécouter"},
		{Key: "Esc", Description: "Accueil"},
	}
}

func (s *DictationScreen) speakCurrent() tea.Cmd {
	w, ok := s.ctrl.Current()
	if !ok {
		return nil
	}
	return s.deps.Speak(w.Word)
}

func (s *DictationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.ctrl.Refresh()

	switch msg := msg.(type) {
	case clearWrongMsg:
		s.ctrl.ClearWrong(msg.Seq)
		s.input.SetWrong(s.ctrl.Wrong())
		return s, nil

	case tea.KeyMsg:
		if s.ctrl.Empty() {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.check()
		case "ctrl+r":
			return s, s.speakCurrent()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if s.input.Value() != s.ctrl.Input() {
			s.ctrl.SetInput(s.input.Value())
			s.input.SetWrong(false)
			s.praised = false
		}
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// check submits the typed word. A match moves on and speaks the next word;
// a mismatch flashes until the next keystroke or WrongFlash elapses.
func (s *DictationScreen) check() tea.Cmd {
	if s.ctrl.Check() {
		s.input.Reset()
		s.praised = true
		return s.speakCurrent()
	}
	s.praised = false
	s.input.SetWrong(true)
	seq := s.ctrl.WrongSeq()
	return tea.Tick(modules.WrongFlash, func(time.Time) tea.Msg {
		return clearWrongMsg{Seq: seq}
	})
}

func (s *DictationScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.ctrl.Empty() {
		body := theme.Title.Width(cw).Render("Liste de dictée vide") + "\n\n" +
			components.Empty("Ajoutez des mots « À renforcer » dans le module Vocabulaire\npour pratiquer ici.", cw)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}

	w, _ := s.ctrl.Current()

	var sections []string

	hint := components.Section("Indice", theme.French.Render(w.Meaning)) + "\n\n" +
		theme.Hint.Render("Ctrl+R pour réécouter le mot")
	sections = append(sections, components.Card(hint, cw))

	field := s.input.View()
	if s.ctrl.Wrong() {
		sections = append(sections, components.Card(field, cw)+"\n"+
			theme.Incorrect.Render("Pas tout à fait… réessayez."))
	} else {
		sections = append(sections, components.FocusCard(field, cw))
	}

	if s.praised {
		sections = append(sections, theme.Correct.Render("Bravo ! ✨"))
	}

	pool := s.ctrl.Pool()
	sections = append(sections, theme.Hint.Render(fmt.Sprintf("Mot %d sur %d", s.ctrl.Index()+1, len(pool))))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, strings.Join(sections, "\n\n")))
}
