package vocabulary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/modules"
	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/ui/components"
	"github.com/abhisek/elan/internal/ui/layout"
	"github.com/abhisek/elan/internal/ui/theme"
)

// VocabularyScreen lists a batch of words for the current level and opens
// a detail card for one of them.
type VocabularyScreen struct {
	deps   screen.Deps
	ctrl   *modules.Vocabulary
	spin   components.Spinner
	cursor int
}

var _ screen.Screen = (*VocabularyScreen)(nil)
var _ screen.KeyHintProvider = (*VocabularyScreen)(nil)
var _ screen.Closer = (*VocabularyScreen)(nil)
var _ screen.BackHandler = (*VocabularyScreen)(nil)

// New creates a new VocabularyScreen.
func New(deps screen.Deps) *VocabularyScreen {
	return &VocabularyScreen{
		deps: deps,
		ctrl: modules.NewVocabulary(deps.Content, deps.Progress, deps.Logger()),
		spin: components.NewSpinner(),
	}
}

func (s *VocabularyScreen) Init() tea.Cmd {
	return s.fetch(s.ctrl.Load(s.deps.Context()))
}

func (s *VocabularyScreen) fetch(task modules.Task[[]progress.VocabularyWord]) tea.Cmd {
	s.cursor = 0
	return tea.Batch(screen.Fetch(task), s.spin.Tick())
}

// Close cancels a fetch in flight.
func (s *VocabularyScreen) Close() {
	s.ctrl.Stop()
}

// HandlesBack is true while the detail card is open.
func (s *VocabularyScreen) HandlesBack() bool {
	_, open := s.ctrl.Selected()
	return open
}

func (s *VocabularyScreen) Title() string {
	if lvl := s.ctrl.Level(); lvl != "" {
		return "Vocabulaire · " + string(lvl)
	}
	return "Vocabulaire"
}

func (s *VocabularyScreen) KeyHints() []layout.KeyHint {
	if _, open := s.ctrl.Selected(); open {
		return []layout.KeyHint{
			{Key: "R", Description: "À renforcer"},
			{Key: "C", Description: "Je connais"},
			{Key: "S", Description: "Écouter"},
			{Key: "1-3", Description: "Écouter l'exemple"},
			{Key: "Esc", Description: "Fermer"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Enter", Description: "Détails"},
		{Key: "S", Description: "Écouter"},
		{Key: "M", Description: "Plus de mots"},
		{Key: "Tab", Description: "Vue suivante"},
		{Key: "Esc", Description: "Accueil"},
	}
}

func (s *VocabularyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case modules.Loaded[[]progress.VocabularyWord]:
		s.ctrl.Apply(s.deps.Context(), msg)
		if s.cursor >= len(s.ctrl.Words()) {
			s.cursor = 0
		}
		return s, nil

	case tea.KeyMsg:
		if _, open := s.ctrl.Selected(); open {
			return s.handleDetailKey(msg)
		}
		return s.handleListKey(msg)
	}

	if s.ctrl.Loading() {
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *VocabularyScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	words := s.ctrl.Words()
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(words)-1 {
			s.cursor++
		}
	case "enter":
		s.ctrl.Select(s.cursor)
	case "s":
		if s.cursor < len(words) {
			return s, s.deps.Speak(words[s.cursor].Word)
		}
	case "m":
		if !s.ctrl.Loading() {
			return s, s.fetch(s.ctrl.LoadMore(s.deps.Context()))
		}
	}
	return s, nil
}

func (s *VocabularyScreen) handleDetailKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	w, _ := s.ctrl.Selected()
	switch key := msg.String(); key {
	case "r":
		_ = s.ctrl.Strengthen(s.deps.Context())
	case "c", "esc":
		s.ctrl.CloseDetail()
	case "s":
		return s, s.deps.Speak(w.Word)
	case "1", "2", "3", "4", "5":
		i := int(key[0] - '1')
		if i < len(w.Examples) {
			return s, s.deps.Speak(w.Examples[i].Sentence)
		}
	}
	return s, nil
}

func (s *VocabularyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch {
	case s.ctrl.Loading():
		body = s.spin.View("du vocabulaire", cw)
	case len(s.ctrl.Words()) == 0:
		body = components.Empty("Aucun mot pour l'instant.\nAppuyez sur M pour réessayer.", cw)
	default:
		if w, open := s.ctrl.Selected(); open {
			body = s.renderDetail(w, cw)
		} else {
			body = s.renderList(cw)
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *VocabularyScreen) renderList(cw int) string {
	words := s.ctrl.Words()

	wordWidth := 0
	for _, w := range words {
		if n := lipgloss.Width(w.Word); n > wordWidth {
			wordWidth = n
		}
	}

	var b strings.Builder
	for i, w := range words {
		mark := "  "
		if s.ctrl.IsStrengthened(w.ID) {
			mark = theme.Marked.Render("● ")
		}
		prefix := "  "
		wordStyle := theme.French
		if i == s.cursor {
			prefix = "▸ "
			wordStyle = theme.Selected
		}
		pad := strings.Repeat(" ", wordWidth-lipgloss.Width(w.Word))
		line := prefix + mark + wordStyle.Render(w.Word) + pad + "  " +
			theme.Phonetic.Render("/"+w.Phonetic+"/") + "  " +
			theme.Gloss.Render(w.Meaning)
		b.WriteString(lipgloss.NewStyle().MaxWidth(cw).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d mots · niveau %s", len(words), s.ctrl.Level())))
	return b.String()
}

func (s *VocabularyScreen) renderDetail(w progress.VocabularyWord, cw int) string {
	var b strings.Builder
	b.WriteString(theme.French.Render(w.Word))
	b.WriteString("  ")
	b.WriteString(theme.Phonetic.Render("/" + w.Phonetic + "/"))
	if s.ctrl.IsStrengthened(w.ID) {
		b.WriteString("  " + theme.Marked.Render("● à renforcer"))
	}
	b.WriteString("\n")
	b.WriteString(theme.Gloss.Render(w.Meaning))
	b.WriteString("\n\n")

	var examples strings.Builder
	for i, ex := range w.Examples {
		examples.WriteString(fmt.Sprintf("%d. %s\n", i+1, theme.Body.Render(ex.Sentence)))
		if ex.Translation != "" {
			examples.WriteString("   " + theme.Gloss.Render(ex.Translation) + "\n")
		}
	}
	if len(w.Examples) > 0 {
		b.WriteString(components.Section("Exemples", strings.TrimRight(examples.String(), "\n")))
		b.WriteString("\n\n")
	}

	b.WriteString(components.ButtonRow(
		components.NewButton("r", "À renforcer", nil),
		components.NewButton("c", "Je connais", nil),
	))

	return components.FocusCard(b.String(), cw)
}
