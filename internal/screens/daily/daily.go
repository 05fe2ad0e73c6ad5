package daily

import (
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

// DailyScreen shows everyday phrases for one situation at a time.
type DailyScreen struct {
	deps   screen.Deps
	ctrl   *modules.Daily
	spin   components.Spinner
	cursor int
}

var _ screen.Screen = (*DailyScreen)(nil)
var _ screen.KeyHintProvider = (*DailyScreen)(nil)
var _ screen.Closer = (*DailyScreen)(nil)

// New creates a new DailyScreen on the first category.
func New(deps screen.Deps) *DailyScreen {
	return &DailyScreen{
		deps: deps,
		ctrl: modules.NewDaily(deps.Content, deps.Logger()),
		spin: components.NewSpinner(),
	}
}

func (s *DailyScreen) Init() tea.Cmd {
	return s.fetch(s.ctrl.Load(s.deps.Context()))
}

func (s *DailyScreen) fetch(task modules.Task[[]content.DailySentence]) tea.Cmd {
	s.cursor = 0
	return tea.Batch(screen.Fetch(task), s.spin.Tick())
}

// Close cancels a fetch in flight.
func (s *DailyScreen) Close() {
	s.ctrl.Stop()
}

func (s *DailyScreen) Title() string {
	return "Phrases du quotidien"
}

func (s *DailyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Situation"},
		{Key: "↑↓", Description: "Phrase"},
		{Key: "S", Description: "Écouter"},
		{Key: "R", Description: "Nouvelles phrases"},
		{Key: "Esc", Description: "Accueil"},
	}
}

func (s *DailyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case modules.Loaded[[]content.DailySentence]:
		s.ctrl.Apply(msg)
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

func (s *DailyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sentences := s.ctrl.Sentences()
	switch msg.String() {
	case "left", "h":
		return s, s.switchCategory(-1)
	case "right", "l":
		return s, s.switchCategory(1)
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(sentences)-1 {
			s.cursor++
		}
	case "s", "enter":
		if s.cursor < len(sentences) {
			return s, s.deps.Speak(sentences[s.cursor].Sentence)
		}
	case "r":
		return s, s.fetch(s.ctrl.Load(s.deps.Context()))
	}
	return s, nil
}

// switchCategory moves to the neighbouring category and re-fetches. A
// pending fetch for the old category is superseded.
func (s *DailyScreen) switchCategory(delta int) tea.Cmd {
	idx := 0
	for i, c := range content.Categories {
		if c == s.ctrl.Category() {
			idx = i
			break
		}
	}
	n := len(content.Categories)
	next := content.Categories[(idx+delta+n)%n]
	return s.fetch(s.ctrl.SetCategory(s.deps.Context(), next))
}

func (s *DailyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, s.renderCategories(cw))

	switch sentences := s.ctrl.Sentences(); {
	case s.ctrl.Loading():
		sections = append(sections, s.spin.View("des phrases", cw))
	case len(sentences) == 0:
		sections = append(sections, components.Empty("Aucune phrase pour l'instant.\nAppuyez sur R pour réessayer.", cw))
	default:
		sections = append(sections, s.renderSentences(sentences, cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, strings.Join(sections, "\n\n"))
}

func (s *DailyScreen) renderCategories(cw int) string {
	current := s.ctrl.Category()
	title := theme.Title.Width(cw).Render(current.Label())
	sub := theme.Subtitle.Width(cw).Render(current.Name())

	dots := make([]string, len(content.Categories))
	for i, c := range content.Categories {
		if c == current {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Highlight).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	pager := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(dots, " "))

	return title + "\n" + sub + "\n" + pager
}

func (s *DailyScreen) renderSentences(sentences []content.DailySentence, cw int) string {
	var b strings.Builder
	for i, sen := range sentences {
		prefix := "  "
		style := theme.French
		if i == s.cursor {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(prefix + style.Render(sen.Sentence) + "\n")
		if i == s.cursor {
			if sen.Phonetic != "" {
				b.WriteString("    " + theme.Phonetic.Render("/"+sen.Phonetic+"/") + "\n")
			}
			b.WriteString("    " + theme.Gloss.Render(sen.Meaning) + "\n")
		}
	}
	return layout.Wrap(strings.TrimRight(b.String(), "\n"), cw)
}
