package grammar

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

// GrammarScreen shows the grammar points of the current level one card
// at a time.
type GrammarScreen struct {
	deps  screen.Deps
	ctrl  *modules.Grammar
	spin  components.Spinner
	point int
}

var _ screen.Screen = (*GrammarScreen)(nil)
var _ screen.KeyHintProvider = (*GrammarScreen)(nil)
var _ screen.Closer = (*GrammarScreen)(nil)

// New creates a new GrammarScreen.
func New(deps screen.Deps) *GrammarScreen {
	return &GrammarScreen{
		deps: deps,
		ctrl: modules.NewGrammar(deps.Content, deps.Progress, deps.Logger()),
		spin: components.NewSpinner(),
	}
}

func (s *GrammarScreen) Init() tea.Cmd {
	return s.fetch()
}

func (s *GrammarScreen) fetch() tea.Cmd {
	s.point = 0
	return tea.Batch(screen.Fetch(s.ctrl.Load(s.deps.Context())), s.spin.Tick())
}

// Close cancels a fetch in flight.
func (s *GrammarScreen) Close() {
	s.ctrl.Stop()
}

func (s *GrammarScreen) Title() string {
	if lvl := s.ctrl.Level(); lvl != "" {
		return "Grammaire · " + string(lvl)
	}
	return "Grammaire"
}

func (s *GrammarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Point"},
		{Key: "1-3", Description: "Écouter l'exemple"},
		{Key: "R", Description: "Autres points"},
		{Key: "Esc", Description: "Accueil"},
	}
}

func (s *GrammarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case modules.Loaded[[]content.GrammarPoint]:
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

func (s *GrammarScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	points := s.ctrl.Points()
	switch key := msg.String(); key {
	case "left", "h", "up", "k":
		if s.point > 0 {
			s.point--
		}
	case "right", "l", "down", "j":
		if s.point < len(points)-1 {
			s.point++
		}
	case "r":
		if !s.ctrl.Loading() {
			return s, s.fetch()
		}
	case "1", "2", "3", "4", "5":
		if s.point < len(points) {
			i := int(key[0] - '1')
			if ex := points[s.point].Examples; i < len(ex) {
				return s, s.deps.Speak(ex[i].Sentence)
			}
		}
	}
	return s, nil
}

func (s *GrammarScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch points := s.ctrl.Points(); {
	case s.ctrl.Loading():
		body = s.spin.View("de la grammaire", cw)
	case len(points) == 0:
		body = components.Empty("Aucun point de grammaire pour l'instant.\nAppuyez sur R pour réessayer.", cw)
	default:
		body = s.renderPoint(points, cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *GrammarScreen) renderPoint(points []content.GrammarPoint, cw int) string {
	p := points[s.point]

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d / %d", s.point+1, len(points))))
	b.WriteString("\n")
	b.WriteString(theme.French.Foreground(theme.Primary).Render(p.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(p.Explanation))
	b.WriteString("\n\n")

	var ex strings.Builder
	for i, e := range p.Examples {
		ex.WriteString(fmt.Sprintf("%d. %s\n", i+1, theme.French.Render(e.Sentence)))
		if e.Translation != "" {
			ex.WriteString("   " + theme.Gloss.Render(e.Translation) + "\n")
		}
	}
	b.WriteString(components.Section("Exemples", strings.TrimRight(ex.String(), "\n")))

	return components.Card(b.String(), cw)
}
