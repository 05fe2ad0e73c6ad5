package reading

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/modules"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/ui/components"
	"github.com/abhisek/elan/internal/ui/layout"
	"github.com/abhisek/elan/internal/ui/theme"
)

// ReadingScreen shows a graded article in a scrollable pane.
type ReadingScreen struct {
	deps screen.Deps
	ctrl *modules.Reading
	spin components.Spinner
	vp   viewport.Model

	// rendered is the text last handed to the viewport, so scrolling is
	// kept while the content is unchanged.
	rendered string
}

var _ screen.Screen = (*ReadingScreen)(nil)
var _ screen.KeyHintProvider = (*ReadingScreen)(nil)
var _ screen.Closer = (*ReadingScreen)(nil)

// New creates a new ReadingScreen.
func New(deps screen.Deps) *ReadingScreen {
	return &ReadingScreen{
		deps: deps,
		ctrl: modules.NewReading(deps.Content, deps.Progress, deps.Logger()),
		spin: components.NewSpinner(),
		vp:   viewport.New(),
	}
}

func (s *ReadingScreen) Init() tea.Cmd {
	return s.fetch()
}

// fetch loads another article. The translation is hidden again.
func (s *ReadingScreen) fetch() tea.Cmd {
	s.vp.GotoTop()
	return tea.Batch(screen.Fetch(s.ctrl.Load(s.deps.Context())), s.spin.Tick())
}

// Close cancels a fetch in flight.
func (s *ReadingScreen) Close() {
	s.ctrl.Stop()
}

func (s *ReadingScreen) Title() string {
	if lvl := s.ctrl.Level(); lvl != "" {
		return "Lecture · " + string(lvl)
	}
	return "Lecture"
}

func (s *ReadingScreen) KeyHints() []layout.KeyHint {
	translation := "Traduction"
	if s.ctrl.ShowTranslation() {
		translation = "Masquer la traduction"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Défiler"},
		{Key: "T", Description: translation},
		{Key: "S", Description: "Écouter"},
		{Key: "N", Description: "Autre article"},
		{Key: "Esc", Description: "Accueil"},
	}
}

func (s *ReadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case modules.Loaded[*content.Article]:
		s.ctrl.Apply(msg)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			s.ctrl.ToggleTranslation()
			return s, nil
		case "n":
			if !s.ctrl.Loading() {
				return s, s.fetch()
			}
			return s, nil
		case "s":
			if a := s.ctrl.Article(); a != nil {
				return s, s.deps.Speak(a.Title + ". " + a.Content)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.vp, cmd = s.vp.Update(msg)
		return s, cmd
	}

	if s.ctrl.Loading() {
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ReadingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	a := s.ctrl.Article()
	switch {
	case s.ctrl.Loading():
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.spin.View("d'un article", cw))
	case a == nil:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			components.Empty("Aucun article pour l'instant.\nAppuyez sur N pour réessayer.", cw))
	}

	text := renderArticle(a, s.ctrl.ShowTranslation(), cw)
	s.vp.SetWidth(cw)
	s.vp.SetHeight(max(height-1, 1))
	if text != s.rendered {
		s.vp.SetContent(text)
		s.rendered = text
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.vp.View())
}

func renderArticle(a *content.Article, showTranslation bool, cw int) string {
	var b strings.Builder
	b.WriteString(theme.French.Foreground(theme.Primary).Render(a.Title))
	b.WriteString("\n\n")
	b.WriteString(layout.Wrap(a.Content, cw))
	b.WriteString("\n\n")

	if len(a.Keywords) > 0 {
		kw := make([]string, len(a.Keywords))
		for i, k := range a.Keywords {
			kw[i] = lipgloss.NewStyle().Foreground(theme.Highlight).Render(k)
		}
		b.WriteString(components.Section("Mots-clés", layout.Wrap(strings.Join(kw, " · "), cw)))
		b.WriteString("\n\n")
	}

	if showTranslation {
		b.WriteString(components.Section("Traduction", theme.Gloss.Render(layout.Wrap(a.Translation, cw))))
	} else {
		b.WriteString(theme.Hint.Render("Appuyez sur T pour afficher la traduction."))
	}
	return b.String()
}
