package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/router"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/screens/history"
	"github.com/abhisek/elan/internal/ui/components"
	"github.com/abhisek/elan/internal/ui/layout"
)

// Menu positions whose hints depend on progress.
const (
	itemDictation = 4
	itemExam      = 5
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps screen.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screen.Deps) *HomeScreen {
	navigate := func(v screen.View) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return screen.NavigateMsg{View: v} }
		}
	}

	items := []components.MenuItem{
		{Label: "VOCABULAIRE", Action: navigate(screen.ViewVocabulary)},
		{Label: "PHRASES DU QUOTIDIEN", Action: navigate(screen.ViewDaily)},
		{Label: "GRAMMAIRE", Action: navigate(screen.ViewGrammar)},
		{Label: "LECTURE", Action: navigate(screen.ViewReading)},
		{Label: "DICTÉE QUOTIDIENNE", Action: navigate(screen.ViewDictation)},
		{Label: "EXAMEN RAPIDE", Action: navigate(screen.ViewExam)},
		{Label: "HISTORIQUE", Disabled: deps.History == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.History)}
			}
		}},
		{Label: "QUITTER", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Enter", Description: "Ouvrir"},
		{Key: "←→", Description: "Niveau"},
		{Key: "Tab", Description: "Vue suivante"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch key := kmsg.String(); key {
		case "left", "h":
			h.shiftLevel(-1)
			return h, nil
		case "right", "l":
			h.shiftLevel(1)
			return h, nil
		case "1", "2", "3", "4", "5":
			h.setLevel(progress.Levels[key[0]-'1'])
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) shiftLevel(delta int) {
	i := h.deps.Progress.Level().Index() + delta
	if i < 0 || i >= len(progress.Levels) {
		return
	}
	h.setLevel(progress.Levels[i])
}

func (h *HomeScreen) setLevel(l progress.Level) {
	if l == h.deps.Progress.Level() {
		return
	}
	if _, err := h.deps.Progress.SetLevel(h.deps.Context(), l); err != nil {
		h.deps.Logger().Warn("set level", "level", l, "error", err)
	}
}

func (h *HomeScreen) View(width, height int) string {
	st := h.deps.Progress.State()
	words, marked := len(st.Vocabulary), len(st.StrengthenSet)

	h.menu.Items[itemDictation].Hint = fmt.Sprintf("Focus sur %d mots difficiles", marked)
	h.menu.Items[itemExam].Hint = "Testez votre grammaire " + string(st.CurrentLevel)

	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 44 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(moodFor(words, marked), cw))
	}
	if !h.deps.ContentReady {
		sections = append(sections, renderLLMBanner(cw))
	}
	sections = append(sections, renderStatsBar(st.CurrentLevel, words, marked, cw))
	sections = append(sections, renderLevels(st.CurrentLevel, cw))
	sections = append(sections, renderMenuBox(h.menu.View(), cw))

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.Frame(strings.Join(sections, sep), width, height)
}
