// Package app hosts the Bubble Tea shell: the header, the active view and
// the footer, plus Tab navigation between the learning views.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/router"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/screens/daily"
	"github.com/abhisek/elan/internal/screens/dictation"
	"github.com/abhisek/elan/internal/screens/exam"
	"github.com/abhisek/elan/internal/screens/grammar"
	"github.com/abhisek/elan/internal/screens/home"
	"github.com/abhisek/elan/internal/screens/reading"
	"github.com/abhisek/elan/internal/screens/vocabulary"
	"github.com/abhisek/elan/internal/screens/welcome"
	"github.com/abhisek/elan/internal/ui/layout"
)

// Options configures the shell.
type Options struct {
	Splash bool // open on the animated welcome screen
}

// screens builds the screen behind each non-home view.
var screens = map[screen.View]func(screen.Deps) screen.Screen{
	screen.ViewVocabulary: func(d screen.Deps) screen.Screen { return vocabulary.New(d) },
	screen.ViewDaily:      func(d screen.Deps) screen.Screen { return daily.New(d) },
	screen.ViewGrammar:    func(d screen.Deps) screen.Screen { return grammar.New(d) },
	screen.ViewReading:    func(d screen.Deps) screen.Screen { return reading.New(d) },
	screen.ViewDictation:  func(d screen.Deps) screen.Screen { return dictation.New(d) },
	screen.ViewExam:       func(d screen.Deps) screen.Screen { return exam.New(d) },
}

var defaultHints = []layout.KeyHint{
	{Key: "Tab", Description: "Vue suivante"},
	{Key: "Esc", Description: "Accueil"},
	{Key: "Ctrl+C", Description: "Quitter"},
}

// Model is the root tea.Model.
type Model struct {
	router *router.Router
	deps   screen.Deps
	view   screen.View

	width, height int
}

func newModel(deps screen.Deps, opts Options) Model {
	newHome := func() screen.Screen { return home.New(deps) }
	root := newHome()
	if opts.Splash {
		root = welcome.New(newHome)
	}
	return Model{router: router.New(root), deps: deps, view: screen.ViewHome}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case screen.NavigateMsg:
		return m, m.navigate(msg.View)
	case tea.KeyMsg:
		if cmd, handled := m.globalKey(msg.String()); handled {
			return m, cmd
		}
	}
	return m, m.router.Update(msg)
}

// globalKey handles the shell's own bindings. Only ctrl+c works during the
// splash, and Esc is left to screens that handle it themselves.
func (m *Model) globalKey(key string) (tea.Cmd, bool) {
	if key == "ctrl+c" {
		return tea.Quit, true
	}
	if _, splash := m.router.Active().(*welcome.WelcomeScreen); splash {
		return nil, false
	}
	switch key {
	case "tab":
		return m.navigate(m.view.Next()), true
	case "shift+tab":
		return m.navigate(m.view.Prev()), true
	case "esc":
		if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
			return nil, false
		}
		if m.router.Depth() == 1 {
			return nil, true
		}
		return m.navigate(screen.ViewHome), true
	}
	return nil, false
}

// navigate shows view v. Every view but home sits directly on top of the
// home screen, so moving between them replaces the top screen, and closing
// it cancels any fetch it still has running.
func (m *Model) navigate(v screen.View) tea.Cmd {
	m.view = v
	build, ok := screens[v]
	if !ok {
		m.view = screen.ViewHome
		return m.router.Home()
	}
	if m.router.Depth() == 1 {
		return m.router.Push(build(m.deps))
	}
	return m.router.Replace(build(m.deps))
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	switch {
	case m.width == 0 || m.height == 0:
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
	default:
		v.SetContent(m.frame())
	}
	return v
}

func (m Model) frame() string {
	active := m.router.Active()
	var title string
	hints := defaultHints
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.KeyHintProvider); ok && hp.KeyHints() != nil {
			hints = hp.KeyHints()
		}
	}

	st := m.deps.Progress.State()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Level:  string(st.CurrentLevel),
		Words:  len(st.Vocabulary),
		Marked: len(st.StrengthenSet),
	}, m.width)
	footer := layout.RenderFooter(hints, m.width)

	body := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return layout.RenderFrame(header, m.router.View(m.width, body), footer, m.width, m.height)
}

// Run blocks until the program exits or ctx is cancelled.
func Run(ctx context.Context, deps screen.Deps, opts Options) error {
	if deps.Ctx == nil {
		deps.Ctx = ctx
	}
	if _, err := tea.NewProgram(newModel(deps, opts), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
