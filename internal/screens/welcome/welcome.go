package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/router"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/ui/theme"
)

const (
	frameInterval = 80 * time.Millisecond
	flagDur       = 800 * time.Millisecond  // stripes fill in
	bannerAt      = 1200 * time.Millisecond // banner and greeting appear
	autoAdvance   = 4 * time.Second         // hand off to home without a key
	flagWidth     = 18
	flagHeight    = 6
)

type frameMsg struct{}

// WelcomeScreen paints the tricolour, then the banner and a greeting, and
// replaces itself with the home screen on a key press or after autoAdvance.
type WelcomeScreen struct {
	homeFactory func() screen.Screen
	now         func() time.Time
	elapsed     time.Duration
	done        bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New returns a splash that hands over to the screen built by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory, now: time.Now}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.elapsed += frameInterval
		if w.elapsed >= autoAdvance {
			return w, w.leave()
		}
		return w, nextFrame()
	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

func (w *WelcomeScreen) leave() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	next := w.homeFactory()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Greeting picks the salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 5 || h >= 18:
		return "Bonsoir !"
	default:
		return "Bonjour !"
	}
}

// flag renders the three stripes, filled top to bottom in proportion to
// progress (0 to 1).
func flag(progress float64) string {
	rows := int(progress * flagHeight)
	if progress >= 1 {
		rows = flagHeight
	}
	stripe := strings.Repeat("█", flagWidth/3)
	blank := strings.Repeat(" ", flagWidth/3)

	lines := make([]string, flagHeight)
	for i := range lines {
		if i >= rows {
			lines[i] = blank + blank + blank
			continue
		}
		lines[i] = theme.Tricolore[0].Render(stripe) + theme.Tricolore[1].Render(stripe) + theme.Tricolore[2].Render(stripe)
	}
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{flag(float64(w.elapsed) / float64(flagDur))}

	if w.elapsed >= bannerAt {
		greeting := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Greeting(w.now()) + " Le français, un mot à la fois.")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("appuyez sur une touche pour commencer")
		sections = append(sections, "", RenderBanner(width), "", greeting, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
