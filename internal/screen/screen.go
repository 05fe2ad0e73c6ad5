// Package screen defines what the shell needs from a view, plus the
// dependencies and navigation messages views share.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/ui/layout"
)

// Screen is one page of the app. The shell draws the header and footer;
// View renders only the area between them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHintProvider replaces the footer's default hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer releases work in flight. The router calls it when the screen is
// popped, replaced or unwound by Home.
type Closer interface {
	Close()
}

// BackHandler is for screens with nested state, such as an open detail
// panel. HandlesBack reports whether Esc was consumed there; otherwise the
// shell goes home.
type BackHandler interface {
	HandlesBack() bool
}
