package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/ui/theme"
)

// MenuItem is one line of a Menu. Disabled items are shown but skipped by
// the cursor.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
	Current  bool // marked with a dot, e.g. the learner's level
}

// Menu is a vertical list driven by up/down (or k/j) and enter.
type Menu struct {
	Items  []MenuItem
	Cursor int
}

// NewMenu puts the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Cursor: -1}
	m.move(1)
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	return m
}

// move steps the cursor to the next enabled item in direction dir and
// stays put when there is none.
func (m *Menu) move(dir int) {
	for i := m.Cursor + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Cursor = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Cursor < len(m.Items) {
			if it := m.Items[m.Cursor]; !it.Disabled && it.Action != nil {
				return m, it.Action()
			}
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, it := range m.Items {
		text := it.Label
		if it.Current {
			text += " ●"
		}
		switch {
		case it.Disabled:
			b.WriteString(theme.Hint.Render("    " + text))
		case i == m.Cursor:
			b.WriteString(theme.Selected.Render("  ▸ " + text))
		default:
			b.WriteString(theme.Unselected.Render("    " + text))
		}
		if it.Hint != "" {
			b.WriteString("  " + theme.Hint.Render(it.Hint))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
