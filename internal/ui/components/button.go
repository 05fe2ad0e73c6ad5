package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/ui/theme"
)

// Button shows a key and what it does. OnPress, when set, runs on that key.
type Button struct {
	Key      string
	Label    string
	Disabled bool
	OnPress  func() tea.Cmd
}

func NewButton(key, label string, onPress func() tea.Cmd) Button {
	return Button{Key: key, Label: label, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if ok && !b.Disabled && b.OnPress != nil && key.String() == b.Key {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	style := theme.ButtonActive
	if b.Disabled {
		style = theme.ButtonInactive
	}
	return style.Render(" " + b.Key + "  " + b.Label + " ")
}

// ButtonRow lays buttons out on one line, two cells apart.
func ButtonRow(buttons ...Button) string {
	cells := make([]string, 0, 2*len(buttons))
	for i, b := range buttons {
		if i > 0 {
			cells = append(cells, "  ")
		}
		cells = append(cells, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}
