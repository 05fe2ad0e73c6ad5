package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/ui/theme"
)

// MultiChoice asks one question with lettered options. It takes a single
// answer and then reveals the right one; scoring is left to the caller.
type MultiChoice struct {
	question string
	options  []string
	answer   int
	cursor   int
	chosen   int // -1 until answered
}

func NewMultiChoice(question string, options []string, answer int) MultiChoice {
	return MultiChoice{question: question, options: options, answer: answer, chosen: -1}
}

// Chosen returns the picked option once there is one.
func (m MultiChoice) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// IsCorrect reports whether the pick was the answer.
func (m MultiChoice) IsCorrect() bool {
	return m.chosen >= 0 && m.chosen == m.answer
}

// Update moves the cursor with up/down and picks with enter, a letter from
// a or a digit from 1. Keys after the pick are ignored.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || m.chosen >= 0 {
		return m, nil
	}
	switch s := key.String(); s {
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, len(m.options)-1)
	case "enter":
		m.pick(m.cursor)
	default:
		if len(s) == 1 {
			if c := s[0]; c >= 'a' && c <= 'z' {
				m.pick(int(c - 'a'))
			} else if c >= '1' && c <= '9' {
				m.pick(int(c - '1'))
			}
		}
	}
	return m, nil
}

func (m *MultiChoice) pick(i int) {
	if i >= 0 && i < len(m.options) {
		m.cursor, m.chosen = i, i
	}
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.question))
	b.WriteString("\n\n")

	answered := m.chosen >= 0
	for i, opt := range m.options {
		marker := "  "
		if i == m.cursor && !answered {
			marker = "▸ "
		}
		line := marker + string(rune('A'+i)) + ")  " + opt

		style := theme.Unselected
		switch {
		case answered && i == m.answer:
			style = theme.Correct
		case answered && i == m.chosen:
			style = theme.Incorrect
		case answered:
			style = theme.Hint
		case i == m.cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}
	return b.String()
}
