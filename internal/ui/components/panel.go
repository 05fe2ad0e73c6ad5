package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all panels so they
// line up on wide terminals.
func ContentWidth(frameWidth int) int {
	// Leave room for the frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame centers content inside a double border of the given size.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
// Text is left aligned so paragraphs read naturally.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(content)
}

// FocusCard is a Card with a highlighted border.
func FocusCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Width(cw).
		Padding(0, 1).
		Render(content)
}

// PanelButton renders a fixed-width bordered button.
func PanelButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Highlight).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Highlight).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(label)
}

// Empty renders the message shown when a fetch produced nothing.
func Empty(message string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(message)
}

// Section renders a dim heading followed by its body.
func Section(heading, body string) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(strings.ToUpper(heading)))
	b.WriteString("\n")
	b.WriteString(body)
	return b.String()
}
