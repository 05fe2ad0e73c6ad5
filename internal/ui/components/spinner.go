package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/ui/theme"
)

// Spinner animates while content is being fetched.
type Spinner struct {
	model spinner.Model
}

// NewSpinner creates a spinner in the highlight color.
func NewSpinner() Spinner {
	return Spinner{
		model: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Highlight)),
		),
	}
}

// Tick starts the animation.
func (s Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

// Update advances the animation on its own tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return s, cmd
}

// View renders the spinner next to a "Chargement <what>…" label.
func (s Spinner) View(what string, cw int) string {
	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Chargement " + what + "…")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(s.model.View() + " " + label)
}
