// Package layout draws the frame around every screen: a header with the
// learner's progress, the screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the learner to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Fenêtre trop petite\n\nAgrandissez le terminal à au moins %d × %d\n(actuel : %d × %d)",
			MinWidth, MinHeight, width, height,
		))
}

// HeaderStats is the progress summary shown on the right of the header.
type HeaderStats struct {
	Level  string
	Words  int
	Marked int
}

func (s HeaderStats) render() string {
	return theme.LevelBadge(s.Level) +
		theme.Gloss.Render(fmt.Sprintf("   %d mots   ", s.Words)) +
		theme.Marked.Render(fmt.Sprintf("● %d", s.Marked))
}

// RenderHeader puts the app name on the left, title in the middle and
// stats on the right. The title is centred on the bar when there is room.
func RenderHeader(title string, stats HeaderStats, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Élan")
	center := theme.Body.Render(title)
	right := stats.render()

	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	line := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return theme.Bar.Width(width).Render(line)
}

// RenderFooter lists the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " + theme.Gloss.Render(h.Description)
	}
	return theme.Bar.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, body and footer, giving the body whatever
// height is left.
func RenderFrame(header, body, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Wrap renders text as a block of at most width columns.
func Wrap(text string, width int) string {
	if width < 1 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
