// Package theme holds the palette and shared styles. Blue and red come from
// the French flag; everything else sits on a dark slate background.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#3B82F6") // bleu
	Accent    = lipgloss.Color("#EF4444") // rouge
	Text      = lipgloss.Color("#F8FAFC") // blanc
	Secondary = lipgloss.Color("#14B8A6")
	Highlight = lipgloss.Color("#FACC15")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Tricolore is blue, white and red, in flag order.
var Tricolore = [3]lipgloss.Style{
	lipgloss.NewStyle().Foreground(Primary).Bold(true),
	lipgloss.NewStyle().Foreground(Text).Bold(true),
	lipgloss.NewStyle().Foreground(Accent).Bold(true),
}

// levelColors runs from green for beginners to red for C1.
var levelColors = map[string]color.Color{
	"A1": lipgloss.Color("#22C55E"),
	"A2": lipgloss.Color("#84CC16"),
	"B1": lipgloss.Color("#FACC15"),
	"B2": lipgloss.Color("#F97316"),
	"C1": lipgloss.Color("#EF4444"),
}

// LevelBadge renders a CEFR level in its difficulty color. Unknown levels
// fall back to the highlight color.
func LevelBadge(level string) string {
	c, ok := levelColors[level]
	if !ok {
		c = Highlight
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(level)
}

// Text styles.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	// French is the target-language text, Phonetic its IPA and Gloss the
	// learner's-language meaning.
	French   = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Phonetic = lipgloss.NewStyle().Foreground(Secondary)
	Gloss    = lipgloss.NewStyle().Foreground(TextDim)
)

// Answer and selection states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Marked flags words in the strengthen set.
	Marked = lipgloss.NewStyle().Foreground(Accent)
)

// Widgets.
var (
	ProgressFilled = lipgloss.NewStyle().Foreground(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Foreground(Border)

	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Background(BgCard).Foreground(TextDim).Padding(0, 2)

	// Bar is the background of the header and footer boxes.
	Bar = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
)
