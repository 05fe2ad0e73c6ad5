package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/ui/theme"
)

// Mood picks the mascot's face on the home screen.
type Mood int

const (
	MoodCalm    Mood = iota
	MoodProud        // large vocabulary
	MoodWorried      // long drill backlog
)

const (
	worriedAt = 5   // marked words
	proudAt   = 100 // known words
)

type portrait struct {
	art string
	fg  color.Color
}

// Coq au béret, three moods.
var portraits = map[Mood]portrait{
	MoodCalm: {fg: theme.Primary, art: `   ▂▄▂
  ╭───╮
  │ ● ●>
  │  ‿ │
  ╰┬─┬╯
   ╨ ╨`},
	MoodProud: {fg: theme.Highlight, art: ` ✦ ▂▄▂ ✦
  ╭───╮
  │ ^ ^>
  │  ▽ │
  ╰┬─┬╯
   ╨ ╨`},
	MoodWorried: {fg: theme.Accent, art: `   ▂▄▂  ?
  ╭───╮
  │ ◦ ◦>
  │  ~ │
  ╰┬─┬╯
   ╨ ╨`},
}

// moodFor reads the learner's state off their word counts. A backlog
// outweighs a big vocabulary.
func moodFor(words, marked int) Mood {
	if marked >= worriedAt {
		return MoodWorried
	}
	if words >= proudAt {
		return MoodProud
	}
	return MoodCalm
}

// Mascot renders the art for m in its colour.
func Mascot(m Mood) string {
	p, ok := portraits[m]
	if !ok {
		p = portraits[MoodCalm]
	}
	return lipgloss.NewStyle().Foreground(p.fg).Render(p.art)
}
