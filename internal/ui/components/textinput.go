package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/ui/theme"
)

// TextInput is a focused single-line input that can flag its content as
// wrong with a trailing cross.
type TextInput struct {
	input textinput.Model
	wrong bool
}

// NewTextInput returns a focused input holding at most limit runes; zero
// means no limit.
func NewTextInput(placeholder string, limit int) TextInput {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Focus()
	return TextInput{input: in}
}

// Init starts the cursor blinking.
func (t TextInput) Init() tea.Cmd { return t.input.Focus() }

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	if t.wrong {
		return t.input.View() + " " + theme.Incorrect.Render("✗")
	}
	return t.input.View()
}

func (t TextInput) Value() string        { return t.input.Value() }
func (t *TextInput) SetValue(v string)   { t.input.SetValue(v) }
func (t *TextInput) SetWrong(wrong bool) { t.wrong = wrong }

// Reset empties the input and clears the wrong flag.
func (t *TextInput) Reset() {
	t.input.Reset()
	t.wrong = false
}
