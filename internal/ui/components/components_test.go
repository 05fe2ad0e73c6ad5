package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenuSkipsDisabled(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { fired = "B"; return nil }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { fired = "D"; return nil }},
	})
	if m.Cursor != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Cursor)
	}

	m, _ = m.Update(key("down"))
	if m.Cursor != 3 {
		t.Errorf("selection after down = %d, want 3", m.Cursor)
	}
	m, _ = m.Update(key("enter"))
	if fired != "D" {
		t.Errorf("fired %q, want D", fired)
	}
}

func TestMenuViewMarksCurrent(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A1"}, {Label: "A2", Current: true, Hint: "actuel"}})
	view := m.View()
	if !strings.Contains(view, "A2 ●") {
		t.Errorf("current item not marked: %q", view)
	}
	if !strings.Contains(view, "actuel") {
		t.Errorf("hint missing: %q", view)
	}
}

func TestMultiChoicePickByLetter(t *testing.T) {
	mc := NewMultiChoice("Q", []string{"w", "x", "y", "z"}, 2)

	mc, _ = mc.Update(key("c"))
	if i, ok := mc.Chosen(); !ok || i != 2 {
		t.Fatalf("chosen = %d, %v; want 2", i, ok)
	}
	if !mc.IsCorrect() {
		t.Error("expected correct answer")
	}

	// Further picks are ignored.
	mc, _ = mc.Update(key("a"))
	if i, _ := mc.Chosen(); i != 2 {
		t.Error("second pick should be ignored")
	}
}

func TestMultiChoiceCursor(t *testing.T) {
	mc := NewMultiChoice("Q", []string{"w", "x"}, 0)
	mc, _ = mc.Update(key("down"))
	mc, _ = mc.Update(key("down"))
	if mc.cursor != 1 {
		t.Errorf("cursor = %d, want 1", mc.cursor)
	}
	mc, _ = mc.Update(key("enter"))
	if _, ok := mc.Chosen(); !ok || mc.IsCorrect() {
		t.Error("expected an incorrect submission")
	}

	// Out-of-range digit does nothing.
	fresh := NewMultiChoice("Q", []string{"w", "x"}, 0)
	if fresh, _ = fresh.Update(key("4")); fresh.IsCorrect() || fresh.chosen >= 0 {
		t.Error("out-of-range pick accepted")
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{3, 10, 0.3},
		{12, 10, 1},
		{-1, 10, 0},
	}
	for _, tt := range tests {
		if got := Fraction(tt.done, tt.total); got != tt.want {
			t.Errorf("Fraction(%d, %d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestButtonFiresOnKey(t *testing.T) {
	pressed := false
	b := NewButton("r", "à renforcer", func() tea.Cmd { pressed = true; return nil })

	b.Update(key("x"))
	if pressed {
		t.Error("wrong key fired the button")
	}
	b.Update(key("r"))
	if !pressed {
		t.Error("button key did not fire")
	}
}

func TestProgressFitsWidth(t *testing.T) {
	for _, tt := range []struct {
		label   string
		frac    float64
		percent bool
	}{
		{"", 0.5, true},
		{"Question 3 / 10", 0.2, false},
		{"", 1, false},
	} {
		got := Progress(tt.label, tt.frac, 40, tt.percent)
		if w := lipgloss.Width(got); w != 40 {
			t.Errorf("Progress(%q, %v) is %d cells wide, want 40", tt.label, tt.frac, w)
		}
	}
	if !strings.Contains(Progress("", 0.75, 30, true), "75%") {
		t.Error("percentage missing")
	}
	if w := lipgloss.Width(Progress("", 0.5, 1, false)); w != 4 {
		t.Errorf("narrow bar = %d cells, want 4", w)
	}
}

func TestDisabledButtonIgnoresKey(t *testing.T) {
	pressed := false
	b := NewButton("c", "Je connais", func() tea.Cmd { pressed = true; return nil })
	b.Disabled = true
	b.Update(key("c"))
	if pressed {
		t.Error("disabled button fired")
	}
	if !strings.Contains(ButtonRow(b, NewButton("r", "À renforcer", nil)), "À renforcer") {
		t.Error("row lost a button")
	}
}

func TestTextInputWrongMarker(t *testing.T) {
	in := NewTextInput("…", 10)
	in.SetValue("bonjour")
	in.SetWrong(true)
	if !strings.Contains(in.View(), "✗") {
		t.Error("wrong marker missing")
	}
	in.Reset()
	if in.Value() != "" || strings.Contains(in.View(), "✗") {
		t.Error("Reset kept state")
	}
}

func TestSectionUpperCasesHeading(t *testing.T) {
	out := Section("Mots-clés", "marché")
	if !strings.Contains(out, "MOTS-CLÉS") {
		t.Errorf("heading not upper-cased: %q", out)
	}
	if !strings.HasSuffix(out, "\nmarché") {
		t.Errorf("body should follow the heading line: %q", out)
	}
}
