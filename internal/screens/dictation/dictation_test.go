package dictation

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/screen/screentest"
)

func withPool(words ...string) func(progress.State) progress.State {
	return func(s progress.State) progress.State {
		for _, w := range words {
			id := "w-" + w
			s.Vocabulary = append(s.Vocabulary, progress.VocabularyWord{
				ID: id, Word: w, Meaning: "sens de " + w, Level: progress.LevelA1,
				Examples: []progress.Example{},
			})
			s.StrengthenSet = append(s.StrengthenSet, id)
		}
		return s
	}
}

func typeWord(s *DictationScreen, word string) {
	for _, k := range screentest.Type(word) {
		s.Update(k)
	}
}

func TestEmptyPool(t *testing.T) {
	env := screentest.New(t, nil)
	s := New(env.Deps)
	screentest.Run(s.Init())

	if len(env.Speaker.Said()) != 0 {
		t.Error("nothing should be spoken with an empty pool")
	}
	if view := s.View(100, 40); !strings.Contains(view, "Liste de dictée vide") {
		t.Error("empty pool guidance missing")
	}

	// Keys are ignored.
	s.Update(screentest.Key("enter"))
	if s.ctrl.Wrong() {
		t.Error("enter on an empty pool raised the wrong flag")
	}
}

func TestInitSpeaksFirstWord(t *testing.T) {
	env := screentest.New(t, withPool("chat", "chien"))
	s := New(env.Deps)
	screentest.Run(s.Init())

	if said := env.Speaker.Said(); len(said) != 1 || said[0] != "chat" {
		t.Errorf("said %q, want [chat]", said)
	}
	if view := s.View(100, 40); !strings.Contains(view, "Mot 1 sur 2") || !strings.Contains(view, "sens de chat") {
		t.Error("view should show the position and the hint")
	}
}

func TestCorrectAnswerAdvances(t *testing.T) {
	env := screentest.New(t, withPool("chat", "chien"))
	s := New(env.Deps)

	typeWord(s, "  CHAT ")
	_, cmd := s.Update(screentest.Key("enter"))
	screentest.Run(cmd)

	if s.ctrl.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.ctrl.Index())
	}
	if s.input.Value() != "" {
		t.Errorf("input not cleared: %q", s.input.Value())
	}
	if !s.praised {
		t.Error("correct answer should be praised")
	}
	if said := env.Speaker.Said(); len(said) == 0 || said[len(said)-1] != "chien" {
		t.Errorf("next word not spoken: %q", said)
	}

	typeWord(s, "chien")
	s.Update(screentest.Key("enter"))
	if s.ctrl.Index() != 0 {
		t.Errorf("index = %d, want wrap to 0", s.ctrl.Index())
	}
}

func TestWrongAnswerFlashes(t *testing.T) {
	env := screentest.New(t, withPool("fenêtre"))
	s := New(env.Deps)

	typeWord(s, "fenetre")
	_, cmd := s.Update(screentest.Key("enter"))
	if cmd == nil {
		t.Fatal("a mismatch should schedule the flash to clear")
	}
	if !s.ctrl.Wrong() || s.ctrl.Index() != 0 {
		t.Fatal("accents must match")
	}
	if view := s.View(100, 40); !strings.Contains(view, "réessayez") {
		t.Error("wrong answer message missing")
	}

	first := s.ctrl.WrongSeq()
	s.Update(screentest.Key("enter"))
	second := s.ctrl.WrongSeq()

	// The timer of the first mismatch must not clear the second one.
	s.Update(clearWrongMsg{Seq: first})
	if !s.ctrl.Wrong() {
		t.Error("stale timer cleared a newer mismatch")
	}
	s.Update(clearWrongMsg{Seq: second})
	if s.ctrl.Wrong() {
		t.Error("timer did not clear the flag")
	}
}

func TestTypingClearsWrong(t *testing.T) {
	env := screentest.New(t, withPool("pain"))
	s := New(env.Deps)

	typeWord(s, "pin")
	s.Update(screentest.Key("enter"))
	if !s.ctrl.Wrong() {
		t.Fatal("expected a mismatch")
	}

	s.Update(screentest.Key("backspace"))
	if s.ctrl.Wrong() {
		t.Error("editing the input should clear the flag")
	}
	if s.ctrl.Input() != "pi" {
		t.Errorf("input = %q, want pi", s.ctrl.Input())
	}
}

func TestReplay(t *testing.T) {
	env := screentest.New(t, withPool("pomme"))
	s := New(env.Deps)

	_, cmd := s.Update(screentest.Key("ctrl+r"))
	screentest.Run(cmd)
	if said := env.Speaker.Said(); len(said) != 1 || said[0] != "pomme" {
		t.Errorf("said %q, want [pomme]", said)
	}
	if s.input.Value() != "" {
		t.Error("ctrl+r should not type into the input")
	}
}

func TestPoolFollowsStore(t *testing.T) {
	env := screentest.New(t, withPool("chat"))
	env.Deps.Progress.MergeVocabulary(t.Context(), []progress.VocabularyWord{
		{ID: "w-lait", Word: "lait", Level: progress.LevelA1},
	})
	s := New(env.Deps)

	if _, err := env.Deps.Progress.MarkForReinforcement(t.Context(), "w-lait"); err != nil {
		t.Fatal(err)
	}
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if n := len(s.ctrl.Pool()); n != 2 {
		t.Errorf("pool = %d words, want 2", n)
	}
}

func TestViewLeavesPoolAlone(t *testing.T) {
	env := screentest.New(t, withPool("chat"))
	env.Deps.Progress.MergeVocabulary(t.Context(), []progress.VocabularyWord{
		{ID: "w-lait", Word: "lait", Level: progress.LevelA1},
	})
	s := New(env.Deps)
	if _, err := env.Deps.Progress.MarkForReinforcement(t.Context(), "w-lait"); err != nil {
		t.Fatal(err)
	}

	view := s.View(100, 40)
	if n := len(s.ctrl.Pool()); n != 1 {
		t.Fatalf("rendering changed the pool to %d words", n)
	}
	if !strings.Contains(view, "Mot 1 sur 1") {
		t.Errorf("view should show the pool as of the last update")
	}

	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if view := s.View(100, 40); !strings.Contains(view, "Mot 1 sur 2") {
		t.Error("update should pick up the new word")
	}
}
