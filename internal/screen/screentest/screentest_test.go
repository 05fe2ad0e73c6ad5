package screentest

import (
	"context"
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/progress"
)

type pingMsg struct{ n int }

func ping(n int) tea.Cmd { return func() tea.Msg { return pingMsg{n} } }

func TestRunFlattensBatches(t *testing.T) {
	tick := func() tea.Msg { return spinner.TickMsg{} }
	idle := func() tea.Msg { return nil }

	msgs := Run(tea.Batch(ping(1), tea.Batch(ping(2), tick), idle, ping(3)))
	if len(msgs) != 3 {
		t.Fatalf("msgs = %v, want three pings", msgs)
	}
	for i, m := range msgs {
		if p, ok := m.(pingMsg); !ok || p.n != i+1 {
			t.Errorf("msgs[%d] = %#v, want ping %d", i, m, i+1)
		}
	}
}

func TestRunNilCommand(t *testing.T) {
	if msgs := Run(nil); msgs != nil {
		t.Errorf("Run(nil) = %v", msgs)
	}
}

func TestContentServesPassage(t *testing.T) {
	a := &content.Article{Title: "Le métro"}
	c := &Content{Passage: a}

	got, err := c.Article(context.Background(), progress.LevelA1)
	if err != nil || got != a {
		t.Fatalf("Article = %v, %v", got, err)
	}
	if calls := c.Calls(); len(calls) != 1 || calls[0] != content.PurposeArticle {
		t.Errorf("calls = %v", calls)
	}
}
