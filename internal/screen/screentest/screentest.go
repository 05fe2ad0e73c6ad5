// Package screentest provides fakes and drivers for screen tests.
package screentest

import (
	"context"
	"sync"
	"testing"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/logger"
	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/store"
)

// Content is a content.Provider serving canned material.
type Content struct {
	Words     []content.WordEntry
	Sentences map[content.Category][]content.DailySentence
	Points    []content.GrammarPoint
	Passage   *content.Article
	Questions []content.ExamQuestion
	Err       error

	mu    sync.Mutex
	calls []string
}

var _ content.Provider = (*Content)(nil)

func (c *Content) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

// Calls returns the purposes requested so far.
func (c *Content) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

func (c *Content) Vocabulary(_ context.Context, _ progress.Level, _ int) ([]content.WordEntry, error) {
	c.record(content.PurposeVocabulary)
	return c.Words, c.Err
}

func (c *Content) DailySentences(_ context.Context, cat content.Category) ([]content.DailySentence, error) {
	c.record(content.PurposeDaily + ":" + string(cat))
	return c.Sentences[cat], c.Err
}

func (c *Content) Grammar(_ context.Context, _ progress.Level) ([]content.GrammarPoint, error) {
	c.record(content.PurposeGrammar)
	return c.Points, c.Err
}

func (c *Content) Article(_ context.Context, _ progress.Level) (*content.Article, error) {
	c.record(content.PurposeArticle)
	return c.Passage, c.Err
}

func (c *Content) Exam(_ context.Context, _ progress.Level) ([]content.ExamQuestion, error) {
	c.record(content.PurposeExam)
	return c.Questions, c.Err
}

// Speaker records what it was asked to say.
type Speaker struct {
	mu   sync.Mutex
	said []string
}

func (s *Speaker) Speak(_ context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.said = append(s.said, text)
}

// Said returns everything spoken so far.
func (s *Speaker) Said() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.said...)
}

// Exams collects finished exams and serves them back as history.
type Exams struct {
	mu      sync.Mutex
	Results []store.ExamResult
}

func (e *Exams) AppendExamResult(_ context.Context, data store.ExamResultData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Results = append(e.Results, store.ExamResult{ID: len(e.Results) + 1, ExamResultData: data})
	return nil
}

func (e *Exams) QueryExamResults(_ context.Context, opts store.QueryOpts) ([]store.ExamResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := append([]store.ExamResult(nil), e.Results...)
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

// Env bundles the fakes behind a Deps value.
type Env struct {
	Deps    screen.Deps
	Content *Content
	Speaker *Speaker
	Exams   *Exams
}

// New returns screen dependencies backed by an in-memory progress store
// and fakes. seed, when non-nil, is applied to the empty progress state.
func New(t *testing.T, seed func(progress.State) progress.State) *Env {
	t.Helper()

	var data []byte
	if seed != nil {
		var err error
		data, err = progress.Encode(seed(progress.DefaultState()))
		if err != nil {
			t.Fatalf("encode seed state: %v", err)
		}
	}

	ctx := context.Background()
	env := &Env{
		Content: &Content{Sentences: map[content.Category][]content.DailySentence{}},
		Speaker: &Speaker{},
		Exams:   &Exams{},
	}
	env.Deps = screen.Deps{
		Ctx:          ctx,
		Progress:     progress.Open(ctx, progress.NewMemoryPersister(data), logger.Nop()),
		Content:      env.Content,
		Speaker:      env.Speaker,
		Exams:        env.Exams,
		History:      env.Exams,
		Log:          logger.Nop(),
		ContentReady: true,
	}
	return env
}

// Key builds a key press for a key name such as "enter", "esc" or "a".
func Key(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+r":
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg{Code: r, Text: name}
}

// Type returns one key press per rune of s.
func Type(s string) []tea.KeyPressMsg {
	var keys []tea.KeyPressMsg
	for _, r := range s {
		keys = append(keys, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return keys
}

// CmdTimeout bounds how long Run waits for a single command. Timers such as
// cursor blinks and flashes take longer and are dropped.
const CmdTimeout = 100 * time.Millisecond

func execute(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(CmdTimeout):
		return nil
	}
}

// Run executes cmd and returns the messages it produced, flattening
// batches. Spinner ticks and commands slower than CmdTimeout are dropped.
func Run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := execute(cmd)
	switch m := msg.(type) {
	case nil, spinner.TickMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range m {
			out = append(out, Run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// Settle runs cmd, delivers the results to s and repeats with the
// commands s returns, until nothing is left.
func Settle(s screen.Screen, cmd tea.Cmd) screen.Screen {
	pending := []tea.Cmd{cmd}
	for i := 0; len(pending) > 0 && i < 16; i++ {
		var next []tea.Cmd
		for _, c := range pending {
			for _, msg := range Run(c) {
				var out tea.Cmd
				s, out = s.Update(msg)
				next = append(next, out)
			}
		}
		pending = next
	}
	return s
}

// Press sends each key to s and settles the resulting commands.
func Press(s screen.Screen, keys ...string) screen.Screen {
	for _, k := range keys {
		var cmd tea.Cmd
		s, cmd = s.Update(Key(k))
		s = Settle(s, cmd)
	}
	return s
}
