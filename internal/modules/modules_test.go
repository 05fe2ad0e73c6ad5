package modules

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/logger"
	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/store"
)

// fakeProvider serves canned content. Calls at each kind are counted.
type fakeProvider struct {
	words     []content.WordEntry
	sentences []content.DailySentence
	points    []content.GrammarPoint
	article   *content.Article
	questions []content.ExamQuestion
	err       error

	calls      map[string]int
	levels     []progress.Level
	categories []content.Category
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{calls: map[string]int{}}
}

func (f *fakeProvider) Vocabulary(_ context.Context, level progress.Level, _ int) ([]content.WordEntry, error) {
	f.calls["vocabulary"]++
	f.levels = append(f.levels, level)
	return f.words, f.err
}

func (f *fakeProvider) DailySentences(_ context.Context, c content.Category) ([]content.DailySentence, error) {
	f.calls["daily"]++
	f.categories = append(f.categories, c)
	return f.sentences, f.err
}

func (f *fakeProvider) Grammar(_ context.Context, level progress.Level) ([]content.GrammarPoint, error) {
	f.calls["grammar"]++
	f.levels = append(f.levels, level)
	return f.points, f.err
}

func (f *fakeProvider) Article(_ context.Context, level progress.Level) (*content.Article, error) {
	f.calls["article"]++
	f.levels = append(f.levels, level)
	return f.article, f.err
}

func (f *fakeProvider) Exam(_ context.Context, level progress.Level) ([]content.ExamQuestion, error) {
	f.calls["exam"]++
	f.levels = append(f.levels, level)
	return f.questions, f.err
}

func openStore(t *testing.T) *progress.Store {
	t.Helper()
	return progress.Open(t.Context(), progress.NewMemoryPersister(nil), logger.Nop())
}

func storeAt(t *testing.T, level progress.Level) *progress.Store {
	t.Helper()
	s := openStore(t)
	if _, err := s.SetLevel(t.Context(), level); err != nil {
		t.Fatalf("set level: %v", err)
	}
	return s
}

func entries(words ...string) []content.WordEntry {
	out := make([]content.WordEntry, len(words))
	for i, w := range words {
		out[i] = content.WordEntry{Word: w, Meaning: "m-" + w}
	}
	return out
}

func questions(n int) []content.ExamQuestion {
	qs := make([]content.ExamQuestion, n)
	for i := range qs {
		qs[i] = content.ExamQuestion{
			Question:    fmt.Sprintf("q%d", i),
			Options:     []string{"a", "b", "c", "d"},
			AnswerIndex: i % 4,
		}
	}
	return qs
}

func TestVocabularyA1UsesCatalog(t *testing.T) {
	p := newFakeProvider()
	s := openStore(t)
	v := NewVocabulary(p, s, logger.Nop())

	task := v.Load(t.Context())
	if v.Phase() != PhaseLoading {
		t.Fatalf("phase = %s, want loading", v.Phase())
	}
	if !v.Apply(t.Context(), task()) {
		t.Fatal("current completion was rejected")
	}

	if p.calls["vocabulary"] != 0 {
		t.Errorf("provider called for A1 catalog")
	}
	if len(v.Words()) != 10 || v.Words()[0].ID != "static-a1-0" {
		t.Errorf("words = %d, first %q", len(v.Words()), v.Words()[0].ID)
	}
	if got := len(s.State().Vocabulary); got != 10 {
		t.Errorf("store vocabulary = %d, want 10", got)
	}

	// Re-entering the view must not duplicate the catalog in the store.
	v.Apply(t.Context(), v.Load(t.Context())())
	if got := len(s.State().Vocabulary); got != 10 {
		t.Errorf("store vocabulary after reload = %d, want 10", got)
	}
}

func TestVocabularyLoadMoreAsksProvider(t *testing.T) {
	p := newFakeProvider()
	p.words = entries("fenêtre", "porte")
	s := openStore(t)
	v := NewVocabulary(p, s, logger.Nop())
	v.now = func() time.Time { return time.UnixMilli(42) }

	v.Apply(t.Context(), v.Load(t.Context())())
	v.Apply(t.Context(), v.LoadMore(t.Context())())

	if p.calls["vocabulary"] != 1 {
		t.Fatalf("provider calls = %d, want 1", p.calls["vocabulary"])
	}
	words := v.Words()
	if len(words) != 2 || words[0].ID != "A1-42-0" || words[1].ID != "A1-42-1" {
		t.Errorf("view-local words = %+v", words)
	}
	if got := len(s.State().Vocabulary); got != 12 {
		t.Errorf("store vocabulary = %d, want 12", got)
	}
}

func TestVocabularyHigherLevelFetches(t *testing.T) {
	p := newFakeProvider()
	p.words = entries("néanmoins")
	s := storeAt(t, progress.LevelB2)
	v := NewVocabulary(p, s, logger.Nop())

	v.Apply(t.Context(), v.Load(t.Context())())

	if len(p.levels) != 1 || p.levels[0] != progress.LevelB2 {
		t.Errorf("levels requested = %v, want [B2]", p.levels)
	}
	if v.Words()[0].Level != progress.LevelB2 {
		t.Errorf("word level = %s", v.Words()[0].Level)
	}
	if v.Level() != progress.LevelB2 {
		t.Errorf("loaded level = %s, want B2", v.Level())
	}
}

func TestVocabularyFailureYieldsEmpty(t *testing.T) {
	p := newFakeProvider()
	p.err = errors.New("quota exceeded")
	s := storeAt(t, progress.LevelA2)
	v := NewVocabulary(p, s, logger.Nop())

	if !v.Apply(t.Context(), v.Load(t.Context())()) {
		t.Fatal("failed completion should still be applied")
	}
	if v.Phase() != PhaseReady || len(v.Words()) != 0 {
		t.Errorf("phase = %s, words = %d; want ready and empty", v.Phase(), len(v.Words()))
	}
	if len(s.State().Vocabulary) != 0 {
		t.Error("failure reached the progress store")
	}
}

func TestStaleCompletionDiscarded(t *testing.T) {
	p := newFakeProvider()
	s := storeAt(t, progress.LevelB1)
	v := NewVocabulary(p, s, logger.Nop())

	p.words = entries("ancien")
	first := v.Load(t.Context())
	p.words = entries("nouveau")
	second := v.Load(t.Context())

	newer := second()
	older := first()

	if !v.Apply(t.Context(), newer) {
		t.Fatal("newest completion rejected")
	}
	if v.Apply(t.Context(), older) {
		t.Fatal("superseded completion accepted")
	}
	if len(v.Words()) != 1 || v.Words()[0].Word != "nouveau" {
		t.Errorf("words = %+v, want only the newer batch", v.Words())
	}
	if len(s.State().Vocabulary) != 1 {
		t.Errorf("store vocabulary = %d, want 1", len(s.State().Vocabulary))
	}
}

func TestSupersededFetchIsCancelled(t *testing.T) {
	s := openStore(t)
	g := NewGrammar(newFakeProvider(), s, logger.Nop())

	var seen context.Context
	first := g.start(t.Context(), func(ctx context.Context) ([]content.GrammarPoint, error) {
		seen = ctx
		<-ctx.Done()
		return nil, ctx.Err()
	})
	g.Load(t.Context())

	done := make(chan Loaded[[]content.GrammarPoint])
	go func() { done <- first() }()

	select {
	case r := <-done:
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", r.Err)
		}
		if seen.Err() == nil {
			t.Error("superseded context not cancelled")
		}
		if g.Apply(r) {
			t.Error("cancelled completion accepted")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("superseded fetch was not cancelled")
	}
}

func TestStopIgnoresCompletion(t *testing.T) {
	p := newFakeProvider()
	p.sentences = []content.DailySentence{{Sentence: "Salut"}}
	d := NewDaily(p, logger.Nop())

	task := d.Load(t.Context())
	d.Stop()
	if d.Phase() != PhaseIdle {
		t.Errorf("phase after stop = %s, want idle", d.Phase())
	}
	if d.Apply(task()) {
		t.Error("completion after stop accepted")
	}
}

func TestDailyCategory(t *testing.T) {
	p := newFakeProvider()
	p.sentences = []content.DailySentence{{Sentence: "Où est la gare ?"}}
	d := NewDaily(p, logger.Nop())

	if d.Category() != content.CategorySelfIntro {
		t.Errorf("initial category = %s", d.Category())
	}
	d.Apply(d.SetCategory(t.Context(), content.CategoryTransport)())

	if d.Category() != content.CategoryTransport || p.categories[0] != content.CategoryTransport {
		t.Errorf("category = %s, requested %v", d.Category(), p.categories)
	}
	if len(d.Sentences()) != 1 {
		t.Errorf("sentences = %d, want 1", len(d.Sentences()))
	}
}

func TestGrammarAndReadingFollowLevel(t *testing.T) {
	p := newFakeProvider()
	p.points = []content.GrammarPoint{{Title: "Le passé composé"}}
	p.article = &content.Article{Title: "Au café", Keywords: []string{"café"}}
	s := storeAt(t, progress.LevelA2)

	g := NewGrammar(p, s, logger.Nop())
	g.Apply(g.Load(t.Context())())
	r := NewReading(p, s, logger.Nop())
	r.Apply(r.Load(t.Context())())

	if g.Level() != progress.LevelA2 || len(g.Points()) != 1 {
		t.Errorf("grammar level %s points %d", g.Level(), len(g.Points()))
	}
	if r.Article() == nil || r.Article().Title != "Au café" {
		t.Errorf("article = %+v", r.Article())
	}

	r.ToggleTranslation()
	if !r.ShowTranslation() {
		t.Error("translation not shown after toggle")
	}
	r.Load(t.Context())
	if r.ShowTranslation() {
		t.Error("translation still shown for a new article")
	}
	if r.Article() != nil {
		t.Error("previous article kept while loading")
	}
}

func TestVocabularyStrengthen(t *testing.T) {
	s := openStore(t)
	v := NewVocabulary(newFakeProvider(), s, logger.Nop())
	v.Apply(t.Context(), v.Load(t.Context())())

	if !v.Select(2) {
		t.Fatal("select failed")
	}
	w, ok := v.Selected()
	if !ok || w.Word != "pomme" {
		t.Fatalf("selected = %+v", w)
	}
	if err := v.Strengthen(t.Context()); err != nil {
		t.Fatalf("strengthen: %v", err)
	}
	if _, ok := v.Selected(); ok {
		t.Error("detail still open after strengthen")
	}
	if !v.IsStrengthened(w.ID) {
		t.Error("word not in strengthen set")
	}

	v.Select(0)
	v.CloseDetail()
	if s.IsStrengthened("static-a1-0") {
		t.Error("closing the detail strengthened the word")
	}
	if v.Select(99) {
		t.Error("out of range select accepted")
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		input, word string
		want        bool
	}{
		{"Bonjour", "bonjour", true},
		{" bonjour ", "bonjour", true},
		{"BONJOUR\n", "bonjour", true},
		{"bonjou", "bonjour", false},
		{"fenetre", "fenêtre", false},
		{"", "bonjour", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.input, tt.word); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.input, tt.word, got, tt.want)
		}
	}
}

func seedDictation(t *testing.T, s *progress.Store, strengthen ...string) {
	t.Helper()
	batch := []progress.VocabularyWord{
		{ID: "w1", Word: "bonjour", Meaning: "你好", Level: progress.LevelA1},
		{ID: "w2", Word: "merci", Meaning: "谢谢", Level: progress.LevelA1},
		{ID: "w3", Word: "pain", Meaning: "面包", Level: progress.LevelA1},
	}
	if _, err := s.MergeVocabulary(t.Context(), batch); err != nil {
		t.Fatal(err)
	}
	for _, id := range strengthen {
		if _, err := s.MarkForReinforcement(t.Context(), id); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDictationEmptyPool(t *testing.T) {
	s := openStore(t)
	seedDictation(t, s)
	d := NewDictation(s)

	if !d.Empty() {
		t.Fatal("pool should be empty without strengthened words")
	}
	if d.Check() {
		t.Error("check on empty pool matched")
	}
}

func TestDictationFlow(t *testing.T) {
	s := openStore(t)
	seedDictation(t, s, "w3", "w1")
	d := NewDictation(s)

	pool := d.Pool()
	if len(pool) != 2 || pool[0].ID != "w1" || pool[1].ID != "w3" {
		t.Fatalf("pool = %+v, want w1 then w3", pool)
	}

	d.SetInput("bonjou")
	if d.Check() {
		t.Fatal("wrong guess matched")
	}
	if !d.Wrong() || d.Index() != 0 || d.Input() != "bonjou" {
		t.Errorf("after mismatch: wrong=%v index=%d input=%q", d.Wrong(), d.Index(), d.Input())
	}

	d.SetInput("bonjour")
	if d.Wrong() {
		t.Error("keystroke did not clear the wrong flag")
	}
	if !d.Check() {
		t.Fatal("right guess rejected")
	}
	if d.Index() != 1 || d.Input() != "" {
		t.Errorf("after match: index=%d input=%q", d.Index(), d.Input())
	}

	d.SetInput(" Pain ")
	d.Check()
	if d.Index() != 0 {
		t.Errorf("index = %d, want wrap to 0", d.Index())
	}
}

func TestDictationWrongClearsOnlyLatest(t *testing.T) {
	s := openStore(t)
	seedDictation(t, s, "w2")
	d := NewDictation(s)

	d.SetInput("x")
	d.Check()
	first := d.WrongSeq()
	d.Check()

	d.ClearWrong(first)
	if !d.Wrong() {
		t.Error("old timer cleared a newer mismatch")
	}
	d.ClearWrong(d.WrongSeq())
	if d.Wrong() {
		t.Error("wrong flag not cleared")
	}
}

func TestDictationRefreshFollowsStore(t *testing.T) {
	s := openStore(t)
	seedDictation(t, s, "w1")
	d := NewDictation(s)
	if len(d.Pool()) != 1 {
		t.Fatalf("pool = %d, want 1", len(d.Pool()))
	}

	if _, err := s.MarkForReinforcement(t.Context(), "w2"); err != nil {
		t.Fatal(err)
	}
	d.Refresh()
	if len(d.Pool()) != 2 {
		t.Errorf("pool after strengthen = %d, want 2", len(d.Pool()))
	}
}

type fakeRecorder struct {
	results []store.ExamResultData
	err     error
}

func (f *fakeRecorder) AppendExamResult(_ context.Context, d store.ExamResultData) error {
	f.results = append(f.results, d)
	return f.err
}

func runExam(t *testing.T, e *Exam, pick func(q content.ExamQuestion) int) {
	t.Helper()
	for !e.Finished() {
		q, ok := e.Current()
		if !ok {
			t.Fatal("no current question before finishing")
		}
		if !e.Select(pick(q)) {
			t.Fatal("selection rejected")
		}
		if !e.Next(t.Context()) {
			t.Fatal("next rejected after selection")
		}
	}
}

func TestExamAllCorrect(t *testing.T) {
	p := newFakeProvider()
	p.questions = questions(10)
	rec := &fakeRecorder{}
	e := NewExam(p, storeAt(t, progress.LevelB1), rec, logger.Nop())
	e.Apply(e.Load(t.Context())())

	runExam(t, e, func(q content.ExamQuestion) int { return q.AnswerIndex })

	if e.Score() != e.Total() || e.Total() != 10 {
		t.Errorf("score %d / %d, want 10 / 10", e.Score(), e.Total())
	}
	if len(rec.results) != 1 {
		t.Fatalf("recorded %d results, want 1", len(rec.results))
	}
	got := rec.results[0]
	if got.Level != "B1" || got.Score != 10 || got.Total != 10 || got.AttemptID != e.AttemptID() {
		t.Errorf("recorded %+v", got)
	}
}

func TestExamAllWrong(t *testing.T) {
	p := newFakeProvider()
	p.questions = questions(10)
	e := NewExam(p, openStore(t), nil, logger.Nop())
	e.Apply(e.Load(t.Context())())

	runExam(t, e, func(q content.ExamQuestion) int { return (q.AnswerIndex + 1) % 4 })

	if e.Score() != 0 {
		t.Errorf("score = %d, want 0", e.Score())
	}
}

func TestExamSelectionIsOneShot(t *testing.T) {
	p := newFakeProvider()
	p.questions = questions(2)
	e := NewExam(p, openStore(t), nil, logger.Nop())
	e.Apply(e.Load(t.Context())())

	if e.Next(t.Context()) {
		t.Error("next allowed before answering")
	}
	if !e.Select(1) {
		t.Fatal("first selection rejected")
	}
	if e.Select(0) {
		t.Error("second selection accepted")
	}
	if e.Score() != 0 || e.Choice() != 1 {
		t.Errorf("score %d choice %d, want 0 and 1", e.Score(), e.Choice())
	}
	if !e.Answered() {
		t.Error("explanation not revealed")
	}
}

func TestExamRestartResets(t *testing.T) {
	p := newFakeProvider()
	p.questions = questions(1)
	rec := &fakeRecorder{err: errors.New("disk full")}
	e := NewExam(p, openStore(t), rec, logger.Nop())
	e.Apply(e.Load(t.Context())())
	firstAttempt := e.AttemptID()

	e.Select(0)
	e.Next(t.Context())
	if !e.Finished() || e.Score() != 1 {
		t.Fatalf("finished=%v score=%d", e.Finished(), e.Score())
	}

	e.Apply(e.Restart(t.Context())())
	if e.Finished() || e.Score() != 0 || e.Index() != 0 || e.Answered() {
		t.Errorf("counters not reset: finished=%v score=%d index=%d", e.Finished(), e.Score(), e.Index())
	}
	if e.AttemptID() == firstAttempt {
		t.Error("restart reused the attempt id")
	}
	if p.calls["exam"] != 2 {
		t.Errorf("exam fetches = %d, want 2", p.calls["exam"])
	}
}

func TestExamFetchFailure(t *testing.T) {
	p := newFakeProvider()
	p.err = errors.New("offline")
	e := NewExam(p, openStore(t), nil, logger.Nop())
	e.Apply(e.Load(t.Context())())

	if e.Phase() != PhaseReady || e.Total() != 0 {
		t.Errorf("phase %s total %d", e.Phase(), e.Total())
	}
	if _, ok := e.Current(); ok {
		t.Error("current question on empty exam")
	}
	if e.Select(0) {
		t.Error("select on empty exam accepted")
	}
}
