package progress

import (
	"context"
	"errors"
	"testing"
)

func TestOpenWithoutRecord(t *testing.T) {
	s := Open(context.Background(), NewMemoryPersister(nil), nil)

	st := s.State()
	if st.CurrentLevel != LevelA1 {
		t.Errorf("level = %s, want A1", st.CurrentLevel)
	}
	if len(st.Vocabulary) != 0 || len(st.StrengthenSet) != 0 {
		t.Errorf("expected empty progress, got %+v", st)
	}
}

func TestOpenCorruptRecordMatchesMissing(t *testing.T) {
	ctx := context.Background()
	missing := Open(ctx, NewMemoryPersister(nil), nil).State()
	corrupt := Open(ctx, NewMemoryPersister([]byte("{{{ not json")), nil).State()

	a, _ := Encode(missing)
	b, _ := Encode(corrupt)
	if string(a) != string(b) {
		t.Errorf("corrupt record state = %s, want %s", b, a)
	}
}

type failingLoader struct{ MemoryPersister }

func (f *failingLoader) Load(context.Context) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestOpenLoadErrorDefaults(t *testing.T) {
	s := Open(context.Background(), &failingLoader{}, nil)
	if s.Level() != LevelA1 {
		t.Errorf("level = %s, want A1", s.Level())
	}
}

func TestStorePersistsEveryTransition(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister(nil)
	s := Open(ctx, p, nil)

	if _, err := s.MergeVocabulary(ctx, []VocabularyWord{word("w1", "chat"), word("w2", "pain")}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if _, err := s.MarkForReinforcement(ctx, "w1"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if _, err := s.SetLevel(ctx, LevelB2); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if p.Saves != 3 {
		t.Errorf("saves = %d, want 3", p.Saves)
	}
	if s.Version() != 3 {
		t.Errorf("version = %d, want 3", s.Version())
	}

	// A fresh store over the same record sees everything.
	reopened := Open(ctx, NewMemoryPersister(p.Data()), nil).State()
	if reopened.CurrentLevel != LevelB2 {
		t.Errorf("reopened level = %s, want B2", reopened.CurrentLevel)
	}
	if len(reopened.Vocabulary) != 2 {
		t.Errorf("reopened vocabulary = %d words, want 2", len(reopened.Vocabulary))
	}
	pool := DictationPool(reopened)
	if len(pool) != 1 || pool[0].ID != "w1" {
		t.Errorf("reopened pool = %v, want [w1]", ids(pool))
	}
}

func TestStoreRejectedTransitionDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister(nil)
	s := Open(ctx, p, nil)

	if _, err := s.SetLevel(ctx, "X1"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("SetLevel(X1) err = %v, want ErrInvalidLevel", err)
	}
	if _, err := s.MarkForReinforcement(ctx, "nope"); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("Mark(nope) err = %v, want ErrUnknownWord", err)
	}
	if p.Saves != 0 {
		t.Errorf("saves = %d, want 0", p.Saves)
	}
	if s.Version() != 0 {
		t.Errorf("version = %d, want 0", s.Version())
	}
}

func TestStoreSaveFailureKeepsTransition(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister(nil)
	p.Err = errors.New("read-only")
	s := Open(ctx, p, nil)

	st, err := s.MergeVocabulary(ctx, []VocabularyWord{word("w1", "chat")})
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if len(st.Vocabulary) != 1 || len(s.State().Vocabulary) != 1 {
		t.Errorf("in-memory transition lost on save failure")
	}
}

func TestStateReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, NewMemoryPersister(nil), nil)
	s.MergeVocabulary(ctx, []VocabularyWord{word("w1", "chat")})

	st := s.State()
	st.Vocabulary[0].Word = "mutated"
	st.StrengthenSet = append(st.StrengthenSet, "w1")

	again := s.State()
	if again.Vocabulary[0].Word != "chat" {
		t.Errorf("store state mutated through copy")
	}
	if len(again.StrengthenSet) != 0 {
		t.Errorf("strengthen set mutated through copy")
	}
}
