package progress

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/elan/internal/logger"
)

// RecordName is the name of the persisted progress record.
const RecordName = "elan_state"

// Persister loads and saves the serialized progress record.
// Load returns nil data when no record exists.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Store owns the learner's progress. Every mutation goes through one of the
// named transitions and is persisted before it returns.
type Store struct {
	mu        sync.RWMutex
	state     State
	version   uint64
	persister Persister
	log       *logger.Logger
}

// Open loads persisted progress. A missing, unreadable, or corrupt record
// yields the default state; the failure is logged, never returned.
func Open(ctx context.Context, p Persister, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{state: DefaultState(), persister: p, log: log}

	data, err := p.Load(ctx)
	if err != nil {
		log.Warn("progress record unreadable, starting fresh", "record", RecordName, "error", err)
		return s
	}
	if data == nil {
		log.Info("no progress record, starting fresh", "record", RecordName)
		return s
	}

	st, err := Decode(data)
	if err != nil {
		log.Warn("progress record corrupt, starting fresh", "record", RecordName, "error", err)
		return s
	}
	s.state = st
	log.Info("progress loaded",
		"vocabulary", len(st.Vocabulary),
		"strengthen", len(st.StrengthenSet),
		"level", st.CurrentLevel,
	)
	return s
}

// State returns a copy of the current progress.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Version increments on every successful transition. Views compare it to
// detect that derived data needs recomputing.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Level returns the active level.
func (s *Store) Level() Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentLevel
}

// DictationPool returns the words marked for reinforcement.
func (s *Store) DictationPool() []VocabularyWord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DictationPool(s.state)
}

// IsStrengthened reports whether id is marked for reinforcement.
func (s *Store) IsStrengthened(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsStrengthened(id)
}

// SetLevel changes the active level.
func (s *Store) SetLevel(ctx context.Context, level Level) (State, error) {
	return s.apply(ctx, func(st State) (State, error) {
		return WithLevel(st, level)
	})
}

// MergeVocabulary appends the unseen words of batch.
func (s *Store) MergeVocabulary(ctx context.Context, batch []VocabularyWord) (State, error) {
	return s.apply(ctx, func(st State) (State, error) {
		return MergeVocabulary(st, batch), nil
	})
}

// MarkForReinforcement adds id to the strengthen set.
func (s *Store) MarkForReinforcement(ctx context.Context, id string) (State, error) {
	return s.apply(ctx, func(st State) (State, error) {
		return MarkForReinforcement(st, id)
	})
}

// apply computes the next state from the latest one and persists it. A
// persistence failure keeps the in-memory transition and is returned so the
// caller can log it.
func (s *Store) apply(ctx context.Context, fn func(State) (State, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state)
	if err != nil {
		return s.state.Clone(), err
	}
	s.state = next
	s.version++

	data, err := Encode(next)
	if err != nil {
		return next.Clone(), err
	}
	if err := s.persister.Save(ctx, data); err != nil {
		s.log.Error("persist progress", "record", RecordName, "error", err)
		return next.Clone(), fmt.Errorf("persist progress: %w", err)
	}
	return next.Clone(), nil
}

// MemoryPersister keeps the record in memory.
type MemoryPersister struct {
	mu    sync.Mutex
	data  []byte
	Saves int
	Err   error
}

// NewMemoryPersister returns a persister seeded with data (nil for none).
func NewMemoryPersister(data []byte) *MemoryPersister {
	return &MemoryPersister{data: data}
}

func (m *MemoryPersister) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryPersister) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.data = append([]byte(nil), data...)
	m.Saves++
	return nil
}

// Data returns the last saved record.
func (m *MemoryPersister) Data() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}
