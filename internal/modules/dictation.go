package modules

import (
	"strings"
	"time"

	"github.com/abhisek/elan/internal/progress"
)

// WrongFlash is how long a mismatch stays flagged without further input.
const WrongFlash = 1500 * time.Millisecond

// Matches reports whether input spells word: trimmed, case-insensitive,
// otherwise exact. Accents must match.
func Matches(input, word string) bool {
	return strings.ToLower(strings.TrimSpace(input)) == strings.ToLower(word)
}

// Dictation drills the words marked for reinforcement. It has no fetch:
// its pool is derived from the progress store.
type Dictation struct {
	store   *progress.Store
	pool    []progress.VocabularyWord
	version uint64
	synced  bool

	index    int
	input    string
	wrong    bool
	wrongSeq int
}

// NewDictation creates the dictation controller.
func NewDictation(store *progress.Store) *Dictation {
	d := &Dictation{store: store}
	d.Refresh()
	return d
}

// Refresh recomputes the pool when the store changed since the last call.
func (d *Dictation) Refresh() {
	v := d.store.Version()
	if d.synced && v == d.version {
		return
	}
	d.synced = true
	d.version = v
	d.pool = d.store.DictationPool()
	if d.index >= len(d.pool) {
		d.index = 0
		d.input = ""
		d.wrong = false
	}
}

// Pool returns the words being drilled, in vocabulary order.
func (d *Dictation) Pool() []progress.VocabularyWord {
	return d.pool
}

// Empty reports whether there is nothing to drill.
func (d *Dictation) Empty() bool {
	return len(d.pool) == 0
}

// Index returns the position of the current word.
func (d *Dictation) Index() int {
	return d.index
}

// Current returns the word to spell.
func (d *Dictation) Current() (progress.VocabularyWord, bool) {
	if d.Empty() {
		return progress.VocabularyWord{}, false
	}
	return d.pool[d.index], true
}

// Input returns the learner's current guess.
func (d *Dictation) Input() string {
	return d.input
}

// SetInput replaces the guess. Any keystroke clears the wrong flag.
func (d *Dictation) SetInput(s string) {
	d.input = s
	d.wrong = false
}

// Check compares the guess to the current word. A match advances to the
// next word, wrapping around, and clears the input. A mismatch raises the
// wrong flag and stays on the word.
func (d *Dictation) Check() bool {
	w, ok := d.Current()
	if !ok {
		return false
	}
	if Matches(d.input, w.Word) {
		d.index = (d.index + 1) % len(d.pool)
		d.input = ""
		d.wrong = false
		return true
	}
	d.wrong = true
	d.wrongSeq++
	return false
}

// Wrong reports whether the last check failed and has not been cleared.
func (d *Dictation) Wrong() bool {
	return d.wrong
}

// WrongSeq identifies the latest mismatch, so a delayed clear can tell
// whether a newer mismatch happened in between.
func (d *Dictation) WrongSeq() int {
	return d.wrongSeq
}

// ClearWrong drops the wrong flag raised by mismatch seq.
func (d *Dictation) ClearWrong(seq int) {
	if seq == d.wrongSeq {
		d.wrong = false
	}
}
