// Package importer reads vocabulary lists from Excel or CSV files.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/elan/internal/progress"
)

// IDPrefix prefixes ids of imported words. The rest of the id is the
// lowercased word, so importing the same list twice adds nothing.
const IDPrefix = "import-"

// Columns names the spreadsheet column (A, B, ...) of each field. An empty
// column means the field is not present in the file.
type Columns struct {
	Word        string
	Phonetic    string
	Meaning     string
	Example     string
	Translation string
	Level       string
}

// Options configures an import.
type Options struct {
	Sheet        string // empty means the first sheet
	Columns      Columns
	SkipHeader   bool
	DefaultLevel progress.Level // used when the level cell is empty
}

// DefaultOptions reads word, phonetic, meaning, example, translation and
// level from columns A to F below a header row.
func DefaultOptions() Options {
	return Options{
		Columns: Columns{
			Word:        "A",
			Phonetic:    "B",
			Meaning:     "C",
			Example:     "D",
			Translation: "E",
			Level:       "F",
		},
		SkipHeader:   true,
		DefaultLevel: progress.LevelA1,
	}
}

// RowError reports a row that could not be imported.
type RowError struct {
	Row int // 1-based, as shown by spreadsheet programs
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Result holds the words read from a file.
type Result struct {
	Rows   int
	Words  []progress.VocabularyWord
	Errors []RowError
}

// ReadFile reads a .xlsx or .csv file.
func ReadFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(f, opts)
	case ".xlsx", ".xlsm":
		return ReadExcel(f, opts)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .xlsx or .csv)", ext)
	}
}

// ReadExcel reads a workbook.
func ReadExcel(r io.Reader, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return parseRows(rows, opts)
}

// ReadCSV reads comma-separated rows.
func ReadCSV(r io.Reader, opts Options) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return parseRows(rows, opts)
}

type columnIndex struct {
	word, phonetic, meaning, example, translation, level int
}

func resolveColumns(c Columns) (columnIndex, error) {
	idx := func(name string) (int, error) {
		if name == "" {
			return -1, nil
		}
		n, err := excelize.ColumnNameToNumber(strings.ToUpper(name))
		if err != nil {
			return 0, err
		}
		return n - 1, nil
	}

	var ci columnIndex
	var err error
	if c.Word == "" {
		return ci, errors.New("word column is required")
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{c.Word, &ci.word},
		{c.Phonetic, &ci.phonetic},
		{c.Meaning, &ci.meaning},
		{c.Example, &ci.example},
		{c.Translation, &ci.translation},
		{c.Level, &ci.level},
	} {
		if *f.dst, err = idx(f.name); err != nil {
			return ci, fmt.Errorf("column %q: %w", f.name, err)
		}
	}
	return ci, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseRows(rows [][]string, opts Options) (*Result, error) {
	ci, err := resolveColumns(opts.Columns)
	if err != nil {
		return nil, err
	}
	defaultLevel := opts.DefaultLevel
	if !defaultLevel.Valid() {
		defaultLevel = progress.LevelA1
	}

	res := &Result{Words: []progress.VocabularyWord{}}
	for i, row := range rows {
		if i == 0 && opts.SkipHeader {
			continue
		}
		if isBlank(row) {
			continue
		}
		res.Rows++

		w, err := parseRow(row, ci, defaultLevel)
		if err != nil {
			res.Errors = append(res.Errors, RowError{Row: i + 1, Err: err})
			continue
		}
		res.Words = append(res.Words, w)
	}
	return res, nil
}

func parseRow(row []string, ci columnIndex, defaultLevel progress.Level) (progress.VocabularyWord, error) {
	word := cell(row, ci.word)
	if word == "" {
		return progress.VocabularyWord{}, errors.New("word cannot be empty")
	}

	level := defaultLevel
	if raw := cell(row, ci.level); raw != "" {
		l, err := progress.ParseLevel(raw)
		if err != nil {
			return progress.VocabularyWord{}, err
		}
		level = l
	}

	examples := []progress.Example{}
	if sentence := cell(row, ci.example); sentence != "" {
		examples = append(examples, progress.Example{
			Sentence:    sentence,
			Translation: cell(row, ci.translation),
		})
	}

	return progress.VocabularyWord{
		ID:       WordID(word),
		Word:     word,
		Phonetic: cell(row, ci.phonetic),
		Meaning:  cell(row, ci.meaning),
		Examples: examples,
		Level:    level,
	}, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WordID returns the stable id of an imported word.
func WordID(word string) string {
	return IDPrefix + strings.ToLower(strings.TrimSpace(word))
}

// Summary reports what an import changed.
type Summary struct {
	Added        int
	Skipped      int // already known ids, including repeats inside the file
	Strengthened int
}

// Apply merges words into the progress store and, when strengthen is set,
// marks every imported word for dictation practice.
func Apply(ctx context.Context, store *progress.Store, words []progress.VocabularyWord, strengthen bool) (Summary, error) {
	before := len(store.State().Vocabulary)
	st, err := store.MergeVocabulary(ctx, words)
	if err != nil {
		return Summary{}, fmt.Errorf("merge vocabulary: %w", err)
	}

	sum := Summary{Added: len(st.Vocabulary) - before}
	sum.Skipped = len(words) - sum.Added

	if !strengthen {
		return sum, nil
	}
	for _, w := range words {
		if st.IsStrengthened(w.ID) {
			continue
		}
		st, err = store.MarkForReinforcement(ctx, w.ID)
		if err != nil {
			return sum, fmt.Errorf("mark %s: %w", w.ID, err)
		}
		sum.Strengthened++
	}
	return sum, nil
}
