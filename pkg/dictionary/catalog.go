// Package dictionary loads the ranked word list and the pronouncing dictionary
// that together make up the word catalog searched for mnemonics.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// wordColumns is the number of tab-separated columns in a word file line:
// rank, word, part of speech, frequency, dispersion.
const wordColumns = 5

var (
	// ErrMissingColumns is returned for a word file line with too few columns.
	ErrMissingColumns = errors.New("missing columns")
	// ErrInvalidField is returned when a numeric column cannot be parsed.
	ErrInvalidField = errors.New("invalid field")
	// ErrDuplicateRank is returned when two words share a rank.
	ErrDuplicateRank = errors.New("duplicate rank")
)

// Word is a single ranked catalog entry.
type Word struct {
	Word         string
	Normalized   string
	Rank         int
	Frequency    int
	Dispersion   float64
	PartOfSpeech string
	// Mnemonic is the word's Major System key, empty when none was assigned.
	Mnemonic string
}

// HasMnemonic reports whether a pronunciation produced a key for the word.
func (w *Word) HasMnemonic() bool {
	return w.Mnemonic != ""
}

// LoadStats describes a word file load.
type LoadStats struct {
	Lines      int
	Words      int
	Duplicates int
}

// Catalog maps normalized words to their entries and keeps them in
// lexicographic order of the normalized form.
type Catalog struct {
	words map[string]*Word
	keys  []string
	ranks map[int]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		words: make(map[string]*Word),
		ranks: make(map[int]string),
	}
}

// Normalize returns the catalog key for a surface form.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Add inserts w keyed by its normalized form. A word that is already present
// is left untouched and Add returns false. A rank collision is an error.
func (c *Catalog) Add(w Word) (bool, error) {
	w.Normalized = Normalize(w.Word)
	if _, exists := c.words[w.Normalized]; exists {
		return false, nil
	}
	if other, taken := c.ranks[w.Rank]; taken {
		return false, fmt.Errorf("%w: %d used by %q and %q", ErrDuplicateRank, w.Rank, other, w.Normalized)
	}
	entry := w
	c.words[w.Normalized] = &entry
	c.ranks[w.Rank] = w.Normalized

	i := sort.SearchStrings(c.keys, w.Normalized)
	c.keys = append(c.keys, "")
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = w.Normalized
	return true, nil
}

// Contains reports whether word is in the catalog, ignoring case.
func (c *Catalog) Contains(word string) bool {
	_, ok := c.words[Normalize(word)]
	return ok
}

// Get returns the entry for word, ignoring case.
func (c *Catalog) Get(word string) (*Word, bool) {
	w, ok := c.words[Normalize(word)]
	return w, ok
}

// SetMnemonic assigns key to word. Unknown words are ignored since the
// pronouncing dictionary covers far more words than the catalog.
func (c *Catalog) SetMnemonic(word, key string) {
	if w, ok := c.words[Normalize(word)]; ok {
		w.Mnemonic = key
	}
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Words returns the entries in normalized-key order.
func (c *Catalog) Words() []*Word {
	out := make([]*Word, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.words[k])
	}
	return out
}

// LoadWords parses a tab-separated word file. The first line is a header and
// is skipped. Blank lines are tolerated; any other malformed line is an error.
func LoadWords(r io.Reader) (*Catalog, LoadStats, error) {
	var stats LoadStats
	catalog := NewCatalog()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		stats.Lines++

		w, err := parseWordLine(line)
		if err != nil {
			return nil, stats, fmt.Errorf("word file line %d: %w", lineNo, err)
		}
		added, err := catalog.Add(w)
		if err != nil {
			return nil, stats, fmt.Errorf("word file line %d: %w", lineNo, err)
		}
		if !added {
			stats.Duplicates++
			log.Debugf("Duplicate word %q at line %d (rank %d), keeping first entry", w.Word, lineNo, w.Rank)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("read word file: %w", err)
	}

	stats.Words = catalog.Len()
	return catalog, stats, nil
}

func parseWordLine(line string) (Word, error) {
	cols := strings.Split(line, "\t")
	if len(cols) < wordColumns {
		return Word{}, fmt.Errorf("%w: got %d, want %d", ErrMissingColumns, len(cols), wordColumns)
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}

	rank, err := strconv.Atoi(cols[0])
	if err != nil || rank < 1 {
		return Word{}, fmt.Errorf("%w: rank %q", ErrInvalidField, cols[0])
	}
	if cols[1] == "" {
		return Word{}, fmt.Errorf("%w: empty word", ErrInvalidField)
	}
	freq, err := strconv.Atoi(cols[3])
	if err != nil || freq < 0 {
		return Word{}, fmt.Errorf("%w: frequency %q", ErrInvalidField, cols[3])
	}
	dispersion, err := strconv.ParseFloat(cols[4], 64)
	if err != nil {
		return Word{}, fmt.Errorf("%w: dispersion %q", ErrInvalidField, cols[4])
	}

	return Word{
		Word:         cols[1],
		Rank:         rank,
		PartOfSpeech: cols[2],
		Frequency:    freq,
		Dispersion:   dispersion,
	}, nil
}
