package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/pkg/phoneme"
)

// ErrMalformedLine is returned for a pronunciation line without any phones.
var ErrMalformedLine = errors.New("malformed pronunciation line")

// Pronunciation is a word from the pronouncing dictionary together with its
// phones and the mnemonic key they encode to.
type Pronunciation struct {
	Word     string
	Mnemonic string
	Phones   []string
}

// EnrichStats counts what happened to each pronouncing dictionary line.
type EnrichStats struct {
	TotalLines     int
	CommentLines   int
	AlternateLines int
	NotInCatalog   int
	Silent         int
	Encoded        int
	// Diagnostics holds one "<error> in <line>" message per skipped line
	// whose phones could not be encoded.
	Diagnostics []string
}

// Enrich reads a CMU-style pronouncing dictionary and assigns a mnemonic key to
// every catalog word it pronounces. When catalog is nil every encodable word is
// returned. Lines with unknown phones are logged and skipped; a line without
// phones aborts the load.
func Enrich(catalog *Catalog, r io.Reader) ([]Pronunciation, EnrichStats, error) {
	var (
		stats   EnrichStats
		records []Pronunciation
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		stats.TotalLines++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ";;;") {
			stats.CommentLines++
			continue
		}

		fields := strings.Fields(trimmed)
		word := fields[0]
		// WORD(2), WORD(3)... only differ in vowels or weak consonants.
		if strings.Contains(word, "(") {
			stats.AlternateLines++
			continue
		}
		if len(fields) < 2 {
			return nil, stats, fmt.Errorf("pronunciation line %d %q: %w", stats.TotalLines, line, ErrMalformedLine)
		}

		if catalog != nil && !catalog.Contains(word) {
			stats.NotInCatalog++
			continue
		}

		phones := fields[1:]
		key, err := phoneme.Encode(phones)
		if err != nil {
			msg := fmt.Sprintf("%v in %s", err, strings.Join(fields, " "))
			log.Warn(msg)
			stats.Diagnostics = append(stats.Diagnostics, msg)
			continue
		}
		if key == "" {
			stats.Silent++
			continue
		}

		if catalog != nil {
			catalog.SetMnemonic(word, key)
		}
		stats.Encoded++
		records = append(records, Pronunciation{
			Word:     word,
			Mnemonic: key,
			Phones:   phones,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("read pronunciation file: %w", err)
	}

	return records, stats, nil
}
