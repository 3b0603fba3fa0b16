// Package batch reads the list of labelled numbers to find mnemonics for.
//
// Each active line holds a label and a number separated by a tab:
//
//	# family
//	Brian	206-890-9233
//
// Blank lines and lines starting with '#' are ignored.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/internal/utils"
)

// ErrMalformedEntry marks an active line without a tab-separated number.
var ErrMalformedEntry = errors.New("malformed batch entry")

// Entry is one labelled number.
type Entry struct {
	Label string
	// Numbers is the raw second field; only its digits matter.
	Numbers string
	Line    int
}

// Digits returns the digits of Numbers in order.
func (e Entry) Digits() string {
	return utils.DigitsOnly(e.Numbers)
}

// Stats counts skipped lines.
type Stats struct {
	Lines     int
	Comments  int
	Blank     int
	Malformed int
}

// Parse reads entries from r. Malformed lines are logged and skipped.
func Parse(r io.Reader) ([]Entry, Stats, error) {
	var (
		entries []Entry
		stats   Stats
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			stats.Blank++
			continue
		case strings.HasPrefix(trimmed, "#"):
			stats.Comments++
			continue
		}

		entry, err := ParseLine(line)
		if err != nil {
			stats.Malformed++
			log.Warnf("Skipping batch line %d: %v", stats.Lines, err)
			continue
		}
		entry.Line = stats.Lines
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("read batch file: %w", err)
	}
	return entries, stats, nil
}

// ParseLine splits a single active line into label and numbers.
func ParseLine(line string) (Entry, error) {
	label, numbers, ok := strings.Cut(line, "\t")
	if !ok {
		return Entry{}, fmt.Errorf("%w: no tab in %q", ErrMalformedEntry, line)
	}
	label = strings.TrimSpace(label)
	numbers = strings.TrimSpace(numbers)
	if label == "" {
		return Entry{}, fmt.Errorf("%w: empty label in %q", ErrMalformedEntry, line)
	}
	return Entry{Label: label, Numbers: numbers}, nil
}

// ReadFile parses the batch file at path.
func ReadFile(path string) ([]Entry, Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read batch file: %w", err)
	}
	return Parse(strings.NewReader(string(data)))
}
