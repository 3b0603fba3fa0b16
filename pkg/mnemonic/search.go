package mnemonic

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/internal/utils"
)

// Options tune a Searcher.
type Options struct {
	// MaxWords caps the number of words in a phrase. Zero means no cap
	// beyond the number of digits.
	MaxWords int
	// TailExtension also lists, for the last segment, the words whose key
	// starts with that segment and runs longer.
	TailExtension bool
}

// Segment is one piece of a partition with the words that encode it.
type Segment struct {
	Digits string
	Words  []Entry
}

// Phrase is a partition whose every segment has at least one word.
type Phrase struct {
	Segments []Segment
	// Tail holds the extension words of the last segment, sorted by surface form.
	Tail []Entry
}

// Key joins the segment digits with dashes, e.g. "21-60".
func (p Phrase) Key() string {
	parts := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		parts[i] = s.Digits
	}
	return strings.Join(parts, "-")
}

// Result is the outcome of one search.
type Result struct {
	Label  string
	Digits string
	// WordCount is the number of words per phrase, zero when nothing matched.
	WordCount int
	Phrases   []Phrase
	// Tail reports whether tail extensions were computed.
	Tail bool
}

// Found reports whether any phrase covers the digits.
func (r *Result) Found() bool {
	return len(r.Phrases) > 0
}

// Searcher runs shortest-phrase searches against a shared Index.
type Searcher struct {
	index *Index
	opts  Options
}

// NewSearcher returns a Searcher over index.
func NewSearcher(index *Index, opts Options) *Searcher {
	return &Searcher{index: index, opts: opts}
}

// Search strips everything but digits from target and finds the smallest word
// count K for which some split of the digits into K segments is fully covered
// by the index. All covering splits of that K are returned, in enumeration order.
func (s *Searcher) Search(label, target string) *Result {
	start := time.Now()
	digits := utils.DigitsOnly(target)
	res := &Result{Label: label, Digits: digits, Tail: s.opts.TailExtension}

	maxWords := len(digits)
	if s.opts.MaxWords > 0 && s.opts.MaxWords < maxWords {
		maxWords = s.opts.MaxWords
	}

	tails := make(map[string][]Entry)
	for k := 1; k <= maxWords && !res.Found(); k++ {
		EachPartition(digits, k, s.index.Has, func(segments []string) bool {
			phrase := Phrase{Segments: make([]Segment, len(segments))}
			for i, seg := range segments {
				phrase.Segments[i] = Segment{Digits: seg, Words: s.index.Lookup(seg)}
			}
			if s.opts.TailExtension {
				last := segments[len(segments)-1]
				tail, ok := tails[last]
				if !ok {
					tail = s.index.Extensions(last)
					tails[last] = tail
				}
				phrase.Tail = tail
			}
			res.Phrases = append(res.Phrases, phrase)
			return true
		})
		if res.Found() {
			res.WordCount = k
		}
	}

	log.Debugf("Took [ %v ] for %q: digits=%s, words=%d, phrases=%d",
		time.Since(start), label, digits, res.WordCount, len(res.Phrases))
	return res
}

// Report runs Search and renders the result as text.
func (s *Searcher) Report(label, target string) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = Render(&b, s.Search(label, target))
	return b.String()
}
