/*
Package mnemonic finds the shortest phrases of dictionary words whose Major
System keys spell out a digit string.

An Index groups ranked words by mnemonic key. A Searcher splits the target
digits into 1, 2, 3... contiguous segments and stops at the first word count
for which every segment of some split has words in the index:

	index := mnemonic.Build(catalog, 5000)
	searcher := mnemonic.NewSearcher(index, mnemonic.Options{TailExtension: true})
	result := searcher.Search("Brian", "206-890-9233")
	mnemonic.Render(os.Stdout, result)

The index is built once per session and is read-only afterwards, so one Index
may be shared by any number of Searchers.
*/
package mnemonic

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/pkg/dictionary"
	"github.com/tchap/go-patricia/v2/patricia"
)

// WordSource yields catalog words in a stable order.
type WordSource interface {
	Words() []*dictionary.Word
}

// Entry is one indexed word.
type Entry struct {
	Word string
	Rank int
}

// Index maps mnemonic keys to the words that encode to them. Within a key,
// words keep the order of the source they were built from.
type Index struct {
	maxRank int
	size    int
	buckets map[string][]Entry
	keys    *patricia.Trie
}

// Build indexes every word that has a mnemonic key and a rank of at most maxRank.
func Build(src WordSource, maxRank int) *Index {
	ix := &Index{
		maxRank: maxRank,
		buckets: make(map[string][]Entry),
		keys:    patricia.NewTrie(),
	}

	for _, w := range src.Words() {
		if !w.HasMnemonic() || w.Rank > maxRank {
			continue
		}
		ix.buckets[w.Mnemonic] = append(ix.buckets[w.Mnemonic], Entry{Word: w.Word, Rank: w.Rank})
		ix.size++
	}
	for key := range ix.buckets {
		ix.keys.Insert(patricia.Prefix(key), key)
	}

	log.Debugf("Index built: maxRank=[%d], words=[%d], keys=[%d]", maxRank, ix.size, len(ix.buckets))
	return ix
}

// Lookup returns the words whose key is exactly key. The slice must not be modified.
func (ix *Index) Lookup(key string) []Entry {
	return ix.buckets[key]
}

// Has reports whether any word encodes to key.
func (ix *Index) Has(key string) bool {
	return len(ix.buckets[key]) > 0
}

// Extensions returns the words whose key starts with prefix and is longer
// than it, sorted by surface form.
func (ix *Index) Extensions(prefix string) []Entry {
	var out []Entry
	err := ix.keys.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		key := string(p)
		if key == prefix {
			return nil
		}
		out = append(out, ix.buckets[key]...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting key subtree: %v", err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Word < out[j].Word
	})
	return out
}

// Keys returns every key in ascending order.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.buckets))
	for k := range ix.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of indexed words.
func (ix *Index) Len() int {
	return ix.size
}

// MaxRank returns the rank cutoff the index was built with.
func (ix *Index) MaxRank() int {
	return ix.maxRank
}
