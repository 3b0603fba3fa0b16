package mnemonic

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/pkg/dictionary"
	"github.com/mnembus/mnembus/pkg/phoneme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

type testWord struct {
	word   string
	rank   int
	phones []string
}

// testCatalog builds an enriched catalog, encoding each word's phones.
func testCatalog(t *testing.T, words ...testWord) *dictionary.Catalog {
	t.Helper()
	catalog := dictionary.NewCatalog()
	for _, w := range words {
		_, err := catalog.Add(dictionary.Word{Word: w.word, Rank: w.rank})
		require.NoError(t, err)
		key, err := phoneme.Encode(w.phones)
		require.NoError(t, err)
		if key != "" {
			catalog.SetMnemonic(w.word, key)
		}
	}
	return catalog
}

var (
	night    = testWord{"NIGHT", 500, []string{"N", "AY1", "T"}}
	knight   = testWord{"KNIGHT", 900, []string{"N", "AY1", "T"}}
	nights   = testWord{"NIGHTS", 700, []string{"N", "AY1", "T", "S"}}
	knightly = testWord{"KNIGHTLY", 4000, []string{"N", "AY1", "T", "L", "IY0"}}
	cheese   = testWord{"CHEESE", 800, []string{"CH", "IY1", "Z"}}
	newWord  = testWord{"NEW", 100, []string{"N", "UW1"}}
	eye      = testWord{"EYE", 300, []string{"AY1"}}
	toe      = testWord{"TOE", 2000, []string{"T", "OW1"}}
	sea      = testWord{"SEA", 1500, []string{"S", "IY1"}}
	about    = testWord{"ABOUT", 50, []string{"AH0", "B", "AW1", "T"}}
	rare     = testWord{"ZYMURGY", 9000, []string{"Z", "AY1", "M", "ER0", "JH", "IY0"}}
)

func TestBuild(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t, night, knight, nights, cheese, eye, about, rare)
	ix := Build(catalog, 5000)

	assert.Equal(t, 5, ix.Len())
	assert.Equal(t, 5000, ix.MaxRank())
	assert.Equal(t, []string{"21", "210", "60", "91"}, ix.Keys())

	// Bucket order follows the catalog's normalized order, not rank.
	assert.Equal(t, []Entry{{"KNIGHT", 900}, {"NIGHT", 500}}, ix.Lookup("21"))
	assert.Empty(t, ix.Lookup("034"))
	assert.True(t, ix.Has("60"))
	assert.False(t, ix.Has(""))
}

func TestBuild_Invariants(t *testing.T) {
	t.Parallel()

	words := []testWord{night, knight, nights, knightly, cheese, newWord, eye, toe, sea, about, rare}
	catalog := testCatalog(t, words...)
	const maxRank = 2000
	ix := Build(catalog, maxRank)

	seen := make(map[string]string)
	for _, key := range ix.Keys() {
		require.True(t, phoneme.IsKey(key), key)
		for _, e := range ix.Lookup(key) {
			assert.LessOrEqual(t, e.Rank, maxRank)

			w, ok := catalog.Get(e.Word)
			require.True(t, ok)
			assert.Equal(t, key, w.Mnemonic)

			prev, dup := seen[e.Word]
			assert.False(t, dup, "%s in both %s and %s", e.Word, prev, key)
			seen[e.Word] = key
		}
	}

	for _, w := range words {
		key, err := phoneme.Encode(w.phones)
		require.NoError(t, err)
		_, indexed := seen[w.word]
		assert.Equal(t, key != "" && w.rank <= maxRank, indexed, w.word)
		if indexed {
			assert.Equal(t, key, seen[w.word])
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t, night, knight, nights, knightly, cheese)
	a := Build(catalog, 5000)
	b := Build(catalog, 5000)
	assert.Equal(t, a.buckets, b.buckets)
	assert.Equal(t, a.Keys(), b.Keys())
}

func TestBuild_ZeroMaxRank(t *testing.T) {
	t.Parallel()

	ix := Build(testCatalog(t, night, cheese), 0)
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Keys())
}

func TestExtensions(t *testing.T) {
	t.Parallel()

	ix := Build(testCatalog(t, night, nights, knightly, cheese, toe), 5000)

	assert.Equal(t, []Entry{{"KNIGHTLY", 4000}, {"NIGHTS", 700}}, ix.Extensions("21"))
	assert.Empty(t, ix.Extensions("210"))
	assert.Empty(t, ix.Extensions("9"))
}
