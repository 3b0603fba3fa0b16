package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "rank\tword\tpart_of_speech\tfrequency\tdispersion\n"

func TestLoadWords(t *testing.T) {
	t.Parallel()

	input := header +
		"2\tbe\tv\t12545825\t0.97\n" +
		"1\tthe\ta\t22038615\t0.98\n" +
		"\n" +
		"3\tAbout\ti\t1226217\t0.96\n"

	catalog, stats, err := LoadWords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, LoadStats{Lines: 3, Words: 3}, stats)

	words := catalog.Words()
	require.Len(t, words, 3)
	assert.Equal(t, []string{"about", "be", "the"}, []string{words[0].Normalized, words[1].Normalized, words[2].Normalized})

	about, ok := catalog.Get("ABOUT")
	require.True(t, ok)
	assert.Equal(t, "About", about.Word)
	assert.Equal(t, 3, about.Rank)
	assert.Equal(t, "i", about.PartOfSpeech)
	assert.Equal(t, 1226217, about.Frequency)
	assert.InDelta(t, 0.96, about.Dispersion, 1e-9)
	assert.False(t, about.HasMnemonic())
}

func TestLoadWords_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"too few columns", "1\tthe\ta\t100\n", ErrMissingColumns},
		{"rank not a number", "x\tthe\ta\t100\t0.5\n", ErrInvalidField},
		{"rank zero", "0\tthe\ta\t100\t0.5\n", ErrInvalidField},
		{"negative frequency", "1\tthe\ta\t-1\t0.5\n", ErrInvalidField},
		{"bad dispersion", "1\tthe\ta\t100\thigh\n", ErrInvalidField},
		{"empty word", "1\t\ta\t100\t0.5\n", ErrInvalidField},
		{"duplicate rank", "1\tthe\ta\t100\t0.5\n1\tbe\tv\t90\t0.4\n", ErrDuplicateRank},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := LoadWords(strings.NewReader(header + tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadWords_DuplicateWordKeepsFirst(t *testing.T) {
	t.Parallel()

	input := header +
		"7\tthat\tc\t100\t0.9\n" +
		"12\tThat\td\t90\t0.8\n"

	catalog, stats, err := LoadWords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 1, catalog.Len())

	w, ok := catalog.Get("that")
	require.True(t, ok)
	assert.Equal(t, 7, w.Rank)
	assert.Equal(t, "c", w.PartOfSpeech)
}

func TestCatalog_SetMnemonic(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	_, err := catalog.Add(Word{Word: "Night", Rank: 500})
	require.NoError(t, err)

	catalog.SetMnemonic("NIGHT", "21")
	catalog.SetMnemonic("unknown", "99")

	w, ok := catalog.Get("night")
	require.True(t, ok)
	assert.Equal(t, "21", w.Mnemonic)
	assert.True(t, catalog.Contains("nIgHt"))
	assert.False(t, catalog.Contains("unknown"))
	assert.Equal(t, 1, catalog.Len())
}

func TestCatalog_AddKeepsOrder(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	for i, w := range []string{"pear", "apple", "zebra", "mango"} {
		added, err := catalog.Add(Word{Word: w, Rank: i + 1})
		require.NoError(t, err)
		require.True(t, added)
	}

	var got []string
	for _, w := range catalog.Words() {
		got = append(got, w.Normalized)
	}
	assert.Equal(t, []string{"apple", "mango", "pear", "zebra"}, got)
}
