package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestParse(t *testing.T) {
	t.Parallel()

	input := "# comment\n" +
		"\n" +
		"Brian\t206-890-9233\n" +
		"  # indented comment\n" +
		"no tab here\n" +
		"PIN\t(4711)\r\n"

	entries, stats, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Label: "Brian", Numbers: "206-890-9233", Line: 3}, entries[0])
	assert.Equal(t, "2068909233", entries[0].Digits())
	assert.Equal(t, Entry{Label: "PIN", Numbers: "(4711)", Line: 6}, entries[1])
	assert.Equal(t, "4711", entries[1].Digits())

	assert.Equal(t, Stats{Lines: 6, Comments: 2, Blank: 1, Malformed: 1}, stats)
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		want    Entry
		wantErr bool
	}{
		{"plain", "Mom\t555 0100", Entry{Label: "Mom", Numbers: "555 0100"}, false},
		{"extra tab kept in numbers", "A\t1\t2", Entry{Label: "A", Numbers: "1\t2"}, false},
		{"empty numbers", "A\t", Entry{Label: "A"}, false},
		{"no tab", "A 123", Entry{}, true},
		{"empty label", "\t123", Entry{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedEntry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Brian\t206-890-9233\n"), 0o644))

	entries, _, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2068909233", entries[0].Digits())

	_, _, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
