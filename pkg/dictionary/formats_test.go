package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateFileFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		format  FileFormat
		wantErr bool
	}{
		{"words ok", header + "1\tthe\ta\t1\t0.1\n", FormatWords, false},
		{"words header too narrow", "rank\tword\n1\tthe\n", FormatWords, true},
		{"words too small", "r", FormatWords, true},
		{"pronunciations ok", ";;; comment\n\nNIGHT  N AY1 T\n", FormatPronunciations, false},
		{"pronunciations word only", "NIGHT\n", FormatPronunciations, true},
		{"pronunciations only comments", ";;; a\n;;; b\n", FormatPronunciations, true},
		{"unknown format", "anything", FormatUnknown, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeTemp(t, "input", tt.content)
			err := ValidateFileFormat(path, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFileFormat_Missing(t *testing.T) {
	t.Parallel()

	err := ValidateFileFormat(filepath.Join(t.TempDir(), "missing"), FormatWords)
	assert.Error(t, err)
}

func TestDetectFileFormat(t *testing.T) {
	t.Parallel()

	got, err := DetectFileFormat(filepath.Join("testdata", "words.txt"))
	require.NoError(t, err)
	assert.Equal(t, FormatWords, got)

	got, err = DetectFileFormat(filepath.Join("testdata", "cmudict.txt"))
	require.NoError(t, err)
	assert.Equal(t, FormatPronunciations, got)

	info, ok := GetFormatInfo(FormatPronunciations)
	require.True(t, ok)
	assert.Equal(t, "Pronouncing Dictionary", info.Description)
}
