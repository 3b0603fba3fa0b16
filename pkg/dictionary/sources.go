package dictionary

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Sources holds the raw bytes of both input files. Files are read fully and
// closed before any parsing begins.
type Sources struct {
	Words          []byte
	Pronunciations []byte
}

// LoadOptions names the input files of a session.
type LoadOptions struct {
	WordsPath          string
	PronunciationsPath string
	// Encoding of the pronouncing dictionary: "utf-8" (default), "latin1" or "windows-1252".
	Encoding string
}

// Result is a fully enriched catalog plus what the loaders reported.
type Result struct {
	Catalog        *Catalog
	Pronunciations []Pronunciation
	WordStats      LoadStats
	EnrichStats    EnrichStats
}

// ParseEncoding maps a config encoding name to a text decoder.
func ParseEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

// ReadSources reads the word file and the pronouncing dictionary concurrently.
// The pronouncing dictionary is transcoded to UTF-8 using enc.
func ReadSources(ctx context.Context, wordsPath, pronPath string, enc encoding.Encoding) (*Sources, error) {
	var src Sources
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := readFile(gctx, wordsPath)
		if err != nil {
			return fmt.Errorf("read word file: %w", err)
		}
		src.Words = data
		return nil
	})

	g.Go(func() error {
		data, err := readFile(gctx, pronPath)
		if err != nil {
			return fmt.Errorf("read pronunciation file: %w", err)
		}
		if enc != nil && enc != unicode.UTF8 {
			data, err = enc.NewDecoder().Bytes(data)
			if err != nil {
				return fmt.Errorf("decode pronunciation file: %w", err)
			}
		}
		src.Pronunciations = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &src, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Load validates and reads both files, builds the catalog and enriches it.
// The returned catalog is complete; it is never handed out partially enriched.
func Load(ctx context.Context, opts LoadOptions) (*Result, error) {
	enc, err := ParseEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if err := validateInput(opts.WordsPath, FormatWords); err != nil {
		return nil, err
	}
	if err := validateInput(opts.PronunciationsPath, FormatPronunciations); err != nil {
		return nil, err
	}

	start := time.Now()
	src, err := ReadSources(ctx, opts.WordsPath, opts.PronunciationsPath, enc)
	if err != nil {
		return nil, err
	}
	log.Debugf("Read sources in [ %v ]: words=%d bytes, pronunciations=%d bytes",
		time.Since(start), len(src.Words), len(src.Pronunciations))

	return Parse(src)
}

// validateInput checks path against want and, when the file is recognisably
// the other kind of input, says so in the error.
func validateInput(path string, want FileFormat) error {
	err := ValidateFileFormat(path, want)
	if err == nil {
		return nil
	}
	if got, detectErr := DetectFileFormat(path); detectErr == nil && got != want {
		if info, ok := GetFormatInfo(got); ok {
			return fmt.Errorf("%w (it looks like a %s)", err, info.Description)
		}
	}
	return err
}

// Parse builds and enriches a catalog from already-read sources.
func Parse(src *Sources) (*Result, error) {
	start := time.Now()
	catalog, wordStats, err := LoadWords(bytes.NewReader(src.Words))
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d words (%d duplicates) in [ %v ]", wordStats.Words, wordStats.Duplicates, time.Since(start))

	start = time.Now()
	records, enrichStats, err := Enrich(catalog, bytes.NewReader(src.Pronunciations))
	if err != nil {
		return nil, err
	}
	log.Debugf("Encoded %d pronunciations in [ %v ]: lines=%d, alternates=%d, silent=%d, unknown=%d",
		enrichStats.Encoded, time.Since(start), enrichStats.TotalLines,
		enrichStats.AlternateLines, enrichStats.Silent, len(enrichStats.Diagnostics))

	return &Result{
		Catalog:        catalog,
		Pronunciations: records,
		WordStats:      wordStats,
		EnrichStats:    enrichStats,
	}, nil
}
