package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the input file kinds the loader understands
type FileFormat int

const (
	FormatUnknown        FileFormat = iota
	FormatWords                     // Tab-separated ranked word list
	FormatPronunciations            // CMU pronouncing dictionary
)

// FormatInfo contains metadata about an input file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatWords: {
		Format:      FormatWords,
		Description: "Ranked Word List",
		MinSize:     int64(len("r\tw\tp\tf\td")),
	},
	FormatPronunciations: {
		Format:      FormatPronunciations,
		Description: "Pronouncing Dictionary",
		MinSize:     3, // one letter word and one phone
	},
}

// sniffLines is how many lines are inspected when validating a file.
const sniffLines = 64

// ValidateFileFormat checks that a file looks like the expected format
// before it is read in full.
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	switch expectedFormat {
	case FormatWords:
		err = validateWordsFormat(file)
	case FormatPronunciations:
		err = validatePronunciationsFormat(file)
	}
	if err != nil {
		return fmt.Errorf("file %s is not a valid %s: %w", filename, formatInfo.Description, err)
	}

	log.Debugf("%s %s validated", formatInfo.Description, filename)
	return nil
}

// validateWordsFormat checks the header has every expected column.
func validateWordsFormat(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return err
		}
		return fmt.Errorf("missing header line")
	}
	header := scanner.Text()
	if cols := strings.Split(header, "\t"); len(cols) < wordColumns {
		return fmt.Errorf("%w in header: got %d, want %d", ErrMissingColumns, len(cols), wordColumns)
	}
	return nil
}

// validatePronunciationsFormat checks the first entry line has a word and phones.
func validatePronunciationsFormat(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for i := 0; i < sniffLines && scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		if len(strings.Fields(line)) < 2 {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		return nil
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return fmt.Errorf("no entries in the first %d lines", sniffLines)
}

// DetectFileFormat attempts to detect the format of a file
func DetectFileFormat(filename string) (FileFormat, error) {
	if err := ValidateFileFormat(filename, FormatWords); err == nil {
		return FormatWords, nil
	}
	if err := ValidateFileFormat(filename, FormatPronunciations); err == nil {
		return FormatPronunciations, nil
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
