package utils

import (
	"strings"
)

// DigitsOnly keeps the ASCII digits of s, in order, and drops everything else.
// "206-890-9233" becomes "2068909233".
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ContainsDigits checks if a string contains any ASCII digit
func ContainsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

// CollapseBlankLines squeezes every run of blank or whitespace-only lines down
// to a single empty line.
func CollapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	blank := false
	for _, line := range lines {
		isBlank := strings.TrimSpace(line) == ""
		if isBlank && blank {
			continue
		}
		blank = isBlank
		if isBlank {
			line = ""
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Underline returns text followed by a line of ch as wide as text.
func Underline(text string, ch rune) string {
	width := len([]rune(text))
	if width == 0 {
		width = 1
	}
	return text + "\n" + strings.Repeat(string(ch), width)
}
