package mnemonic

import (
	"io"
	"strings"

	"github.com/mnembus/mnembus/internal/utils"
)

// Tail extension words are wrapped in these markers.
const (
	tailOpen  = "[[["
	tailClose = "]]]"
)

// Render writes the text report for r:
//
//	Brian
//	=====
//
//	21-60
//	-----
//	NIGHT
//	CHEESE
//	[[[ KNIGHTLY NIGHTS ]]]
//
// A result without phrases renders as the label header alone.
func Render(w io.Writer, r *Result) error {
	var b strings.Builder
	b.WriteString(utils.Underline(r.Label, '='))
	b.WriteString("\n\n")

	for _, p := range r.Phrases {
		b.WriteString(utils.Underline(p.Key(), '-'))
		b.WriteByte('\n')
		for _, seg := range p.Segments {
			b.WriteString(joinWords(seg.Words))
			b.WriteByte('\n')
		}
		if r.Tail {
			b.WriteString(TailLine(p.Tail))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, utils.CollapseBlankLines(b.String()))
	return err
}

// TailLine formats tail extension words between the markers.
func TailLine(tail []Entry) string {
	if len(tail) == 0 {
		return tailOpen + " " + tailClose
	}
	return tailOpen + " " + joinWords(tail) + " " + tailClose
}

func joinWords(entries []Entry) string {
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return strings.Join(words, " ")
}
