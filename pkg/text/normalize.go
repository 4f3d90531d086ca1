// Package text segments English prose into paragraphs, sentences, and word
// tokens using regex-driven heuristics. It is the normalization and
// segmentation collaborator of the grammar core: it consumes and produces
// plain strings only.
package text

import (
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var unicodeQuotes = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// NormalizeUnicode applies NFKC normalization and replaces curly quotes
// with their ASCII counterparts.
func NormalizeUnicode(text string) string {
	return unicodeQuotes.Replace(norm.NFKC.String(text))
}

// NormalizeNewlines converts CRLF and CR line endings to LF, unwraps single
// newlines inside paragraphs into spaces (hard-wrapped text), and strips a
// leading BOM. Paragraph breaks (two or more newlines) are preserved.
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '\n' {
			prevBreak := i > 0 && text[i-1] == '\n'
			nextBreak := i+1 < len(text) && text[i+1] == '\n'
			if !prevBreak && !nextBreak {
				b.WriteByte(' ')
				continue
			}
		}
		b.WriteByte(ch)
	}
	return strings.TrimPrefix(b.String(), "\ufeff")
}

// ReadAndNormalize reads a UTF-8 text file and applies both normalization
// passes.
func ReadAndNormalize(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	return NormalizeNewlines(NormalizeUnicode(text)), nil
}
