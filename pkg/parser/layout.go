package parser

import (
	"strings"

	"github.com/oc-lang/occ/pkg/peg"
)

// SkipLayout advances over whitespace and /* ... */ comments. Comments are
// layout anywhere whitespace is, including inside expressions. An
// unterminated comment is not consumed, so the parse fails at the "/*".
func SkipLayout(src string, pos int) int {
	for {
		pos = peg.SkipSpace(src, pos)
		if !strings.HasPrefix(src[pos:], "/*") {
			return pos
		}
		end := strings.Index(src[pos+2:], "*/")
		if end < 0 {
			return pos
		}
		pos += 2 + end + 2
	}
}
