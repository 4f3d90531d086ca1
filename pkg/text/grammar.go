package text

import (
	"regexp"
	"strings"
)

// Patterns holds the compiled expressions driving segmentation.
type Patterns struct {
	Paragraph  *regexp.Regexp
	Terminator *regexp.Regexp
	Word       *regexp.Regexp
	Quote      *regexp.Regexp
	Number     *regexp.Regexp
	Roman      *regexp.Regexp
	Page       *regexp.Regexp
	Chapter    *regexp.Regexp
}

// DefaultPatterns returns the pattern set for plain English prose in the
// style of Project Gutenberg e-texts.
func DefaultPatterns() *Patterns {
	return &Patterns{
		Paragraph:  regexp.MustCompile(`\n{2,}`),
		Terminator: regexp.MustCompile(`[.!?]+(\s+|$)`),
		Word:       regexp.MustCompile(`\d+(?:\.\d+)?|[a-zA-Z]+(?:'[a-zA-Z]+)?|[^\sa-zA-Z0-9]+`),
		Quote:      regexp.MustCompile(`"[^"]*"|'[^']*'`),
		Number:     regexp.MustCompile(`^\d+$`),
		Roman:      regexp.MustCompile(`^[ivxlcdmIVXLCDM]+$`),
		Page:       regexp.MustCompile(`(?m)^\s*\S.*\s+(\d+|[ivxlcdm]+)\s*$`),
		Chapter:    regexp.MustCompile(`(?im)^\s*CHAPTER\s+[IVXLCDM\d]+\.?\s*$`),
	}
}

// abbreviations are honorifics and Latinisms whose trailing period does not
// end a sentence.
var abbreviations = map[string]bool{
	"dr":  true,
	"mr":  true,
	"ms":  true,
	"mrs": true,
	"st":  true,
	"etc": true,
	"e.g": true,
	"i.e": true,
	"vs":  true,
	"p.m": true,
	"a.m": true,
}

// endsWithAbbreviation reports whether the text leading up to a period
// terminator ends in a known abbreviation.
func endsWithAbbreviation(before string) bool {
	before = strings.TrimRight(before, " \t")
	i := len(before)
	for i > 0 {
		ch := before[i-1]
		if !isAbbrevChar(ch) {
			break
		}
		i--
	}
	word := strings.ToLower(before[i:])
	return abbreviations[word]
}

func isAbbrevChar(ch byte) bool {
	return ch == '.' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

var tocKeywords = map[string]bool{
	"contents": true,
	"table":    true,
	"page":     true,
	"act":      true,
	"scene":    true,
	"prologue": true,
	"chapter":  true,
	"epilogue": true,
	"preface":  true,
	"index":    true,
}

// IsTOC reports whether a paragraph looks like front-matter rather than
// prose: a short all-caps heading, a table-of-contents keyword, a chapter
// heading, or lines that end in page numbers.
func (p *Patterns) IsTOC(paragraph string) bool {
	trimmed := strings.TrimSpace(paragraph)
	if trimmed == "" {
		return false
	}
	words := strings.Fields(trimmed)
	if len(words) < 5 && trimmed == strings.ToUpper(trimmed) && trimmed != strings.ToLower(trimmed) {
		return true
	}
	for _, w := range words {
		if tocKeywords[strings.ToLower(strings.Trim(w, ".,:;"))] {
			return true
		}
	}
	if p.Chapter.MatchString(trimmed) {
		return true
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > 1 {
		pageLines := 0
		for _, line := range lines {
			if p.Page.MatchString(line) {
				pageLines++
			}
		}
		if pageLines*2 >= len(lines) {
			return true
		}
	}
	return false
}
