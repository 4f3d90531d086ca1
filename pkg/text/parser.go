package text

import (
	"fmt"
	"strings"
)

const tocTag = "__TOC__ "

// Parser splits normalized prose into paragraphs, sentences, and words.
type Parser struct {
	patterns *Patterns
}

func NewParser() *Parser {
	return &Parser{patterns: DefaultPatterns()}
}

// Paragraphs splits text on blank lines and drops empty chunks.
func (p *Parser) Paragraphs(text string) []string {
	var out []string
	for _, chunk := range p.patterns.Paragraph.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

// protectQuotes replaces quoted spans with placeholders so that terminators
// inside quotations do not split sentences. restoreQuotes undoes it.
func (p *Parser) protectQuotes(text string) (string, []string) {
	var saved []string
	replaced := p.patterns.Quote.ReplaceAllStringFunc(text, func(q string) string {
		saved = append(saved, q)
		return fmt.Sprintf("__QUOTE_%d__", len(saved)-1)
	})
	return replaced, saved
}

func (p *Parser) restoreQuotes(text string, saved []string) string {
	for i := len(saved) - 1; i >= 0; i-- {
		text = strings.Replace(text, fmt.Sprintf("__QUOTE_%d__", i), saved[i], 1)
	}
	return text
}

// TagTOC prefixes front-matter paragraphs so later stages can treat them
// line-wise instead of sentence-wise.
func (p *Parser) TagTOC(paragraph string) string {
	if p.patterns.IsTOC(paragraph) {
		return tocTag + paragraph
	}
	return paragraph
}

// Sentences splits a paragraph into sentences. Front-matter paragraphs are
// split per line. Periods ending a known abbreviation do not terminate a
// sentence.
func (p *Parser) Sentences(paragraph string) []string {
	if strings.HasPrefix(paragraph, tocTag) {
		var out []string
		for _, line := range strings.Split(strings.TrimPrefix(paragraph, tocTag), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				out = append(out, line)
			}
		}
		return out
	}

	protected, saved := p.protectQuotes(paragraph)

	var sentences []string
	start := 0
	for _, loc := range p.patterns.Terminator.FindAllStringIndex(protected, -1) {
		end := loc[1]
		if protected[loc[0]] == '.' && endsWithAbbreviation(protected[start:loc[0]]) {
			continue
		}
		s := strings.TrimSpace(protected[start:end])
		if s != "" {
			sentences = append(sentences, p.restoreQuotes(s, saved))
		}
		start = end
	}
	if rest := strings.TrimSpace(protected[start:]); rest != "" {
		sentences = append(sentences, p.restoreQuotes(rest, saved))
	}
	return sentences
}

// Words tokenizes a sentence into words, numbers, and punctuation runs.
func (p *Parser) Words(sentence string) []string {
	return p.patterns.Word.FindAllString(sentence, -1)
}

// Parse runs the full pipeline: paragraphs, then sentences, then words.
// The result is indexed [paragraph][sentence][word].
func (p *Parser) Parse(text string) [][][]string {
	var doc [][][]string
	for _, para := range p.Paragraphs(text) {
		para = p.TagTOC(para)
		var sentences [][]string
		for _, s := range p.Sentences(para) {
			if words := p.Words(s); len(words) > 0 {
				sentences = append(sentences, words)
			}
		}
		doc = append(doc, sentences)
	}
	return doc
}
