package text

import (
	"reflect"
	"testing"
)

func TestParagraphs(t *testing.T) {
	p := NewParser()
	got := p.Paragraphs("First paragraph.\n\nSecond one.\n\n\n\nThird.")
	want := []string{"First paragraph.", "Second one.", "Third."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentences(t *testing.T) {
	p := NewParser()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"simple split",
			"It rained. The river rose. Nobody minded.",
			[]string{"It rained.", "The river rose.", "Nobody minded."},
		},
		{
			"exclamation and question",
			"Stop! Who goes there? Nobody.",
			[]string{"Stop!", "Who goes there?", "Nobody."},
		},
		{
			"abbreviation does not split",
			"Dr. Smith went home. He was tired.",
			[]string{"Dr. Smith went home.", "He was tired."},
		},
		{
			"latin abbreviations",
			"Bring supplies, e.g. rope and nails. We start at 6 p.m. sharp.",
			[]string{"Bring supplies, e.g. rope and nails.", "We start at 6 p.m. sharp."},
		},
		{
			"terminator inside quotes is protected",
			`He said "Go away! Now." and left.`,
			[]string{`He said "Go away! Now." and left.`},
		},
		{
			"ellipsis is one terminator run",
			"Well... maybe. Or not.",
			[]string{"Well...", "maybe.", "Or not."},
		},
		{
			"no trailing terminator",
			"An unfinished thought",
			[]string{"An unfinished thought"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Sentences(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSentencesTOC(t *testing.T) {
	p := NewParser()
	para := p.TagTOC("CONTENTS\nChapter I. The Road 1\nChapter II. The Inn 14")
	got := p.Sentences(para)
	want := []string{"CONTENTS", "Chapter I. The Road 1", "Chapter II. The Inn 14"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestWords(t *testing.T) {
	p := NewParser()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "The river rose", []string{"The", "river", "rose"}},
		{"contraction", "don't stop", []string{"don't", "stop"}},
		{"decimal number", "pi is 3.14", []string{"pi", "is", "3.14"}},
		{"punctuation runs", "wait -- really?!", []string{"wait", "--", "really", "?!"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Words(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	p := NewParser()
	doc := p.Parse("It rained. The river rose.\n\nNobody minded.")
	want := [][][]string{
		{
			{"It", "rained", "."},
			{"The", "river", "rose", "."},
		},
		{
			{"Nobody", "minded", "."},
		},
	}
	if !reflect.DeepEqual(doc, want) {
		t.Errorf("expected %v, got %v", want, doc)
	}
}

func TestIsTOC(t *testing.T) {
	p := DefaultPatterns()
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"all caps heading", "THE GOLDEN ROAD", true},
		{"contents keyword", "Table of Contents", true},
		{"chapter heading", "CHAPTER IV.", true},
		{"page number lines", "The Road 1\nThe Inn 14\nThe Forest 32", true},
		{"plain prose", "It was a dark and stormy night, and the rain fell in torrents.", false},
		{"empty", "   ", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.IsTOC(tc.in); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestProtectQuotes(t *testing.T) {
	p := NewParser()
	protected, saved := p.protectQuotes(`say "one" then "two"`)
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved quotes, got %d", len(saved))
	}
	if protected != "say __QUOTE_0__ then __QUOTE_1__" {
		t.Errorf("unexpected protected text: %q", protected)
	}
	if restored := p.restoreQuotes(protected, saved); restored != `say "one" then "two"` {
		t.Errorf("restore mismatch: %q", restored)
	}
}
