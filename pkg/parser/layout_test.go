package parser

import "testing"

func TestSkipLayout(t *testing.T) {
	tests := []struct {
		name string
		src  string
		pos  int
		want int
	}{
		{"whitespace", "   x", 0, 3},
		{"comment", "/* hi */x", 0, 8},
		{"comment then space", "/* a */  x", 0, 9},
		{"adjacent comments", "/*a*//*b*/x", 0, 10},
		{"unterminated comment stays", "/* open", 0, 0},
		{"nothing to skip", "x  ", 0, 0},
		{"mid source", "a /*c*/ b", 1, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SkipLayout(tc.src, tc.pos); got != tc.want {
				t.Errorf("SkipLayout(%q, %d) = %d, want %d", tc.src, tc.pos, got, tc.want)
			}
		})
	}
}
