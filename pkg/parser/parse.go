package parser

import (
	"github.com/oc-lang/occ/pkg/oc"
	"github.com/oc-lang/occ/pkg/peg"
)

// Parse parses a complete subset-C program. The memo table lives in a fresh
// context per call, so concurrent parses of different inputs are
// independent. On failure the error is a *peg.SyntaxError or
// *peg.IncompleteParseError with position information; no partial AST is
// returned.
func Parse(src string) (*oc.Program, error) {
	g := NewGrammar()
	c := peg.NewContext(src)
	c.Layout = SkipLayout

	tree, err := c.ParseAll(g.Program)
	if err != nil {
		return nil, err
	}
	prog := tree.(oc.Program)
	return &prog, nil
}
