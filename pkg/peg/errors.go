package peg

import "fmt"

// SyntaxError reports a committed parse failure: the grammar got past a
// point of no return (typically a statement keyword) and the remainder did
// not match.
type SyntaxError struct {
	Pos      int
	Line     int
	Col      int
	Expected string
	Rule     string
}

func (e *SyntaxError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("line %d, col %d: expected %s in %s", e.Line, e.Col, e.Expected, e.Rule)
	}
	return fmt.Sprintf("line %d, col %d: expected %s", e.Line, e.Col, e.Expected)
}

// IncompleteParseError reports that the top-level rule succeeded but input
// remains at Pos.
type IncompleteParseError struct {
	Pos  int
	Line int
	Col  int
}

func (e *IncompleteParseError) Error() string {
	return fmt.Sprintf("line %d, col %d: unparsed input remains at offset %d", e.Line, e.Col, e.Pos)
}
