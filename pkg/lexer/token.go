// Package lexer provides position-indexed token matchers for the subset-C
// grammar. There is no separate tokenize pass: the grammar matches tokens
// directly against the source buffer at a byte offset, and a failed match is
// reported as (Token{}, false) so the caller can try another rule.
package lexer

// Kind classifies a matched token.
type Kind int

const (
	Keyword Kind = iota
	Ident
	Int
	Char
	String
	Operator
	Punct
)

var kindNames = map[Kind]string{
	Keyword:  "keyword",
	Ident:    "identifier",
	Int:      "integer",
	Char:     "char literal",
	String:   "string literal",
	Operator: "operator",
	Punct:    "punctuation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is one matched source span. Immutable once produced.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// keywords of the subset-C grammar. Keyword matching takes priority over
// identifier matching: MatchName never matches a bare keyword.
var keywords = map[string]bool{
	"int":    true,
	"char":   true,
	"while":  true,
	"do":     true,
	"if":     true,
	"else":   true,
	"return": true,
}

// IsKeyword reports whether s is a reserved word of the grammar.
func IsKeyword(s string) bool {
	return keywords[s]
}
