package lexer

// MatchKeyword matches the exact keyword kw at pos, respecting word
// boundaries: a keyword never matches as the prefix of a longer identifier.
func MatchKeyword(src string, pos int, kw string) (Token, bool) {
	end := pos + len(kw)
	if end > len(src) || src[pos:end] != kw {
		return Token{}, false
	}
	if end < len(src) && isWordChar(src[end]) {
		return Token{}, false
	}
	return Token{Kind: Keyword, Text: kw, Start: pos, End: end}, true
}

// MatchName matches an identifier: a letter or underscore followed by word
// characters. Reserved words are rejected.
func MatchName(src string, pos int) (Token, bool) {
	if pos >= len(src) || !isLetter(src[pos]) {
		return Token{}, false
	}
	end := pos + 1
	for end < len(src) && isWordChar(src[end]) {
		end++
	}
	text := src[pos:end]
	if keywords[text] {
		return Token{}, false
	}
	return Token{Kind: Ident, Text: text, Start: pos, End: end}, true
}

// MatchInt matches an integer literal with an optional leading sign.
func MatchInt(src string, pos int) (Token, bool) {
	end := pos
	if end < len(src) && (src[end] == '+' || src[end] == '-') {
		end++
	}
	digits := end
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	if end == digits {
		return Token{}, false
	}
	return Token{Kind: Int, Text: src[pos:end], Start: pos, End: end}, true
}

// MatchChar matches a character literal: a single quote, any one byte other
// than a newline, and a closing single quote.
func MatchChar(src string, pos int) (Token, bool) {
	if pos+2 >= len(src) || src[pos] != '\'' || src[pos+2] != '\'' || src[pos+1] == '\n' {
		return Token{}, false
	}
	return Token{Kind: Char, Text: src[pos : pos+3], Start: pos, End: pos + 3}, true
}

// MatchString matches a double-quoted string literal. The content is any run
// of bytes other than a double quote or newline; no escape processing is
// performed.
func MatchString(src string, pos int) (Token, bool) {
	if pos >= len(src) || src[pos] != '"' {
		return Token{}, false
	}
	end := pos + 1
	for end < len(src) && src[end] != '"' && src[end] != '\n' {
		end++
	}
	if end >= len(src) || src[end] != '"' {
		return Token{}, false
	}
	end++
	return Token{Kind: String, Text: src[pos:end], Start: pos, End: end}, true
}

// MatchLit matches the exact operator or punctuation text lit at pos.
func MatchLit(src string, pos int, lit string, kind Kind) (Token, bool) {
	end := pos + len(lit)
	if end > len(src) || src[pos:end] != lit {
		return Token{}, false
	}
	return Token{Kind: kind, Text: lit, Start: pos, End: end}, true
}

func isLetter(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
