package peg

// DefaultMaxDepth bounds rule-application nesting. Recursive descent puts
// input nesting on the Go call stack, so pathological inputs are cut off
// with a hard error instead of exhausting the stack.
const DefaultMaxDepth = 10000

type memoKey struct {
	rule *Rule
	pos  int
}

// Context holds the state of one top-level parse: the source buffer, the
// layout skipper, and the memo table. A Context must not be reused across
// parses of different inputs.
type Context struct {
	Src      string
	Layout   func(src string, pos int) int
	MaxDepth int

	memo  map[memoKey]Result
	depth int
}

// NewContext creates a parse context over src. The default layout skipper
// consumes plain whitespace; grammars with richer layout (comments) set
// Layout themselves.
func NewContext(src string) *Context {
	return &Context{
		Src:      src,
		Layout:   SkipSpace,
		MaxDepth: DefaultMaxDepth,
		memo:     make(map[memoKey]Result),
	}
}

// Skip advances pos over layout.
func (c *Context) Skip(pos int) int {
	return c.Layout(c.Src, pos)
}

// Apply runs rule r at pos, consulting the memo table first. Every outcome,
// success or failure, is recorded, so a given (rule, position) pair is
// evaluated at most once per parse.
func (c *Context) Apply(r *Rule, pos int) Result {
	key := memoKey{rule: r, pos: pos}
	if res, ok := c.memo[key]; ok {
		return res
	}
	if c.depth >= c.MaxDepth {
		return HardFail(pos, "shallower nesting", r.name)
	}
	c.depth++
	res := r.fn(c, pos)
	c.depth--
	c.memo[key] = res
	return res
}

// ParseAll applies r at offset 0 and requires the entire input to be
// consumed, modulo trailing layout. Failures come back as *SyntaxError;
// leftover input as *IncompleteParseError.
func (c *Context) ParseAll(r *Rule) (any, error) {
	res := c.Apply(r, 0)
	if !res.OK {
		line, col := LineCol(c.Src, res.Pos)
		rule := res.Rule
		if rule == "" {
			rule = r.name
		}
		return nil, &SyntaxError{Pos: res.Pos, Line: line, Col: col, Expected: res.Expected, Rule: rule}
	}
	end := c.Skip(res.End)
	if end < len(c.Src) {
		line, col := LineCol(c.Src, end)
		return nil, &IncompleteParseError{Pos: end, Line: line, Col: col}
	}
	return res.Tree, nil
}

// SkipSpace advances pos over ASCII whitespace.
func SkipSpace(src string, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// LineCol converts a byte offset into a 1-based line and column.
func LineCol(src string, pos int) (line, col int) {
	if pos > len(src) {
		pos = len(src)
	}
	line, col = 1, 1
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
