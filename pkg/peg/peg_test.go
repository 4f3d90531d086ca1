package peg

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// digits is a minimal operand rule for engine tests.
func digits() *Rule {
	return Define("digits", func(c *Context, pos int) Result {
		p := c.Skip(pos)
		end := p
		for end < len(c.Src) && c.Src[end] >= '0' && c.Src[end] <= '9' {
			end++
		}
		if end == p {
			return Fail(p, "digits")
		}
		return Match(c.Src[p:end], end)
	})
}

func TestApplyMemoizesResults(t *testing.T) {
	calls := 0
	r := Define("counted", func(c *Context, pos int) Result {
		calls++
		return Match("x", pos)
	})

	c := NewContext("abc")
	c.Apply(r, 1)
	c.Apply(r, 1)
	c.Apply(r, 2)

	if calls != 2 {
		t.Errorf("expected 2 evaluations (positions 1 and 2), got %d", calls)
	}
}

func TestApplyMemoizesFailures(t *testing.T) {
	calls := 0
	r := Define("failing", func(c *Context, pos int) Result {
		calls++
		return Fail(pos, "nothing")
	})

	c := NewContext("abc")
	first := c.Apply(r, 0)
	second := c.Apply(r, 0)

	if calls != 1 {
		t.Errorf("expected 1 evaluation, got %d", calls)
	}
	if first.OK || second.OK {
		t.Error("expected both results to be failures")
	}
	if first.Expected != second.Expected {
		t.Error("memoized failure must be identical to the original")
	}
}

func TestDepthLimit(t *testing.T) {
	loop := NewRule("loop")
	loop.Bind(func(c *Context, pos int) Result {
		return c.Apply(loop, pos)
	})

	c := NewContext("x")
	c.MaxDepth = 16
	res := c.Apply(loop, 0)
	if res.OK || !res.Hard {
		t.Fatalf("expected hard failure from depth limit, got %+v", res)
	}
}

func TestParseAllReportsLeftover(t *testing.T) {
	c := NewContext("123 rest")
	_, err := c.ParseAll(digits())
	var incErr *IncompleteParseError
	if !errors.As(err, &incErr) {
		t.Fatalf("expected IncompleteParseError, got %T: %v", err, err)
	}
	if incErr.Pos != 4 {
		t.Errorf("expected leftover at offset 4, got %d", incErr.Pos)
	}
	if !strings.Contains(err.Error(), "unparsed input") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParseAllReportsSyntaxError(t *testing.T) {
	c := NewContext("abc")
	_, err := c.ParseAll(digits())
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected SyntaxError, got %T: %v", err, err)
	}
	if synErr.Expected != "digits" {
		t.Errorf("expected %q in error, got %q", "digits", synErr.Expected)
	}
	if synErr.Line != 1 || synErr.Col != 1 {
		t.Errorf("expected line 1 col 1, got line %d col %d", synErr.Line, synErr.Col)
	}
}

func TestParseAllAcceptsTrailingLayout(t *testing.T) {
	c := NewContext("123  \n")
	tree, err := c.ParseAll(digits())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree != "123" {
		t.Errorf("expected tree %q, got %q", "123", tree)
	}
}

func TestLineCol(t *testing.T) {
	src := "ab\ncd\n\nef"
	tests := []struct {
		pos  int
		line int
		col  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 3},
		{99, 4, 3},
	}
	for _, tc := range tests {
		line, col := LineCol(src, tc.pos)
		if line != tc.line || col != tc.col {
			t.Errorf("LineCol(%d): expected %d:%d, got %d:%d", tc.pos, tc.line, tc.col, line, col)
		}
	}
}

func TestPromote(t *testing.T) {
	soft := Fail(3, "thing")
	hard := soft.Promote("rule")
	if !hard.Hard || hard.Rule != "rule" || hard.Pos != 3 || hard.Expected != "thing" {
		t.Errorf("unexpected promoted result: %+v", hard)
	}
	already := HardFail(1, "other", "inner")
	if again := already.Promote("outer"); again.Rule != "inner" {
		t.Errorf("promoting a hard failure must keep its rule, got %q", again.Rule)
	}
}

// toyLevels exercises all four level shapes with string trees.
var toyLevels = []Level{
	{Ops: []string{"-"}, Arity: 1, Assoc: Right},
	{Ops: []string{"!"}, Arity: 1, Assoc: Left},
	{Ops: []string{"*"}, Arity: 2, Assoc: Left},
	{Ops: []string{"+", "-"}, Arity: 2, Assoc: Left},
	{Ops: []string{"^"}, Arity: 2, Assoc: Right},
}

func toyExpr() *Rule {
	return Infix("toy", digits(), toyLevels, Builders{
		Prefix:  func(op string, x any) any { return fmt.Sprintf("(%s %v)", op, x) },
		Postfix: func(op string, x any) any { return fmt.Sprintf("(%v %s)", x, op) },
		Binary:  func(op string, l, r any) any { return fmt.Sprintf("(%v %s %v)", l, op, r) },
	})
}

func TestInfix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7", "7"},
		{"1 + 2 + 3", "((1 + 2) + 3)"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"2 ^ 3 ^ 4", "(2 ^ (3 ^ 4))"},
		{"- 5 + 6", "((- 5) + 6)"},
		{"- - 5", "(- (- 5))"},
		{"5 ! !", "((5 !) !)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"- 1 * 2", "((- 1) * 2)"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			c := NewContext(tc.input)
			tree, err := c.ParseAll(toyExpr())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tree != tc.want {
				t.Errorf("expected %s, got %v", tc.want, tree)
			}
		})
	}
}

func TestInfixLeavesDanglingOperator(t *testing.T) {
	c := NewContext("1 +")
	_, err := c.ParseAll(toyExpr())
	var incErr *IncompleteParseError
	if !errors.As(err, &incErr) {
		t.Fatalf("expected IncompleteParseError, got %T: %v", err, err)
	}
	if incErr.Pos != 2 {
		t.Errorf("expected leftover at offset 2, got %d", incErr.Pos)
	}
}

func TestAssignGuard(t *testing.T) {
	levels := []Level{{Ops: []string{"="}, Arity: 2, Assoc: Left}}
	r := Infix("assign", digits(), levels, Builders{
		Binary: func(op string, l, r any) any { return fmt.Sprintf("(%v %s %v)", l, op, r) },
	})

	c := NewContext("1 == 2")
	_, err := c.ParseAll(r)
	var incErr *IncompleteParseError
	if !errors.As(err, &incErr) {
		t.Fatalf("= must not match the first half of ==, got %T: %v", err, err)
	}

	c = NewContext("1 = 2")
	tree, err := c.ParseAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree != "(1 = 2)" {
		t.Errorf("expected (1 = 2), got %v", tree)
	}
}
