package peg

import (
	"fmt"
	"sort"
	"strings"
)

// Assoc is the grouping direction for a chain of same-level operators.
type Assoc int

const (
	Left Assoc = iota
	Right
)

// Level is one tier of an operator-precedence table. A unary level is a
// prefix level when right-associative and a postfix level when
// left-associative.
type Level struct {
	Ops   []string
	Arity int
	Assoc Assoc
}

// Builders construct tree nodes for the three operator positions.
type Builders struct {
	Prefix  func(op string, operand any) any
	Postfix func(op string, operand any) any
	Binary  func(op string, left, right any) any
}

// Infix builds a precedence-climbing expression rule from a flat operator
// table, tightest-binding level first. Each level becomes its own memoized
// rule, so backtracking through expression contexts stays linear.
func Infix(name string, operand *Rule, levels []Level, b Builders) *Rule {
	prev := operand
	for i, lv := range levels {
		ops := append([]string(nil), lv.Ops...)
		// longest first, so "<=" wins over "<" within a level
		sort.SliceStable(ops, func(a, z int) bool { return len(ops[a]) > len(ops[z]) })

		rule := NewRule(fmt.Sprintf("%s/%d", name, i+1))
		inner := prev
		switch {
		case lv.Arity == 1 && lv.Assoc == Right:
			rule.Bind(prefixLevel(rule, inner, ops, b.Prefix))
		case lv.Arity == 1:
			rule.Bind(postfixLevel(inner, ops, b.Postfix))
		case lv.Assoc == Right:
			rule.Bind(rightBinaryLevel(rule, inner, ops, b.Binary))
		default:
			rule.Bind(leftBinaryLevel(inner, ops, b.Binary))
		}
		prev = rule
	}

	top := prev
	return Define(name, func(c *Context, pos int) Result {
		return c.Apply(top, pos)
	})
}

// matchOp matches one operator of ops at pos. The assignment operator never
// matches the first half of "==".
func matchOp(src string, pos int, ops []string) (string, int, bool) {
	for _, op := range ops {
		if !strings.HasPrefix(src[pos:], op) {
			continue
		}
		if op == "=" && pos+1 < len(src) && src[pos+1] == '=' {
			continue
		}
		return op, pos + len(op), true
	}
	return "", pos, false
}

// prefixLevel: op applied before its operand, stacking right-associatively.
// Ordered choice: the operator alternative is tried before falling through
// to the tighter level.
func prefixLevel(self, inner *Rule, ops []string, build func(op string, x any) any) RuleFunc {
	return func(c *Context, pos int) Result {
		p := c.Skip(pos)
		if op, end, ok := matchOp(c.Src, p, ops); ok {
			sub := c.Apply(self, end)
			if sub.OK {
				return Match(build(op, sub.Tree), sub.End)
			}
			if sub.Hard {
				return sub
			}
		}
		return c.Apply(inner, pos)
	}
}

// postfixLevel: operand followed by zero or more trailing operators.
func postfixLevel(inner *Rule, ops []string, build func(op string, x any) any) RuleFunc {
	return func(c *Context, pos int) Result {
		res := c.Apply(inner, pos)
		if !res.OK {
			return res
		}
		tree, end := res.Tree, res.End
		for {
			p := c.Skip(end)
			op, opEnd, ok := matchOp(c.Src, p, ops)
			if !ok {
				break
			}
			tree = build(op, tree)
			end = opEnd
		}
		return Match(tree, end)
	}
}

// leftBinaryLevel folds a chain of same-level operators left to right. If an
// operator matches but its right operand does not, the operator is left
// unconsumed and the chain ends.
func leftBinaryLevel(inner *Rule, ops []string, build func(op string, l, r any) any) RuleFunc {
	return func(c *Context, pos int) Result {
		res := c.Apply(inner, pos)
		if !res.OK {
			return res
		}
		tree, end := res.Tree, res.End
		for {
			p := c.Skip(end)
			op, opEnd, ok := matchOp(c.Src, p, ops)
			if !ok {
				break
			}
			right := c.Apply(inner, opEnd)
			if right.Hard {
				return right
			}
			if !right.OK {
				break
			}
			tree = build(op, tree, right.Tree)
			end = right.End
		}
		return Match(tree, end)
	}
}

// rightBinaryLevel groups right to left by recursing on the same level for
// the right-hand side.
func rightBinaryLevel(self, inner *Rule, ops []string, build func(op string, l, r any) any) RuleFunc {
	return func(c *Context, pos int) Result {
		left := c.Apply(inner, pos)
		if !left.OK {
			return left
		}
		p := c.Skip(left.End)
		op, opEnd, ok := matchOp(c.Src, p, ops)
		if !ok {
			return left
		}
		rest := c.Apply(self, opEnd)
		if rest.Hard {
			return rest
		}
		if !rest.OK {
			return left
		}
		return Match(build(op, left.Tree, rest.Tree), rest.End)
	}
}
