// Package peg implements a packrat parsing engine: named grammar rules
// applied at byte offsets of an in-memory source, with per-parse memoization
// so each rule body runs at most once per position.
package peg

// Result is the outcome of attempting a rule at a position. A success
// carries the built tree and the next unconsumed offset. A failure carries
// the offset and a description of what was expected; Hard marks a committed
// failure that callers must not backtrack over.
type Result struct {
	OK       bool
	Tree     any
	End      int
	Pos      int
	Expected string
	Rule     string
	Hard     bool
}

// Match returns a successful result.
func Match(tree any, end int) Result {
	return Result{OK: true, Tree: tree, End: end}
}

// Fail returns a soft mismatch. Callers are free to try other alternatives.
func Fail(pos int, expected string) Result {
	return Result{Pos: pos, Expected: expected}
}

// HardFail returns a committed failure that aborts the whole parse.
func HardFail(pos int, expected, rule string) Result {
	return Result{Pos: pos, Expected: expected, Rule: rule, Hard: true}
}

// Promote converts a soft mismatch into a committed failure attributed to
// rule. Hard failures keep their original attribution.
func (r Result) Promote(rule string) Result {
	if r.OK || r.Hard {
		return r
	}
	r.Hard = true
	r.Rule = rule
	return r
}
