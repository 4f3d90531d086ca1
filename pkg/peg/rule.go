package peg

// RuleFunc is the body of a grammar rule: attempt a match at pos.
type RuleFunc func(c *Context, pos int) Result

// Rule is a named grammar rule. Rule identity (the pointer) together with a
// position forms the memo key, so each distinct rule must be a distinct
// Rule value.
type Rule struct {
	name string
	fn   RuleFunc
}

// NewRule creates an unbound rule so mutually recursive grammars can be
// wired up before the bodies exist.
func NewRule(name string) *Rule {
	return &Rule{name: name}
}

// Bind attaches the rule body.
func (r *Rule) Bind(fn RuleFunc) {
	r.fn = fn
}

// Define creates a rule with its body in one step.
func Define(name string, fn RuleFunc) *Rule {
	return &Rule{name: name, fn: fn}
}

// Name returns the rule's grammar name.
func (r *Rule) Name() string {
	return r.name
}
