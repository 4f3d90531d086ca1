// Package parser implements the subset-C grammar on top of the packrat
// engine: an operator-precedence expression tier, recursive-descent
// statement and declaration tiers, and a whole-program rule that must
// consume all input.
package parser

import (
	"strconv"

	"github.com/oc-lang/occ/pkg/lexer"
	"github.com/oc-lang/occ/pkg/oc"
	"github.com/oc-lang/occ/pkg/peg"
)

// precedence is the operator table, tightest-binding level first. Unary
// right-associative levels are prefixes, the unary left-associative level is
// the postfix increment/decrement. Assignment is left-associative in this
// grammar.
var precedence = []peg.Level{
	{Ops: []string{"!", "-", "*"}, Arity: 1, Assoc: peg.Right},
	{Ops: []string{"++", "--"}, Arity: 1, Assoc: peg.Right},
	{Ops: []string{"++", "--"}, Arity: 1, Assoc: peg.Left},
	{Ops: []string{"*", "/", "%"}, Arity: 2, Assoc: peg.Left},
	{Ops: []string{"+", "-"}, Arity: 2, Assoc: peg.Left},
	{Ops: []string{"<", "==", ">", "<=", ">=", "!="}, Arity: 2, Assoc: peg.Left},
	{Ops: []string{"="}, Arity: 2, Assoc: peg.Left},
}

// Grammar wires the rules of the subset-C language. A Grammar is stateless;
// all per-parse state lives in the peg.Context.
type Grammar struct {
	Program *peg.Rule
	Expr    *peg.Rule
	Stmt    *peg.Rule
	VarDecl *peg.Rule
	FunDecl *peg.Rule

	decl    *peg.Rule
	infix   *peg.Rule
	operand *peg.Rule

	stmtAlts []*peg.Rule
}

// NewGrammar builds the rule graph.
func NewGrammar() *Grammar {
	g := &Grammar{}

	g.operand = peg.NewRule("operand")
	g.infix = peg.Infix("expr", g.operand, precedence, peg.Builders{
		Prefix: func(op string, x any) any {
			return oc.UnOp{Op: op, Operand: x.(oc.Expr)}
		},
		Postfix: func(op string, x any) any {
			return oc.PostOp{Op: op, Operand: x.(oc.Expr)}
		},
		Binary: func(op string, l, r any) any {
			return oc.BinOp{Op: op, Left: l.(oc.Expr), Right: r.(oc.Expr)}
		},
	})
	g.operand.Bind(g.parseOperand)

	g.Expr = peg.NewRule("expr")
	g.Expr.Bind(g.parseExpr)

	g.Stmt = peg.NewRule("stmt")
	g.Stmt.Bind(g.parseStmt)
	g.stmtAlts = []*peg.Rule{
		peg.Define("ifstmt", g.parseIfStmt),
		peg.Define("whilestmt", g.parseWhileStmt),
		peg.Define("dowhilestmt", g.parseDoWhileStmt),
		peg.Define("returnstmt", g.parseReturnStmt),
		peg.Define("exprstmt", g.parseExprStmt),
		peg.Define("blockstmt", g.parseBlockStmt),
		peg.Define("emptystmt", g.parseEmptyStmt),
	}

	g.VarDecl = peg.Define("vardecl", g.parseVarDecl)
	g.FunDecl = peg.Define("fundecl", g.parseFunDecl)
	g.decl = peg.Define("decl", g.parseDecl)
	g.Program = peg.Define("program", g.parseProgram)

	return g
}

// lit matches exact punctuation text after layout. On failure the returned
// position is where the text was expected.
func lit(c *peg.Context, pos int, text string) (int, bool) {
	p := c.Skip(pos)
	if tok, ok := lexer.MatchLit(c.Src, p, text, lexer.Punct); ok {
		return tok.End, true
	}
	return p, false
}

// operator matches exact operator text after layout.
func operator(c *peg.Context, pos int, text string) (int, bool) {
	p := c.Skip(pos)
	if tok, ok := lexer.MatchLit(c.Src, p, text, lexer.Operator); ok {
		return tok.End, true
	}
	return p, false
}

// keyword matches a reserved word after layout.
func keyword(c *peg.Context, pos int, kw string) (int, bool) {
	p := c.Skip(pos)
	if tok, ok := lexer.MatchKeyword(c.Src, p, kw); ok {
		return tok.End, true
	}
	return p, false
}

// parseOperand: a primary expression. Ordered choice: function call, bare
// name, integer, char, string, then parenthesized grouping. Grouping is
// transparent; no node is built for the parentheses.
func (g *Grammar) parseOperand(c *peg.Context, pos int) peg.Result {
	p := c.Skip(pos)

	if tok, ok := lexer.MatchName(c.Src, p); ok {
		if open, ok := lit(c, tok.End, "("); ok {
			args, end, abort := g.parseArgs(c, open)
			if abort.Hard {
				return abort
			}
			if after, ok := lit(c, end, ")"); ok {
				return peg.Match(oc.Call{Callee: oc.NameRef{Name: tok.Text}, Args: args}, after)
			}
		}
		return peg.Match(oc.NameRef{Name: tok.Text}, tok.End)
	}

	if tok, ok := lexer.MatchInt(c.Src, p); ok {
		if v, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
			return peg.Match(oc.IntLit{Value: v}, tok.End)
		}
	}

	if tok, ok := lexer.MatchChar(c.Src, p); ok {
		return peg.Match(oc.CharLit{Value: tok.Text[1]}, tok.End)
	}

	if tok, ok := lexer.MatchString(c.Src, p); ok {
		return peg.Match(oc.StringLit{Value: tok.Text[1 : len(tok.Text)-1]}, tok.End)
	}

	if open, ok := lit(c, p, "("); ok {
		res := c.Apply(g.infix, open)
		if res.Hard {
			return res
		}
		if res.OK {
			if end, ok := lit(c, res.End, ")"); ok {
				return peg.Match(res.Tree, end)
			}
		}
	}

	return peg.Fail(p, "expression")
}

// parseArgs: zero or more comma-separated expressions. A trailing comma is
// never consumed: if the expression after a comma fails softly, the comma is
// left for the caller. A hard failure inside an argument comes back in the
// third result and must abort the caller.
func (g *Grammar) parseArgs(c *peg.Context, pos int) ([]oc.Expr, int, peg.Result) {
	res := c.Apply(g.Expr, pos)
	if res.Hard {
		return nil, pos, res
	}
	if !res.OK {
		return nil, pos, peg.Result{}
	}
	args := []oc.Expr{res.Tree.(oc.Expr)}
	end := res.End
	for {
		p, ok := lit(c, end, ",")
		if !ok {
			break
		}
		r := c.Apply(g.Expr, p)
		if r.Hard {
			return nil, pos, r
		}
		if !r.OK {
			break
		}
		args = append(args, r.Tree.(oc.Expr))
		end = r.End
	}
	return args, end, peg.Result{}
}

// parseExpr: the full expression form — the operator-precedence expression
// followed by at most one trailing subscript or call suffix. The suffix is
// not chainable; a second one is left unconsumed.
func (g *Grammar) parseExpr(c *peg.Context, pos int) peg.Result {
	res := c.Apply(g.infix, pos)
	if !res.OK {
		return res
	}
	base := res.Tree.(oc.Expr)

	if p, ok := lit(c, res.End, "["); ok {
		idx := c.Apply(g.Expr, p)
		if idx.Hard {
			return idx
		}
		if idx.OK {
			if end, ok := lit(c, idx.End, "]"); ok {
				return peg.Match(oc.Index{Base: base, Index: idx.Tree.(oc.Expr)}, end)
			}
		}
	}

	if p, ok := lit(c, res.End, "("); ok {
		args, aEnd, abort := g.parseArgs(c, p)
		if abort.Hard {
			return abort
		}
		if end, ok := lit(c, aEnd, ")"); ok {
			return peg.Match(oc.Call{Callee: base, Args: args}, end)
		}
	}

	return res
}

// parseStmt: ordered choice over the statement alternatives; the first
// success wins. A hard failure from a committed alternative aborts the
// choice.
func (g *Grammar) parseStmt(c *peg.Context, pos int) peg.Result {
	for _, alt := range g.stmtAlts {
		res := c.Apply(alt, pos)
		if res.OK || res.Hard {
			return res
		}
	}
	return peg.Fail(c.Skip(pos), "statement")
}

// parseIfStmt: "if" "(" expr ")" stmt ("else" stmt)?. The parse commits
// once "if" is consumed. A dangling "else" is claimed by the innermost open
// if, because that parse reaches the optional else first. An "else" whose
// body fails softly is left unconsumed, like any unmatched alternative.
func (g *Grammar) parseIfStmt(c *peg.Context, pos int) peg.Result {
	pos, ok := keyword(c, pos, "if")
	if !ok {
		return peg.Fail(pos, `"if"`)
	}
	p, ok := lit(c, pos, "(")
	if !ok {
		return peg.HardFail(p, `"("`, "ifstmt")
	}
	cond := c.Apply(g.Expr, p)
	if !cond.OK {
		return cond.Promote("ifstmt")
	}
	p, ok = lit(c, cond.End, ")")
	if !ok {
		return peg.HardFail(p, `")"`, "ifstmt")
	}
	then := c.Apply(g.Stmt, p)
	if !then.OK {
		return then.Promote("ifstmt")
	}

	node := oc.IfStmt{Cond: cond.Tree.(oc.Expr), Then: then.Tree.(oc.Stmt)}
	end := then.End
	if p, ok := keyword(c, end, "else"); ok {
		els := c.Apply(g.Stmt, p)
		if els.Hard {
			return els
		}
		if els.OK {
			node.Else = els.Tree.(oc.Stmt)
			end = els.End
		}
	}
	return peg.Match(node, end)
}

// parseWhileStmt: "while" "(" expr ")" stmt, committed after "while".
func (g *Grammar) parseWhileStmt(c *peg.Context, pos int) peg.Result {
	pos, ok := keyword(c, pos, "while")
	if !ok {
		return peg.Fail(pos, `"while"`)
	}
	p, ok := lit(c, pos, "(")
	if !ok {
		return peg.HardFail(p, `"("`, "whilestmt")
	}
	cond := c.Apply(g.Expr, p)
	if !cond.OK {
		return cond.Promote("whilestmt")
	}
	p, ok = lit(c, cond.End, ")")
	if !ok {
		return peg.HardFail(p, `")"`, "whilestmt")
	}
	body := c.Apply(g.Stmt, p)
	if !body.OK {
		return body.Promote("whilestmt")
	}
	return peg.Match(oc.WhileStmt{Cond: cond.Tree.(oc.Expr), Body: body.Tree.(oc.Stmt)}, body.End)
}

// parseDoWhileStmt: "do" stmt "while" "(" expr ")" ";", committed after
// "do".
func (g *Grammar) parseDoWhileStmt(c *peg.Context, pos int) peg.Result {
	pos, ok := keyword(c, pos, "do")
	if !ok {
		return peg.Fail(pos, `"do"`)
	}
	body := c.Apply(g.Stmt, pos)
	if !body.OK {
		return body.Promote("dowhilestmt")
	}
	p, ok := keyword(c, body.End, "while")
	if !ok {
		return peg.HardFail(p, `"while"`, "dowhilestmt")
	}
	p, ok = lit(c, p, "(")
	if !ok {
		return peg.HardFail(p, `"("`, "dowhilestmt")
	}
	cond := c.Apply(g.Expr, p)
	if !cond.OK {
		return cond.Promote("dowhilestmt")
	}
	p, ok = lit(c, cond.End, ")")
	if !ok {
		return peg.HardFail(p, `")"`, "dowhilestmt")
	}
	p, ok = lit(c, p, ";")
	if !ok {
		return peg.HardFail(p, `";"`, "dowhilestmt")
	}
	return peg.Match(oc.DoWhileStmt{Body: body.Tree.(oc.Stmt), Cond: cond.Tree.(oc.Expr)}, p)
}

// parseReturnStmt: "return" expr ";", committed after "return".
func (g *Grammar) parseReturnStmt(c *peg.Context, pos int) peg.Result {
	pos, ok := keyword(c, pos, "return")
	if !ok {
		return peg.Fail(pos, `"return"`)
	}
	expr := c.Apply(g.Expr, pos)
	if !expr.OK {
		return expr.Promote("returnstmt")
	}
	p, ok := lit(c, expr.End, ";")
	if !ok {
		return peg.HardFail(p, `";"`, "returnstmt")
	}
	return peg.Match(oc.ReturnStmt{Expr: expr.Tree.(oc.Expr)}, p)
}

// parseExprStmt: expr ";". Uncommitted; failure backtracks.
func (g *Grammar) parseExprStmt(c *peg.Context, pos int) peg.Result {
	expr := c.Apply(g.Expr, pos)
	if !expr.OK {
		return expr
	}
	p, ok := lit(c, expr.End, ";")
	if !ok {
		return peg.Fail(p, `";"`)
	}
	return peg.Match(oc.ExprStmt{Expr: expr.Tree.(oc.Expr)}, p)
}

// parseBlockStmt: "{" stmt* "}". Uncommitted.
func (g *Grammar) parseBlockStmt(c *peg.Context, pos int) peg.Result {
	pos, ok := lit(c, pos, "{")
	if !ok {
		return peg.Fail(pos, `"{"`)
	}
	var stmts []oc.Stmt
	end := pos
	for {
		res := c.Apply(g.Stmt, end)
		if res.Hard {
			return res
		}
		if !res.OK {
			break
		}
		stmts = append(stmts, res.Tree.(oc.Stmt))
		end = res.End
	}
	p, ok := lit(c, end, "}")
	if !ok {
		return peg.Fail(p, `"}"`)
	}
	return peg.Match(oc.Block{Stmts: stmts}, p)
}

func (g *Grammar) parseEmptyStmt(c *peg.Context, pos int) peg.Result {
	p, ok := lit(c, pos, ";")
	if !ok {
		return peg.Fail(p, `";"`)
	}
	return peg.Match(oc.EmptyStmt{}, p)
}

// parseTypeSpec: (int|char) "*"*.
func parseTypeSpec(c *peg.Context, pos int) (oc.Type, int, bool) {
	p := c.Skip(pos)
	var base string
	if tok, ok := lexer.MatchKeyword(c.Src, p, "int"); ok {
		base, p = "int", tok.End
	} else if tok, ok := lexer.MatchKeyword(c.Src, p, "char"); ok {
		base, p = "char", tok.End
	} else {
		return oc.Type{}, p, false
	}
	stars := 0
	for {
		q, ok := operator(c, p, "*")
		if !ok {
			break
		}
		stars++
		p = q
	}
	return oc.Type{Base: base, Stars: stars}, p, true
}

// parseVarDecl: type NAME (";" | "[" INT "]" ";"). A malformed array suffix
// is left unconsumed, so the following ";" check fails and the whole
// declaration backtracks.
func (g *Grammar) parseVarDecl(c *peg.Context, pos int) peg.Result {
	typ, p, ok := parseTypeSpec(c, pos)
	if !ok {
		return peg.Fail(p, "type")
	}
	q := c.Skip(p)
	tok, ok := lexer.MatchName(c.Src, q)
	if !ok {
		return peg.Fail(q, "identifier")
	}
	end := tok.End

	var size *oc.IntLit
	if open, ok := lit(c, end, "["); ok {
		r := c.Skip(open)
		if itok, ok := lexer.MatchInt(c.Src, r); ok {
			if v, err := strconv.ParseInt(itok.Text, 10, 64); err == nil {
				if after, ok := lit(c, itok.End, "]"); ok {
					size = &oc.IntLit{Value: v}
					end = after
				}
			}
		}
	}

	p, ok = lit(c, end, ";")
	if !ok {
		return peg.Fail(p, `";"`)
	}
	return peg.Match(oc.VarDecl{Type: typ, Name: tok.Text, ArraySize: size}, p)
}

// parseArg: type NAME.
func parseArg(c *peg.Context, pos int) (oc.Arg, int, bool) {
	typ, p, ok := parseTypeSpec(c, pos)
	if !ok {
		return oc.Arg{}, p, false
	}
	q := c.Skip(p)
	tok, ok := lexer.MatchName(c.Src, q)
	if !ok {
		return oc.Arg{}, q, false
	}
	return oc.Arg{Type: typ, Name: tok.Text}, tok.End, true
}

// parseFunDecl: type NAME "(" (arg ("," arg)*)? ")" "{" vardecl* stmt* "}".
// Uncommitted: the declaration tier disambiguates fundecl from vardecl by
// backtracking at the "(" boundary.
func (g *Grammar) parseFunDecl(c *peg.Context, pos int) peg.Result {
	typ, p, ok := parseTypeSpec(c, pos)
	if !ok {
		return peg.Fail(p, "type")
	}
	q := c.Skip(p)
	tok, ok := lexer.MatchName(c.Src, q)
	if !ok {
		return peg.Fail(q, "identifier")
	}

	p, ok = lit(c, tok.End, "(")
	if !ok {
		return peg.Fail(p, `"("`)
	}
	var params []oc.Arg
	if arg, end, ok := parseArg(c, p); ok {
		params = append(params, arg)
		p = end
		for {
			q, ok := lit(c, p, ",")
			if !ok {
				break
			}
			arg, end, ok := parseArg(c, q)
			if !ok {
				break
			}
			params = append(params, arg)
			p = end
		}
	}
	p, ok = lit(c, p, ")")
	if !ok {
		return peg.Fail(p, `")"`)
	}

	p, ok = lit(c, p, "{")
	if !ok {
		return peg.Fail(p, `"{"`)
	}
	var locals []oc.VarDecl
	for {
		res := c.Apply(g.VarDecl, p)
		if res.Hard {
			return res
		}
		if !res.OK {
			break
		}
		locals = append(locals, res.Tree.(oc.VarDecl))
		p = res.End
	}
	var stmts []oc.Stmt
	for {
		res := c.Apply(g.Stmt, p)
		if res.Hard {
			return res
		}
		if !res.OK {
			break
		}
		stmts = append(stmts, res.Tree.(oc.Stmt))
		p = res.End
	}
	p, ok = lit(c, p, "}")
	if !ok {
		return peg.Fail(p, `"}"`)
	}

	return peg.Match(oc.FunDecl{
		Type:   typ,
		Name:   tok.Text,
		Params: params,
		Locals: locals,
		Body:   oc.Block{Stmts: stmts},
	}, p)
}

// parseDecl: fundecl | vardecl, in that order. Both start with type NAME,
// so the choice resolves structurally at the "(" via backtracking.
func (g *Grammar) parseDecl(c *peg.Context, pos int) peg.Result {
	res := c.Apply(g.FunDecl, pos)
	if res.OK || res.Hard {
		return res
	}
	return c.Apply(g.VarDecl, pos)
}

// parseProgram: zero or more declarations. Never fails softly; trailing
// input is reported by ParseAll.
func (g *Grammar) parseProgram(c *peg.Context, pos int) peg.Result {
	var decls []oc.Decl
	end := pos
	for {
		res := c.Apply(g.decl, end)
		if res.Hard {
			return res
		}
		if !res.OK {
			break
		}
		decls = append(decls, res.Tree.(oc.Decl))
		end = res.End
	}
	return peg.Match(oc.Program{Decls: decls}, end)
}
