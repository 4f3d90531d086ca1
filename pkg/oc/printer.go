package oc

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes an AST back out as subset-C source. The output is not the
// original text, but re-parsing it reproduces a structurally equal AST:
// compound subexpressions are parenthesized at operand positions, which the
// grammar treats as transparent grouping.
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new AST printer.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintProgram prints a complete program.
func (p *Printer) PrintProgram(prog *Program) {
	for i, decl := range prog.Decls {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.printDecl(decl)
	}
}

func (p *Printer) writeIndent() {
	fmt.Fprint(p.w, strings.Repeat("    ", p.indent))
}

func typePrefix(t Type) string {
	return t.Base + " " + strings.Repeat("*", t.Stars)
}

func (p *Printer) printDecl(decl Decl) {
	switch d := decl.(type) {
	case VarDecl:
		p.printVarDecl(d)
	case FunDecl:
		p.printFunDecl(d)
	default:
		fmt.Fprintf(p.w, "/* unknown decl %T */\n", decl)
	}
}

func (p *Printer) printVarDecl(v VarDecl) {
	p.writeIndent()
	fmt.Fprintf(p.w, "%s%s", typePrefix(v.Type), v.Name)
	if v.ArraySize != nil {
		fmt.Fprintf(p.w, "[%d]", v.ArraySize.Value)
	}
	fmt.Fprintln(p.w, ";")
}

func (p *Printer) printFunDecl(f FunDecl) {
	fmt.Fprintf(p.w, "%s%s(", typePrefix(f.Type), f.Name)
	for i, arg := range f.Params {
		if i > 0 {
			fmt.Fprint(p.w, ", ")
		}
		fmt.Fprintf(p.w, "%s%s", typePrefix(arg.Type), arg.Name)
	}
	fmt.Fprintln(p.w, ")")
	fmt.Fprintln(p.w, "{")
	p.indent++
	for _, local := range f.Locals {
		p.printVarDecl(local)
	}
	for _, stmt := range f.Body.Stmts {
		p.printStmt(stmt)
	}
	p.indent--
	fmt.Fprintln(p.w, "}")
}

func (p *Printer) printStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case IfStmt:
		p.writeIndent()
		fmt.Fprint(p.w, "if (")
		p.printExpr(s.Cond)
		fmt.Fprintln(p.w, ")")
		p.printSubStmt(s.Then)
		if s.Else != nil {
			p.writeIndent()
			fmt.Fprintln(p.w, "else")
			p.printSubStmt(s.Else)
		}
	case WhileStmt:
		p.writeIndent()
		fmt.Fprint(p.w, "while (")
		p.printExpr(s.Cond)
		fmt.Fprintln(p.w, ")")
		p.printSubStmt(s.Body)
	case DoWhileStmt:
		p.writeIndent()
		fmt.Fprintln(p.w, "do")
		p.printSubStmt(s.Body)
		p.writeIndent()
		fmt.Fprint(p.w, "while (")
		p.printExpr(s.Cond)
		fmt.Fprintln(p.w, ");")
	case ReturnStmt:
		p.writeIndent()
		fmt.Fprint(p.w, "return ")
		p.printExpr(s.Expr)
		fmt.Fprintln(p.w, ";")
	case ExprStmt:
		p.writeIndent()
		p.printExpr(s.Expr)
		fmt.Fprintln(p.w, ";")
	case Block:
		p.writeIndent()
		fmt.Fprintln(p.w, "{")
		p.indent++
		for _, inner := range s.Stmts {
			p.printStmt(inner)
		}
		p.indent--
		p.writeIndent()
		fmt.Fprintln(p.w, "}")
	case EmptyStmt:
		p.writeIndent()
		fmt.Fprintln(p.w, ";")
	default:
		p.writeIndent()
		fmt.Fprintf(p.w, "/* unknown stmt %T */;\n", stmt)
	}
}

// printSubStmt prints the body of a control construct one level deeper.
func (p *Printer) printSubStmt(stmt Stmt) {
	if _, ok := stmt.(Block); ok {
		p.printStmt(stmt)
		return
	}
	p.indent++
	p.printStmt(stmt)
	p.indent--
}

func (p *Printer) printExpr(expr Expr) {
	switch e := expr.(type) {
	case BinOp:
		p.printOperand(e.Left)
		fmt.Fprintf(p.w, " %s ", e.Op)
		p.printOperand(e.Right)
	case UnOp:
		fmt.Fprint(p.w, e.Op)
		p.printOperand(e.Operand)
	case PostOp:
		p.printOperand(e.Operand)
		fmt.Fprint(p.w, e.Op)
	case Index:
		p.printOperand(e.Base)
		fmt.Fprint(p.w, "[")
		p.printExpr(e.Index)
		fmt.Fprint(p.w, "]")
	case Call:
		p.printOperand(e.Callee)
		fmt.Fprint(p.w, "(")
		for i, arg := range e.Args {
			if i > 0 {
				fmt.Fprint(p.w, ", ")
			}
			p.printExpr(arg)
		}
		fmt.Fprint(p.w, ")")
	case NameRef:
		fmt.Fprint(p.w, e.Name)
	case IntLit:
		fmt.Fprintf(p.w, "%d", e.Value)
	case CharLit:
		fmt.Fprintf(p.w, "'%c'", e.Value)
	case StringLit:
		// content is stored raw; no escape processing in either direction
		fmt.Fprintf(p.w, "\"%s\"", e.Value)
	default:
		fmt.Fprintf(p.w, "/* unknown expr %T */", expr)
	}
}

// printOperand prints an expression in an operand position, parenthesizing
// anything that is not a primary so the grouping survives a re-parse.
func (p *Printer) printOperand(expr Expr) {
	switch e := expr.(type) {
	case NameRef, IntLit, CharLit, StringLit:
		p.printExpr(e)
	case Call:
		if _, named := e.Callee.(NameRef); named {
			p.printExpr(e)
			return
		}
		fmt.Fprint(p.w, "(")
		p.printExpr(e)
		fmt.Fprint(p.w, ")")
	default:
		fmt.Fprint(p.w, "(")
		p.printExpr(expr)
		fmt.Fprint(p.w, ")")
	}
}
