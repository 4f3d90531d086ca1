package oc

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ASTMap converts a node into a nested map keyed by node kind, the shape
// used both by the YAML test specs and by the --dast dump. Empty lists and
// nil children are omitted so the maps compare cleanly against hand-written
// YAML.
func ASTMap(node Node) any {
	switch n := node.(type) {
	case Program:
		return kindMap("Program", "decls", declMaps(n.Decls))
	case *Program:
		return ASTMap(*n)
	case VarDecl:
		m := map[string]any{"kind": "VarDecl", "type": typeString(n.Type), "name": n.Name}
		if n.ArraySize != nil {
			m["array_size"] = int(n.ArraySize.Value)
		}
		return m
	case FunDecl:
		m := map[string]any{"kind": "FunDecl", "type": typeString(n.Type), "name": n.Name}
		if len(n.Params) > 0 {
			params := make([]any, len(n.Params))
			for i, a := range n.Params {
				params[i] = ASTMap(a)
			}
			m["params"] = params
		}
		if len(n.Locals) > 0 {
			locals := make([]any, len(n.Locals))
			for i, l := range n.Locals {
				locals[i] = ASTMap(l)
			}
			m["locals"] = locals
		}
		m["body"] = ASTMap(n.Body)
		return m
	case Arg:
		return map[string]any{"kind": "Arg", "type": typeString(n.Type), "name": n.Name}
	case Block:
		m := map[string]any{"kind": "Block"}
		if len(n.Stmts) > 0 {
			stmts := make([]any, len(n.Stmts))
			for i, s := range n.Stmts {
				stmts[i] = ASTMap(s)
			}
			m["stmts"] = stmts
		}
		return m
	case IfStmt:
		m := map[string]any{"kind": "IfStmt", "cond": ASTMap(n.Cond), "then": ASTMap(n.Then)}
		if n.Else != nil {
			m["else"] = ASTMap(n.Else)
		}
		return m
	case WhileStmt:
		return map[string]any{"kind": "WhileStmt", "cond": ASTMap(n.Cond), "body": ASTMap(n.Body)}
	case DoWhileStmt:
		return map[string]any{"kind": "DoWhileStmt", "body": ASTMap(n.Body), "cond": ASTMap(n.Cond)}
	case ReturnStmt:
		return map[string]any{"kind": "ReturnStmt", "expr": ASTMap(n.Expr)}
	case ExprStmt:
		return map[string]any{"kind": "ExprStmt", "expr": ASTMap(n.Expr)}
	case EmptyStmt:
		return map[string]any{"kind": "EmptyStmt"}
	case BinOp:
		return map[string]any{"kind": "BinOp", "op": n.Op, "left": ASTMap(n.Left), "right": ASTMap(n.Right)}
	case UnOp:
		return map[string]any{"kind": "UnOp", "op": n.Op, "operand": ASTMap(n.Operand)}
	case PostOp:
		return map[string]any{"kind": "PostOp", "op": n.Op, "operand": ASTMap(n.Operand)}
	case Index:
		return map[string]any{"kind": "Index", "base": ASTMap(n.Base), "index": ASTMap(n.Index)}
	case Call:
		m := map[string]any{"kind": "Call", "callee": ASTMap(n.Callee)}
		if len(n.Args) > 0 {
			args := make([]any, len(n.Args))
			for i, a := range n.Args {
				args[i] = ASTMap(a)
			}
			m["args"] = args
		}
		return m
	case NameRef:
		return map[string]any{"kind": "NameRef", "name": n.Name}
	case IntLit:
		return map[string]any{"kind": "IntLit", "value": int(n.Value)}
	case CharLit:
		return map[string]any{"kind": "CharLit", "value": string(n.Value)}
	case StringLit:
		return map[string]any{"kind": "StringLit", "value": n.Value}
	default:
		return map[string]any{"kind": fmt.Sprintf("unknown %T", node)}
	}
}

func kindMap(kind, listKey string, list []any) map[string]any {
	m := map[string]any{"kind": kind}
	if len(list) > 0 {
		m[listKey] = list
	}
	return m
}

func declMaps(decls []Decl) []any {
	if len(decls) == 0 {
		return nil
	}
	out := make([]any, len(decls))
	for i, d := range decls {
		out[i] = ASTMap(d)
	}
	return out
}

func typeString(t Type) string {
	return t.Base + strings.Repeat("*", t.Stars)
}

// DumpYAML writes the AST of prog to w as YAML.
func DumpYAML(w io.Writer, prog *Program) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ASTMap(*prog)); err != nil {
		return err
	}
	return enc.Close()
}
