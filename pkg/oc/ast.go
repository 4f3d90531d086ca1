// Package oc defines the abstract syntax tree for the subset-C language.
// Nodes are built bottom-up by the parser, owned exclusively by their
// parent, and never mutated after construction.
package oc

// Node is the base interface for all AST nodes.
type Node interface {
	implOcNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	implOcExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	implOcStmt()
}

// Decl is the interface for top-level declarations.
type Decl interface {
	Node
	implOcDecl()
}

// Type is a base type plus a pointer depth: "char **" is {Base: "char",
// Stars: 2}.
type Type struct {
	Base  string
	Stars int
}

// Program is a whole translation unit.
type Program struct {
	Decls []Decl
}

// VarDecl declares a scalar or a single-dimension fixed-size array.
// ArraySize is nil for scalars.
type VarDecl struct {
	Type      Type
	Name      string
	ArraySize *IntLit
}

// FunDecl declares a function: typed parameters, then local variable
// declarations, then statements.
type FunDecl struct {
	Type   Type
	Name   string
	Params []Arg
	Locals []VarDecl
	Body   Block
}

// Arg is one typed function parameter.
type Arg struct {
	Type Type
	Name string
}

// Block is a brace-enclosed statement sequence.
type Block struct {
	Stmts []Stmt
}

// IfStmt is a conditional; Else is nil when absent. A dangling else binds to
// the nearest enclosing open if.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt is a pre-tested loop.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// DoWhileStmt is a post-tested loop.
type DoWhileStmt struct {
	Body Stmt
	Cond Expr
}

// ReturnStmt returns the value of Expr.
type ReturnStmt struct {
	Expr Expr
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	Expr Expr
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct{}

// BinOp is a binary operator application.
type BinOp struct {
	Op    string
	Left  Expr
	Right Expr
}

// UnOp is a prefix operator application.
type UnOp struct {
	Op      string
	Operand Expr
}

// PostOp is a postfix operator application.
type PostOp struct {
	Op      string
	Operand Expr
}

// Index is one array subscript applied to a whole expression.
type Index struct {
	Base  Expr
	Index Expr
}

// Call is a function call, either a named call or one trailing call suffix
// on a whole expression.
type Call struct {
	Callee Expr
	Args   []Expr
}

// NameRef is an identifier used as an expression.
type NameRef struct {
	Name string
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// CharLit is a single-character literal.
type CharLit struct {
	Value byte
}

// StringLit is a double-quoted string literal, stored without the quotes.
type StringLit struct {
	Value string
}

// Marker methods for interface implementation
func (Program) implOcNode() {}

func (VarDecl) implOcNode() {}
func (VarDecl) implOcDecl() {}

func (FunDecl) implOcNode() {}
func (FunDecl) implOcDecl() {}

func (Arg) implOcNode() {}

func (Block) implOcNode() {}
func (Block) implOcStmt() {}

func (IfStmt) implOcNode() {}
func (IfStmt) implOcStmt() {}

func (WhileStmt) implOcNode() {}
func (WhileStmt) implOcStmt() {}

func (DoWhileStmt) implOcNode() {}
func (DoWhileStmt) implOcStmt() {}

func (ReturnStmt) implOcNode() {}
func (ReturnStmt) implOcStmt() {}

func (ExprStmt) implOcNode() {}
func (ExprStmt) implOcStmt() {}

func (EmptyStmt) implOcNode() {}
func (EmptyStmt) implOcStmt() {}

func (BinOp) implOcNode() {}
func (BinOp) implOcExpr() {}

func (UnOp) implOcNode() {}
func (UnOp) implOcExpr() {}

func (PostOp) implOcNode() {}
func (PostOp) implOcExpr() {}

func (Index) implOcNode() {}
func (Index) implOcExpr() {}

func (Call) implOcNode() {}
func (Call) implOcExpr() {}

func (NameRef) implOcNode() {}
func (NameRef) implOcExpr() {}

func (IntLit) implOcNode() {}
func (IntLit) implOcExpr() {}

func (CharLit) implOcNode() {}
func (CharLit) implOcExpr() {}

func (StringLit) implOcNode() {}
func (StringLit) implOcExpr() {}
