// Package ast defines L's abstract syntax: the handful of statement forms
// the syntax analyser produces (component F's output) and the Formula
// token sequence plus its shunting-yard reduction to RPN, which the
// formula evaluator (component E) interprets and lowers.
package ast

import (
	"github.com/mcpp-lang/mcpp/lang/operator"
	"github.com/mcpp-lang/mcpp/lang/token"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// Stmt is any top-level AST node a CodeBlock can contain.
type Stmt interface {
	Pos() token.Pos
	stmtNode()
}

// CodeBlock is an ordered sequence of statements; it compiles to exactly
// one generated MCFunction.
type CodeBlock struct {
	Stmts []Stmt
	At    token.Pos
}

func (b *CodeBlock) Pos() token.Pos { return b.At }
func (*CodeBlock) stmtNode()        {}

// IfSyntax is `if <formula> <block>`.
type IfSyntax struct {
	Cond *Formula
	Body *CodeBlock
	At   token.Pos
}

func (n *IfSyntax) Pos() token.Pos { return n.At }
func (*IfSyntax) stmtNode()        {}

// WhileSyntax is `while <formula> <block>`.
type WhileSyntax struct {
	Cond *Formula
	Body *CodeBlock
	At   token.Pos
}

func (n *WhileSyntax) Pos() token.Pos { return n.At }
func (*WhileSyntax) stmtNode()        {}

// VariableDefinement is `let IDENT (: type)? (= formula)?`.
type VariableDefinement struct {
	Name         string
	DeclaredType *types.Type // nil when no type annotation was given
	Init         *Formula    // nil when no initialiser was given
	At           token.Pos
}

func (n *VariableDefinement) Pos() token.Pos { return n.At }
func (*VariableDefinement) stmtNode()        {}

// Assignment is `IDENT = formula ;`.
type Assignment struct {
	Name string
	RHS  *Formula
	At   token.Pos
}

func (n *Assignment) Pos() token.Pos { return n.At }
func (*Assignment) stmtNode()        {}

// FormulaStmt is a bare formula used as a statement; it has no observable
// effect beyond whatever scratch it allocates and frees.
type FormulaStmt struct {
	F  *Formula
	At token.Pos
}

func (n *FormulaStmt) Pos() token.Pos { return n.At }
func (*FormulaStmt) stmtNode()        {}

// FTokenKind discriminates the variants of FToken.
type FTokenKind uint8

const (
	FLit FTokenKind = iota
	FIdent
	FCall
	FMacro
	FOp
	FLParen
	FRParen
)

// FToken is a pre-interpretation formula token: a literal, an identifier
// reference, a call or macro invocation, an operator tag, or a
// parenthesis.
type FToken struct {
	Kind FTokenKind
	At   token.Pos

	// FLit
	LitType types.Type
	Int     int64
	Flt     float64
	Bool    bool
	Str     string

	// FIdent, FCall, FMacro
	Name string
	Args []*Formula // FCall only

	// FOp
	Op operator.Oper
}

// Formula is a flat sequence of FTokens in infix order, as produced by the
// syntax analyser; see ToRPN for its reduction to postfix order.
type Formula struct {
	Tokens []FToken
	At     token.Pos
}
