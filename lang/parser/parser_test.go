package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcpp-lang/mcpp/lang/ast"
	"github.com/mcpp-lang/mcpp/lang/lexer"
	"github.com/mcpp-lang/mcpp/lang/token"
	"github.com/mcpp-lang/mcpp/lang/types"
)

func lexBlock(t *testing.T, src string) []token.Value {
	t.Helper()
	toks, err := lexer.Lex([]byte("{" + src + "}"))
	require.NoError(t, err)
	return toks
}

func TestParseLetWithTypeAndInit(t *testing.T) {
	block, err := Parse(lexBlock(t, `let x: int = 1 + 2;`))
	require.NoError(t, err)
	require.Len(t, block.Stmts, 1)
	def, ok := block.Stmts[0].(*ast.VariableDefinement)
	require.True(t, ok)
	require.Equal(t, "x", def.Name)
	require.NotNil(t, def.DeclaredType)
	require.Equal(t, types.Int, *def.DeclaredType)
	require.NotNil(t, def.Init)
	require.Len(t, def.Init.Tokens, 3)
}

func TestParseLetWithNeitherTypeNorInit(t *testing.T) {
	block, err := Parse(lexBlock(t, `let x;`))
	require.NoError(t, err)
	def := block.Stmts[0].(*ast.VariableDefinement)
	require.Nil(t, def.DeclaredType)
	require.Nil(t, def.Init)
}

func TestParseAssignment(t *testing.T) {
	block, err := Parse(lexBlock(t, `x = y + 1;`))
	require.NoError(t, err)
	as, ok := block.Stmts[0].(*ast.Assignment)
	require.True(t, ok)
	require.Equal(t, "x", as.Name)
	require.Len(t, as.RHS.Tokens, 3)
}

func TestParseIfAndWhile(t *testing.T) {
	block, err := Parse(lexBlock(t, `if x > 0 { while x { x = x - 1; } }`))
	require.NoError(t, err)
	ifn, ok := block.Stmts[0].(*ast.IfSyntax)
	require.True(t, ok)
	require.Len(t, ifn.Body.Stmts, 1)
	_, ok = ifn.Body.Stmts[0].(*ast.WhileSyntax)
	require.True(t, ok)
}

func TestParseNativeMacro(t *testing.T) {
	block, err := Parse(lexBlock(t, `kill!("@e");`))
	require.NoError(t, err)
	fs, ok := block.Stmts[0].(*ast.FormulaStmt)
	require.True(t, ok)
	require.Len(t, fs.F.Tokens, 1)
	require.Equal(t, ast.FMacro, fs.F.Tokens[0].Kind)
	require.Equal(t, "kill", fs.F.Tokens[0].Name)
	require.Equal(t, "@e", fs.F.Tokens[0].Str)
}

func TestParseFnIsRejected(t *testing.T) {
	_, err := Parse(lexBlock(t, `fn foo() {}`))
	require.Error(t, err)
}

func TestParseCollectsMultipleSyntaxErrors(t *testing.T) {
	// Two separate malformed `let` statements; the parser should recover
	// after the first and still report the second.
	_, err := Parse(lexBlock(t, `let ; let ;`))
	require.Error(t, err)
	list, ok := err.(ErrorList)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(list), 2)
}

func TestParseUnbalancedBraces(t *testing.T) {
	toks, err := lexer.Lex([]byte("{ if x { "))
	require.NoError(t, err)
	_, err = Parse(toks)
	require.Error(t, err)
}
