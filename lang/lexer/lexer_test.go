package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcpp-lang/mcpp/lang/token"
)

func TestLexBasic(t *testing.T) {
	src := `let a: int = 2 + 3 * 4;`
	toks, err := Lex([]byte(src))
	require.NoError(t, err)

	want := []token.Token{
		token.LET, token.IDENT, token.COLON, token.TYPEINT, token.ASSIGN,
		token.INT, token.PLUS, token.INT, token.STAR, token.INT, token.SEMI,
		token.EOF,
	}
	got := make([]token.Token, len(toks))
	for i, v := range toks {
		got[i] = v.Tok
	}
	require.Equal(t, want, got)
}

func TestLexFloatRequiresFractionalDigit(t *testing.T) {
	toks, err := Lex([]byte(`1.`))
	require.NoError(t, err)
	require.Equal(t, token.INT, toks[0].Tok)
	require.EqualValues(t, 1, toks[0].Int)
	require.Equal(t, token.IDENT, toks[1].Tok)
}

func TestLexFloat(t *testing.T) {
	toks, err := Lex([]byte(`1.5`))
	require.NoError(t, err)
	require.Equal(t, token.FLT, toks[0].Tok)
	require.InDelta(t, 1.5, toks[0].Flt, 0.0001)
}

func TestLexTwoCharOperatorsBeatOneChar(t *testing.T) {
	toks, err := Lex([]byte(`== != <= >= -> =>`))
	require.NoError(t, err)
	want := []token.Token{token.EQ, token.NEQ, token.LE, token.GE, token.ARROW, token.FATARROW, token.EOF}
	got := make([]token.Token, len(toks))
	for i, v := range toks {
		got[i] = v.Tok
	}
	require.Equal(t, want, got)
}

func TestLexMCID(t *testing.T) {
	toks, err := Lex([]byte(`$my_entity `))
	require.NoError(t, err)
	require.Equal(t, token.MCID, toks[0].Tok)
	require.Equal(t, "$my_entity", toks[0].Raw)
}

func TestLexString(t *testing.T) {
	toks, err := Lex([]byte(`"give @s dirt 1"`))
	require.NoError(t, err)
	require.Equal(t, token.STR, toks[0].Tok)
	require.Equal(t, "give @s dirt 1", toks[0].Raw)
}

func TestLexUnterminatedStringIsError(t *testing.T) {
	_, err := Lex([]byte(`"abc`))
	require.Error(t, err)
}

func TestLexBooleanLiterals(t *testing.T) {
	toks, err := Lex([]byte(`true false`))
	require.NoError(t, err)
	require.Equal(t, token.BLN, toks[0].Tok)
	require.True(t, toks[0].Bool)
	require.Equal(t, token.BLN, toks[1].Tok)
	require.False(t, toks[1].Bool)
}
