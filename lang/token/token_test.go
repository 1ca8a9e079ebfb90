package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < keywordEnd; tok++ {
		require.NotEmpty(t, tok.String())
	}
}

func TestLookupKeyword(t *testing.T) {
	for tok := Token(0); tok < keywordEnd; tok++ {
		expect := tok.IsKeyword()
		got, ok := LookupKeyword(tok.String())
		if expect {
			require.True(t, ok)
			require.Equal(t, tok, got)
		}
	}
	_, ok := LookupKeyword("notakeyword")
	require.False(t, ok)
}

func TestGoString(t *testing.T) {
	require.Equal(t, "IDENT", IDENT.GoString())
	require.Equal(t, "';'", SEMI.GoString())
	require.Equal(t, "'let'", LET.GoString())
}
