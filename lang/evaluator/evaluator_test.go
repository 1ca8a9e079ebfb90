package evaluator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcpp-lang/mcpp/lang/ast"
	"github.com/mcpp-lang/mcpp/lang/operator"
	"github.com/mcpp-lang/mcpp/lang/scoreboard"
	"github.com/mcpp-lang/mcpp/lang/types"
)

type fakeScope map[string]*scoreboard.Scoreboard

func (f fakeScope) LookupVariable(name string) (*scoreboard.Scoreboard, bool) {
	sb, ok := f[name]
	return sb, ok
}

func newBuilder() *scoreboard.Builder {
	return scoreboard.NewBuilder(scoreboard.NewFactory(scoreboard.NewRandomIDs(1)))
}

func TestInterpretUndefinedIdentifier(t *testing.T) {
	scope := fakeScope{}
	_, err := Interpret(scope, []ast.FToken{{Kind: ast.FIdent, Name: "x"}})
	require.Error(t, err)
	var undef *UndefinedIdentifierError
	require.ErrorAs(t, err, &undef)
	require.Equal(t, "x", undef.Name)
}

func TestInterpretResolvesVariable(t *testing.T) {
	x := &scoreboard.Scoreboard{Name: "x", Datatype: types.Int}
	scope := fakeScope{"x": x}
	interp, err := Interpret(scope, []ast.FToken{{Kind: ast.FIdent, Name: "x"}})
	require.NoError(t, err)
	require.Len(t, interp, 1)
	require.Equal(t, scoreboard.VScr, interp[0].Value.Kind)
	require.Same(t, x, interp[0].Value.Scr)
}

func TestGuessTypeArithmetic(t *testing.T) {
	// 2 + 3 -> Int
	interp := []Interp{
		{Value: scoreboard.IntValue(2)},
		{Value: scoreboard.IntValue(3)},
		{IsOp: true, Op: operator.Add},
	}
	got, err := GuessType(interp)
	require.NoError(t, err)
	require.Equal(t, types.Int, got)
}

func TestGuessTypeRejectsUndefinedOperation(t *testing.T) {
	interp := []Interp{
		{Value: scoreboard.BoolValue(true)},
		{Value: scoreboard.IntValue(3)},
		{IsOp: true, Op: operator.Add},
	}
	_, err := GuessType(interp)
	require.ErrorIs(t, err, operator.ErrUndefinedOperation)
}

func TestGuessTypeMacroIsStr(t *testing.T) {
	interp := []Interp{{IsMacro: true, Raw: "say hi"}}
	got, err := GuessType(interp)
	require.NoError(t, err)
	require.Equal(t, types.Str, got)
}

func TestLowerSimpleArithmeticIntoStoreTo(t *testing.T) {
	b := newBuilder()
	x := &scoreboard.Scoreboard{Name: "x", Datatype: types.Int}
	out := &scoreboard.Scoreboard{Name: "out", Datatype: types.Int}
	interp := []Interp{
		{Value: scoreboard.ScrValue(x)},
		{Value: scoreboard.IntValue(3)},
		{IsOp: true, Op: operator.Add},
	}
	require.NoError(t, Lower(b, interp, out))
	cmds := b.Build()
	require.NotEmpty(t, cmds)
	// The first command assigns x into a CALC_RESULT_ scratch.
	require.Contains(t, cmds[0].Serialise(), "#x MCPP.var")
	last := cmds[len(cmds)-1]
	require.Contains(t, last.Serialise(), "reset")
}

func TestLowerSingleMacroEmitsNativeOnly(t *testing.T) {
	b := newBuilder()
	out := &scoreboard.Scoreboard{Name: "out", Datatype: types.Int}
	interp := []Interp{{IsMacro: true, Raw: "say hi"}}
	require.NoError(t, Lower(b, interp, out))
	cmds := b.Build()
	require.Len(t, cmds, 1)
	require.Equal(t, "say hi", cmds[0].Serialise())
}

func TestToBeNormalisesNonZeroToOne(t *testing.T) {
	b := newBuilder()
	store := &scoreboard.Scoreboard{Name: "IF_COND", Datatype: types.Bool}
	interp := []Interp{{Value: scoreboard.IntValue(7)}}
	require.NoError(t, ToBe(b, interp, store))
	cmds := b.Build()
	found := false
	for _, c := range cmds {
		if strings.Contains(c.Serialise(), "!= ") || strings.Contains(c.Serialise(), "run ") {
			found = true
		}
	}
	require.True(t, found)
}
