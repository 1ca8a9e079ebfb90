package operator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcpp-lang/mcpp/lang/scoreboard"
	"github.com/mcpp-lang/mcpp/lang/types"
)

func newBuilder() *scoreboard.Builder {
	return scoreboard.NewBuilder(scoreboard.NewFactory(scoreboard.NewRandomIDs(1)))
}

func TestArithmeticGetType(t *testing.T) {
	tests := []struct {
		op   Arithmetic
		l, r types.Type
		want types.Type
		ok   bool
	}{
		{Add, types.Int, types.Int, types.Int, true},
		{Add, types.Float, types.Int, types.Float, true},
		{Add, types.Bool, types.Int, types.None, false},
		{Mod, types.Int, types.Int, types.Int, true},
		{Mod, types.Float, types.Int, types.None, false},
	}
	for _, tt := range tests {
		got, ok := tt.op.GetType(tt.l, tt.r)
		require.Equal(t, tt.ok, ok)
		if ok {
			require.Equal(t, tt.want, got)
		}
	}
}

func TestArithmeticCalcIntScrInt(t *testing.T) {
	b := newBuilder()
	l := &scoreboard.Scoreboard{Name: "a", Datatype: types.Int}
	r := &scoreboard.Scoreboard{Name: "b", Datatype: types.Int}
	require.NoError(t, Add.Calc(b, l, scoreboard.ScrValue(r)))
	cmds := b.Build()
	require.Len(t, cmds, 1)
	require.Equal(t, "scoreboard players operation #a MCPP.var += #b MCPP.var", cmds[0].Serialise())
}

func TestArithmeticCalcFloatMulDividesByMagAfter(t *testing.T) {
	b := newBuilder()
	l := &scoreboard.Scoreboard{Name: "a", Datatype: types.Float}
	r := &scoreboard.Scoreboard{Name: "b", Datatype: types.Float}
	require.NoError(t, Mul.Calc(b, l, scoreboard.ScrValue(r)))
	cmds := b.Build()
	require.Len(t, cmds, 4)
	require.Equal(t, "scoreboard players operation #a MCPP.var *= #b MCPP.var", cmds[0].Serialise())
	require.Contains(t, cmds[2].Serialise(), "/=")
}

func TestArithmeticCalcFloatModUndefined(t *testing.T) {
	b := newBuilder()
	l := &scoreboard.Scoreboard{Name: "a", Datatype: types.Float}
	r := &scoreboard.Scoreboard{Name: "b", Datatype: types.Float}
	require.ErrorIs(t, Mod.Calc(b, l, scoreboard.ScrValue(r)), ErrUndefinedOperation)
}

func TestArithmeticCalcIntMulByLiteralDoesNotScale(t *testing.T) {
	b := newBuilder()
	l := &scoreboard.Scoreboard{Name: "a", Datatype: types.Int}
	require.NoError(t, Mul.Calc(b, l, scoreboard.IntValue(4)))
	cmds := b.Build()
	require.Equal(t, "scoreboard players set #CONST.4 MCPP.var 4", cmds[0].Serialise())
	require.Equal(t, "scoreboard players operation #a MCPP.var *= #CONST.4 MCPP.var", cmds[1].Serialise())
}

func TestComparisonGetType(t *testing.T) {
	_, ok := Gt.GetType(types.Int, types.Float)
	require.True(t, ok)
	_, ok = Gt.GetType(types.Bool, types.Int)
	require.False(t, ok)
}

func TestComparisonCalcEndsWithBoolifyCondition(t *testing.T) {
	b := newBuilder()
	l := &scoreboard.Scoreboard{Name: "a", Datatype: types.Int}
	r := &scoreboard.Scoreboard{Name: "b", Datatype: types.Int}
	require.NoError(t, Gt.Calc(b, l, scoreboard.ScrValue(r)))
	cmds := b.Build()
	require.Contains(t, cmds[0].Serialise(), "execute if score #a MCPP.var > #b MCPP.var run")
}

func TestLogicalOrClampsWithValidateBool(t *testing.T) {
	b := newBuilder()
	l := &scoreboard.Scoreboard{Name: "a", Datatype: types.Bool}
	r := &scoreboard.Scoreboard{Name: "b", Datatype: types.Bool}
	require.NoError(t, Or.Calc(b, l, scoreboard.ScrValue(r)))
	cmds := b.Build()
	require.Equal(t, "scoreboard players operation #a MCPP.var += #b MCPP.var", cmds[0].Serialise())
	require.Contains(t, cmds[2].Serialise(), "unless score #a MCPP.var = #CONST.0 MCPP.var run")
}

func TestLogicalNotIsUndefined(t *testing.T) {
	b := newBuilder()
	l := &scoreboard.Scoreboard{Name: "a", Datatype: types.Bool}
	require.ErrorIs(t, Not.Calc(b, l, scoreboard.BoolValue(true)), ErrUndefinedOperation)
}
