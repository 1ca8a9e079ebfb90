package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcpp-lang/mcpp/lang/types"
)

func TestBuilderCalcNumFreesConstAtBuild(t *testing.T) {
	f := NewFactory(NewRandomIDs(1))
	a := &Scoreboard{Name: "a", Datatype: types.Int}

	b := NewBuilder(f)
	b.CalcNum(a, "+=", 12)
	cmds := b.Build()

	require.Len(t, cmds, 3)
	require.Equal(t, "scoreboard players set #CONST.12 MCPP.var 12", cmds[0].Serialise())
	require.Equal(t, "scoreboard players operation #a MCPP.var += #CONST.12 MCPP.var", cmds[1].Serialise())
	require.Equal(t, "scoreboard players reset #CONST.12 MCPP.var", cmds[2].Serialise())
}

func TestBuilderBoolifyScoreComparisonEndsInZeroOrOne(t *testing.T) {
	f := NewFactory(NewRandomIDs(1))
	a := &Scoreboard{Name: "a", Datatype: types.Int}
	bd := &Scoreboard{Name: "b", Datatype: types.Int}

	builder := NewBuilder(f)
	builder.BoolifyScoreComparison(a, ">", bd)
	cmds := builder.Build()
	require.Len(t, cmds, 1)

	lines := cmds[0].Serialise()
	require.Contains(t, lines, "scoreboard players set")
	require.Contains(t, lines, "execute if score #a MCPP.var > #b MCPP.var run")
}

func TestBuilderValidateBoolClampsToOne(t *testing.T) {
	f := NewFactory(NewRandomIDs(1))
	b := &Scoreboard{Name: "b", Datatype: types.Bool}

	builder := NewBuilder(f)
	builder.ValidateBool(b)
	cmds := builder.Build()

	require.Contains(t, cmds[1].Serialise(), "unless score #b MCPP.var = #CONST.0 MCPP.var run scoreboard players set #b MCPP.var 1")
}
