package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcpp-lang/mcpp/lang/types"
)

func TestMcName(t *testing.T) {
	s := &Scoreboard{Name: "a", Scope: nil, Datatype: types.Int}
	require.Equal(t, "#a", s.McName())

	s2 := &Scoreboard{Name: "a", Scope: []string{"CONST"}, Datatype: types.Int}
	require.Equal(t, "#CONST.a", s2.McName())
}

func TestFactoryConstIsShared(t *testing.T) {
	f := NewFactory(NewRandomIDs(1))
	a := f.Const(3)
	b := f.Const(3)
	require.Same(t, a, b)

	other := f.Const(4)
	require.NotEqual(t, a.McName(), other.McName())
}

func TestAssignIntFromScrFloatDividesByMag(t *testing.T) {
	f := NewFactory(NewRandomIDs(1))
	lhs := &Scoreboard{Name: "a", Datatype: types.Int}
	rhs := &Scoreboard{Name: "b", Datatype: types.Float}

	cmds, err := f.Assign(lhs, ScrValue(rhs))
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	require.Equal(t, "scoreboard players operation #a MCPP.var = #b MCPP.var", cmds[0].Serialise())
	require.Contains(t, cmds[2].Serialise(), "/=")
}

func TestAssignInvalidRHS(t *testing.T) {
	f := NewFactory(NewRandomIDs(1))
	lhs := &Scoreboard{Name: "a", Datatype: types.Int}
	_, err := f.Assign(lhs, BoolValue(true))
	require.ErrorIs(t, err, ErrInvalidRHS)
}
