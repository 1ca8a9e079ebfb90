package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcpp-lang/mcpp/lang/operator"
)

func lit(i int64) FToken   { return FToken{Kind: FLit, Int: i} }
func op(o operator.Oper) FToken { return FToken{Kind: FOp, Op: o} }

func TestToRPNSimple(t *testing.T) {
	// 2 + 3 * 4  ->  2 3 4 * +
	f := &Formula{Tokens: []FToken{
		lit(2), op(operator.Add), lit(3), op(operator.Mul), lit(4),
	}}
	rpn, err := f.ToRPN()
	require.NoError(t, err)
	require.Len(t, rpn, 5)
	require.Equal(t, FLit, rpn[0].Kind)
	require.EqualValues(t, 2, rpn[0].Int)
	require.EqualValues(t, 3, rpn[1].Int)
	require.EqualValues(t, 4, rpn[2].Int)
	require.Equal(t, operator.Mul, rpn[3].Op)
	require.Equal(t, operator.Add, rpn[4].Op)
}

func TestToRPNParentheses(t *testing.T) {
	// (2 + 3) * 4 -> 2 3 + 4 *
	f := &Formula{Tokens: []FToken{
		{Kind: FLParen}, lit(2), op(operator.Add), lit(3), {Kind: FRParen}, op(operator.Mul), lit(4),
	}}
	rpn, err := f.ToRPN()
	require.NoError(t, err)
	require.Equal(t, operator.Add, rpn[2].Op)
	require.Equal(t, operator.Mul, rpn[4].Op)
}

func TestToRPNUnbalanced(t *testing.T) {
	f := &Formula{Tokens: []FToken{{Kind: FLParen}, lit(2)}}
	_, err := f.ToRPN()
	require.ErrorIs(t, err, ErrUnbalancedParentheses)

	f2 := &Formula{Tokens: []FToken{lit(2), {Kind: FRParen}}}
	_, err = f2.ToRPN()
	require.ErrorIs(t, err, ErrUnbalancedParentheses)
}

func TestToRPNEmpty(t *testing.T) {
	f := &Formula{}
	_, err := f.ToRPN()
	require.ErrorIs(t, err, ErrEmptyFormulaGiven)
}
