package operator

import (
	"math"

	"github.com/mcpp-lang/mcpp/lang/scoreboard"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// Comparison is the `> >= < <= == !=` family. It always stores a Bool
// {0,1} back into left.
type Comparison uint8

const (
	Gt Comparison = iota
	Ge
	Lt
	Le
	Eq
	Neq
)

var _ Oper = Comparison(0)

func (c Comparison) Priority() int { return 0 }

func (c Comparison) String() string {
	switch c {
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Eq:
		return "=="
	case Neq:
		return "!="
	default:
		return "?"
	}
}

// GetType returns Bool when both sides are the same non-Str type or the
// pair is {Int,Float}; otherwise the comparison is undefined. Str (a
// native!(...) macro) never takes part in a comparison.
func (c Comparison) GetType(l, r types.Type) (types.Type, bool) {
	if l == r && l != types.Str {
		return types.Bool, true
	}
	if (l == types.Int && r == types.Float) || (l == types.Float && r == types.Int) {
		return types.Bool, true
	}
	return types.None, false
}

func (c Comparison) Calc(b *scoreboard.Builder, left *scoreboard.Scoreboard, right scoreboard.Value) error {
	op := c.String()
	switch right.Kind {
	case scoreboard.VScr:
		rs := right.Scr
		switch {
		case left.Datatype == rs.Datatype:
			b.BoolifyScoreComparison(left, op, rs)
			return nil
		case left.Datatype == types.Int && rs.Datatype == types.Float:
			ta := b.NewTypeAdjustedTemp(types.Float)
			if err := b.Assign(ta, scoreboard.ScrValue(left)); err != nil {
				return err
			}
			b.BoolifyComparisonInto(left, ta, op, rs)
			b.Free(ta)
			return nil
		case left.Datatype == types.Float && rs.Datatype == types.Int:
			ta := b.NewTypeAdjustedTemp(types.Float)
			if err := b.Assign(ta, scoreboard.ScrValue(rs)); err != nil {
				return err
			}
			b.BoolifyComparisonInto(left, left, op, ta)
			b.Free(ta)
			return nil
		default:
			return ErrUndefinedOperation
		}

	case scoreboard.VInt:
		switch left.Datatype {
		case types.Int:
			b.BoolifyNumComparison(left, op, right.Int)
			return nil
		case types.Float:
			b.BoolifyNumComparison(left, op, right.Int*types.Mag)
			return nil
		default:
			return ErrUndefinedOperation
		}

	case scoreboard.VFlt:
		scaled := int32(math.Trunc(right.Flt * types.Mag))
		switch left.Datatype {
		case types.Float:
			b.BoolifyNumComparison(left, op, scaled)
			return nil
		case types.Int:
			ta := b.NewTypeAdjustedTemp(types.Float)
			if err := b.Assign(ta, scoreboard.ScrValue(left)); err != nil {
				return err
			}
			b.BoolifyNumComparisonInto(left, ta, op, scaled)
			b.Free(ta)
			return nil
		default:
			return ErrUndefinedOperation
		}

	case scoreboard.VBool:
		if left.Datatype != types.Bool {
			return ErrUndefinedOperation
		}
		lit := right.Bool
		switch c {
		case Eq:
			op := "=="
			if lit {
				op = "!="
			}
			b.BoolifyNumComparison(left, op, 0)
			return nil
		case Neq:
			op := "!="
			if lit {
				op = "=="
			}
			b.BoolifyNumComparison(left, op, 0)
			return nil
		default:
			return ErrUndefinedOperation
		}

	default:
		return ErrUndefinedOperation
	}
}
