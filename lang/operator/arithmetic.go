package operator

import (
	"math"

	"github.com/mcpp-lang/mcpp/lang/scoreboard"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// Arithmetic is the `+ - * / %` family.
type Arithmetic uint8

const (
	Add Arithmetic = iota
	Sub
	Mul
	Div
	Mod
)

var _ Oper = Arithmetic(0)

func (a Arithmetic) Priority() int {
	if a == Add || a == Sub {
		return 2
	}
	return 3
}

func (a Arithmetic) String() string {
	switch a {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	default:
		return "?"
	}
}

func (a Arithmetic) opEq() string {
	switch a {
	case Add:
		return "+="
	case Sub:
		return "-="
	case Mul:
		return "*="
	case Div:
		return "/="
	case Mod:
		return "%="
	default:
		return "?="
	}
}

// GetType implements spec §4.4.1: `+ - * /` require both operands numeric
// and non-Bool and yield the left operand's type; `%` is defined only for
// Int x Int.
func (a Arithmetic) GetType(l, r types.Type) (types.Type, bool) {
	if a == Mod {
		if l == types.Int && r == types.Int {
			return types.Int, true
		}
		return types.None, false
	}
	if l.Numeric() && r.Numeric() {
		return l, true
	}
	return types.None, false
}

// Calc implements spec §4.4.1's calc dispatch table.
func (a Arithmetic) Calc(b *scoreboard.Builder, left *scoreboard.Scoreboard, right scoreboard.Value) error {
	switch right.Kind {
	case scoreboard.VScr:
		return a.calcScr(b, left, right.Scr)
	case scoreboard.VInt:
		return a.calcInt(b, left, right.Int)
	case scoreboard.VFlt:
		return a.calcFlt(b, left, right.Flt)
	default:
		return ErrUndefinedOperation
	}
}

func (a Arithmetic) calcScr(b *scoreboard.Builder, left, right *scoreboard.Scoreboard) error {
	switch {
	case left.Datatype == types.Int && right.Datatype == types.Int:
		b.CalcScore(left, a.opEq(), right)
		return nil

	case left.Datatype == types.Int && right.Datatype == types.Float:
		ta := b.NewTypeAdjustedTemp(types.Int)
		if err := b.Assign(ta, scoreboard.ScrValue(right)); err != nil {
			return err
		}
		b.Intify(ta)
		b.CalcScore(left, a.opEq(), ta)
		b.Free(ta)
		return nil

	case left.Datatype == types.Float && right.Datatype == types.Int:
		ta := b.NewTypeAdjustedTemp(types.Int)
		if err := b.Assign(ta, scoreboard.ScrValue(right)); err != nil {
			return err
		}
		b.Fltify(ta)
		b.CalcScore(left, a.opEq(), ta)
		b.Free(ta)
		return nil

	case left.Datatype == types.Float && right.Datatype == types.Float:
		switch a {
		case Mod:
			return ErrUndefinedOperation
		case Mul:
			b.CalcScore(left, "*=", right)
			b.Intify(left)
			return nil
		case Div:
			b.Fltify(left)
			b.CalcScore(left, "/=", right)
			return nil
		default: // Add, Sub
			b.CalcScore(left, a.opEq(), right)
			return nil
		}

	default:
		return ErrUndefinedOperation
	}
}

func (a Arithmetic) calcInt(b *scoreboard.Builder, left *scoreboard.Scoreboard, n int32) error {
	switch a {
	case Add, Sub:
		op := "add"
		if a == Sub {
			op = "remove"
		}
		scaled := n
		if left.Datatype == types.Float {
			scaled = n * types.Mag
		}
		b.AddRemNum(left, op, scaled)
		return nil
	default: // Mul, Div, Mod: the literal is not pre-scaled, deliberately
		b.CalcNum(left, a.opEq(), n)
		return nil
	}
}

func (a Arithmetic) calcFlt(b *scoreboard.Builder, left *scoreboard.Scoreboard, f float64) error {
	switch a {
	case Add, Sub:
		op := "add"
		if a == Sub {
			op = "remove"
		}
		var scaled int32
		if left.Datatype == types.Float {
			scaled = int32(math.Trunc(f * types.Mag))
		} else {
			scaled = int32(math.Trunc(f))
		}
		b.AddRemNum(left, op, scaled)
		return nil
	case Mod:
		return ErrUndefinedOperation
	default: // Mul, Div: fabricate a Float scratch holding the scaled literal
		// and fold through the same scratch-and-temp pattern as the Scr x Scr
		// cases above.
		ta := b.NewTypeAdjustedTemp(types.Float)
		b.AssignNum(ta, int32(math.Trunc(f*types.Mag)))
		err := a.calcScr(b, left, ta)
		b.Free(ta)
		return err
	}
}
