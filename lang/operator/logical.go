package operator

import (
	"github.com/mcpp-lang/mcpp/lang/scoreboard"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// Logical is the `& |` family, plus the reserved, never-lowered `!`.
type Logical uint8

const (
	And Logical = iota
	Or
	Not
)

var _ Oper = Logical(0)

// Priority is 1 for `& |`, matching spec §3's operator priority table; `!`
// is reserved (GetType always rejects it) and reports 0, its table value,
// when ToRPN compares it against other operators.
func (l Logical) Priority() int {
	if l == Not {
		return 0
	}
	return 1
}

func (l Logical) String() string {
	switch l {
	case And:
		return "&"
	case Or:
		return "|"
	case Not:
		return "!"
	default:
		return "?"
	}
}

// GetType returns Bool only for Bool x Bool; `!` is reserved and never
// type-checks successfully (spec §9).
func (l Logical) GetType(lt, rt types.Type) (types.Type, bool) {
	if l == Not {
		return types.None, false
	}
	if lt == types.Bool && rt == types.Bool {
		return types.Bool, true
	}
	return types.None, false
}

func (l Logical) Calc(b *scoreboard.Builder, left *scoreboard.Scoreboard, right scoreboard.Value) error {
	if l == Not {
		return ErrUndefinedOperation
	}
	if left.Datatype != types.Bool {
		return ErrUndefinedOperation
	}

	switch right.Kind {
	case scoreboard.VScr:
		if right.Scr.Datatype != types.Bool {
			return ErrUndefinedOperation
		}
		if l == And {
			b.CalcScore(left, "*=", right.Scr)
			return nil
		}
		b.CalcScore(left, "+=", right.Scr)
		b.ValidateBool(left)
		return nil

	case scoreboard.VBool:
		switch {
		case l == And && !right.Bool:
			b.AssignNum(left, 0)
		case l == Or && right.Bool:
			b.AssignNum(left, 1)
		// `& true` and `| false` are no-ops: left already holds the answer.
		default:
		}
		return nil

	default:
		return ErrUndefinedOperation
	}
}
