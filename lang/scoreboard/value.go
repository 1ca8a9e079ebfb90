package scoreboard

import "github.com/mcpp-lang/mcpp/lang/types"

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	VScr ValueKind = iota
	VInt
	VFlt
	VBool
)

// Value is the post-interpretation operand shape (IToken once it can no
// longer be anything but a value): a live Scoreboard reference or one of
// the three literal kinds. Only IToken-shaped values ever reach the RPN
// evaluation stack.
type Value struct {
	Kind ValueKind
	Scr  *Scoreboard
	Int  int32
	Flt  float64
	Bool bool
}

func ScrValue(s *Scoreboard) Value  { return Value{Kind: VScr, Scr: s} }
func IntValue(i int32) Value        { return Value{Kind: VInt, Int: i} }
func FltValue(f float64) Value      { return Value{Kind: VFlt, Flt: f} }
func BoolValue(b bool) Value        { return Value{Kind: VBool, Bool: b} }

// Datatype returns the Type this value carries.
func (v Value) Datatype() types.Type {
	switch v.Kind {
	case VScr:
		return v.Scr.Datatype
	case VInt:
		return types.Int
	case VFlt:
		return types.Float
	case VBool:
		return types.Bool
	default:
		return types.None
	}
}
