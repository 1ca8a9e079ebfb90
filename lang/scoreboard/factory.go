package scoreboard

import (
	"errors"
	"math"
	"math/rand"
	"strconv"

	"github.com/mcpp-lang/mcpp/lang/command"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// IDSource mints scratch-name suffixes. Tests inject a deterministic
// source; production uses NewRandomIDs (per spec §5, "an implementation MAY
// accept an injectable id source").
type IDSource interface {
	ID(n int) string
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz"

type randomIDs struct{ rnd *rand.Rand }

func (r *randomIDs) ID(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[r.rnd.Intn(len(idAlphabet))]
	}
	return string(b)
}

// NewRandomIDs returns an IDSource seeded from seed. Production callers
// should seed from a real entropy source; deterministic tests pass a fixed
// seed.
func NewRandomIDs(seed int64) IDSource {
	return &randomIDs{rnd: rand.New(rand.NewSource(seed))}
}

// Factory mints the scratch and constant Scoreboards the formula engine
// needs, and hosts the type-aware assign rules (component C).
type Factory struct {
	ids    IDSource
	consts map[int32]*Scoreboard
}

// NewFactory returns a Factory using ids to generate scratch suffixes.
func NewFactory(ids IDSource) *Factory {
	return &Factory{ids: ids, consts: make(map[int32]*Scoreboard)}
}

// Const returns the shared CONST-scope Scoreboard for literal n: repeated
// calls with the same n return the same Scoreboard, so the compiler does
// not multiply scratch churn for a literal that recurs across a program.
func (f *Factory) Const(n int32) *Scoreboard {
	if sb, ok := f.consts[n]; ok {
		return sb
	}
	sb := &Scoreboard{Name: strconv.FormatInt(int64(n), 10), Scope: []string{"CONST"}, Datatype: types.Int}
	f.consts[n] = sb
	return sb
}

func (f *Factory) scratch(prefix string, idLen int, dt types.Type) *Scoreboard {
	return &Scoreboard{Name: prefix + f.ids.ID(idLen), Scope: []string{"TEMP"}, Datatype: dt}
}

// CalcResultTemp, CalcTemp and TypeAdjustedTemp are the 16-char-id scratch
// factories named explicitly in spec §4.3.
func (f *Factory) CalcResultTemp(dt types.Type) *Scoreboard { return f.scratch("CALC_RESULT_", 16, dt) }
func (f *Factory) CalcTemp(dt types.Type) *Scoreboard       { return f.scratch("CALC_TEMP_", 16, dt) }
func (f *Factory) TypeAdjustedTemp(dt types.Type) *Scoreboard {
	return f.scratch("CALC_TYPE_ADJUSTED_", 16, dt)
}

// ToBeTemp backs Formula.to_be's intermediate evaluation cell.
func (f *Factory) ToBeTemp(dt types.Type) *Scoreboard { return f.scratch("TO_BE_", 16, dt) }

// IfConditionTemp and WhileConditionTemp back control-flow condition cells;
// these use the 32-char id length, matching the length used for generated
// MCFunction/block names since both are minted once per control-flow node.
func (f *Factory) IfConditionTemp() *Scoreboard {
	return f.scratch("IF_CONDITION_", 32, types.Bool)
}
func (f *Factory) WhileConditionTemp() *Scoreboard {
	return f.scratch("WHILE_CONDITION_", 32, types.Bool)
}

// BlockName mints a random 32-char name for a generated MCFunction.
func (f *Factory) BlockName() string { return f.ids.ID(32) }

var (
	// ErrInvalidRHS reports an Assign call whose rhs datatype cannot be
	// stored into lhs's datatype.
	ErrInvalidRHS = errors.New("InvalidRHS")
	// ErrNotAValue reports an Assign call whose rhs is not a value at all
	// (e.g. a bare function reference slipped through).
	ErrNotAValue = errors.New("TheTokenIsntValue")
)

// Assign implements the canonical copy rule of spec §4.3: it returns the
// commands that store rhs into lhs, scaling across the Int/Float
// fixed-point boundary as required.
func (f *Factory) Assign(lhs *Scoreboard, rhs Value) ([]command.Command, error) {
	mag := f.Const(types.Mag)

	switch lhs.Datatype {
	case types.Int:
		switch rhs.Kind {
		case VInt:
			return []command.Command{command.AssignNum{Target: lhs.Target(), N: rhs.Int}}, nil
		case VFlt:
			return []command.Command{command.AssignNum{Target: lhs.Target(), N: int32(math.Trunc(rhs.Flt))}}, nil
		case VScr:
			switch rhs.Scr.Datatype {
			case types.Int:
				return []command.Command{command.AssignScore{LHS: lhs.Target(), RHS: rhs.Scr.Target()}}, nil
			case types.Float:
				return []command.Command{
					command.AssignScore{LHS: lhs.Target(), RHS: rhs.Scr.Target()},
					command.AssignNum{Target: mag.Target(), N: types.Mag},
					command.CalcScore{LHS: lhs.Target(), RHS: mag.Target(), OpEq: "/="},
				}, nil
			default:
				return nil, ErrInvalidRHS
			}
		default:
			return nil, ErrInvalidRHS
		}

	case types.Float:
		switch rhs.Kind {
		case VInt:
			return []command.Command{command.AssignNum{Target: lhs.Target(), N: rhs.Int * types.Mag}}, nil
		case VFlt:
			return []command.Command{command.AssignNum{Target: lhs.Target(), N: int32(math.Trunc(rhs.Flt * types.Mag))}}, nil
		case VScr:
			switch rhs.Scr.Datatype {
			case types.Int:
				return []command.Command{
					command.AssignScore{LHS: lhs.Target(), RHS: rhs.Scr.Target()},
					command.AssignNum{Target: mag.Target(), N: types.Mag},
					command.CalcScore{LHS: lhs.Target(), RHS: mag.Target(), OpEq: "*="},
				}, nil
			case types.Float:
				return []command.Command{command.AssignScore{LHS: lhs.Target(), RHS: rhs.Scr.Target()}}, nil
			default:
				return nil, ErrInvalidRHS
			}
		default:
			return nil, ErrInvalidRHS
		}

	case types.Bool:
		switch rhs.Kind {
		case VBool:
			n := int32(0)
			if rhs.Bool {
				n = 1
			}
			return []command.Command{command.AssignNum{Target: lhs.Target(), N: n}}, nil
		case VScr:
			// A Bool cell's underlying representation is always a raw {0,1}
			// int regardless of the source cell's own type tag, so the copy
			// never needs scaling — this is what lets to_be() store a
			// boolified numeric scratch straight into a Bool condition cell.
			return []command.Command{command.AssignScore{LHS: lhs.Target(), RHS: rhs.Scr.Target()}}, nil
		default:
			return nil, ErrInvalidRHS
		}

	default:
		return nil, ErrInvalidRHS
	}
}
