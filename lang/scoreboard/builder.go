package scoreboard

import (
	"github.com/mcpp-lang/mcpp/lang/command"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// Builder is the fluent formula assembler (component B). It appends
// command.Command nodes and tracks which scratch Scoreboards must be freed
// once the formula it is building is fully lowered.
type Builder struct {
	f        *Factory
	commands []command.Command
	toFree   []*Scoreboard
}

// NewBuilder returns an empty Builder backed by f.
func NewBuilder(f *Factory) *Builder {
	return &Builder{f: f}
}

func (b *Builder) emit(cmds ...command.Command) *Builder {
	b.commands = append(b.commands, cmds...)
	return b
}

func (b *Builder) registerFree(s *Scoreboard) *Scoreboard {
	b.toFree = append(b.toFree, s)
	return s
}

// Assign appends the canonical copy commands for `lhs := rhs` (see
// Factory.Assign), without registering anything for later free: a plain
// assignment does not itself mint scratch state.
func (b *Builder) Assign(lhs *Scoreboard, rhs Value) error {
	cmds, err := b.f.Assign(lhs, rhs)
	if err != nil {
		return err
	}
	b.commands = append(b.commands, cmds...)
	return nil
}

// The following mint scratch/constant Scoreboards without registering them
// for an automatic Build-time free: callers that need immediate release
// (e.g. the operator lowerers' scoped temporaries) call Free explicitly.

func (b *Builder) NewCalcResultTemp(dt types.Type) *Scoreboard    { return b.f.CalcResultTemp(dt) }
func (b *Builder) NewCalcTemp(dt types.Type) *Scoreboard          { return b.f.CalcTemp(dt) }
func (b *Builder) NewTypeAdjustedTemp(dt types.Type) *Scoreboard  { return b.f.TypeAdjustedTemp(dt) }
func (b *Builder) NewToBeTemp(dt types.Type) *Scoreboard          { return b.f.ToBeTemp(dt) }
func (b *Builder) NewIfConditionTemp() *Scoreboard                { return b.f.IfConditionTemp() }
func (b *Builder) NewWhileConditionTemp() *Scoreboard             { return b.f.WhileConditionTemp() }
func (b *Builder) ConstBoard(n int32) *Scoreboard                 { return b.f.Const(n) }

// CalcScore appends a score-to-score operation: `L <opEq> R`.
func (b *Builder) CalcScore(l *Scoreboard, opEq string, r *Scoreboard) *Builder {
	return b.emit(command.CalcScore{LHS: l.Target(), RHS: r.Target(), OpEq: opEq})
}

// CalcNum materialises n as a CONST scoreboard, sets it, then performs
// `L <opEq> CONST(n)`, registering the constant for release at Build.
func (b *Builder) CalcNum(l *Scoreboard, opEq string, n int32) *Builder {
	c := b.f.Const(n)
	b.emit(command.AssignNum{Target: c.Target(), N: n})
	b.emit(command.CalcScore{LHS: l.Target(), RHS: c.Target(), OpEq: opEq})
	b.registerFree(c)
	return b
}

// AddRemNum appends `add`/`remove L n`.
func (b *Builder) AddRemNum(l *Scoreboard, op string, n int32) *Builder {
	return b.emit(command.AddRemNum{Target: l.Target(), Op: op, N: n})
}

// AssignScore appends a plain score-to-score copy.
func (b *Builder) AssignScore(l, r *Scoreboard) *Builder {
	return b.emit(command.AssignScore{LHS: l.Target(), RHS: r.Target()})
}

// AssignNum appends a direct literal set (no CONST board involved).
func (b *Builder) AssignNum(l *Scoreboard, n int32) *Builder {
	return b.emit(command.AssignNum{Target: l.Target(), N: n})
}

// Native appends a raw MCCMD command line verbatim, backing the
// native!(...) macro.
func (b *Builder) Native(raw string) *Builder {
	return b.emit(command.Native{Raw: raw})
}

// Intify narrows a Float-scaled cell back to a plain Int by dividing by MAG.
func (b *Builder) Intify(t *Scoreboard) *Builder { return b.CalcNum(t, "/=", types.Mag) }

// Fltify widens a plain Int cell to Float scale by multiplying by MAG.
func (b *Builder) Fltify(t *Scoreboard) *Builder { return b.CalcNum(t, "*=", types.Mag) }

// BoolifyScoreComparison stores the result of `L <op> R` as a {0,1} into L,
// via a fresh Bool scratch.
func (b *Builder) BoolifyScoreComparison(l *Scoreboard, op string, r *Scoreboard) *Builder {
	temp := b.f.CalcTemp(types.Bool)
	chain := command.ExecuteChain{Conditions: []command.Condition{command.NewCondition(l.Target(), op, r.Target())}}
	return b.emit(command.BoolifyCondition{ContainTo: l.Target(), Temp: temp.Target(), Chain: chain})
}

// BoolifyNumComparison stores the result of `L <op> n` as a {0,1} into L.
func (b *Builder) BoolifyNumComparison(l *Scoreboard, op string, n int32) *Builder {
	return b.BoolifyNumComparisonInto(l, l, op, n)
}

// BoolifyComparisonInto is the general form of BoolifyScoreComparison: the
// compared operands (lhs, rhs) may differ from the cell the {0,1} result is
// stored into, which is needed when one side had to be widened through a
// scratch before the comparison.
func (b *Builder) BoolifyComparisonInto(containTo, lhs *Scoreboard, op string, rhs *Scoreboard) *Builder {
	temp := b.f.CalcTemp(types.Bool)
	chain := command.ExecuteChain{Conditions: []command.Condition{command.NewCondition(lhs.Target(), op, rhs.Target())}}
	return b.emit(command.BoolifyCondition{ContainTo: containTo.Target(), Temp: temp.Target(), Chain: chain})
}

// BoolifyNumComparisonInto is BoolifyComparisonInto against a literal n.
func (b *Builder) BoolifyNumComparisonInto(containTo, lhs *Scoreboard, op string, n int32) *Builder {
	c := b.f.Const(n)
	b.emit(command.AssignNum{Target: c.Target(), N: n})
	b.registerFree(c)
	return b.BoolifyComparisonInto(containTo, lhs, op, c)
}

// ValidateBool re-clamps any truthy value held in t back down to exactly 1.
func (b *Builder) ValidateBool(t *Scoreboard) *Builder {
	zero := b.f.Const(0)
	b.emit(command.AssignNum{Target: zero.Target(), N: 0})
	b.registerFree(zero)
	chain := command.ExecuteChain{Conditions: []command.Condition{command.NewCondition(t.Target(), "!=", zero.Target())}}
	return b.emit(command.Native{Raw: chain.Serialise() + command.AssignNum{Target: t.Target(), N: 1}.Serialise()})
}

// Free appends an immediate release of t (not part of the build-time
// scratch bookkeeping; used when a caller wants to free a cell it owns
// directly, e.g. a control-flow condition scratch).
func (b *Builder) Free(t *Scoreboard) *Builder {
	return b.emit(t.Free())
}

// Build appends a Free for every scratch registered during assembly, in
// allocation order, and returns the full command list. Build is idempotent
// for a given instance only in the sense that calling it twice emits the
// scratch frees twice; by policy a Builder is used once and discarded.
func (b *Builder) Build() []command.Command {
	for _, s := range b.toFree {
		b.commands = append(b.commands, s.Free())
	}
	return b.commands
}
