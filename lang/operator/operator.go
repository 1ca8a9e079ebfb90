// Package operator implements the three operator families that lower a
// binary expression onto a Scoreboard: Arithmetic, Comparison and Logical.
// Each is the behavioural heart of the compiler (spec §4.4) — the rest of
// the pipeline only decides which Oper to call and where to store the
// result.
package operator

import (
	"errors"

	"github.com/mcpp-lang/mcpp/lang/scoreboard"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// ErrUndefinedOperation reports an operator applied to a type combination
// it has no lowering for (spec's `UndefinedOperation(lT, op, rT)`).
var ErrUndefinedOperation = errors.New("UndefinedOperation")

// Oper is the capability set every operator family implements. Calc
// mutates left in place via b, combining it with right.
type Oper interface {
	Priority() int
	String() string
	GetType(l, r types.Type) (types.Type, bool)
	Calc(b *scoreboard.Builder, left *scoreboard.Scoreboard, right scoreboard.Value) error
}
