// Package evaluator implements the formula evaluator (component E): it
// turns a Formula's RPN token stream into scoreboard commands, by way of
// two passes — interpretation (resolving identifiers and literals into
// scoreboard.Values) and a pure type-inference pass that mirrors the
// lowering pass closely enough that if one rejects a formula, so does the
// other.
package evaluator

import (
	"errors"

	"github.com/mcpp-lang/mcpp/lang/ast"
	"github.com/mcpp-lang/mcpp/lang/operator"
	"github.com/mcpp-lang/mcpp/lang/scoreboard"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// Scope resolves an identifier appearing in a formula to the Scoreboard
// backing it. The evaluator never imports the compiler package directly —
// it only needs this one capability from whatever holds the variable
// table, which keeps evaluator low in the dependency graph.
type Scope interface {
	LookupVariable(name string) (*scoreboard.Scoreboard, bool)
}

// UndefinedIdentifierError reports a formula referencing a name Scope does
// not know about.
type UndefinedIdentifierError struct {
	Name string
}

func (e *UndefinedIdentifierError) Error() string {
	return "UndefinedIdentifierReferenced(" + e.Name + ")"
}

var (
	// ErrInvalidFormulaStructure reports an RPN stream that runs out of
	// operands for an operator partway through — a malformed stream that
	// should never reach here once the syntax analyser and ToRPN have both
	// already validated balance.
	ErrInvalidFormulaStructure = errors.New("InvalidFormulaStructure")
	// ErrInvalidTokenInAFormula reports an FToken kind this evaluator has no
	// interpretation for: an FCall (the parser accepts `name(...)` in a
	// formula, but `fn` declarations are rejected, so no call has anything
	// to resolve against) or a string literal outside a native!(...) macro.
	ErrInvalidTokenInAFormula = errors.New("InvalidTokenInAFormula")
)

// Interp is one post-interpretation RPN slot: either an operator tag or a
// resolved operand. A macro invocation (`native!("...")`) is neither — it
// carries its raw command text and is only legal as the formula's sole
// token (see Lower).
type Interp struct {
	IsOp    bool
	Op      operator.Oper
	IsMacro bool
	Raw     string
	Value   scoreboard.Value
}

// Interpret resolves rpn's identifiers and literals against scope, leaving
// operators untouched, without yet emitting a single command.
func Interpret(scope Scope, rpn []ast.FToken) ([]Interp, error) {
	out := make([]Interp, 0, len(rpn))
	for _, tok := range rpn {
		switch tok.Kind {
		case ast.FOp:
			out = append(out, Interp{IsOp: true, Op: tok.Op})

		case ast.FLit:
			switch tok.LitType {
			case types.Int:
				out = append(out, Interp{Value: scoreboard.IntValue(int32(tok.Int))})
			case types.Float:
				out = append(out, Interp{Value: scoreboard.FltValue(tok.Flt)})
			case types.Bool:
				out = append(out, Interp{Value: scoreboard.BoolValue(tok.Bool)})
			default:
				return nil, ErrInvalidTokenInAFormula
			}

		case ast.FIdent:
			sb, ok := scope.LookupVariable(tok.Name)
			if !ok {
				return nil, &UndefinedIdentifierError{Name: tok.Name}
			}
			out = append(out, Interp{Value: scoreboard.ScrValue(sb)})

		case ast.FMacro:
			out = append(out, Interp{IsMacro: true, Raw: tok.Str})

		default: // FCall has no lowering; FLParen, FRParen are unreachable post-ToRPN
			return nil, ErrInvalidTokenInAFormula
		}
	}
	return out, nil
}

// GuessType replays interp over a type-only stack, mirroring Lower's shape
// exactly: the two passes must agree on which formulas are well-typed, or
// Lower would fail (with an error from operator.Oper.Calc) on a combination
// GuessType claimed was fine.
func GuessType(interp []Interp) (types.Type, error) {
	var stack []types.Type
	for _, tok := range interp {
		switch {
		case tok.IsOp:
			if len(stack) < 2 {
				return types.None, ErrInvalidFormulaStructure
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			t, ok := tok.Op.GetType(l, r)
			if !ok {
				return types.None, operator.ErrUndefinedOperation
			}
			stack = append(stack, t)
		case tok.IsMacro:
			stack = append(stack, types.Str)
		default:
			stack = append(stack, tok.Value.Datatype())
		}
	}
	if len(stack) != 1 {
		return types.None, ast.ErrUnbalancedParentheses
	}
	return stack[0], nil
}

// Lower replays interp over the real scoreboard.Builder, allocating one
// CALC_RESULT_ scratch per operator application and finally assigning the
// formula's single remaining value into storeTo.
//
// A formula consisting of exactly one native!(...) macro token is the one
// exception: Type::Str never participates in arithmetic, so such a formula
// lowers to a single Native command and storeTo is left untouched — this
// is the only shape in which a macro invocation is legal (GuessType already
// rejects any attempt to combine one with an operator, since Str is never
// numeric).
func Lower(b *scoreboard.Builder, interp []Interp, storeTo *scoreboard.Scoreboard) error {
	if len(interp) == 1 && interp[0].IsMacro {
		b.Native(interp[0].Raw)
		return nil
	}

	var stack []scoreboard.Value
	var scratches []*scoreboard.Scoreboard

	for _, tok := range interp {
		if tok.IsOp {
			if len(stack) < 2 {
				return ErrInvalidFormulaStructure
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			rc := b.NewCalcResultTemp(lhs.Datatype())
			if err := b.Assign(rc, lhs); err != nil {
				return err
			}
			if err := tok.Op.Calc(b, rc, rhs); err != nil {
				return err
			}
			scratches = append(scratches, rc)
			stack = append(stack, scoreboard.ScrValue(rc))
			continue
		}

		if tok.IsMacro {
			// Reached a macro token outside the single-token shape Lower
			// special-cases above; GuessType would already have failed
			// trying to combine Str with an operator, so this path is
			// unreachable given a caller that type-checks first.
			panic("evaluator: macro token in a non-trivial formula")
		}

		stack = append(stack, tok.Value)
	}

	if len(stack) != 1 {
		return ErrInvalidFormulaStructure
	}
	if err := b.Assign(storeTo, stack[0]); err != nil {
		return err
	}
	for _, s := range scratches {
		b.Free(s)
	}
	return nil
}

// ToBe is the control-flow condition lowering: it evaluates interp into a
// scratch of its own inferred type, normalises that scratch to a strict
// {0,1} via a `!= 0` comparison, copies the result into storeTo (an
// IF_CONDITION_/WHILE_CONDITION_ Bool cell), and frees the scratch.
func ToBe(b *scoreboard.Builder, interp []Interp, storeTo *scoreboard.Scoreboard) error {
	t, err := GuessType(interp)
	if err != nil {
		return err
	}
	if !t.Numeric() && t != types.Bool {
		return operator.ErrUndefinedOperation
	}

	toBe := b.NewToBeTemp(t)
	if err := Lower(b, interp, toBe); err != nil {
		return err
	}
	b.BoolifyNumComparison(toBe, "!=", 0)
	if err := b.Assign(storeTo, scoreboard.ScrValue(toBe)); err != nil {
		return err
	}
	b.Free(toBe)
	return nil
}
