package compiler

import (
	"fmt"

	"github.com/mcpp-lang/mcpp/lang/ast"
	"github.com/mcpp-lang/mcpp/lang/command"
	"github.com/mcpp-lang/mcpp/lang/evaluator"
	"github.com/mcpp-lang/mcpp/lang/scoreboard"
)

// Mcfunctionate lowers block into a registered MCFunction (component G's
// entry point). trailer, when non-nil, runs once the body's own statements
// and scope-exit frees have already been serialised into fn.Inside, and
// returns additional command text (already newline-joined) that is both
// recorded on fn.Postprocess and appended to fn.Inside — the one hook
// WhileSyntax lowering needs to embed its self-referential tail call inside
// the very function it calls, since that call string can only be built once
// fn.Name and fn.Path are known.
func Mcfunctionate(c *Compiler, block *ast.CodeBlock, trailer func(fn *MCFunction) (string, error)) (*MCFunction, error) {
	fn := &MCFunction{Name: c.factory.BlockName(), Path: c.scopePath()}
	depth := c.pushScope(fn.Name)

	var cmds []command.Command
	for _, stmt := range block.Stmts {
		stmtCmds, err := lowerStmt(c, stmt)
		if err != nil {
			c.popScope(depth)
			return nil, err
		}
		cmds = append(cmds, stmtCmds...)
	}

	for _, sb := range c.popScope(depth) {
		cmds = append(cmds, sb.Free())
	}
	fn.Inside = command.SerialiseAll(cmds)

	if trailer != nil {
		extra, err := trailer(fn)
		if err != nil {
			return nil, err
		}
		if extra != "" {
			fn.Postprocess = extra
			fn.Inside += "\n" + extra
		}
	}

	c.registerFunction(fn)
	return fn, nil
}

// lowerStmt dispatches a single statement to its lowering, per spec.md §4.7.
func lowerStmt(c *Compiler, stmt ast.Stmt) ([]command.Command, error) {
	switch n := stmt.(type) {
	case *ast.VariableDefinement:
		return lowerLet(c, n)
	case *ast.Assignment:
		return lowerAssignment(c, n)
	case *ast.FormulaStmt:
		return lowerFormulaStmt(c, n.F)
	case *ast.CodeBlock:
		return lowerNestedBlock(c, n)
	case *ast.IfSyntax:
		return lowerIf(c, n)
	case *ast.WhileSyntax:
		return lowerWhile(c, n)
	default:
		return nil, fmt.Errorf("compiler: unhandled statement %T", stmt)
	}
}

// lowerNestedBlock lowers a bare `{ ... }` statement: an unconditional
// nested scope with its own MCFunction and an unconditional call at the use
// site.
func lowerNestedBlock(c *Compiler, block *ast.CodeBlock) ([]command.Command, error) {
	fn, err := Mcfunctionate(c, block, nil)
	if err != nil {
		return nil, err
	}
	return []command.Command{command.Native{Raw: fn.CallLine(c.namespace, "")}}, nil
}

// lowerLet lowers `let IDENT (: type)? (= formula)?`, declaring a variable
// scoped to the block currently being built and, if an initialiser was
// given, lowering it straight into the new cell.
func lowerLet(c *Compiler, n *ast.VariableDefinement) ([]command.Command, error) {
	var interp []evaluator.Interp
	hasInit := n.Init != nil
	if hasInit {
		rpn, err := n.Init.ToRPN()
		if err != nil {
			return nil, err
		}
		ip, err := evaluator.Interpret(c, rpn)
		if err != nil {
			return nil, err
		}
		interp = ip
	}

	var dt = n.DeclaredType
	if dt == nil {
		if !hasInit {
			return nil, ErrTypeUnconfirmed
		}
		t, err := evaluator.GuessType(interp)
		if err != nil {
			return nil, err
		}
		dt = &t
	}

	sb := &scoreboard.Scoreboard{Name: n.Name, Scope: c.scopePath(), Datatype: *dt}
	c.declareVariable(sb)

	if !hasInit {
		return nil, nil
	}

	b := scoreboard.NewBuilder(c.factory)
	if err := evaluator.Lower(b, interp, sb); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// lowerAssignment lowers `IDENT = formula`, re-lowering the formula into the
// identifier's already-declared cell.
func lowerAssignment(c *Compiler, n *ast.Assignment) ([]command.Command, error) {
	sb, ok := c.LookupVariable(n.Name)
	if !ok {
		return nil, &evaluator.UndefinedIdentifierError{Name: n.Name}
	}
	rpn, err := n.RHS.ToRPN()
	if err != nil {
		return nil, err
	}
	interp, err := evaluator.Interpret(c, rpn)
	if err != nil {
		return nil, err
	}
	b := scoreboard.NewBuilder(c.factory)
	if err := evaluator.Lower(b, interp, sb); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// lowerFormulaStmt lowers a bare formula used as a statement: its value is
// computed and immediately discarded, except for the single native!(...)
// macro shape, which has no value to discard at all.
func lowerFormulaStmt(c *Compiler, f *ast.Formula) ([]command.Command, error) {
	rpn, err := f.ToRPN()
	if err != nil {
		return nil, err
	}
	interp, err := evaluator.Interpret(c, rpn)
	if err != nil {
		return nil, err
	}

	b := scoreboard.NewBuilder(c.factory)
	if len(interp) == 1 && interp[0].IsMacro {
		if err := evaluator.Lower(b, interp, nil); err != nil {
			return nil, err
		}
		return b.Build(), nil
	}

	dt, err := evaluator.GuessType(interp)
	if err != nil {
		return nil, err
	}
	discard := b.NewCalcResultTemp(dt)
	if err := evaluator.Lower(b, interp, discard); err != nil {
		return nil, err
	}
	b.Free(discard)
	return b.Build(), nil
}

// lowerIf lowers `if <formula> <block>`: the block compiles to its own
// MCFunction, conditionally dispatched from the call site by an `execute
// unless score <cond> = #CONST.0 run ` prefix built from the boolified
// condition.
func lowerIf(c *Compiler, n *ast.IfSyntax) ([]command.Command, error) {
	bodyFn, err := Mcfunctionate(c, n.Body, nil)
	if err != nil {
		return nil, err
	}

	rpn, err := n.Cond.ToRPN()
	if err != nil {
		return nil, err
	}
	interp, err := evaluator.Interpret(c, rpn)
	if err != nil {
		return nil, err
	}

	pre := scoreboard.NewBuilder(c.factory)
	isTrue := pre.NewIfConditionTemp()
	if err := evaluator.ToBe(pre, interp, isTrue); err != nil {
		return nil, err
	}
	zero := pre.ConstBoard(0)
	pre.AssignNum(zero, 0)
	preCmds := pre.Build()

	chain := command.ExecuteChain{Conditions: []command.Condition{command.NewCondition(isTrue.Target(), "!=", zero.Target())}}
	bodyFn.CallmentPrefix = chain.Serialise()
	bodyFn.Preprocess = command.SerialiseAll(preCmds)

	frees := []command.Command{isTrue.Free(), zero.Free()}
	bodyFn.Postprocess = command.SerialiseAll(frees)

	out := append([]command.Command{}, preCmds...)
	out = append(out, command.Native{Raw: bodyFn.CallLine(c.namespace, "")})
	out = append(out, frees...)
	return out, nil
}

// lowerWhile lowers `while <formula> <block>`. The block's own MCFunction
// carries a self-referential tail call in its postprocess: each run of the
// body re-evaluates the condition and, if it still holds, calls itself
// again before freeing the condition scratch — the only construct in this
// language that needs a generated function to reference its own name.
func lowerWhile(c *Compiler, n *ast.WhileSyntax) ([]command.Command, error) {
	whileCond := c.factory.WhileConditionTemp()
	zero := c.factory.Const(0)
	chain := command.ExecuteChain{Conditions: []command.Condition{command.NewCondition(whileCond.Target(), "!=", zero.Target())}}
	callmentPrefix := chain.Serialise()

	trailer := func(fn *MCFunction) (string, error) {
		fn.CallmentPrefix = callmentPrefix

		rpn, err := n.Cond.ToRPN()
		if err != nil {
			return "", err
		}
		interp, err := evaluator.Interpret(c, rpn)
		if err != nil {
			return "", err
		}
		recheck := scoreboard.NewBuilder(c.factory)
		if err := evaluator.ToBe(recheck, interp, whileCond); err != nil {
			return "", err
		}
		recheck.AssignNum(zero, 0)
		recheckCmds := recheck.Build()

		tailCall := fn.CallLine(c.namespace, command.SerialiseAll(recheckCmds)+"\n")
		frees := command.SerialiseAll([]command.Command{whileCond.Free(), zero.Free()})
		return tailCall + "\n" + frees, nil
	}

	bodyFn, err := Mcfunctionate(c, n.Body, trailer)
	if err != nil {
		return nil, err
	}

	rpn, err := n.Cond.ToRPN()
	if err != nil {
		return nil, err
	}
	interp, err := evaluator.Interpret(c, rpn)
	if err != nil {
		return nil, err
	}
	pre := scoreboard.NewBuilder(c.factory)
	if err := evaluator.ToBe(pre, interp, whileCond); err != nil {
		return nil, err
	}
	pre.AssignNum(zero, 0)
	preCmds := pre.Build()
	bodyFn.Preprocess = command.SerialiseAll(preCmds)

	out := append([]command.Command{}, preCmds...)
	out = append(out, command.Native{Raw: bodyFn.CallLine(c.namespace, "")})
	return out, nil
}
