// Package command implements the MCCMD command AST: typed representations
// of every scoreboard command this compiler ever emits, plus their textual
// serialisation. It knows nothing about the scoreboard bookkeeping or
// formula evaluation that produce these nodes — it only turns them into
// text, the same separation the teacher draws between its opcode table and
// the packages that decide which opcodes to emit.
package command

import (
	"fmt"
	"strings"
)

// Objective is the single scoreboard objective every score cell lives on.
const Objective = "MCPP.var"

// ScoreTarget names one MCCMD score cell by its already-composed player
// name (see scoreboard.Scoreboard for how that name is built).
type ScoreTarget struct {
	Player string
}

// Command is any node that renders to one or more MCCMD command lines.
type Command interface {
	Serialise() string
}

// CalcScore emits a `scoreboard players operation` line. OpEq is one of
// "+=", "-=", "*=", "/=", "%=", "=", "<", ">", "<=", ">=", "><" ("<", ">"
// and "><" are MCCMD's min/max/swap operation forms, not comparisons).
type CalcScore struct {
	LHS, RHS ScoreTarget
	OpEq     string
}

func (c CalcScore) Serialise() string {
	return fmt.Sprintf("scoreboard players operation %s %s %s %s %s",
		c.LHS.Player, Objective, c.OpEq, c.RHS.Player, Objective)
}

// AddRemNum emits a `scoreboard players add|remove` line.
type AddRemNum struct {
	Target ScoreTarget
	Op     string // "add" or "remove"
	N      int32
}

func (c AddRemNum) Serialise() string {
	return fmt.Sprintf("scoreboard players %s %s %s %d", c.Op, c.Target.Player, Objective, c.N)
}

// AssignScore emits a `scoreboard players operation ... = ...` line: a
// plain score-to-score copy.
type AssignScore struct {
	LHS, RHS ScoreTarget
}

func (c AssignScore) Serialise() string {
	return CalcScore{LHS: c.LHS, RHS: c.RHS, OpEq: "="}.Serialise()
}

// AssignNum emits a `scoreboard players set` line.
type AssignNum struct {
	Target ScoreTarget
	N      int32
}

func (c AssignNum) Serialise() string {
	return fmt.Sprintf("scoreboard players set %s %s %d", c.Target.Player, Objective, c.N)
}

// Free emits a `scoreboard players reset` line, releasing a scratch cell on
// the MCCMD side.
type Free struct {
	Target ScoreTarget
}

func (c Free) Serialise() string {
	return fmt.Sprintf("scoreboard players reset %s %s", c.Target.Player, Objective)
}

// Native passes a raw MCCMD command line through verbatim, letting a
// program drop to a construct this language has no syntax for.
type Native struct {
	Raw string
}

func (c Native) Serialise() string { return c.Raw }

// Condition is one link of an ExecuteChain: `if`/`unless score A <cmp> B`.
// Cmp is one of "<", "<=", "=", ">=", ">"; MCCMD has no direct "!=", so a
// comparison built from "!=" must set Negate and use "=" as Cmp (see
// NewCondition).
type Condition struct {
	LHS    ScoreTarget
	Cmp    string
	RHS    ScoreTarget
	Negate bool
}

// NewCondition builds a Condition for comparison operator op, rewriting the
// MCCMD-unsupported "!=" into a negated "==" test.
func NewCondition(lhs ScoreTarget, op string, rhs ScoreTarget) Condition {
	if op == "!=" {
		return Condition{LHS: lhs, Cmp: "=", RHS: rhs, Negate: true}
	}
	cmp := op
	if cmp == "==" {
		cmp = "="
	}
	return Condition{LHS: lhs, Cmp: cmp, RHS: rhs}
}

func (c Condition) serialise() string {
	kw := "if"
	if c.Negate {
		kw = "unless"
	}
	return fmt.Sprintf("%s score %s %s %s %s %s", kw, c.LHS.Player, Objective, c.Cmp, c.RHS.Player, Objective)
}

// ExecuteChain is a sequence of conditions chained by an `execute ... run `
// prefix (trailing space, ready to be followed by another command).
type ExecuteChain struct {
	Conditions []Condition
}

func (e ExecuteChain) Serialise() string {
	s := "execute "
	for _, c := range e.Conditions {
		s += c.serialise() + " "
	}
	return s + "run "
}

// BoolifyCondition normalises an ExecuteChain's truth value into {0,1} at
// ContainTo, using Temp as scratch storage. It expands to four lines:
// zero the temp, run the chain to set it to 1 on success, copy the temp
// into ContainTo, then free the temp.
type BoolifyCondition struct {
	ContainTo ScoreTarget
	Temp      ScoreTarget
	Chain     ExecuteChain
}

func (c BoolifyCondition) Serialise() string {
	lines := []string{
		AssignNum{Target: c.Temp, N: 0}.Serialise(),
		c.Chain.Serialise() + AssignNum{Target: c.Temp, N: 1}.Serialise(),
		AssignScore{LHS: c.ContainTo, RHS: c.Temp}.Serialise(),
		Free{Target: c.Temp}.Serialise(),
	}
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}

// SerialiseAll joins a command sequence into the newline-joined text a
// generated MCFunction's body (or a call-site preprocess/postprocess blob)
// is made of.
func SerialiseAll(cmds []Command) string {
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.Serialise()
	}
	return strings.Join(lines, "\n")
}

// Call renders the single line that invokes a generated MCFunction, per the
// callment prefix composition rule: postprocess, then callmentPrefix
// (already a full "execute ... run " string or empty), then the function
// call itself.
func Call(postprocess, callmentPrefix, namespace string, path []string, name string) string {
	fn := namespace
	for _, seg := range path {
		fn += "/" + seg
	}
	fn += "/" + name
	return fmt.Sprintf("%s%sfunction %s", postprocess, callmentPrefix, fn)
}
