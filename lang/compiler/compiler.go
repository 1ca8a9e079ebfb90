// Package compiler implements the AST lowerer (component G) and the driver
// (component H): it turns a parsed ast.CodeBlock into a tree of compiled
// MCFunction records and serialises the result. Compiler is the session
// object spec.md §3 describes: the sole mutable state threaded by exclusive
// reference through the entire lowering pass (spec.md §5).
package compiler

import (
	"time"

	"github.com/dolthub/swiss"

	"github.com/mcpp-lang/mcpp/lang/scoreboard"
)

// Options configures a compile, per SPEC_FULL.md's "Configuration" section:
// a namespace override and an injectable id source (spec.md §5
// "Randomness" explicitly allows this for deterministic tests).
type Options struct {
	// Namespace prefixes every emitted function path. Defaults to "MCPP".
	Namespace string
	// IDs mints scratch/block names. Defaults to a real random source.
	IDs scoreboard.IDSource
}

// Compiler is the compile-time session object (spec.md §3 "Compiler
// state"). variables is the authoritative ordered declaration list that
// block-scope release walks; varIndex mirrors it as a swiss.Map for O(1)
// identifier lookup on the hot path of resolving a formula's identifiers —
// the same separation of "ordered bookkeeping" from "fast lookup" the
// teacher draws between its resolver's binding slice and its own lookup
// map.
type Compiler struct {
	namespace string
	factory   *scoreboard.Factory

	compiled []*MCFunction // accumulating set, in compile order

	variables []*scoreboard.Scoreboard
	varIndex  *swiss.Map[string, *scoreboard.Scoreboard]

	scope []string
}

// New returns a Compiler ready to lower a single top-level CodeBlock.
func New(opts Options) *Compiler {
	ns := opts.Namespace
	if ns == "" {
		ns = "MCPP"
	}
	ids := opts.IDs
	if ids == nil {
		ids = scoreboard.NewRandomIDs(time.Now().UnixNano())
	}
	return &Compiler{
		namespace: ns,
		factory:   scoreboard.NewFactory(ids),
		varIndex:  swiss.NewMap[string, *scoreboard.Scoreboard](8),
	}
}

// LookupVariable implements evaluator.Scope: it resolves name against the
// innermost live declaration, satisfying the evaluator's one dependency on
// whatever holds the variable table without the evaluator ever importing
// this package.
func (c *Compiler) LookupVariable(name string) (*scoreboard.Scoreboard, bool) {
	sb, ok := c.varIndex.Get(name)
	return sb, ok
}

// declareVariable appends sb to the ordered variable list and indexes it by
// name, shadowing any outer declaration of the same name for the remainder
// of the current scope.
func (c *Compiler) declareVariable(sb *scoreboard.Scoreboard) {
	c.variables = append(c.variables, sb)
	c.varIndex.Put(sb.Name, sb)
}

// pushScope enters a new block path segment and returns the depth (path
// length) a variable declared from here on will carry.
func (c *Compiler) pushScope(segment string) int {
	c.scope = append(c.scope, segment)
	return len(c.scope)
}

// scopePath returns a copy of the current scope path, safe for a Scoreboard
// or MCFunction to retain beyond the current pushScope/popScope pair.
func (c *Compiler) scopePath() []string {
	return append([]string(nil), c.scope...)
}

// popScope leaves the current block path segment, releasing (and returning
// the Scoreboards of) every variable declared at depth or deeper —
// spec.md §9's fixed resolution of the "iterate from the back" bug: walk
// compiler.variables from the tail so a mid-iteration removal never skips
// an entry.
func (c *Compiler) popScope(depth int) []*scoreboard.Scoreboard {
	var freed []*scoreboard.Scoreboard
	i := len(c.variables) - 1
	for ; i >= 0; i-- {
		if len(c.variables[i].Scope) < depth {
			break
		}
		freed = append(freed, c.variables[i])
	}
	c.variables = c.variables[:i+1]
	c.scope = c.scope[:len(c.scope)-1]

	// Rebuild the index from what remains: a freed name may have shadowed an
	// outer declaration that should become visible again, and a swiss.Map
	// has no cheap "restore previous value" operation.
	c.varIndex = swiss.NewMap[string, *scoreboard.Scoreboard](8)
	for _, sb := range c.variables {
		c.varIndex.Put(sb.Name, sb)
	}
	return freed
}

// registerFunction appends fn to the deterministic compile-order slice
// Compile ultimately returns.
func (c *Compiler) registerFunction(fn *MCFunction) {
	c.compiled = append(c.compiled, fn)
}

// Compiled returns every MCFunction generated so far, in compile order
// (spec.md §4.8 step 5: "all functions accumulated in compiler.compiled
// plus the root MCFunction" — registerFunction appends the root the same
// way as any nested block, so it is already present here).
func (c *Compiler) Compiled() []*MCFunction { return c.compiled }

// Namespace returns the namespace every emitted function path is prefixed
// with.
func (c *Compiler) Namespace() string { return c.namespace }
