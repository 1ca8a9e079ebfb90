package compiler

import (
	"github.com/mcpp-lang/mcpp/lang/command"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// MCFunction is one compiled unit identified by namespace/path/name, per
// spec.md §3. CodeBlock, IfSyntax and WhileSyntax lowering each produce one
// of these; Inside is frozen once built and never mutated afterward (see
// spec.md §9's design note on the self-referential while call).
type MCFunction struct {
	Name           string
	Path           []string
	CallmentPrefix string // "" for a function nobody conditionally dispatches
	Preprocess     string // commands emitted at the call site before the call line
	Inside         string // the function body's own command text
	Postprocess    string // if body: frees emitted at the call site after the call line; while body: tail re-check and frees appended to Inside
	ReturningType  *types.Type
}

// CallLine renders the line that invokes fn from namespace ns, prefixed by
// the caller-supplied postprocess blob (empty for a plain first call; see
// the self-referential while tail-call in lower.go for the one case where
// it is non-empty).
func (fn *MCFunction) CallLine(ns, postprocess string) string {
	return command.Call(postprocess, fn.CallmentPrefix, ns, fn.Path, fn.Name)
}
