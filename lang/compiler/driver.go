package compiler

import (
	"github.com/mcpp-lang/mcpp/lang/lexer"
	"github.com/mcpp-lang/mcpp/lang/parser"
	"github.com/mcpp-lang/mcpp/lang/token"
)

// Compile is the driver (component H): it lexes source, wraps the token
// stream in a synthetic outer `{ }` pair (the top level is itself a
// CodeBlock, per spec.md §4.8), parses it, lowers the result, and returns
// every generated MCFunction in compile order.
func Compile(source []byte, opts Options) ([]*MCFunction, error) {
	toks, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}

	wrapped := make([]token.Value, 0, len(toks)+2)
	wrapped = append(wrapped, token.Value{Tok: token.LBRACE})
	for _, t := range toks {
		if t.Tok == token.EOF {
			break
		}
		wrapped = append(wrapped, t)
	}
	wrapped = append(wrapped, token.Value{Tok: token.RBRACE}, token.Value{Tok: token.EOF})

	root, err := parser.Parse(wrapped)
	if err != nil {
		return nil, err
	}

	c := New(opts)
	if _, err := Mcfunctionate(c, root, nil); err != nil {
		return nil, err
	}
	return c.Compiled(), nil
}
