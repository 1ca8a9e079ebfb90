// Package parser implements the syntax analyser (component F): it consumes
// a token stream by pop-front, with single look-ahead through peek (and a
// deeper peek for identifier-vs-call/macro disambiguation), and produces
// ast.Stmt nodes. It never evaluates a formula — only carves the token
// stream into Formula token sequences for ToRPN and the evaluator to
// handle later.
package parser

import (
	"github.com/mcpp-lang/mcpp/lang/ast"
	"github.com/mcpp-lang/mcpp/lang/operator"
	"github.com/mcpp-lang/mcpp/lang/token"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// Parser holds the remaining token stream. Tokens are consumed front to
// back; nothing is ever pushed back.
type Parser struct {
	tokens []token.Value
	errs   ErrorList
}

// New returns a Parser over tokens.
func New(tokens []token.Value) *Parser {
	return &Parser{tokens: tokens}
}

// Parse lexes nothing itself — it expects an already-tokenised stream —
// and produces the single top-level CodeBlock a Driver wraps in outer
// braces before calling GetBlock. Parse is the convenience entrypoint most
// callers want; GetBlock, which it calls, expects the opening brace as the
// next token. If any syntax error was collected along the way, Parse
// returns the ErrorList and no block.
func Parse(tokens []token.Value) (*ast.CodeBlock, error) {
	p := New(tokens)
	block, err := p.GetBlock()
	if err != nil {
		return nil, err
	}
	if err := p.errs.Err(); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) peek() (token.Value, bool) {
	if len(p.tokens) == 0 {
		return token.Value{}, false
	}
	return p.tokens[0], true
}

func (p *Parser) peekAt(gap int) (token.Value, bool) {
	if gap < 0 || gap >= len(p.tokens) {
		return token.Value{}, false
	}
	return p.tokens[gap], true
}

func (p *Parser) consume() (token.Value, bool) {
	if len(p.tokens) == 0 {
		return token.Value{}, false
	}
	v := p.tokens[0]
	p.tokens = p.tokens[1:]
	return v, true
}

func (p *Parser) expect() (token.Value, error) {
	v, ok := p.consume()
	if !ok {
		return token.Value{}, &SyntaxError{Kind: TokenEndsUnexpectedly}
	}
	return v, nil
}

func (p *Parser) expectTok(want token.Token, name string) (token.Value, error) {
	v, err := p.expect()
	if err != nil {
		return v, err
	}
	if v.Tok != want {
		return v, &SyntaxError{Kind: ExpectedAToken, Name: name}
	}
	return v, nil
}
