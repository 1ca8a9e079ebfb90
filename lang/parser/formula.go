package parser

import (
	"github.com/mcpp-lang/mcpp/lang/ast"
	"github.com/mcpp-lang/mcpp/lang/operator"
	"github.com/mcpp-lang/mcpp/lang/token"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// opTokens maps a lexed operator/comparison token straight to the
// operator.Oper that implements it.
var opTokens = map[token.Token]operator.Oper{
	token.PLUS:    operator.Add,
	token.MINUS:   operator.Sub,
	token.STAR:    operator.Mul,
	token.SLASH:   operator.Div,
	token.PERCENT: operator.Mod,

	token.GT: operator.Gt,
	token.GE: operator.Ge,
	token.LT: operator.Lt,
	token.LE: operator.Le,
	token.EQ: operator.Eq,
	token.NEQ: operator.Neq,

	token.AMP:  operator.And,
	token.PIPE: operator.Or,
	token.BANG: operator.Not,
}

// GetFormula greedily consumes formula tokens (values, operators,
// parentheses) until it meets a token outside that set, per spec.md §4.6 —
// that terminator token is left unconsumed for the caller (e.g. the `;`
// after an assignment, or the `)`/`,` a tuple element stops at). A `)` is
// part of the formula only when it closes a `(` the formula itself opened.
func (p *Parser) GetFormula() (*ast.Formula, error) {
	f := &ast.Formula{}
	depth := 0
	for {
		v, ok := p.peek()
		if !ok {
			break
		}

		switch v.Tok {
		case token.INT:
			p.consume()
			f.Tokens = append(f.Tokens, ast.FToken{Kind: ast.FLit, LitType: types.Int, Int: v.Int, At: v.Pos})
		case token.FLT:
			p.consume()
			f.Tokens = append(f.Tokens, ast.FToken{Kind: ast.FLit, LitType: types.Float, Flt: v.Flt, At: v.Pos})
		case token.BLN:
			p.consume()
			f.Tokens = append(f.Tokens, ast.FToken{Kind: ast.FLit, LitType: types.Bool, Bool: v.Bool, At: v.Pos})
		case token.STR:
			p.consume()
			f.Tokens = append(f.Tokens, ast.FToken{Kind: ast.FLit, LitType: types.Str, Str: v.Raw, At: v.Pos})

		case token.IDENT:
			tok, err := p.getIdentValue(v)
			if err != nil {
				return nil, err
			}
			f.Tokens = append(f.Tokens, tok)

		case token.LPAREN:
			p.consume()
			depth++
			f.Tokens = append(f.Tokens, ast.FToken{Kind: ast.FLParen, At: v.Pos})
		case token.RPAREN:
			if depth == 0 {
				// Closes an enclosing tuple: leave it for the caller and stop.
				return f, nil
			}
			p.consume()
			depth--
			f.Tokens = append(f.Tokens, ast.FToken{Kind: ast.FRParen, At: v.Pos})

		default:
			if oper, ok := opTokens[v.Tok]; ok {
				p.consume()
				f.Tokens = append(f.Tokens, ast.FToken{Kind: ast.FOp, Op: oper, At: v.Pos})
				continue
			}
			// Not a formula token: leave it for the caller and stop.
			return f, nil
		}
	}
	if len(f.Tokens) > 0 {
		f.At = f.Tokens[0].At
	}
	return f, nil
}

// getIdentValue resolves an IDENT already confirmed to be next: a bare
// variable reference, or — if immediately followed by `(` or `!(` — a
// call or macro invocation with its tuple of argument Formulas.
func (p *Parser) getIdentValue(v token.Value) (ast.FToken, error) {
	p.consume()
	next, ok := p.peek()
	if !ok {
		return ast.FToken{Kind: ast.FIdent, Name: v.Raw, At: v.Pos}, nil
	}

	switch next.Tok {
	case token.LPAREN:
		args, err := p.getTuple()
		if err != nil {
			return ast.FToken{}, err
		}
		return ast.FToken{Kind: ast.FCall, Name: v.Raw, Args: args, At: v.Pos}, nil

	case token.BANG:
		if after, ok := p.peekAt(1); ok && after.Tok == token.LPAREN {
			p.consume() // BANG
			args, err := p.getTuple()
			if err != nil {
				return ast.FToken{}, err
			}
			if len(args) != 1 || len(args[0].Tokens) != 1 || args[0].Tokens[0].Kind != ast.FLit || args[0].Tokens[0].LitType != types.Str {
				return ast.FToken{}, &SyntaxError{Kind: InvalidFormAs, Name: "native!(...) macro argument"}
			}
			return ast.FToken{Kind: ast.FMacro, Name: v.Raw, Str: args[0].Tokens[0].Str, At: v.Pos}, nil
		}
		return ast.FToken{Kind: ast.FIdent, Name: v.Raw, At: v.Pos}, nil

	default:
		return ast.FToken{Kind: ast.FIdent, Name: v.Raw, At: v.Pos}, nil
	}
}

// getTuple parses a parenthesised, comma-separated Formula list: the
// opening `(` must be the next token; it stops after consuming the
// matching `)`.
func (p *Parser) getTuple() ([]*ast.Formula, error) {
	if _, err := p.expectTok(token.LPAREN, "("); err != nil {
		return nil, err
	}

	var formulas []*ast.Formula
	if v, ok := p.peek(); ok && v.Tok == token.RPAREN {
		p.consume()
		return formulas, nil
	}

	for {
		f, err := p.GetFormula()
		if err != nil {
			return nil, err
		}
		formulas = append(formulas, f)

		v, err := p.expect()
		if err != nil {
			return nil, err
		}
		switch v.Tok {
		case token.RPAREN:
			return formulas, nil
		case token.COMMA:
			continue
		default:
			return nil, invalidFormErr("tuple")
		}
	}
}
