// Package lexer turns L source text into a token stream, per the lexer
// contract: a straightforward character scanner with no lookahead beyond
// what two-character operators and a number's fractional part require.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcpp-lang/mcpp/lang/token"
)

// Error is a single lexical error at a source position.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("%d:%d: %s", line, col, e.Msg)
}

// ErrorList aggregates every Error hit while scanning a single source, so a
// caller can report more than one lexical mistake per Lex call.
type ErrorList []*Error

func (l *ErrorList) add(pos token.Pos, msg string) {
	*l = append(*l, &Error{Pos: pos, Msg: msg})
}

// Err returns l as an error, or nil if l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l ErrorList) Error() string {
	var sb strings.Builder
	for i, e := range l {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

const eof = -1

// Lexer scans a single source buffer into a slice of token.Value.
type Lexer struct {
	src       []byte
	off       int // byte offset of the rune at cur
	roff      int // byte offset of the next rune
	cur       rune
	line, col int
	errs      ErrorList
}

// New returns a Lexer ready to scan src.
func New(src []byte) *Lexer {
	l := &Lexer{src: src, line: 1, col: 0}
	l.advance()
	return l
}

// Lex scans src to completion and returns the full token stream, terminated
// by a trailing token.EOF. The error, if non-nil, is an ErrorList.
func Lex(src []byte) ([]token.Value, error) {
	l := New(src)
	var out []token.Value
	for {
		var v token.Value
		l.Scan(&v)
		out = append(out, v)
		if v.Tok == token.EOF {
			break
		}
	}
	return out, l.errs.Err()
}

func (l *Lexer) pos() token.Pos {
	line, col := l.line, l.col
	if line <= 0 {
		line = 1
	}
	if col <= 0 {
		col = 1
	}
	return token.MakePos(line, col)
}

func (l *Lexer) errorf(format string, args ...interface{}) {
	l.errs.add(l.pos(), fmt.Sprintf(format, args...))
}

// advance consumes l.cur and loads the following rune.
func (l *Lexer) advance() {
	if l.cur == '\n' {
		l.line++
		l.col = 0
	}
	l.off = l.roff
	if l.roff >= len(l.src) {
		l.cur = eof
		return
	}
	l.cur = rune(l.src[l.roff])
	l.roff++
	l.col++
}

func (l *Lexer) peek() rune {
	if l.roff >= len(l.src) {
		return eof
	}
	return rune(l.src[l.roff])
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isStructural reports whether r is whitespace, a delimiter, an operator, a
// quote or the MCID sigil — i.e. any character that can never appear inside
// a bare identifier.
func isStructural(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r',
		'(', ')', '{', '}', ',', ':', ';',
		'+', '-', '*', '/', '%',
		'=', '<', '>', '!', '&', '|',
		'"', '$':
		return true
	}
	return r == eof
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.cur) {
		l.advance()
	}
}

// Scan fills tokVal with the next token and returns its Token, for callers
// that want to drive scanning one token at a time (e.g. a parser reading
// lazily). Most callers should use Lex.
func (l *Lexer) Scan(tokVal *token.Value) token.Token {
	l.skipWhitespace()

	pos := l.pos()
	tokVal.Pos = pos
	tokVal.Raw = ""
	tokVal.Int = 0
	tokVal.Flt = 0
	tokVal.Bool = false

	switch {
	case l.cur == eof:
		tokVal.Tok = token.EOF
		return token.EOF
	case isDigit(l.cur):
		return l.scanNumber(tokVal)
	case l.cur == '"':
		return l.scanString(tokVal)
	case l.cur == '$':
		return l.scanMCID(tokVal)
	}

	if tok, ok := l.scanOperator(); ok {
		tokVal.Tok = tok
		tokVal.Raw = tok.String()
		return tok
	}

	return l.scanIdent(tokVal)
}

func (l *Lexer) scanNumber(tokVal *token.Value) token.Token {
	start := l.off
	for isDigit(l.cur) {
		l.advance()
	}
	isFloat := false
	if l.cur == '.' && isDigit(l.peek()) {
		isFloat = true
		l.advance() // consume '.'
		for isDigit(l.cur) {
			l.advance()
		}
	}

	raw := string(l.src[start:l.off])
	tokVal.Raw = raw
	if isFloat {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			l.errorf("invalid float literal %q: %s", raw, err)
		}
		tokVal.Flt = f
		tokVal.Tok = token.FLT
		return token.FLT
	}

	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		l.errorf("invalid int literal %q: %s", raw, err)
	}
	tokVal.Int = i
	tokVal.Tok = token.INT
	return token.INT
}

func (l *Lexer) scanString(tokVal *token.Value) token.Token {
	l.advance() // consume opening quote
	start := l.off
	for l.cur != '"' && l.cur != eof {
		l.advance()
	}
	raw := string(l.src[start:l.off])
	if l.cur != '"' {
		l.errorf("unterminated string literal")
	} else {
		l.advance() // consume closing quote
	}
	tokVal.Raw = raw
	tokVal.Tok = token.STR
	return token.STR
}

func (l *Lexer) scanMCID(tokVal *token.Value) token.Token {
	start := l.off
	l.advance() // consume '$'
	for !isStructural(l.cur) {
		l.advance()
	}
	raw := string(l.src[start:l.off])
	tokVal.Raw = raw
	tokVal.Tok = token.MCID
	return token.MCID
}

func (l *Lexer) scanIdent(tokVal *token.Value) token.Token {
	start := l.off
	for !isStructural(l.cur) {
		l.advance()
	}
	if l.off == start {
		// a lone structural byte that none of the cases above recognized
		l.errorf("unexpected character %q", string(l.cur))
		tokVal.Raw = string(l.cur)
		tokVal.Tok = token.ILLEGAL
		l.advance()
		return token.ILLEGAL
	}

	raw := string(l.src[start:l.off])
	tokVal.Raw = raw

	if tok, ok := token.LookupKeyword(raw); ok {
		tokVal.Tok = tok
		return tok
	}
	if raw == "true" || raw == "false" {
		tokVal.Tok = token.BLN
		tokVal.Bool = raw == "true"
		return token.BLN
	}

	tokVal.Tok = token.IDENT
	return token.IDENT
}

// scanOperator tries to consume one of the punctuation/operator tokens
// starting at l.cur, preferring two-character forms over one-character
// ones as required by the lexer contract.
func (l *Lexer) scanOperator() (token.Token, bool) {
	two := map[rune]map[rune]token.Token{
		'-': {'>': token.ARROW},
		'=': {'>': token.FATARROW, '=': token.EQ},
		'!': {'=': token.NEQ},
		'<': {'=': token.LE},
		'>': {'=': token.GE},
	}
	one := map[rune]token.Token{
		'(': token.LPAREN,
		')': token.RPAREN,
		'{': token.LBRACE,
		'}': token.RBRACE,
		',': token.COMMA,
		':': token.COLON,
		';': token.SEMI,
		'+': token.PLUS,
		'-': token.MINUS,
		'*': token.STAR,
		'/': token.SLASH,
		'%': token.PERCENT,
		'=': token.ASSIGN,
		'<': token.LT,
		'>': token.GT,
		'!': token.BANG,
		'&': token.AMP,
		'|': token.PIPE,
	}

	if seconds, ok := two[l.cur]; ok {
		if tok, ok := seconds[l.peek()]; ok {
			l.advance()
			l.advance()
			return tok, true
		}
	}
	if tok, ok := one[l.cur]; ok {
		l.advance()
		return tok, true
	}
	return token.ILLEGAL, false
}
