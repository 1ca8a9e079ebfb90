package parser

import (
	"errors"
	"fmt"

	"github.com/mcpp-lang/mcpp/lang/token"
)

// SyntaxErrorKind discriminates the syntax error shapes spec.md §4.6 names.
type SyntaxErrorKind uint8

const (
	ExpectedAToken SyntaxErrorKind = iota
	InvalidFormAs
	UnbalancedBraces
	TokenEndsUnexpectedly
	ALineMustntStartWith
	InvalidTokenInAFormula
	ArgumentCountMismatch
)

// SyntaxError is the one error type every parsing method returns; Name and
// Tok are populated only for the kinds that carry a payload.
type SyntaxError struct {
	Kind SyntaxErrorKind
	Name string     // ExpectedAToken(name), InvalidFormAs(form)
	Tok  token.Token // ALineMustntStartWith(t), InvalidTokenInAFormula(t)
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case ExpectedAToken:
		return fmt.Sprintf("ExpectedAToken(%s)", e.Name)
	case InvalidFormAs:
		return fmt.Sprintf("InvalidFormAs(%s)", e.Name)
	case UnbalancedBraces:
		return "UnbalancedBraces"
	case TokenEndsUnexpectedly:
		return "TokenEndsUnexpectedly"
	case ALineMustntStartWith:
		return fmt.Sprintf("ALineMustntStartWith(%s)", e.Tok.GoString())
	case InvalidTokenInAFormula:
		return fmt.Sprintf("InvalidTokenInAFormula(%s)", e.Tok.GoString())
	case ArgumentCountMismatch:
		return "ArgumentCountMismatch"
	default:
		return "SyntaxError"
	}
}

func expectTokenErr(name string) *SyntaxError {
	return &SyntaxError{Kind: ExpectedAToken, Name: name}
}

func invalidFormErr(form string) *SyntaxError {
	return &SyntaxError{Kind: InvalidFormAs, Name: form}
}

// toSyntaxError normalises any error a parsing method returned into a
// *SyntaxError, so the multi-error collector always holds the same shape.
func toSyntaxError(err error) *SyntaxError {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se
	}
	return &SyntaxError{Kind: InvalidFormAs, Name: err.Error()}
}

// ErrorList collects every SyntaxError a Parser hits while still bailing
// the current statement, the same multi-error pattern the lexer uses
// (itself grounded on the teacher's scanner.ErrorList) — it lets Compile
// report more than one syntax mistake per call without changing the
// external contract: Parse still returns a single non-nil error and no
// partial AST on any syntax error.
type ErrorList []*SyntaxError

func (l *ErrorList) add(err *SyntaxError) {
	*l = append(*l, err)
}

func (l ErrorList) Error() string {
	if len(l) == 1 {
		return l[0].Error()
	}
	s := fmt.Sprintf("%d syntax errors:", len(l))
	for _, e := range l {
		s += "\n\t" + e.Error()
	}
	return s
}

// Err returns l as an error, or nil if l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
