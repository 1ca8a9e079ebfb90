package compiler

import "errors"

// ErrTypeUnconfirmed reports a `let` with neither a type annotation nor an
// initialiser to infer one from (spec.md §4.6/§4.7,
// TheTypeOfAIndentifierWontBeConfirmed).
var ErrTypeUnconfirmed = errors.New("TheTypeOfAIndentifierWontBeConfirmed")

// ErrUnknownTypeSpecialised reports a declared type this compiler has no
// lowering for (closed-set Type violation; unreachable given the parser's
// own closed set of type tokens, kept for parity with spec.md §7's error
// taxonomy).
var ErrUnknownTypeSpecialised = errors.New("UnknownTypeSpecialised")
