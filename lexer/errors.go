package lexer

import (
	"fmt"

	"github.com/minivm/emberjs/token"
)

// IllegalSource is the lexer's single fatal error kind. Every error
// condition the lexer can encounter — invalid UTF-8, an unterminated
// string or comment, a malformed number, an illegal escape, an
// unrecognized character — surfaces as one of these and aborts
// lexing outright; there is no resynchronization or recovery.
type IllegalSource struct {
	Locus   token.Locus
	Message string
}

func (e *IllegalSource) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Locus)
}

func (l *Lexer) fatalf(loc token.Locus, format string, args ...any) error {
	return &IllegalSource{Locus: loc, Message: fmt.Sprintf(format, args...)}
}
