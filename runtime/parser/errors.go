package parser

import (
	"fmt"

	"github.com/aledsdavies/golox/runtime/token"
)

// Error is a syntax error anchored to the token where parsing went wrong. By
// the time an Error propagates it has already been reported through the
// session; the value itself only signals "this production failed" so callers
// can unwind to a synchronization point.
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	if e.Token.Type == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}
