package diag

import "github.com/aledsdavies/golox/runtime/token"

// RuntimeError pairs the offending token with a message. The evaluator
// propagates the first one up through every enclosing scope; the driver maps
// it to exit code 70.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}
