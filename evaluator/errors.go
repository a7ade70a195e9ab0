package evaluator

import (
	"fmt"

	"github.com/havrydotdev/golox/token"
)

// RuntimeError is a runtime error attributed to the token at the offending
// call/operator site, so the driver can report a source line.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime error: %s", e.Token.Line, e.Message)
}

func newError(tok token.Token, format string, args ...any) error {
	return RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
