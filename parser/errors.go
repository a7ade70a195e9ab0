package parser

import (
	"fmt"

	"github.com/havrydotdev/golox/token"
)

// ParseError reports a single parse error at the offending token. The
// parser synchronizes to the next statement boundary and continues.
type ParseError struct {
	Token   token.Token
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("[line %d] Parse error: %s", e.Token.Line, e.Message)
}
