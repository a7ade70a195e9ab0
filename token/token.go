package token

import "fmt"

// Token is a single lexical unit produced by the scanner.
//
// Literal is non-nil only for Number, String, and the keyword literals
// true|false; for the nil keyword, as for every other token, it is nil.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
}

func New(kind Kind, lexeme string, literal any, line int) Token {
	return Token{kind, lexeme, literal, line}
}

func (t Token) String() string {
	return fmt.Sprintf("{Kind(%s), Lexeme(%s), Literal(%v), Line(%d)}", t.Kind, t.Lexeme, t.Literal, t.Line)
}
