package token

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// single-character tokens
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one or two character tokens
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual
	Send

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Return
	Super
	This
	True
	Var
	While
	Import
	As

	Eof
)

var names = map[Kind]string{
	LeftParen:    "left_paren",
	RightParen:   "right_paren",
	LeftBrace:    "left_brace",
	RightBrace:   "right_brace",
	Comma:        "comma",
	Dot:          "dot",
	Minus:        "minus",
	Plus:         "plus",
	Semicolon:    "semicolon",
	Slash:        "slash",
	Star:         "star",
	Bang:         "bang",
	BangEqual:    "bang_equal",
	Equal:        "equal",
	EqualEqual:   "equal_equal",
	Greater:      "greater",
	GreaterEqual: "greater_equal",
	Less:         "less",
	LessEqual:    "less_equal",
	Send:         "send",
	Identifier:   "identifier",
	String:       "string",
	Number:       "number",
	And:          "k_and",
	Class:        "k_class",
	Else:         "k_else",
	False:        "k_false",
	Fun:          "k_fun",
	For:          "k_for",
	If:           "k_if",
	Nil:          "k_nil",
	Or:           "k_or",
	Return:       "k_return",
	Super:        "k_super",
	This:         "k_this",
	True:         "k_true",
	Var:          "k_var",
	While:        "k_while",
	Import:       "k_import",
	As:           "k_as",
	Eof:          "eof",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}

	return "unknown"
}
