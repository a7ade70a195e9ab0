package scanner

import "github.com/havrydotdev/golox/token"

var keywords = map[string]token.Kind{
	"and":    token.And,
	"class":  token.Class,
	"else":   token.Else,
	"false":  token.False,
	"fun":    token.Fun,
	"for":    token.For,
	"if":     token.If,
	"nil":    token.Nil,
	"or":     token.Or,
	"return": token.Return,
	"super":  token.Super,
	"this":   token.This,
	"true":   token.True,
	"var":    token.Var,
	"while":  token.While,
	"import": token.Import,
	"as":     token.As,
}
