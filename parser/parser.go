// Package parser builds an AST from a token stream via recursive descent.
//
// Precedence, lowest to highest:
//
//	assignment, send-call (->), tuple (,), or, and, equality, comparison,
//	term, factor, unary, n-ary dot-call, unary dot-call, primary
//
// Assignment is disambiguated from a bare expression by parsing the
// left-hand side once as an ordinary expression and, if an '=' follows,
// rewinding and reparsing it as a binding pattern -- mirroring the
// save-position/return-to-saved-position technique of the language this
// parser is modeled on.
package parser

import (
	"github.com/havrydotdev/golox/ast"
	"github.com/havrydotdev/golox/token"
)

type Parser struct {
	tokens  []token.Token
	current int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream, returning every top-level
// declaration it could parse and every error it recovered from via
// synchronize. A non-empty error slice does not mean stmts is empty --
// parsing keeps going after an error to surface as many as possible.
func (p *Parser) Parse() ([]ast.Stmt, []error) {
	var stmts []ast.Stmt
	var errs []error

	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}

		stmts = append(stmts, stmt)
	}

	return stmts, errs
}

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.matchAdvance(token.Var) {
		return p.varDeclaration()
	}

	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	pattern, err := p.variableTuple()
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.matchAdvance(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	semicolon, err := p.consume(token.Semicolon, "expect ';' after variable declaration")
	if err != nil {
		return nil, err
	}

	return &ast.Declaration{Pattern: pattern, Token: semicolon, Initializer: initializer}, nil
}

// variableTuple parses a binding pattern: a bare identifier, a
// parenthesized nested pattern, or a comma-separated group of either,
// optionally preceded by a leading comma that forces a single leaf into
// a one-element group.
func (p *Parser) variableTuple() (*ast.VariableTuple, error) {
	leadingComma := p.matchAdvance(token.Comma)

	first, err := p.variableTupleElement()
	if err != nil {
		return nil, err
	}

	if p.matchAdvance(token.Comma) {
		elements := []*ast.VariableTuple{first}

		for {
			elem, err := p.variableTupleElement()
			if err != nil {
				return nil, err
			}

			elements = append(elements, elem)

			if !p.matchAdvance(token.Comma) {
				break
			}
		}

		return ast.NewVariableGroup(elements), nil
	}

	if leadingComma {
		return ast.NewVariableGroup([]*ast.VariableTuple{first}), nil
	}

	return first, nil
}

func (p *Parser) variableTupleElement() (*ast.VariableTuple, error) {
	if p.matchAdvance(token.LeftParen) {
		inner, err := p.variableTuple()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(token.RightParen, "expect ')' after pattern"); err != nil {
			return nil, err
		}

		return inner, nil
	}

	if p.check(token.Identifier) {
		name := p.advance()
		return ast.NewVariableLeaf(ast.NewVariable(name)), nil
	}

	return nil, p.errorAt(p.peek(), "expected identifier(s)")
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.matchAdvance(token.For):
		return p.forStatement()
	case p.matchAdvance(token.If):
		return p.ifStatement()
	case p.matchAdvance(token.While):
		return p.whileStatement()
	case p.check(token.Return):
		return p.returnStatement()
	case p.check(token.LeftBrace):
		return p.block()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() (*ast.Block, error) {
	if _, err := p.consume(token.LeftBrace, "expect '{'"); err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	if _, err := p.consume(token.RightBrace, "expect '}' after block"); err != nil {
		return nil, err
	}

	return &ast.Block{Statements: stmts}, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "expect '(' after 'if'"); err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.RightParen, "expect ')' after if condition"); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch ast.Stmt
	if p.matchAdvance(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &ast.If{Cond: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "expect '(' after 'while'"); err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.RightParen, "expect ')' after while condition"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &ast.While{Cond: cond, Body: body}, nil
}

// forStatement desugars a C-style for loop into a block containing the
// initializer followed by a while loop whose body appends the
// increment, exactly as if the user had written it out by hand.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "expect '(' after 'for'"); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	if p.matchAdvance(token.Var) {
		init, err = p.varDeclaration()
	} else {
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "expect ';' after loop condition"); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !p.check(token.RightParen) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.RightParen, "expect ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExpressionStatement{Expr: incr}}}
	}

	if cond == nil {
		cond = &ast.Literal{Value: true}
	}

	body = &ast.While{Cond: cond, Body: body}
	body = &ast.Block{Statements: []ast.Stmt{init, body}}

	return body, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.advance()

	var value ast.Expr
	var err error
	if !p.check(token.Semicolon) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "expect ';' after return value"); err != nil {
		return nil, err
	}

	return &ast.Return{Keyword: keyword, Value: value}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	if p.matchAdvance(token.Semicolon) {
		return &ast.ExpressionStatement{}, nil
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.Semicolon, "expect ';' after expression"); err != nil {
		return nil, err
	}

	return &ast.ExpressionStatement{Expr: expr}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	saved := p.current

	expr, err := p.sendCall()
	if err != nil {
		return nil, err
	}

	if !p.check(token.Equal) {
		return expr, nil
	}

	p.current = saved

	pattern, err := p.variableTuple()
	if err != nil {
		return nil, err
	}

	eq, err := p.consume(token.Equal, "expect '=' in assignment")
	if err != nil {
		return nil, err
	}

	value, err := p.assignment()
	if err != nil {
		return nil, err
	}

	return &ast.Assign{Pattern: pattern, Token: eq, Value: value}, nil
}

func (p *Parser) sendCall() (ast.Expr, error) {
	expr, err := p.tuple()
	if err != nil {
		return nil, err
	}

	for p.check(token.Send) {
		arrow := p.advance()

		callee, err := p.tuple()
		if err != nil {
			return nil, err
		}

		expr, err = p.finishDotLikeCall(expr, callee, arrow)
		if err != nil {
			return nil, err
		}
	}

	return expr, nil
}

func (p *Parser) tuple() (ast.Expr, error) {
	leadingComma := p.matchAdvance(token.Comma)

	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.matchAdvance(token.Comma) {
		elements := []ast.Expr{expr}

		for {
			elem, err := p.or()
			if err != nil {
				return nil, err
			}

			elements = append(elements, elem)

			if !p.matchAdvance(token.Comma) {
				break
			}
		}

		return &ast.Tuple{Elements: elements}, nil
	}

	if leadingComma {
		return &ast.Tuple{Elements: []ast.Expr{expr}}, nil
	}

	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}

	for p.check(token.Or) {
		op := p.advance()

		right, err := p.and()
		if err != nil {
			return nil, err
		}

		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	for p.check(token.And) {
		op := p.advance()

		right, err := p.equality()
		if err != nil {
			return nil, err
		}

		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.check(token.BangEqual) || p.check(token.EqualEqual) {
		op := p.advance()

		right, err := p.comparison()
		if err != nil {
			return nil, err
		}

		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.check(token.Greater) || p.check(token.GreaterEqual) || p.check(token.Less) || p.check(token.LessEqual) {
		op := p.advance()

		right, err := p.term()
		if err != nil {
			return nil, err
		}

		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.check(token.Plus) || p.check(token.Minus) {
		op := p.advance()

		right, err := p.factor()
		if err != nil {
			return nil, err
		}

		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.check(token.Star) || p.check(token.Slash) {
		op := p.advance()

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.check(token.Bang) || p.check(token.Minus) {
		op := p.advance()

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &ast.Unary{Op: op, Right: right}, nil
	}

	return p.nAryCall()
}

// nAryCall parses left-chained dot calls: expr.callee and
// expr.callee(arg). The argument, when present, is parsed as a single
// primary -- it is not a full expression in its own right.
func (p *Parser) nAryCall() (ast.Expr, error) {
	expr, err := p.unaryCall()
	if err != nil {
		return nil, err
	}

	for p.check(token.Dot) {
		dot := p.advance()

		callee, err := p.unaryCall()
		if err != nil {
			return nil, err
		}

		expr, err = p.finishDotLikeCall(expr, callee, dot)
		if err != nil {
			return nil, err
		}
	}

	return expr, nil
}

// finishDotLikeCall builds the Call node shared by n-ary dot-calls and
// send-calls: "receiver op callee" with an optional trailing
// "(argument)" contributing a second call argument.
func (p *Parser) finishDotLikeCall(receiver, callee ast.Expr, opToken token.Token) (ast.Expr, error) {
	if p.check(token.LeftParen) {
		arg, err := p.primary()
		if err != nil {
			return nil, err
		}

		return &ast.Call{Callee: callee, Paren: opToken, Args: []ast.Expr{receiver, arg}}, nil
	}

	return &ast.Call{Callee: callee, Paren: opToken, Args: []ast.Expr{receiver}}, nil
}

// unaryCall parses the prefix, no-argument call form: .callee.
func (p *Parser) unaryCall() (ast.Expr, error) {
	if !p.check(token.Dot) {
		return p.primary()
	}

	dot := p.advance()

	callee, err := p.unaryCall()
	if err != nil {
		return nil, err
	}

	return &ast.Call{Callee: callee, Paren: dot}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.check(token.Fun):
		return p.function()
	case p.matchAdvance(token.False):
		return &ast.Literal{Value: false}, nil
	case p.matchAdvance(token.True):
		return &ast.Literal{Value: true}, nil
	case p.matchAdvance(token.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.check(token.Number) || p.check(token.String):
		tok := p.advance()
		return &ast.Literal{Value: tok.Literal}, nil
	case p.check(token.Identifier):
		tok := p.advance()
		return ast.NewVariable(tok), nil
	case p.matchAdvance(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(token.RightParen, "expect ')' after expression"); err != nil {
			return nil, err
		}

		return &ast.Grouping{Expression: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "expect expression")
	}
}

// function parses a function literal: fun <=2 params> block. Functions
// take at most two positional parameters, each itself a binding
// pattern, so "fun (a, b) x { ... }" destructures its first argument.
func (p *Parser) function() (ast.Expr, error) {
	if _, err := p.consume(token.Fun, "expect 'fun'"); err != nil {
		return nil, err
	}

	var params []*ast.VariableTuple

	if !p.check(token.LeftBrace) {
		first, err := p.variableTuple()
		if err != nil {
			return nil, err
		}

		params = append(params, first)

		if !p.check(token.LeftBrace) {
			second, err := p.variableTuple()
			if err != nil {
				return nil, err
			}

			params = append(params, second)
		}
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Params: params, Body: body}, nil
}

func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Return:
			return
		}

		p.advance()
	}
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return token.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok token.Token, message string) error {
	return ParseError{Token: tok, Message: message}
}

func (p *Parser) matchAdvance(kind token.Kind) bool {
	if !p.check(kind) {
		return false
	}

	p.advance()
	return true
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.Eof
}
