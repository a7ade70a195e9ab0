// Package evaluator tree-walks a resolved AST against a lexical
// environment, producing side effects (print, variable mutation) and,
// for the top level driver, a possible stray return value.
package evaluator

import (
	"fmt"

	"github.com/havrydotdev/golox/ast"
	"github.com/havrydotdev/golox/environment"
	"github.com/havrydotdev/golox/object"
	"github.com/havrydotdev/golox/resolver"
	"github.com/havrydotdev/golox/token"
)

// ReturnSignal unwinds statement execution back to the nearest
// enclosing function call. It implements error so it can be threaded
// through the same return channel as a genuine failure and
// type-switched out at the one place that should catch it.
//
// A ReturnSignal that escapes every call frame reaches the top level;
// the CLI driver -- not this package -- decides what that means.
type ReturnSignal struct {
	Value object.Value
}

func (ReturnSignal) Error() string { return "return outside of a function call" }

// Evaluator holds the two pieces of state a program execution thread
// needs: the current lexical frame, and the globals every frame
// chains back to. Locations never changes after construction for a
// file run; a REPL appends to it between lines.
type Evaluator struct {
	globals     *environment.Env
	environment *environment.Env
	locations   resolver.Locations
}

func New(locations resolver.Locations) *Evaluator {
	globals := newGlobals()
	return &Evaluator{globals: globals, environment: globals, locations: locations}
}

// Globals exposes the global frame so the CLI can seed extra bindings
// (e.g. command-line arguments) before running a program.
func (e *Evaluator) Globals() *environment.Env {
	return e.globals
}

// Interpret runs stmts in order against the current environment. It
// returns the first runtime error encountered, or a ReturnSignal if a
// `return` statement is reached outside any function call -- the
// caller decides whether that's an error or a program result.
func (e *Evaluator) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := e.execStmt(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (e *Evaluator) execStmt(s ast.Stmt) error {
	switch st := s.(type) {
	case *ast.Block:
		return e.execBlock(st.Statements, environment.NewChild(e.environment))

	case *ast.ExpressionStatement:
		if st.Expr == nil {
			return nil
		}
		_, err := e.eval(st.Expr)
		return err

	case *ast.If:
		cond, err := e.eval(st.Cond)
		if err != nil {
			return err
		}

		if object.IsTruthy(cond) {
			return e.execStmt(st.Then)
		}
		if st.Else != nil {
			return e.execStmt(st.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := e.eval(st.Cond)
			if err != nil {
				return err
			}
			if !object.IsTruthy(cond) {
				return nil
			}
			if err := e.execStmt(st.Body); err != nil {
				return err
			}
		}

	case *ast.Return:
		var value object.Value
		if st.Value != nil {
			v, err := e.eval(st.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return ReturnSignal{Value: value}

	case *ast.Declaration:
		if st.Initializer == nil {
			e.definePattern(st.Pattern)
			return nil
		}

		value, err := e.eval(st.Initializer)
		if err != nil {
			return err
		}

		return e.bindPattern(st.Pattern, value, st.Token, e.defineLeaf)

	default:
		panic(fmt.Sprintf("evaluator: unhandled statement type %T", s))
	}
}

// execBlock runs stmts in a fresh child frame, restoring the previous
// frame on every exit path -- normal, error, or return unwind.
func (e *Evaluator) execBlock(stmts []ast.Stmt, frame *environment.Env) error {
	prev := e.environment
	e.environment = frame
	defer func() { e.environment = prev }()

	for _, stmt := range stmts {
		if err := e.execStmt(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (e *Evaluator) eval(expr ast.Expr) (object.Value, error) {
	switch ex := expr.(type) {
	case *ast.Literal:
		return ex.Value, nil

	case *ast.Variable:
		return e.lookupVariable(ex)

	case *ast.Assign:
		value, err := e.eval(ex.Value)
		if err != nil {
			return nil, err
		}

		if err := e.bindPattern(ex.Pattern, value, ex.Token, e.assignLeaf); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Binary:
		return e.evalBinary(ex)

	case *ast.Logical:
		left, err := e.eval(ex.Left)
		if err != nil {
			return nil, err
		}

		if ex.Op.Kind == token.Or {
			if object.IsTruthy(left) {
				return true, nil
			}
		} else {
			if !object.IsTruthy(left) {
				return false, nil
			}
		}

		return e.eval(ex.Right)

	case *ast.Unary:
		return e.evalUnary(ex)

	case *ast.Grouping:
		return e.eval(ex.Expression)

	case *ast.Tuple:
		tuple := make(object.Tuple, len(ex.Elements))
		for i, elem := range ex.Elements {
			v, err := e.eval(elem)
			if err != nil {
				return nil, err
			}
			tuple[i] = v
		}
		return tuple, nil

	case *ast.Call:
		return e.evalCall(ex)

	case *ast.Function:
		return &object.Function{Decl: ex, Closure: e.environment}, nil

	default:
		panic(fmt.Sprintf("evaluator: unhandled expression type %T", expr))
	}
}

func (e *Evaluator) lookupVariable(v *ast.Variable) (object.Value, error) {
	if depth, ok := e.locations[v.ID]; ok {
		val, ok := e.environment.GetAt(depth, v.Name.Lexeme)
		if !ok {
			return nil, newError(v.Name, "undefined variable '%s'", v.Name.Lexeme)
		}
		return val, nil
	}

	val, ok := e.globals.Get(v.Name.Lexeme)
	if !ok {
		return nil, newError(v.Name, "undefined variable '%s'", v.Name.Lexeme)
	}
	return val, nil
}

func (e *Evaluator) evalUnary(u *ast.Unary) (object.Value, error) {
	right, err := e.eval(u.Right)
	if err != nil {
		return nil, err
	}

	switch u.Op.Kind {
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, newError(u.Op, "bad operand type")
		}
		return -n, nil
	case token.Bang:
		return !object.IsTruthy(right), nil
	default:
		return nil, newError(u.Op, "bad operator type")
	}
}

func (e *Evaluator) evalBinary(b *ast.Binary) (object.Value, error) {
	left, err := e.eval(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Op.Kind {
	case token.Minus, token.Slash, token.Star, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, newError(b.Op, "bad operand type")
		}

		switch b.Op.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Slash:
			return ln / rn, nil
		case token.Star:
			return ln * rn, nil
		case token.Greater:
			return ln > rn, nil
		case token.GreaterEqual:
			return ln >= rn, nil
		case token.Less:
			return ln < rn, nil
		case token.LessEqual:
			return ln <= rn, nil
		}

	case token.Plus:
		if ln, ok := left.(float64); ok {
			rn, ok := right.(float64)
			if !ok {
				return nil, newError(b.Op, "bad operand type")
			}
			return ln + rn, nil
		}
		if ls, ok := left.(string); ok {
			rs, ok := right.(string)
			if !ok {
				return nil, newError(b.Op, "bad operand type")
			}
			return ls + rs, nil
		}
		return nil, newError(b.Op, "bad operand type")

	case token.BangEqual:
		return !object.Equal(left, right), nil
	case token.EqualEqual:
		return object.Equal(left, right), nil
	}

	return nil, newError(b.Op, "bad operator type")
}

func (e *Evaluator) evalCall(c *ast.Call) (object.Value, error) {
	callee, err := e.eval(c.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(c.Args))
	for i, argExpr := range c.Args {
		v, err := e.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *object.Function:
		return e.callFunction(fn, args, c.Paren)
	case *object.Builtin:
		return fn.Call(args, c.Paren)
	default:
		return nil, newError(c.Paren, "can only call functions")
	}
}

func (e *Evaluator) callFunction(fn *object.Function, args []object.Value, callSite token.Token) (object.Value, error) {
	if len(args) > len(fn.Decl.Params) {
		return nil, newError(callSite, "function expects %d inputs, but receieved %d", len(fn.Decl.Params), len(args))
	}

	frame := environment.NewChild(fn.Closure)
	defineInFrame := func(v *ast.Variable, value object.Value) error {
		frame.Define(v.Name.Lexeme, value)
		return nil
	}

	for i, param := range fn.Decl.Params {
		if i < len(args) {
			if err := bindTuple(param, args[i], callSite, defineInFrame); err != nil {
				return nil, err
			}
		} else {
			ast.ForEachVariable(param, func(v *ast.Variable) { frame.Define(v.Name.Lexeme, nil) })
		}
	}

	prev := e.environment
	e.environment = frame
	defer func() { e.environment = prev }()

	for _, stmt := range fn.Decl.Body.Statements {
		err := e.execStmt(stmt)
		if err == nil {
			continue
		}

		if ret, ok := err.(ReturnSignal); ok {
			return ret.Value, nil
		}
		return nil, err
	}

	return nil, nil
}
