// Package object defines the runtime value model shared by the evaluator
// and the built-ins: nil | bool | number | string | tuple |
// function | builtin, boxed as Go's any and distinguished by type switch.
package object

import (
	"fmt"
	"strings"

	"github.com/havrydotdev/golox/ast"
	"github.com/havrydotdev/golox/environment"
	"github.com/havrydotdev/golox/token"
)

// Value is a dynamically-typed golox runtime value. It is exactly one of:
// nil, bool, float64, string, Tuple, *Function, *Builtin.
type Value = any

// Tuple is an ordered, reference-shared sequence of values.
type Tuple []Value

// Function is a closure: a reference to its declaring AST node plus the
// environment frame captured at creation time.
type Function struct {
	Decl    *ast.Function
	Closure *environment.Env
}

// Builtin is a native function registered in the global environment.
type Builtin struct {
	Name string
	// Arity is the fixed number of arguments Call expects, or -1 if it
	// accepts a variable number of arguments. It is descriptive only:
	// neither the evaluator nor Call checks the argument count against it.
	Arity int
	Call  func(args []Value, callSite token.Token) (Value, error)
}

// IsTruthy implements golox truthiness: nil and false are falsy, everything
// else is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}

	if b, ok := v.(bool); ok {
		return b
	}

	return true
}

// Equal implements structural equality across variants. Functions compare by
// identity of their declaring AST node, ignoring the captured environment --
// a deliberate simplification carried over from the reference interpreter.
func Equal(left, right Value) bool {
	if left == nil && right == nil {
		return true
	}
	if left == nil || right == nil {
		return false
	}

	switch l := left.(type) {
	case bool:
		r, ok := right.(bool)
		return ok && l == r
	case float64:
		r, ok := right.(float64)
		return ok && l == r
	case string:
		r, ok := right.(string)
		return ok && l == r
	case Tuple:
		r, ok := right.(Tuple)
		if !ok || len(l) != len(r) {
			return false
		}
		for i := range l {
			if !Equal(l[i], r[i]) {
				return false
			}
		}
		return true
	case *Function:
		r, ok := right.(*Function)
		return ok && l.Decl == r.Decl
	case *Builtin:
		r, ok := right.(*Builtin)
		return ok && l == r
	default:
		return false
	}
}

// TypeName names a value's dynamic type for diagnostics.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case Tuple:
		return "tuple"
	case *Function, *Builtin:
		return "function"
	default:
		return "unknown"
	}
}

// Display renders a value the way `print` writes it to stdout: numbers with
// six fractional digits, strings verbatim, everything else in a readable
// default form.
func Display(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprintf("%f", val)
	case string:
		return val
	case Tuple:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = Display(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *Function:
		return "<fn>"
	case *Builtin:
		return fmt.Sprintf("<native fn %s>", val.Name)
	default:
		return fmt.Sprintf("%v", val)
	}
}
